package common

import (
	"bytes"
	"encoding/binary"

	"github.com/mr-tron/base58/base58"
)

// AddressLength is 14 bytes
const AddressLength = 14

// Address is the [AddressLength]byte with methods
type Address [AddressLength]byte

// ZeroAddr is the empty address
var ZeroAddr = Address{}

// NewAddress returns an Address from a height, an index and a magic number
func NewAddress(height uint32, index uint16, magic uint64) Address {
	var addr Address
	binary.BigEndian.PutUint32(addr[:], height)
	binary.BigEndian.PutUint16(addr[4:], index)
	binary.BigEndian.PutUint64(addr[6:], magic)
	return addr
}

// BytesToAddress returns an Address from the byte array (uses the last AddressLength bytes)
func BytesToAddress(bs []byte) Address {
	var addr Address
	if len(bs) > AddressLength {
		bs = bs[len(bs)-AddressLength:]
	}
	copy(addr[AddressLength-len(bs):], bs)
	return addr
}

// Bytes returns the byte slice of the address
func (addr Address) Bytes() []byte {
	return addr[:]
}

// String returns a base58 value of the address
func (addr Address) String() string {
	var bs []byte
	checksum := addr.Checksum()
	result := bytes.TrimRight(addr[:], string([]byte{0}))
	if len(result) < 7 {
		bs = make([]byte, 7)
	} else {
		bs = make([]byte, 15)
	}
	copy(bs[1:], result[:])
	bs[0] = checksum
	return base58.Encode(bs)
}

// Clone returns the cloned value of it
func (addr Address) Clone() Address {
	var cp Address
	copy(cp[:], addr[:])
	return cp
}

// Checksum returns the checksum byte
func (addr Address) Checksum() byte {
	var cs byte
	for _, c := range addr {
		cs = cs ^ c
	}
	return cs
}

// MarshalJSON is a marshaler function
func (addr Address) MarshalJSON() ([]byte, error) {
	return []byte(`"` + addr.String() + `"`), nil
}

// UnmarshalJSON is a unmarshaler function
func (addr *Address) UnmarshalJSON(bs []byte) error {
	if len(bs) < 3 {
		return ErrInvalidAddressFormat
	}
	if bs[0] != '"' || bs[len(bs)-1] != '"' {
		return ErrInvalidAddressFormat
	}
	v, err := ParseAddress(string(bs[1 : len(bs)-1]))
	if err != nil {
		return err
	}
	copy(addr[:], v[:])
	return nil
}

// ParseAddress parse the address from the string
func ParseAddress(str string) (Address, error) {
	bs, err := base58.Decode(str)
	if err != nil {
		return Address{}, err
	}
	if len(bs) != 7 && len(bs) != 15 {
		return Address{}, ErrInvalidAddressFormat
	}
	cs := bs[0]
	var addr Address
	copy(addr[:], bs[1:])
	if cs != addr.Checksum() {
		return Address{}, ErrInvalidAddressCheckSum
	}
	return addr, nil
}

// MustParseAddress panic when error occurred
func MustParseAddress(str string) Address {
	addr, err := ParseAddress(str)
	if err != nil {
		panic(err)
	}
	return addr
}
