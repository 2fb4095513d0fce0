package hash

import (
	"encoding/hex"
	"math/big"
)

// Hash256Size is 32 bytes
const Hash256Size = 32

// Hash256 is the [Hash256Size]byte with methods
type Hash256 [Hash256Size]byte

// String returns the hex string of the hash
func (h Hash256) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns the byte slice of the hash
func (h Hash256) Bytes() []byte {
	return h[:]
}

// Clone returns the cloned value of it
func (h Hash256) Clone() Hash256 {
	var cp Hash256
	copy(cp[:], h[:])
	return cp
}

// BigToHash sets b to the Hash256 value interpreted as a big-endian integer
func BigToHash(b *big.Int) Hash256 {
	var h Hash256
	bs := b.Bytes()
	if len(bs) > Hash256Size {
		bs = bs[len(bs)-Hash256Size:]
	}
	copy(h[Hash256Size-len(bs):], bs)
	return h
}

// HexToHash parses the hex string to the Hash256
func HexToHash(str string) Hash256 {
	var h Hash256
	bs, err := hex.DecodeString(str)
	if err != nil {
		return h
	}
	if len(bs) > Hash256Size {
		bs = bs[len(bs)-Hash256Size:]
	}
	copy(h[Hash256Size-len(bs):], bs)
	return h
}
