package bin

import (
	"io"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/common/hash"
)

// SumReader accumulates the read size while reading values
type SumReader struct {
	sum int64
}

// NewSumReader returns a SumReader
func NewSumReader() *SumReader {
	return &SumReader{}
}

// Sum returns the accumulated read size
func (sr *SumReader) Sum() int64 {
	return sr.sum
}

func (sr *SumReader) read(r io.Reader, n int) ([]byte, error) {
	bs := make([]byte, n)
	if _, err := io.ReadFull(r, bs); err != nil {
		return nil, err
	}
	sr.sum += int64(n)
	return bs, nil
}

// GetUint8 reads the uint8
func (sr *SumReader) GetUint8(r io.Reader) (uint8, int64, error) {
	bs, err := sr.read(r, 1)
	if err != nil {
		return 0, sr.sum, err
	}
	return bs[0], sr.sum, nil
}

// GetUint16 reads the uint16
func (sr *SumReader) GetUint16(r io.Reader) (uint16, int64, error) {
	bs, err := sr.read(r, 2)
	if err != nil {
		return 0, sr.sum, err
	}
	return Uint16(bs), sr.sum, nil
}

// GetUint32 reads the uint32
func (sr *SumReader) GetUint32(r io.Reader) (uint32, int64, error) {
	bs, err := sr.read(r, 4)
	if err != nil {
		return 0, sr.sum, err
	}
	return Uint32(bs), sr.sum, nil
}

// GetUint64 reads the uint64
func (sr *SumReader) GetUint64(r io.Reader) (uint64, int64, error) {
	bs, err := sr.read(r, 8)
	if err != nil {
		return 0, sr.sum, err
	}
	return Uint64(bs), sr.sum, nil
}

// Uint8 reads the uint8 into the pointer
func (sr *SumReader) Uint8(r io.Reader, p *uint8) (int64, error) {
	v, sum, err := sr.GetUint8(r)
	if err != nil {
		return sum, err
	}
	*p = v
	return sum, nil
}

// Uint64 reads the uint64 into the pointer
func (sr *SumReader) Uint64(r io.Reader, p *uint64) (int64, error) {
	v, sum, err := sr.GetUint64(r)
	if err != nil {
		return sum, err
	}
	*p = v
	return sum, nil
}

// Int64 reads the int64 into the pointer
func (sr *SumReader) Int64(r io.Reader, p *int64) (int64, error) {
	v, sum, err := sr.GetUint64(r)
	if err != nil {
		return sum, err
	}
	*p = int64(v)
	return sum, nil
}

// Bool reads the bool into the pointer
func (sr *SumReader) Bool(r io.Reader, p *bool) (int64, error) {
	bs, err := sr.read(r, 1)
	if err != nil {
		return sr.sum, err
	}
	*p = bs[0] == 1
	return sr.sum, nil
}

// GetBytes reads the length-prefixed byte array
func (sr *SumReader) GetBytes(r io.Reader) ([]byte, int64, error) {
	Len, sum, err := sr.GetUint32(r)
	if err != nil {
		return nil, sum, err
	}
	bs, err := sr.read(r, int(Len))
	if err != nil {
		return nil, sr.sum, err
	}
	return bs, sr.sum, nil
}

// Bytes reads the length-prefixed byte array into the pointer
func (sr *SumReader) Bytes(r io.Reader, p *[]byte) (int64, error) {
	bs, sum, err := sr.GetBytes(r)
	if err != nil {
		return sum, err
	}
	*p = bs
	return sum, nil
}

// String reads the length-prefixed string into the pointer
func (sr *SumReader) String(r io.Reader, p *string) (int64, error) {
	bs, sum, err := sr.GetBytes(r)
	if err != nil {
		return sum, err
	}
	*p = string(bs)
	return sum, nil
}

// Address reads the address into the pointer
func (sr *SumReader) Address(r io.Reader, p *common.Address) (int64, error) {
	bs, err := sr.read(r, common.AddressLength)
	if err != nil {
		return sr.sum, err
	}
	copy((*p)[:], bs)
	return sr.sum, nil
}

// Hash256 reads the hash into the pointer
func (sr *SumReader) Hash256(r io.Reader, p *hash.Hash256) (int64, error) {
	bs, err := sr.read(r, hash.Hash256Size)
	if err != nil {
		return sr.sum, err
	}
	copy((*p)[:], bs)
	return sr.sum, nil
}

// Amount reads the length-prefixed amount into the pointer
func (sr *SumReader) Amount(r io.Reader, p **amount.Amount) (int64, error) {
	bs, sum, err := sr.GetBytes(r)
	if err != nil {
		return sum, err
	}
	*p = amount.NewAmountFromBytes(bs)
	return sum, nil
}
