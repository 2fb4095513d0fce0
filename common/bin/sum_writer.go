package bin

import (
	"io"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/common/hash"
)

// SumWriter accumulates the written size while writing values
type SumWriter struct {
	sum int64
}

// NewSumWriter returns a SumWriter
func NewSumWriter() *SumWriter {
	return &SumWriter{}
}

// Sum returns the accumulated written size
func (sw *SumWriter) Sum() int64 {
	return sw.sum
}

func (sw *SumWriter) write(w io.Writer, bs []byte) (int64, error) {
	n, err := w.Write(bs)
	sw.sum += int64(n)
	return sw.sum, err
}

// Uint8 writes the uint8
func (sw *SumWriter) Uint8(w io.Writer, v uint8) (int64, error) {
	return sw.write(w, []byte{v})
}

// Uint16 writes the uint16
func (sw *SumWriter) Uint16(w io.Writer, v uint16) (int64, error) {
	return sw.write(w, Uint16Bytes(v))
}

// Uint32 writes the uint32
func (sw *SumWriter) Uint32(w io.Writer, v uint32) (int64, error) {
	return sw.write(w, Uint32Bytes(v))
}

// Uint64 writes the uint64
func (sw *SumWriter) Uint64(w io.Writer, v uint64) (int64, error) {
	return sw.write(w, Uint64Bytes(v))
}

// Int64 writes the int64
func (sw *SumWriter) Int64(w io.Writer, v int64) (int64, error) {
	return sw.write(w, Uint64Bytes(uint64(v)))
}

// Bool writes the bool
func (sw *SumWriter) Bool(w io.Writer, v bool) (int64, error) {
	if v {
		return sw.write(w, []byte{1})
	}
	return sw.write(w, []byte{0})
}

// Bytes writes the length-prefixed byte array
func (sw *SumWriter) Bytes(w io.Writer, bs []byte) (int64, error) {
	if _, err := sw.Uint32(w, uint32(len(bs))); err != nil {
		return sw.sum, err
	}
	return sw.write(w, bs)
}

// String writes the length-prefixed string
func (sw *SumWriter) String(w io.Writer, str string) (int64, error) {
	return sw.Bytes(w, []byte(str))
}

// Address writes the address
func (sw *SumWriter) Address(w io.Writer, addr common.Address) (int64, error) {
	return sw.write(w, addr[:])
}

// Hash256 writes the hash
func (sw *SumWriter) Hash256(w io.Writer, h hash.Hash256) (int64, error) {
	return sw.write(w, h[:])
}

// Amount writes the length-prefixed amount
func (sw *SumWriter) Amount(w io.Writer, am *amount.Amount) (int64, error) {
	return sw.Bytes(w, am.Bytes())
}
