package custody

import (
	"bytes"
	"io"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/bin"
)

// position reference kinds
const (
	FungibleShare  = uint8(1)
	RangedPosition = uint8(2)
)

// PositionRef points at a liquidity holding of either facade family:
// a fungible pair share or a ranged position id
type PositionRef struct {
	Kind       uint8
	Pair       common.Address
	PositionID uint64
}

func (s *PositionRef) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Uint8(w, s.Kind); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Pair); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, s.PositionID); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *PositionRef) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Uint8(r, &s.Kind); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Pair); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64(r, &s.PositionID); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}

func (s *PositionRef) Bytes() ([]byte, error) {
	var buffer bytes.Buffer
	if _, err := s.WriteTo(&buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// IsFungible reports whether the reference is a pair share holding
func (s *PositionRef) IsFungible() bool {
	return s.Kind == FungibleShare
}
