package position

import (
	"bytes"
	"io"
	"math/big"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/bin"
)

// Position is a ranged liquidity holding managed on behalf of an owner
type Position struct {
	Owner       common.Address
	Operator    common.Address
	Token0      common.Address
	Token1      common.Address
	Fee         uint64
	TickLower   int64
	TickUpper   int64
	Liquidity   *big.Int
	TokensOwed0 *big.Int
	TokensOwed1 *big.Int
}

func (s *Position) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Operator); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Token0); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Token1); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, s.Fee); err != nil {
		return sum, err
	}
	if sum, err := sw.Int64(w, s.TickLower); err != nil {
		return sum, err
	}
	if sum, err := sw.Int64(w, s.TickUpper); err != nil {
		return sum, err
	}
	if sum, err := sw.Bytes(w, s.Liquidity.Bytes()); err != nil {
		return sum, err
	}
	if sum, err := sw.Bytes(w, s.TokensOwed0.Bytes()); err != nil {
		return sum, err
	}
	if sum, err := sw.Bytes(w, s.TokensOwed1.Bytes()); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *Position) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Operator); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Token0); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Token1); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64(r, &s.Fee); err != nil {
		return sum, err
	}
	if sum, err := sr.Int64(r, &s.TickLower); err != nil {
		return sum, err
	}
	if sum, err := sr.Int64(r, &s.TickUpper); err != nil {
		return sum, err
	}
	var bs []byte
	if sum, err := sr.Bytes(r, &bs); err != nil {
		return sum, err
	}
	s.Liquidity = big.NewInt(0).SetBytes(bs)
	if sum, err := sr.Bytes(r, &bs); err != nil {
		return sum, err
	}
	s.TokensOwed0 = big.NewInt(0).SetBytes(bs)
	if sum, err := sr.Bytes(r, &bs); err != nil {
		return sum, err
	}
	s.TokensOwed1 = big.NewInt(0).SetBytes(bs)
	return sr.Sum(), nil
}

func (s *Position) Bytes() ([]byte, error) {
	var buffer bytes.Buffer
	if _, err := s.WriteTo(&buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func (s *Position) Clone() *Position {
	return &Position{
		Owner:       s.Owner,
		Operator:    s.Operator,
		Token0:      s.Token0,
		Token1:      s.Token1,
		Fee:         s.Fee,
		TickLower:   s.TickLower,
		TickUpper:   s.TickUpper,
		Liquidity:   big.NewInt(0).Set(s.Liquidity),
		TokensOwed0: big.NewInt(0).Set(s.TokensOwed0),
		TokensOwed1: big.NewInt(0).Set(s.TokensOwed1),
	}
}
