package pair

import (
	"io"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/bin"
)

type PairContractConstruction struct {
	Name    string
	Symbol  string
	Factory common.Address
	Token0  common.Address
	Token1  common.Address
	Fee     uint64
}

func (s *PairContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.String(w, s.Name); err != nil {
		return sum, err
	}
	if sum, err := sw.String(w, s.Symbol); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Factory); err != nil {
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
	return sw.Sum(), nil
}

func (s *PairContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.String(r, &s.Name); err != nil {
		return sum, err
	}
	if sum, err := sr.String(r, &s.Symbol); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Factory); err != nil {
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
	return sr.Sum(), nil
}
