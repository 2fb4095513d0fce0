package wcoin

import (
	"io"

	"github.com/coreswap/coreswap/common/bin"
)

type WCoinContractConstruction struct {
	Name   string
	Symbol string
}

func (s *WCoinContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.String(w, s.Name); err != nil {
		return sum, err
	}
	if sum, err := sw.String(w, s.Symbol); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *WCoinContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.String(r, &s.Name); err != nil {
		return sum, err
	}
	if sum, err := sr.String(r, &s.Symbol); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
