package clcore

import (
	"io"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/bin"
)

type CLCoreContractConstruction struct {
	Manager    common.Address
	SwapRouter common.Address
}

func (s *CLCoreContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Manager); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.SwapRouter); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *CLCoreContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Manager); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.SwapRouter); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
