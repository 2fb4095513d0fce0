package position

import (
	"io"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/bin"
)

type ManagerContractConstruction struct {
	PoolClassID uint64
}

func (s *ManagerContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Uint64(w, s.PoolClassID); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *ManagerContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Uint64(r, &s.PoolClassID); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}

type SwapRouterContractConstruction struct {
	Manager common.Address
}

func (s *SwapRouterContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Manager); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *SwapRouterContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Manager); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
