package factory

import (
	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/core/types"
)

func (cont *FactoryContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *FactoryContract
}

func (f *front) CreatePair(cc *types.ContractContext, TokenA, TokenB common.Address, Name, Symbol string, Fee uint64) (common.Address, error) {
	return f.cont.createPair(cc, TokenA, TokenB, Name, Symbol, Fee)
}

func (f *front) SetOwner(cc *types.ContractContext, NewOwner common.Address) error {
	return f.cont.setOwner(cc, NewOwner)
}

func (f *front) Owner(cc types.ContractLoader) common.Address {
	return f.cont.owner(cc)
}

func (f *front) PairClassID(cc types.ContractLoader) uint64 {
	return f.cont.pairClassID(cc)
}

func (f *front) GetPair(cc types.ContractLoader, TokenA, TokenB common.Address) common.Address {
	return f.cont.getPair(cc, TokenA, TokenB)
}

func (f *front) AllPairs(cc types.ContractLoader) []common.Address {
	return f.cont.allPairs(cc)
}

func (f *front) AllPairsLength(cc types.ContractLoader) uint16 {
	return f.cont.allPairsLength(cc)
}
