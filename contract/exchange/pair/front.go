package pair

import (
	"math/big"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/core/types"

	. "github.com/coreswap/coreswap/contract/exchange/util"
)

func (cont *PairContract) Front() interface{} {
	return &PairFront{
		cont: cont,
	}
}

type PairFront struct {
	cont *PairContract
}

//////////////////////////////////////////////////
// LPToken
//////////////////////////////////////////////////

func (f *PairFront) Name(cc types.ContractLoader) string {
	return f.cont.name(cc)
}
func (f *PairFront) Symbol(cc types.ContractLoader) string {
	return f.cont.symbol(cc)
}
func (f *PairFront) Decimals(cc types.ContractLoader) *big.Int {
	return f.cont.decimals(cc)
}
func (f *PairFront) TotalSupply(cc types.ContractLoader) *amount.Amount {
	return ToAmount(f.cont.totalSupply(cc))
}
func (f *PairFront) BalanceOf(cc types.ContractLoader, from common.Address) *amount.Amount {
	return ToAmount(f.cont.balanceOf(cc, from))
}
func (f *PairFront) Allowance(cc types.ContractLoader, owner, spender common.Address) *amount.Amount {
	return ToAmount(f.cont.allowance(cc, owner, spender))
}
func (f *PairFront) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	return f.cont.transfer(cc, To, Amount.Int)
}
func (f *PairFront) Approve(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	return f.cont.approve(cc, To, Amount.Int)
}
func (f *PairFront) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	return f.cont.transferFrom(cc, From, To, Amount.Int)
}

//////////////////////////////////////////////////
// Pair : public reader functions
//////////////////////////////////////////////////

func (f *PairFront) Factory(cc types.ContractLoader) common.Address {
	return f.cont.factory(cc)
}
func (f *PairFront) Token0(cc types.ContractLoader) common.Address {
	return f.cont.token0(cc)
}
func (f *PairFront) Token1(cc types.ContractLoader) common.Address {
	return f.cont.token1(cc)
}
func (f *PairFront) Fee(cc types.ContractLoader) uint64 {
	return f.cont.fee(cc)
}
func (f *PairFront) Reserve0(cc types.ContractLoader) *amount.Amount {
	return ToAmount(f.cont.reserve0(cc))
}
func (f *PairFront) Reserve1(cc types.ContractLoader) *amount.Amount {
	return ToAmount(f.cont.reserve1(cc))
}
func (f *PairFront) Reserves(cc types.ContractLoader) ([]*amount.Amount, uint64) {
	reserve0, reserve1, blockTimestampLast := f.cont.reserves(cc)
	return []*amount.Amount{ToAmount(reserve0), ToAmount(reserve1)}, blockTimestampLast
}
func (f *PairFront) Price0CumulativeLast(cc types.ContractLoader) *amount.Amount {
	return ToAmount(f.cont.price0CumulativeLast(cc))
}
func (f *PairFront) Price1CumulativeLast(cc types.ContractLoader) *amount.Amount {
	return ToAmount(f.cont.price1CumulativeLast(cc))
}
func (f *PairFront) BlockTimestampLast(cc types.ContractLoader) uint64 {
	return f.cont.blockTimestampLast(cc)
}

//////////////////////////////////////////////////
// Pair : public writer functions
//////////////////////////////////////////////////

func (f *PairFront) Mint(cc *types.ContractContext, To common.Address) (*amount.Amount, error) {
	liquidity, err := f.cont.mint(cc, To)
	if err != nil {
		return nil, err
	}
	return ToAmount(liquidity), nil
}

func (f *PairFront) Burn(cc *types.ContractContext, To common.Address) (*amount.Amount, *amount.Amount, error) {
	amount0, amount1, err := f.cont.burn(cc, To)
	if err != nil {
		return nil, nil, err
	}
	return ToAmount(amount0), ToAmount(amount1), nil
}

func (f *PairFront) Swap(cc *types.ContractContext, Amount0Out, Amount1Out *amount.Amount, To common.Address) error {
	return f.cont.swap(cc, Amount0Out.Int, Amount1Out.Int, To)
}

func (f *PairFront) Skim(cc *types.ContractContext, To common.Address) error {
	return f.cont.skim(cc, To)
}

func (f *PairFront) Sync(cc *types.ContractContext) error {
	return f.cont.sync(cc)
}
