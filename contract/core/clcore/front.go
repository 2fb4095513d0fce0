package clcore

import (
	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/contract/core/custody"
	"github.com/coreswap/coreswap/core/types"

	. "github.com/coreswap/coreswap/contract/exchange/util"
)

func (cont *CLCoreContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *CLCoreContract
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (f *front) Manager(cc types.ContractLoader) common.Address {
	return f.cont.manager(cc)
}

func (f *front) SwapRouter(cc types.ContractLoader) common.Address {
	return f.cont.swapRouter(cc)
}

func (f *front) PositionOf(cc *types.ContractContext, PositionID uint64) (*custody.PositionRef, error) {
	return f.cont.positionOf(cc, PositionID)
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (f *front) AddLiquidity(
	cc *types.ContractContext,
	PositionID uint64,
	TokenA, TokenB common.Address,
	Fee uint64, TickLower, TickUpper int64,
	AmountADesired, AmountBDesired, AmountAMin, AmountBMin *amount.Amount,
	Deadline uint64) (uint64, *amount.Amount, *amount.Amount, *amount.Amount, error) {
	id, liquidity, amountA, amountB, err := f.cont.addLiquidity(cc,
		PositionID, TokenA, TokenB, Fee, TickLower, TickUpper,
		AmountADesired.Int, AmountBDesired.Int, AmountAMin.Int, AmountBMin.Int,
		Deadline)
	if err != nil {
		return 0, nil, nil, nil, err
	}
	return id, ToAmount(liquidity), ToAmount(amountA), ToAmount(amountB), nil
}

func (f *front) RemoveLiquidity(
	cc *types.ContractContext,
	PositionID uint64,
	Liquidity, Amount0Min, Amount1Min *amount.Amount,
	Deadline uint64) (*amount.Amount, *amount.Amount, error) {
	amount0, amount1, err := f.cont.removeLiquidity(cc,
		PositionID,
		Liquidity.Int, Amount0Min.Int, Amount1Min.Int,
		Deadline)
	if err != nil {
		return nil, nil, err
	}
	return ToAmount(amount0), ToAmount(amount1), nil
}

func (f *front) CollectFees(
	cc *types.ContractContext,
	PositionID uint64,
	Amount0Max, Amount1Max *amount.Amount) (*amount.Amount, *amount.Amount, error) {
	amount0, amount1, err := f.cont.collectFees(cc, PositionID, Amount0Max.Int, Amount1Max.Int)
	if err != nil {
		return nil, nil, err
	}
	return ToAmount(amount0), ToAmount(amount1), nil
}

func (f *front) SwapTokens(
	cc *types.ContractContext,
	TokenIn, TokenOut common.Address,
	Fee uint64,
	AmountIn, AmountOutMin *amount.Amount,
	Deadline uint64) (*amount.Amount, error) {
	amountOut, err := f.cont.swapTokens(cc, TokenIn, TokenOut, Fee, AmountIn.Int, AmountOutMin.Int, Deadline)
	if err != nil {
		return nil, err
	}
	return ToAmount(amountOut), nil
}
