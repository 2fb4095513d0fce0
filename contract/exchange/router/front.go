package router

import (
	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/core/types"

	. "github.com/coreswap/coreswap/contract/exchange/util"
)

func (cont *RouterContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *RouterContract
}

func (f *front) Factory(cc types.ContractLoader) common.Address {
	return f.cont.factory(cc)
}

func (f *front) WCoin(cc types.ContractLoader) common.Address {
	return f.cont.wcoin(cc)
}

func (f *front) AddLiquidity(cc *types.ContractContext, TokenA, TokenB common.Address, AmountADesired, AmountBDesired, AmountAMin, AmountBMin *amount.Amount, To common.Address, Deadline uint64) (*amount.Amount, *amount.Amount, *amount.Amount, common.Address, error) {
	amountA, amountB, liquidity, pairAddr, err := f.cont.addLiquidity(cc, TokenA, TokenB, AmountADesired.Int, AmountBDesired.Int, AmountAMin.Int, AmountBMin.Int, To, Deadline)
	if err != nil {
		return nil, nil, nil, ZeroAddress, err
	}
	return ToAmount(amountA), ToAmount(amountB), ToAmount(liquidity), pairAddr, nil
}

func (f *front) AddLiquidityCoin(cc *types.ContractContext, Token common.Address, AmountTokenDesired, AmountTokenMin, AmountCoinMin *amount.Amount, To common.Address, Deadline uint64) (*amount.Amount, *amount.Amount, *amount.Amount, common.Address, error) {
	amountToken, amountCoin, liquidity, pairAddr, err := f.cont.addLiquidityCoin(cc, Token, AmountTokenDesired.Int, AmountTokenMin.Int, AmountCoinMin.Int, To, Deadline)
	if err != nil {
		return nil, nil, nil, ZeroAddress, err
	}
	return ToAmount(amountToken), ToAmount(amountCoin), ToAmount(liquidity), pairAddr, nil
}

func (f *front) RemoveLiquidity(cc *types.ContractContext, TokenA, TokenB common.Address, Liquidity, AmountAMin, AmountBMin *amount.Amount, To common.Address, Deadline uint64) (*amount.Amount, *amount.Amount, error) {
	amountA, amountB, err := f.cont.removeLiquidity(cc, TokenA, TokenB, Liquidity.Int, AmountAMin.Int, AmountBMin.Int, To, Deadline)
	if err != nil {
		return nil, nil, err
	}
	return ToAmount(amountA), ToAmount(amountB), nil
}

func (f *front) RemoveLiquidityCoin(cc *types.ContractContext, Token common.Address, Liquidity, AmountTokenMin, AmountCoinMin *amount.Amount, To common.Address, Deadline uint64) (*amount.Amount, *amount.Amount, error) {
	amountToken, amountCoin, err := f.cont.removeLiquidityCoin(cc, Token, Liquidity.Int, AmountTokenMin.Int, AmountCoinMin.Int, To, Deadline)
	if err != nil {
		return nil, nil, err
	}
	return ToAmount(amountToken), ToAmount(amountCoin), nil
}

func (f *front) SwapExactTokensForTokens(cc *types.ContractContext, AmountIn, AmountOutMin *amount.Amount, Path []common.Address, To common.Address, Deadline uint64) ([]*amount.Amount, error) {
	amounts, err := f.cont.swapExactTokensForTokens(cc, AmountIn.Int, AmountOutMin.Int, Path, To, Deadline)
	if err != nil {
		return nil, err
	}
	return ToAmounts(amounts), nil
}

func (f *front) SwapTokensForExactTokens(cc *types.ContractContext, AmountOut, AmountInMax *amount.Amount, Path []common.Address, To common.Address, Deadline uint64) ([]*amount.Amount, error) {
	amounts, err := f.cont.swapTokensForExactTokens(cc, AmountOut.Int, AmountInMax.Int, Path, To, Deadline)
	if err != nil {
		return nil, err
	}
	return ToAmounts(amounts), nil
}

func (f *front) SwapExactCoinForTokens(cc *types.ContractContext, AmountOutMin *amount.Amount, Path []common.Address, To common.Address, Deadline uint64) ([]*amount.Amount, error) {
	amounts, err := f.cont.swapExactCoinForTokens(cc, AmountOutMin.Int, Path, To, Deadline)
	if err != nil {
		return nil, err
	}
	return ToAmounts(amounts), nil
}

func (f *front) SwapTokensForExactCoin(cc *types.ContractContext, AmountOut, AmountInMax *amount.Amount, Path []common.Address, To common.Address, Deadline uint64) ([]*amount.Amount, error) {
	amounts, err := f.cont.swapTokensForExactCoin(cc, AmountOut.Int, AmountInMax.Int, Path, To, Deadline)
	if err != nil {
		return nil, err
	}
	return ToAmounts(amounts), nil
}

func (f *front) GetAmountsOut(cc *types.ContractContext, AmountIn *amount.Amount, Path []common.Address) ([]*amount.Amount, error) {
	amounts, err := getAmountsOut(cc, f.cont.factory(cc), AmountIn.Int, Path)
	if err != nil {
		return nil, err
	}
	return ToAmounts(amounts), nil
}

func (f *front) GetAmountsIn(cc *types.ContractContext, AmountOut *amount.Amount, Path []common.Address) ([]*amount.Amount, error) {
	amounts, err := getAmountsIn(cc, f.cont.factory(cc), AmountOut.Int, Path)
	if err != nil {
		return nil, err
	}
	return ToAmounts(amounts), nil
}
