package router

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/contract/exchange/pair"
	"github.com/coreswap/coreswap/core/types"

	. "github.com/coreswap/coreswap/contract/exchange/util"
)

// fetches and sorts the reserves for a pair
func getReserves(cc *types.ContractContext, factory, tokenA, tokenB common.Address) (common.Address, *big.Int, *big.Int, error) {
	token0, _, _ := pair.SortTokens(tokenA, tokenB)
	pairAddr, err := pair.PairFor(factory, tokenA, tokenB)
	if err != nil {
		return ZeroAddress, nil, nil, err
	}

	is, err := cc.Exec(cc, pairAddr, "Reserves", []interface{}{})
	if err != nil {
		return ZeroAddress, nil, nil, err
	}
	reserve0 := is[0].([]*amount.Amount)[0]
	reserve1 := is[0].([]*amount.Amount)[1]

	if tokenA == token0 {
		return pairAddr, reserve0.Int, reserve1.Int, nil
	}
	return pairAddr, reserve1.Int, reserve0.Int, nil
}

func pairFee(cc *types.ContractContext, pairAddr common.Address) (uint64, error) {
	is, err := cc.Exec(cc, pairAddr, "Fee", []interface{}{})
	if err != nil {
		return 0, err
	}
	return is[0].(uint64), nil
}

// fetches the fee and the sorted reserves for a pair
func getFeeAndReserves(cc *types.ContractContext, factory, tokenA, tokenB common.Address) (common.Address, uint64, *big.Int, *big.Int, error) {
	pairAddr, reserveA, reserveB, err := getReserves(cc, factory, tokenA, tokenB)
	if err != nil {
		return ZeroAddress, uint64(0), nil, nil, err
	}
	fee, err := pairFee(cc, pairAddr)
	if err != nil {
		return ZeroAddress, uint64(0), nil, nil, err
	}
	return pairAddr, fee, reserveA, reserveB, nil
}

// performs chained GetAmountOut calculations on any number of pairs
func getAmountsOut(cc *types.ContractContext, factory common.Address, amountIn *big.Int, path []common.Address) ([]*big.Int, error) {
	if len(path) < 2 {
		return nil, errors.New("Router: INVALID_PATH")
	}
	if amountIn.Cmp(Zero) <= 0 {
		return nil, errors.New("Router: INSUFFICIENT_IN_AMOUNT")
	}

	amounts := make([]*big.Int, len(path))
	amounts[0] = amountIn
	for i := 0; i < len(path)-1; i++ {
		_, fee, reserveIn, reserveOut, err := getFeeAndReserves(cc, factory, path[i], path[i+1])
		if err != nil {
			return nil, err
		}
		am, err := pair.GetAmountOut(fee, amounts[i], reserveIn, reserveOut)
		if err != nil {
			return nil, err
		}
		amounts[i+1] = am
	}
	return amounts, nil
}

// performs chained GetAmountIn calculations on any number of pairs
func getAmountsIn(cc *types.ContractContext, factory common.Address, amountOut *big.Int, path []common.Address) ([]*big.Int, error) {
	if len(path) < 2 {
		return nil, errors.New("Router: INVALID_PATH")
	}
	if amountOut.Cmp(Zero) <= 0 {
		return nil, errors.New("Router: INSUFFICIENT_OUT_AMOUNT")
	}

	amounts := make([]*big.Int, len(path))
	amounts[len(amounts)-1] = amountOut
	for i := len(path) - 1; i > 0; i-- {
		_, fee, reserveIn, reserveOut, err := getFeeAndReserves(cc, factory, path[i-1], path[i])
		if err != nil {
			return nil, err
		}
		am, err := pair.GetAmountIn(fee, amounts[i], reserveIn, reserveOut)
		if err != nil {
			return nil, err
		}
		amounts[i-1] = am
	}
	return amounts, nil
}
