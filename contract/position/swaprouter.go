package position

import (
	"bytes"
	"math/big"

	"github.com/pkg/errors"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/contract/exchange/pair"
	"github.com/coreswap/coreswap/core/types"

	. "github.com/coreswap/coreswap/contract/exchange/util"
)

// SwapRouterContract swaps through the pools of a position manager
type SwapRouterContract struct {
	addr   common.Address
	master common.Address
}

func (cont *SwapRouterContract) Address() common.Address {
	return cont.addr
}
func (cont *SwapRouterContract) Master() common.Address {
	return cont.master
}
func (cont *SwapRouterContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *SwapRouterContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &SwapRouterContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagManager}, data.Manager[:])
	return nil
}

func (cont *SwapRouterContract) manager(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagManager}))
}

func (cont *SwapRouterContract) exactInputSingle(
	cc *types.ContractContext,
	tokenIn, tokenOut common.Address,
	fee uint64,
	recipient common.Address,
	amountIn, amountOutMin *big.Int,
	deadline uint64) (*big.Int, error) {

	if err := ensure(cc, deadline); err != nil {
		return nil, err
	}
	if amountIn.Cmp(Zero) <= 0 {
		return nil, errors.New("SwapRouter: INSUFFICIENT_SWAP_AMOUNT")
	}

	manager := cont.manager(cc)
	is, err := cc.Exec(cc, manager, "GetPool", []interface{}{tokenIn, tokenOut, fee})
	if err != nil {
		return nil, err
	}
	pool := is[0].(common.Address)
	if pool == ZeroAddress {
		return nil, errors.New("SwapRouter: POOL_NOT_INITIALIZED")
	}

	is, err = cc.Exec(cc, pool, "Reserves", []interface{}{})
	if err != nil {
		return nil, err
	}
	reserve0 := is[0].([]*amount.Amount)[0].Int
	reserve1 := is[0].([]*amount.Amount)[1].Int

	token0, _, err := pair.SortTokens(tokenIn, tokenOut)
	if err != nil {
		return nil, err
	}
	reserveIn, reserveOut := reserve0, reserve1
	if tokenIn != token0 {
		reserveIn, reserveOut = reserve1, reserve0
	}

	amountOut, err := pair.GetAmountOut(fee*feeTierScale, amountIn, reserveIn, reserveOut)
	if err != nil {
		return nil, err
	}
	if !(amountOut.Cmp(amountOutMin) >= 0) {
		return nil, errors.New("SwapRouter: INSUFFICIENT_OUTPUT_AMOUNT")
	}

	if err := SafeTransferFrom(cc, tokenIn, cc.From(), pool, amountIn); err != nil {
		return nil, err
	}

	var amount0Out, amount1Out *big.Int
	if tokenIn == token0 {
		amount0Out, amount1Out = big.NewInt(0), amountOut
	} else {
		amount0Out, amount1Out = amountOut, big.NewInt(0)
	}
	if _, err := cc.Exec(cc, pool, "Swap", []interface{}{ToAmount(amount0Out), ToAmount(amount1Out), recipient}); err != nil {
		return nil, err
	}
	return amountOut, nil
}
