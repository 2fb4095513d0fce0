package router

import (
	"bytes"
	"math/big"
	"time"

	"github.com/pkg/errors"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/contract/exchange/pair"
	"github.com/coreswap/coreswap/core/types"

	. "github.com/coreswap/coreswap/contract/exchange/util"
)

type RouterContract struct {
	addr   common.Address
	master common.Address
}

func (cont *RouterContract) Address() common.Address {
	return cont.addr
}
func (cont *RouterContract) Master() common.Address {
	return cont.master
}
func (cont *RouterContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *RouterContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &RouterContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagFactory}, data.Factory[:])
	cc.SetContractData([]byte{tagWCoin}, data.WCoin[:])
	return nil
}

func (cont *RouterContract) factory(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagFactory}))
}

func (cont *RouterContract) wcoin(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagWCoin}))
}

// ensure rejects the call once the deadline (unix seconds) has passed.
// A zero deadline disables the check.
func ensure(cc *types.ContractContext, deadline uint64) error {
	if deadline == 0 {
		return nil
	}
	if cc.LastTimestamp()/uint64(time.Second) > deadline {
		return errors.New("Router: EXPIRED")
	}
	return nil
}

// createPairIfNecessary deploys the pair when it does not exist yet
func (cont *RouterContract) createPairIfNecessary(cc *types.ContractContext, tokenA, tokenB common.Address) error {
	factory := cont.factory(cc)
	is, err := cc.Exec(cc, factory, "GetPair", []interface{}{tokenA, tokenB})
	if err != nil {
		return err
	}
	if is[0].(common.Address) != ZeroAddress {
		return nil
	}
	_, err = cc.Exec(cc, factory, "CreatePair", []interface{}{tokenA, tokenB, "CoreSwap Pair Token", "CPT", uint64(pair.DEFAULT_FEE)})
	return err
}

func (cont *RouterContract) _addLiquidity(
	cc *types.ContractContext,
	tokenA, tokenB common.Address,
	amountADesired, amountBDesired, amountAMin, amountBMin *big.Int) (common.Address, *big.Int, *big.Int, error) {

	if amountADesired.Cmp(Zero) <= 0 {
		return ZeroAddress, nil, nil, errors.New("Router: INSUFFICIENT_A_AMOUNT")
	}
	if amountBDesired.Cmp(Zero) <= 0 {
		return ZeroAddress, nil, nil, errors.New("Router: INSUFFICIENT_B_AMOUNT")
	}

	if err := cont.createPairIfNecessary(cc, tokenA, tokenB); err != nil {
		return ZeroAddress, nil, nil, err
	}

	factory := cont.factory(cc)
	pairAddr, reserveA, reserveB, err := getReserves(cc, factory, tokenA, tokenB)
	if err != nil {
		return ZeroAddress, nil, nil, err
	}

	var amountA, amountB *big.Int
	if reserveA.Cmp(Zero) == 0 && reserveB.Cmp(Zero) == 0 {
		amountA, amountB = amountADesired, amountBDesired
	} else {
		amountBOptimal, err := pair.Quote(amountADesired, reserveA, reserveB)
		if err != nil {
			return ZeroAddress, nil, nil, err
		}
		if amountBOptimal.Cmp(amountBDesired) <= 0 {
			if !(amountBOptimal.Cmp(amountBMin) >= 0) {
				return ZeroAddress, nil, nil, errors.New("Router: INSUFFICIENT_B_AMOUNT")
			}
			amountA, amountB = amountADesired, amountBOptimal
		} else {
			amountAOptimal, err := pair.Quote(amountBDesired, reserveB, reserveA)
			if err != nil {
				return ZeroAddress, nil, nil, err
			}
			if !(amountAOptimal.Cmp(amountADesired) <= 0) {
				return ZeroAddress, nil, nil, errors.New("Router: INSUFFICIENT_OUTPUT_AMOUNT")
			}
			if !(amountAOptimal.Cmp(amountAMin) >= 0) {
				return ZeroAddress, nil, nil, errors.New("Router: INSUFFICIENT_A_AMOUNT")
			}
			amountA, amountB = amountAOptimal, amountBDesired
		}
	}
	return pairAddr, amountA, amountB, nil
}

func (cont *RouterContract) addLiquidity(
	cc *types.ContractContext,
	tokenA, tokenB common.Address,
	amountADesired, amountBDesired, amountAMin, amountBMin *big.Int,
	to common.Address, deadline uint64) (*big.Int, *big.Int, *big.Int, common.Address, error) {

	if err := ensure(cc, deadline); err != nil {
		return nil, nil, nil, ZeroAddress, err
	}

	pairAddr, amountA, amountB, err := cont._addLiquidity(cc, tokenA, tokenB, amountADesired, amountBDesired, amountAMin, amountBMin)
	if err != nil {
		return nil, nil, nil, ZeroAddress, err
	}

	if err := SafeTransferFrom(cc, tokenA, cc.From(), pairAddr, amountA); err != nil {
		return nil, nil, nil, ZeroAddress, err
	}
	if err := SafeTransferFrom(cc, tokenB, cc.From(), pairAddr, amountB); err != nil {
		return nil, nil, nil, ZeroAddress, err
	}

	is, err := cc.Exec(cc, pairAddr, "Mint", []interface{}{to})
	if err != nil {
		return nil, nil, nil, ZeroAddress, err
	}
	liquidity := is[0].(*amount.Amount).Int

	return amountA, amountB, liquidity, pairAddr, nil
}

func (cont *RouterContract) addLiquidityCoin(
	cc *types.ContractContext,
	token common.Address,
	amountTokenDesired, amountTokenMin, amountCoinMin *big.Int,
	to common.Address, deadline uint64) (*big.Int, *big.Int, *big.Int, common.Address, error) {

	if err := ensure(cc, deadline); err != nil {
		return nil, nil, nil, ZeroAddress, err
	}

	wcoin := cont.wcoin(cc)
	value := cc.Value().Int
	pairAddr, amountToken, amountCoin, err := cont._addLiquidity(cc, token, wcoin, amountTokenDesired, value, amountTokenMin, amountCoinMin)
	if err != nil {
		return nil, nil, nil, ZeroAddress, err
	}

	if err := SafeTransferFrom(cc, token, cc.From(), pairAddr, amountToken); err != nil {
		return nil, nil, nil, ZeroAddress, err
	}
	if err := WCoinDeposit(cc, wcoin, amountCoin); err != nil {
		return nil, nil, nil, ZeroAddress, err
	}
	if err := SafeTransfer(cc, wcoin, pairAddr, amountCoin); err != nil {
		return nil, nil, nil, ZeroAddress, err
	}

	is, err := cc.Exec(cc, pairAddr, "Mint", []interface{}{to})
	if err != nil {
		return nil, nil, nil, ZeroAddress, err
	}
	liquidity := is[0].(*amount.Amount).Int

	// refund the unconsumed coin
	if rest := Sub(value, amountCoin); rest.Cmp(Zero) > 0 {
		if err := cc.SendCoin(cc.From(), ToAmount(rest)); err != nil {
			return nil, nil, nil, ZeroAddress, err
		}
	}
	return amountToken, amountCoin, liquidity, pairAddr, nil
}

func (cont *RouterContract) removeLiquidity(
	cc *types.ContractContext,
	tokenA, tokenB common.Address,
	liquidity, amountAMin, amountBMin *big.Int,
	to common.Address, deadline uint64) (*big.Int, *big.Int, error) {

	if err := ensure(cc, deadline); err != nil {
		return nil, nil, err
	}
	if liquidity.Cmp(Zero) <= 0 {
		return nil, nil, errors.New("Router: INSUFFICIENT_LIQUIDITY")
	}

	factory := cont.factory(cc)
	pairAddr, err := pair.PairFor(factory, tokenA, tokenB)
	if err != nil {
		return nil, nil, err
	}

	if err := SafeTransferFrom(cc, pairAddr, cc.From(), pairAddr, liquidity); err != nil {
		return nil, nil, err
	}

	is, err := cc.Exec(cc, pairAddr, "Burn", []interface{}{to})
	if err != nil {
		return nil, nil, err
	}
	amount0 := is[0].(*amount.Amount).Int
	amount1 := is[1].(*amount.Amount).Int

	token0, _, err := pair.SortTokens(tokenA, tokenB)
	if err != nil {
		return nil, nil, err
	}
	var amountA, amountB *big.Int
	if tokenA == token0 {
		amountA, amountB = amount0, amount1
	} else {
		amountA, amountB = amount1, amount0
	}
	if !(amountA.Cmp(amountAMin) >= 0) {
		return nil, nil, errors.New("Router: INSUFFICIENT_A_AMOUNT")
	}
	if !(amountB.Cmp(amountBMin) >= 0) {
		return nil, nil, errors.New("Router: INSUFFICIENT_B_AMOUNT")
	}
	return amountA, amountB, nil
}

func (cont *RouterContract) removeLiquidityCoin(
	cc *types.ContractContext,
	token common.Address,
	liquidity, amountTokenMin, amountCoinMin *big.Int,
	to common.Address, deadline uint64) (*big.Int, *big.Int, error) {

	wcoin := cont.wcoin(cc)
	amountToken, amountCoin, err := cont.removeLiquidity(cc, token, wcoin, liquidity, amountTokenMin, amountCoinMin, cont.addr, deadline)
	if err != nil {
		return nil, nil, err
	}
	if err := SafeTransfer(cc, token, to, amountToken); err != nil {
		return nil, nil, err
	}
	if err := WCoinWithdraw(cc, wcoin, amountCoin); err != nil {
		return nil, nil, err
	}
	if err := cc.SendCoin(to, ToAmount(amountCoin)); err != nil {
		return nil, nil, err
	}
	return amountToken, amountCoin, nil
}

func (cont *RouterContract) _swap(cc *types.ContractContext, amounts []*big.Int, path []common.Address, _to common.Address) error {
	factory := cont.factory(cc)
	for i := 0; i < len(path)-1; i++ {
		input, output := path[i], path[i+1]
		var to common.Address
		if i < len(path)-2 {
			var err error
			to, err = pair.PairFor(factory, output, path[i+2])
			if err != nil {
				return err
			}
		} else {
			to = _to
		}
		pairAddr, err := pair.PairFor(factory, input, output)
		if err != nil {
			return err
		}

		token0, _, err := pair.SortTokens(input, output)
		if err != nil {
			return err
		}
		amountOut := amounts[i+1]
		var amount0Out, amount1Out *big.Int
		if input == token0 {
			amount0Out, amount1Out = big.NewInt(0), amountOut
		} else {
			amount0Out, amount1Out = amountOut, big.NewInt(0)
		}

		if _, err := cc.Exec(cc, pairAddr, "Swap", []interface{}{ToAmount(amount0Out), ToAmount(amount1Out), to}); err != nil {
			return err
		}
	}
	return nil
}

func (cont *RouterContract) swapExactTokensForTokens(
	cc *types.ContractContext,
	amountIn, amountOutMin *big.Int,
	path []common.Address,
	to common.Address, deadline uint64) ([]*big.Int, error) {

	if err := ensure(cc, deadline); err != nil {
		return nil, err
	}
	if amountIn.Cmp(Zero) <= 0 {
		return nil, errors.New("Router: INSUFFICIENT_SWAP_AMOUNT")
	}

	factory := cont.factory(cc)
	amounts, err := getAmountsOut(cc, factory, amountIn, path)
	if err != nil {
		return nil, err
	}
	if !(amounts[len(amounts)-1].Cmp(amountOutMin) >= 0) {
		return nil, errors.New("Router: INSUFFICIENT_OUTPUT_AMOUNT")
	}

	pairAddr, err := pair.PairFor(factory, path[0], path[1])
	if err != nil {
		return nil, err
	}
	if err := SafeTransferFrom(cc, path[0], cc.From(), pairAddr, amounts[0]); err != nil {
		return nil, err
	}
	if err := cont._swap(cc, amounts, path, to); err != nil {
		return nil, err
	}
	return amounts, nil
}

func (cont *RouterContract) swapTokensForExactTokens(
	cc *types.ContractContext,
	amountOut, amountInMax *big.Int,
	path []common.Address,
	to common.Address, deadline uint64) ([]*big.Int, error) {

	if err := ensure(cc, deadline); err != nil {
		return nil, err
	}
	if amountOut.Cmp(Zero) <= 0 {
		return nil, errors.New("Router: INSUFFICIENT_SWAP_AMOUNT")
	}

	factory := cont.factory(cc)
	amounts, err := getAmountsIn(cc, factory, amountOut, path)
	if err != nil {
		return nil, err
	}
	if !(amounts[0].Cmp(amountInMax) <= 0) {
		return nil, errors.New("Router: EXCESSIVE_INPUT_AMOUNT")
	}

	pairAddr, err := pair.PairFor(factory, path[0], path[1])
	if err != nil {
		return nil, err
	}
	if err := SafeTransferFrom(cc, path[0], cc.From(), pairAddr, amounts[0]); err != nil {
		return nil, err
	}
	if err := cont._swap(cc, amounts, path, to); err != nil {
		return nil, err
	}
	return amounts, nil
}

func (cont *RouterContract) swapExactCoinForTokens(
	cc *types.ContractContext,
	amountOutMin *big.Int,
	path []common.Address,
	to common.Address, deadline uint64) ([]*big.Int, error) {

	if err := ensure(cc, deadline); err != nil {
		return nil, err
	}

	wcoin := cont.wcoin(cc)
	if len(path) < 2 || path[0] != wcoin {
		return nil, errors.New("Router: INVALID_PATH")
	}
	amountIn := cc.Value().Int
	if amountIn.Cmp(Zero) <= 0 {
		return nil, errors.New("Router: INSUFFICIENT_SWAP_AMOUNT")
	}

	factory := cont.factory(cc)
	amounts, err := getAmountsOut(cc, factory, amountIn, path)
	if err != nil {
		return nil, err
	}
	if !(amounts[len(amounts)-1].Cmp(amountOutMin) >= 0) {
		return nil, errors.New("Router: INSUFFICIENT_OUTPUT_AMOUNT")
	}

	if err := WCoinDeposit(cc, wcoin, amounts[0]); err != nil {
		return nil, err
	}
	pairAddr, err := pair.PairFor(factory, path[0], path[1])
	if err != nil {
		return nil, err
	}
	if err := SafeTransfer(cc, wcoin, pairAddr, amounts[0]); err != nil {
		return nil, err
	}
	if err := cont._swap(cc, amounts, path, to); err != nil {
		return nil, err
	}
	return amounts, nil
}

func (cont *RouterContract) swapTokensForExactCoin(
	cc *types.ContractContext,
	amountOut, amountInMax *big.Int,
	path []common.Address,
	to common.Address, deadline uint64) ([]*big.Int, error) {

	if err := ensure(cc, deadline); err != nil {
		return nil, err
	}

	wcoin := cont.wcoin(cc)
	if len(path) < 2 || path[len(path)-1] != wcoin {
		return nil, errors.New("Router: INVALID_PATH")
	}
	if amountOut.Cmp(Zero) <= 0 {
		return nil, errors.New("Router: INSUFFICIENT_SWAP_AMOUNT")
	}

	factory := cont.factory(cc)
	amounts, err := getAmountsIn(cc, factory, amountOut, path)
	if err != nil {
		return nil, err
	}
	if !(amounts[0].Cmp(amountInMax) <= 0) {
		return nil, errors.New("Router: EXCESSIVE_INPUT_AMOUNT")
	}

	pairAddr, err := pair.PairFor(factory, path[0], path[1])
	if err != nil {
		return nil, err
	}
	if err := SafeTransferFrom(cc, path[0], cc.From(), pairAddr, amounts[0]); err != nil {
		return nil, err
	}
	if err := cont._swap(cc, amounts, path, cont.addr); err != nil {
		return nil, err
	}

	last := amounts[len(amounts)-1]
	if err := WCoinWithdraw(cc, wcoin, last); err != nil {
		return nil, err
	}
	if err := cc.SendCoin(to, ToAmount(last)); err != nil {
		return nil, err
	}
	return amounts, nil
}
