package unicore

import (
	"bytes"
	"math/big"
	"time"

	"github.com/pkg/errors"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/contract/core/custody"
	"github.com/coreswap/coreswap/core/types"

	. "github.com/coreswap/coreswap/contract/exchange/util"
)

// CoreContract is the liquidity management facade over the constant
// product exchange. It holds no funds between operations: everything
// pulled in is consumed or settled back before the call returns.
type CoreContract struct {
	addr   common.Address
	master common.Address
}

func (cont *CoreContract) Address() common.Address {
	return cont.addr
}
func (cont *CoreContract) Master() common.Address {
	return cont.master
}
func (cont *CoreContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *CoreContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &CoreContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagRouter}, data.Router[:])
	cc.SetContractData([]byte{tagFactory}, data.Factory[:])
	cc.SetContractData([]byte{tagWCoin}, data.WCoin[:])
	return nil
}

func (cont *CoreContract) router(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagRouter}))
}
func (cont *CoreContract) factory(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagFactory}))
}
func (cont *CoreContract) wcoin(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagWCoin}))
}

func ensureAlive(cc *types.ContractContext, deadline uint64) error {
	if deadline == 0 {
		return nil
	}
	if cc.LastTimestamp()/uint64(time.Second) > deadline {
		return errors.New("Core: EXPIRED")
	}
	return nil
}

func checkPair(tokenA, tokenB common.Address) error {
	if tokenA == tokenB {
		return errors.New("Core: IDENTICAL_ADDRESSES")
	}
	return nil
}

// positionOf resolves the caller-facing handle of a holding. Pair
// shares are fungible so the reference is the pair itself.
func (cont *CoreContract) positionOf(cc *types.ContractContext, tokenA, tokenB common.Address) (*custody.PositionRef, error) {
	if err := checkPair(tokenA, tokenB); err != nil {
		return nil, err
	}
	pairAddr, err := cont.pairAddress(cc, tokenA, tokenB)
	if err != nil {
		return nil, err
	}
	return &custody.PositionRef{Kind: custody.FungibleShare, Pair: pairAddr}, nil
}

func (cont *CoreContract) pairAddress(cc *types.ContractContext, tokenA, tokenB common.Address) (common.Address, error) {
	is, err := cc.Exec(cc, cont.factory(cc), "GetPair", []interface{}{tokenA, tokenB})
	if err != nil {
		return ZeroAddress, err
	}
	pairAddr := is[0].(common.Address)
	if pairAddr == ZeroAddress {
		return ZeroAddress, errors.New("Core: POOL_NOT_INITIALIZED")
	}
	return pairAddr, nil
}

//////////////////////////////////////////////////
// CoreContract : liquidity functions
//////////////////////////////////////////////////

func (cont *CoreContract) addLiquidity(
	cc *types.ContractContext,
	tokenA, tokenB common.Address,
	amountADesired, amountBDesired, amountAMin, amountBMin *big.Int,
	deadline uint64) (*big.Int, *big.Int, *big.Int, error) {

	if err := custody.GuardEnter(cc); err != nil {
		return nil, nil, nil, err
	}
	defer custody.GuardExit(cc)

	if err := ensureAlive(cc, deadline); err != nil {
		return nil, nil, nil, err
	}
	if err := checkPair(tokenA, tokenB); err != nil {
		return nil, nil, nil, err
	}

	if err := custody.Pull(cc, tokenA, cc.From(), amountADesired); err != nil {
		return nil, nil, nil, err
	}
	if err := custody.Pull(cc, tokenB, cc.From(), amountBDesired); err != nil {
		return nil, nil, nil, err
	}

	router := cont.router(cc)
	if err := custody.Approve(cc, tokenA, router, amountADesired); err != nil {
		return nil, nil, nil, err
	}
	if err := custody.Approve(cc, tokenB, router, amountBDesired); err != nil {
		return nil, nil, nil, err
	}

	is, err := cc.Exec(cc, router, "AddLiquidity", []interface{}{
		tokenA, tokenB,
		ToAmount(amountADesired), ToAmount(amountBDesired),
		ToAmount(amountAMin), ToAmount(amountBMin),
		cc.From(), deadline,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	amountA := is[0].(*amount.Amount).Int
	amountB := is[1].(*amount.Amount).Int
	liquidity := is[2].(*amount.Amount).Int

	if err := custody.ResetApproval(cc, tokenA, router); err != nil {
		return nil, nil, nil, err
	}
	if err := custody.ResetApproval(cc, tokenB, router); err != nil {
		return nil, nil, nil, err
	}
	if _, err := custody.Settle(cc, tokenA, cc.From()); err != nil {
		return nil, nil, nil, err
	}
	if _, err := custody.Settle(cc, tokenB, cc.From()); err != nil {
		return nil, nil, nil, err
	}

	cc.EmitEvent("LiquidityAdded", cc.From(), tokenA, tokenB, ToAmount(amountA), ToAmount(amountB), ToAmount(liquidity))
	return amountA, amountB, liquidity, nil
}

func (cont *CoreContract) addLiquidityCoin(
	cc *types.ContractContext,
	token common.Address,
	amountTokenDesired, amountTokenMin, amountCoinMin *big.Int,
	deadline uint64) (*big.Int, *big.Int, *big.Int, error) {

	if err := custody.GuardEnter(cc); err != nil {
		return nil, nil, nil, err
	}
	defer custody.GuardExit(cc)

	if err := ensureAlive(cc, deadline); err != nil {
		return nil, nil, nil, err
	}
	value, err := custody.PullCoin(cc)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := custody.Pull(cc, token, cc.From(), amountTokenDesired); err != nil {
		return nil, nil, nil, err
	}
	router := cont.router(cc)
	if err := custody.Approve(cc, token, router, amountTokenDesired); err != nil {
		return nil, nil, nil, err
	}

	is, err := cc.ExecValue(cc, router, ToAmount(value), "AddLiquidityCoin", []interface{}{
		token,
		ToAmount(amountTokenDesired), ToAmount(amountTokenMin), ToAmount(amountCoinMin),
		cc.From(), deadline,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	amountToken := is[0].(*amount.Amount).Int
	amountCoin := is[1].(*amount.Amount).Int
	liquidity := is[2].(*amount.Amount).Int

	if err := custody.ResetApproval(cc, token, router); err != nil {
		return nil, nil, nil, err
	}
	if _, err := custody.Settle(cc, token, cc.From()); err != nil {
		return nil, nil, nil, err
	}
	if _, err := custody.SettleCoin(cc, cc.From()); err != nil {
		return nil, nil, nil, err
	}

	cc.EmitEvent("LiquidityAdded", cc.From(), token, cont.wcoin(cc), ToAmount(amountToken), ToAmount(amountCoin), ToAmount(liquidity))
	return amountToken, amountCoin, liquidity, nil
}

func (cont *CoreContract) removeLiquidity(
	cc *types.ContractContext,
	tokenA, tokenB common.Address,
	liquidity, amountAMin, amountBMin *big.Int,
	deadline uint64) (*big.Int, *big.Int, error) {

	if err := custody.GuardEnter(cc); err != nil {
		return nil, nil, err
	}
	defer custody.GuardExit(cc)

	if err := ensureAlive(cc, deadline); err != nil {
		return nil, nil, err
	}
	if err := checkPair(tokenA, tokenB); err != nil {
		return nil, nil, err
	}

	pairAddr, err := cont.pairAddress(cc, tokenA, tokenB)
	if err != nil {
		return nil, nil, err
	}

	if err := custody.Pull(cc, pairAddr, cc.From(), liquidity); err != nil {
		return nil, nil, err
	}
	router := cont.router(cc)
	if err := custody.Approve(cc, pairAddr, router, liquidity); err != nil {
		return nil, nil, err
	}

	is, err := cc.Exec(cc, router, "RemoveLiquidity", []interface{}{
		tokenA, tokenB,
		ToAmount(liquidity), ToAmount(amountAMin), ToAmount(amountBMin),
		cc.From(), deadline,
	})
	if err != nil {
		return nil, nil, err
	}
	amountA := is[0].(*amount.Amount).Int
	amountB := is[1].(*amount.Amount).Int

	if err := custody.ResetApproval(cc, pairAddr, router); err != nil {
		return nil, nil, err
	}
	if _, err := custody.Settle(cc, pairAddr, cc.From()); err != nil {
		return nil, nil, err
	}

	cc.EmitEvent("LiquidityRemoved", cc.From(), tokenA, tokenB, ToAmount(amountA), ToAmount(amountB), ToAmount(liquidity))
	return amountA, amountB, nil
}

func (cont *CoreContract) removeLiquidityCoin(
	cc *types.ContractContext,
	token common.Address,
	liquidity, amountTokenMin, amountCoinMin *big.Int,
	deadline uint64) (*big.Int, *big.Int, error) {

	if err := custody.GuardEnter(cc); err != nil {
		return nil, nil, err
	}
	defer custody.GuardExit(cc)

	if err := ensureAlive(cc, deadline); err != nil {
		return nil, nil, err
	}

	wcoin := cont.wcoin(cc)
	pairAddr, err := cont.pairAddress(cc, token, wcoin)
	if err != nil {
		return nil, nil, err
	}

	if err := custody.Pull(cc, pairAddr, cc.From(), liquidity); err != nil {
		return nil, nil, err
	}
	router := cont.router(cc)
	if err := custody.Approve(cc, pairAddr, router, liquidity); err != nil {
		return nil, nil, err
	}

	is, err := cc.Exec(cc, router, "RemoveLiquidityCoin", []interface{}{
		token,
		ToAmount(liquidity), ToAmount(amountTokenMin), ToAmount(amountCoinMin),
		cc.From(), deadline,
	})
	if err != nil {
		return nil, nil, err
	}
	amountToken := is[0].(*amount.Amount).Int
	amountCoin := is[1].(*amount.Amount).Int

	if err := custody.ResetApproval(cc, pairAddr, router); err != nil {
		return nil, nil, err
	}
	if _, err := custody.Settle(cc, pairAddr, cc.From()); err != nil {
		return nil, nil, err
	}

	cc.EmitEvent("LiquidityRemoved", cc.From(), token, wcoin, ToAmount(amountToken), ToAmount(amountCoin), ToAmount(liquidity))
	return amountToken, amountCoin, nil
}

//////////////////////////////////////////////////
// CoreContract : swap functions
//////////////////////////////////////////////////

func (cont *CoreContract) swapExactTokensForTokens(
	cc *types.ContractContext,
	amountIn, amountOutMin *big.Int,
	path []common.Address,
	deadline uint64) ([]*big.Int, error) {

	if err := custody.GuardEnter(cc); err != nil {
		return nil, err
	}
	defer custody.GuardExit(cc)

	if err := ensureAlive(cc, deadline); err != nil {
		return nil, err
	}
	if len(path) < 2 {
		return nil, errors.New("Core: INVALID_PATH")
	}

	if err := custody.Pull(cc, path[0], cc.From(), amountIn); err != nil {
		return nil, err
	}
	router := cont.router(cc)
	if err := custody.Approve(cc, path[0], router, amountIn); err != nil {
		return nil, err
	}

	is, err := cc.Exec(cc, router, "SwapExactTokensForTokens", []interface{}{
		ToAmount(amountIn), ToAmount(amountOutMin), path, cc.From(), deadline,
	})
	if err != nil {
		return nil, err
	}
	amounts := ToBigInts(is[0].([]*amount.Amount))

	if err := custody.ResetApproval(cc, path[0], router); err != nil {
		return nil, err
	}
	if _, err := custody.Settle(cc, path[0], cc.From()); err != nil {
		return nil, err
	}

	cc.EmitEvent("Swapped", cc.From(), path[0], path[len(path)-1], ToAmount(amounts[0]), ToAmount(amounts[len(amounts)-1]))
	return amounts, nil
}

func (cont *CoreContract) swapTokensForExactTokens(
	cc *types.ContractContext,
	amountOut, amountInMax *big.Int,
	path []common.Address,
	deadline uint64) ([]*big.Int, error) {

	if err := custody.GuardEnter(cc); err != nil {
		return nil, err
	}
	defer custody.GuardExit(cc)

	if err := ensureAlive(cc, deadline); err != nil {
		return nil, err
	}
	if len(path) < 2 {
		return nil, errors.New("Core: INVALID_PATH")
	}

	if err := custody.Pull(cc, path[0], cc.From(), amountInMax); err != nil {
		return nil, err
	}
	router := cont.router(cc)
	if err := custody.Approve(cc, path[0], router, amountInMax); err != nil {
		return nil, err
	}

	is, err := cc.Exec(cc, router, "SwapTokensForExactTokens", []interface{}{
		ToAmount(amountOut), ToAmount(amountInMax), path, cc.From(), deadline,
	})
	if err != nil {
		return nil, err
	}
	amounts := ToBigInts(is[0].([]*amount.Amount))

	if err := custody.ResetApproval(cc, path[0], router); err != nil {
		return nil, err
	}
	// the unconsumed input flows back to the caller
	if _, err := custody.Settle(cc, path[0], cc.From()); err != nil {
		return nil, err
	}

	cc.EmitEvent("Swapped", cc.From(), path[0], path[len(path)-1], ToAmount(amounts[0]), ToAmount(amounts[len(amounts)-1]))
	return amounts, nil
}

func (cont *CoreContract) swapExactCoinForTokens(
	cc *types.ContractContext,
	amountOutMin *big.Int,
	path []common.Address,
	deadline uint64) ([]*big.Int, error) {

	if err := custody.GuardEnter(cc); err != nil {
		return nil, err
	}
	defer custody.GuardExit(cc)

	if err := ensureAlive(cc, deadline); err != nil {
		return nil, err
	}
	value, err := custody.PullCoin(cc)
	if err != nil {
		return nil, err
	}

	router := cont.router(cc)
	is, err := cc.ExecValue(cc, router, ToAmount(value), "SwapExactCoinForTokens", []interface{}{
		ToAmount(amountOutMin), path, cc.From(), deadline,
	})
	if err != nil {
		return nil, err
	}
	amounts := ToBigInts(is[0].([]*amount.Amount))

	if _, err := custody.SettleCoin(cc, cc.From()); err != nil {
		return nil, err
	}

	cc.EmitEvent("Swapped", cc.From(), path[0], path[len(path)-1], ToAmount(amounts[0]), ToAmount(amounts[len(amounts)-1]))
	return amounts, nil
}

func (cont *CoreContract) swapTokensForExactCoin(
	cc *types.ContractContext,
	amountOut, amountInMax *big.Int,
	path []common.Address,
	deadline uint64) ([]*big.Int, error) {

	if err := custody.GuardEnter(cc); err != nil {
		return nil, err
	}
	defer custody.GuardExit(cc)

	if err := ensureAlive(cc, deadline); err != nil {
		return nil, err
	}
	if len(path) < 2 {
		return nil, errors.New("Core: INVALID_PATH")
	}

	if err := custody.Pull(cc, path[0], cc.From(), amountInMax); err != nil {
		return nil, err
	}
	router := cont.router(cc)
	if err := custody.Approve(cc, path[0], router, amountInMax); err != nil {
		return nil, err
	}

	is, err := cc.Exec(cc, router, "SwapTokensForExactCoin", []interface{}{
		ToAmount(amountOut), ToAmount(amountInMax), path, cc.From(), deadline,
	})
	if err != nil {
		return nil, err
	}
	amounts := ToBigInts(is[0].([]*amount.Amount))

	if err := custody.ResetApproval(cc, path[0], router); err != nil {
		return nil, err
	}
	if _, err := custody.Settle(cc, path[0], cc.From()); err != nil {
		return nil, err
	}

	cc.EmitEvent("Swapped", cc.From(), path[0], path[len(path)-1], ToAmount(amounts[0]), ToAmount(amounts[len(amounts)-1]))
	return amounts, nil
}
