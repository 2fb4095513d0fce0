package clcore

import (
	"bytes"
	"math/big"
	"time"

	"github.com/pkg/errors"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/contract/core/custody"
	"github.com/coreswap/coreswap/contract/exchange/pair"
	"github.com/coreswap/coreswap/core/types"

	. "github.com/coreswap/coreswap/contract/exchange/util"
)

// CLCoreContract is the liquidity management facade over the ranged
// position manager. Positions minted through it are owned by the
// caller while the facade stays registered as the operator, so later
// decreases keep working without a fresh authorization.
type CLCoreContract struct {
	addr   common.Address
	master common.Address
}

func (cont *CLCoreContract) Address() common.Address {
	return cont.addr
}
func (cont *CLCoreContract) Master() common.Address {
	return cont.master
}
func (cont *CLCoreContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *CLCoreContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &CLCoreContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagManager}, data.Manager[:])
	cc.SetContractData([]byte{tagSwapRouter}, data.SwapRouter[:])
	return nil
}

func (cont *CLCoreContract) manager(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagManager}))
}
func (cont *CLCoreContract) swapRouter(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagSwapRouter}))
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

func (cont *CLCoreContract) checkOwner(cc *types.ContractContext, positionID uint64) error {
	is, err := cc.Exec(cc, cont.manager(cc), "OwnerOf", []interface{}{positionID})
	if err != nil {
		return err
	}
	if is[0].(common.Address) != cc.From() {
		return errors.New("Core: NOT_POSITION_OWNER")
	}
	return nil
}

// positionOf resolves the caller-facing handle of a holding. Ranged
// positions are identified by the id the manager minted.
func (cont *CLCoreContract) positionOf(cc *types.ContractContext, positionID uint64) (*custody.PositionRef, error) {
	if _, err := cc.Exec(cc, cont.manager(cc), "OwnerOf", []interface{}{positionID}); err != nil {
		return nil, err
	}
	return &custody.PositionRef{Kind: custody.RangedPosition, PositionID: positionID}, nil
}

func (cont *CLCoreContract) addLiquidity(
	cc *types.ContractContext,
	positionID uint64,
	tokenA, tokenB common.Address,
	fee uint64, tickLower, tickUpper int64,
	amountADesired, amountBDesired, amountAMin, amountBMin *big.Int,
	deadline uint64) (uint64, *big.Int, *big.Int, *big.Int, error) {

	if err := custody.GuardEnter(cc); err != nil {
		return 0, nil, nil, nil, err
	}
	defer custody.GuardExit(cc)

	if err := ensureAlive(cc, deadline); err != nil {
		return 0, nil, nil, nil, err
	}
	if tokenA == tokenB {
		return 0, nil, nil, nil, errors.New("Core: IDENTICAL_ADDRESSES")
	}

	if err := custody.Pull(cc, tokenA, cc.From(), amountADesired); err != nil {
		return 0, nil, nil, nil, err
	}
	if err := custody.Pull(cc, tokenB, cc.From(), amountBDesired); err != nil {
		return 0, nil, nil, nil, err
	}

	manager := cont.manager(cc)
	if err := custody.Approve(cc, tokenA, manager, amountADesired); err != nil {
		return 0, nil, nil, nil, err
	}
	if err := custody.Approve(cc, tokenB, manager, amountBDesired); err != nil {
		return 0, nil, nil, nil, err
	}

	token0, _, err := pair.SortTokens(tokenA, tokenB)
	if err != nil {
		return 0, nil, nil, nil, err
	}

	var liquidity, amount0, amount1 *big.Int
	if positionID == 0 {
		is, err := cc.Exec(cc, manager, "Mint", []interface{}{
			cc.From(), tokenA, tokenB, fee, tickLower, tickUpper,
			ToAmount(amountADesired), ToAmount(amountBDesired),
			ToAmount(amountAMin), ToAmount(amountBMin),
			deadline,
		})
		if err != nil {
			return 0, nil, nil, nil, err
		}
		positionID = is[0].(uint64)
		liquidity = is[1].(*amount.Amount).Int
		amount0 = is[2].(*amount.Amount).Int
		amount1 = is[3].(*amount.Amount).Int
	} else {
		if err := cont.checkOwner(cc, positionID); err != nil {
			return 0, nil, nil, nil, err
		}
		amount0Desired, amount1Desired := amountADesired, amountBDesired
		amount0Min, amount1Min := amountAMin, amountBMin
		if tokenA != token0 {
			amount0Desired, amount1Desired = amount1Desired, amount0Desired
			amount0Min, amount1Min = amount1Min, amount0Min
		}
		is, err := cc.Exec(cc, manager, "IncreaseLiquidity", []interface{}{
			positionID,
			ToAmount(amount0Desired), ToAmount(amount1Desired),
			ToAmount(amount0Min), ToAmount(amount1Min),
			deadline,
		})
		if err != nil {
			return 0, nil, nil, nil, err
		}
		liquidity = is[0].(*amount.Amount).Int
		amount0 = is[1].(*amount.Amount).Int
		amount1 = is[2].(*amount.Amount).Int
	}

	amountA, amountB := amount0, amount1
	if tokenA != token0 {
		amountA, amountB = amountB, amountA
	}

	if err := custody.ResetApproval(cc, tokenA, manager); err != nil {
		return 0, nil, nil, nil, err
	}
	if err := custody.ResetApproval(cc, tokenB, manager); err != nil {
		return 0, nil, nil, nil, err
	}
	if _, err := custody.Settle(cc, tokenA, cc.From()); err != nil {
		return 0, nil, nil, nil, err
	}
	if _, err := custody.Settle(cc, tokenB, cc.From()); err != nil {
		return 0, nil, nil, nil, err
	}

	cc.EmitEvent("LiquidityAdded", cc.From(), positionID, tokenA, tokenB, ToAmount(amountA), ToAmount(amountB), ToAmount(liquidity))
	return positionID, liquidity, amountA, amountB, nil
}

func (cont *CLCoreContract) removeLiquidity(
	cc *types.ContractContext,
	positionID uint64,
	liquidity, amount0Min, amount1Min *big.Int,
	deadline uint64) (*big.Int, *big.Int, error) {

	if err := custody.GuardEnter(cc); err != nil {
		return nil, nil, err
	}
	defer custody.GuardExit(cc)

	if err := ensureAlive(cc, deadline); err != nil {
		return nil, nil, err
	}
	if err := cont.checkOwner(cc, positionID); err != nil {
		return nil, nil, err
	}

	manager := cont.manager(cc)
	if _, err := cc.Exec(cc, manager, "DecreaseLiquidity", []interface{}{
		positionID,
		ToAmount(liquidity), ToAmount(amount0Min), ToAmount(amount1Min),
		deadline,
	}); err != nil {
		return nil, nil, err
	}

	// everything owed to the position goes straight to the owner
	is, err := cc.Exec(cc, manager, "Collect", []interface{}{
		positionID, cc.From(),
		ToAmount(MaxUint256), ToAmount(MaxUint256),
	})
	if err != nil {
		return nil, nil, err
	}
	amount0 := is[0].(*amount.Amount).Int
	amount1 := is[1].(*amount.Amount).Int

	cc.EmitEvent("LiquidityRemoved", cc.From(), positionID, ToAmount(amount0), ToAmount(amount1), ToAmount(liquidity))
	return amount0, amount1, nil
}

func (cont *CLCoreContract) collectFees(
	cc *types.ContractContext,
	positionID uint64,
	amount0Max, amount1Max *big.Int) (*big.Int, *big.Int, error) {

	if err := custody.GuardEnter(cc); err != nil {
		return nil, nil, err
	}
	defer custody.GuardExit(cc)

	if err := cont.checkOwner(cc, positionID); err != nil {
		return nil, nil, err
	}

	is, err := cc.Exec(cc, cont.manager(cc), "Collect", []interface{}{
		positionID, cc.From(),
		ToAmount(amount0Max), ToAmount(amount1Max),
	})
	if err != nil {
		return nil, nil, err
	}
	amount0 := is[0].(*amount.Amount).Int
	amount1 := is[1].(*amount.Amount).Int

	cc.EmitEvent("FeesCollected", cc.From(), positionID, ToAmount(amount0), ToAmount(amount1))
	return amount0, amount1, nil
}

func (cont *CLCoreContract) swapTokens(
	cc *types.ContractContext,
	tokenIn, tokenOut common.Address,
	fee uint64,
	amountIn, amountOutMin *big.Int,
	deadline uint64) (*big.Int, error) {

	if err := custody.GuardEnter(cc); err != nil {
		return nil, err
	}
	defer custody.GuardExit(cc)

	if err := ensureAlive(cc, deadline); err != nil {
		return nil, err
	}

	if err := custody.Pull(cc, tokenIn, cc.From(), amountIn); err != nil {
		return nil, err
	}
	swapRouter := cont.swapRouter(cc)
	if err := custody.Approve(cc, tokenIn, swapRouter, amountIn); err != nil {
		return nil, err
	}

	is, err := cc.Exec(cc, swapRouter, "ExactInputSingle", []interface{}{
		tokenIn, tokenOut, fee, cc.From(),
		ToAmount(amountIn), ToAmount(amountOutMin),
		deadline,
	})
	if err != nil {
		return nil, err
	}
	amountOut := is[0].(*amount.Amount).Int

	if err := custody.ResetApproval(cc, tokenIn, swapRouter); err != nil {
		return nil, err
	}
	if _, err := custody.Settle(cc, tokenIn, cc.From()); err != nil {
		return nil, err
	}

	cc.EmitEvent("Swapped", cc.From(), tokenIn, tokenOut, ToAmount(amountIn), ToAmount(amountOut))
	return amountOut, nil
}
