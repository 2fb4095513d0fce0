package position

import (
	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/core/types"

	. "github.com/coreswap/coreswap/contract/exchange/util"
)

func (cont *ManagerContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *ManagerContract
}

//////////////////////////////////////////////////
// Reader functions
//////////////////////////////////////////////////

func (f *front) PoolClassID(cc types.ContractLoader) uint64 {
	return f.cont.poolClassID(cc)
}

func (f *front) GetPool(cc types.ContractLoader, TokenA, TokenB common.Address, Fee uint64) common.Address {
	return f.cont.getPool(cc, TokenA, TokenB, Fee)
}

func (f *front) AllPools(cc types.ContractLoader) []common.Address {
	return f.cont.allPools(cc)
}

func (f *front) NextPositionID(cc types.ContractLoader) uint64 {
	return f.cont.nextPositionID(cc)
}

func (f *front) Positions(cc types.ContractLoader, PositionID uint64) (*Position, error) {
	return f.cont.position(cc, PositionID)
}

func (f *front) OwnerOf(cc types.ContractLoader, PositionID uint64) (common.Address, error) {
	return f.cont.ownerOf(cc, PositionID)
}

//////////////////////////////////////////////////
// Writer functions
//////////////////////////////////////////////////

func (f *front) CreatePoolIfNecessary(cc *types.ContractContext, TokenA, TokenB common.Address, Fee uint64) (common.Address, error) {
	return f.cont.createPoolIfNecessary(cc, TokenA, TokenB, Fee)
}

func (f *front) Mint(cc *types.ContractContext, To common.Address, TokenA, TokenB common.Address, Fee uint64, TickLower, TickUpper int64, AmountADesired, AmountBDesired, AmountAMin, AmountBMin *amount.Amount, Deadline uint64) (uint64, *amount.Amount, *amount.Amount, *amount.Amount, error) {
	id, liquidity, amount0, amount1, err := f.cont.mint(cc, To, TokenA, TokenB, Fee, TickLower, TickUpper, AmountADesired.Int, AmountBDesired.Int, AmountAMin.Int, AmountBMin.Int, Deadline)
	if err != nil {
		return 0, nil, nil, nil, err
	}
	return id, ToAmount(liquidity), ToAmount(amount0), ToAmount(amount1), nil
}

func (f *front) IncreaseLiquidity(cc *types.ContractContext, PositionID uint64, Amount0Desired, Amount1Desired, Amount0Min, Amount1Min *amount.Amount, Deadline uint64) (*amount.Amount, *amount.Amount, *amount.Amount, error) {
	liquidity, amount0, amount1, err := f.cont.increaseLiquidity(cc, PositionID, Amount0Desired.Int, Amount1Desired.Int, Amount0Min.Int, Amount1Min.Int, Deadline)
	if err != nil {
		return nil, nil, nil, err
	}
	return ToAmount(liquidity), ToAmount(amount0), ToAmount(amount1), nil
}

func (f *front) DecreaseLiquidity(cc *types.ContractContext, PositionID uint64, Liquidity, Amount0Min, Amount1Min *amount.Amount, Deadline uint64) (*amount.Amount, *amount.Amount, error) {
	amount0, amount1, err := f.cont.decreaseLiquidity(cc, PositionID, Liquidity.Int, Amount0Min.Int, Amount1Min.Int, Deadline)
	if err != nil {
		return nil, nil, err
	}
	return ToAmount(amount0), ToAmount(amount1), nil
}

func (f *front) Collect(cc *types.ContractContext, PositionID uint64, Recipient common.Address, Amount0Max, Amount1Max *amount.Amount) (*amount.Amount, *amount.Amount, error) {
	amount0, amount1, err := f.cont.collect(cc, PositionID, Recipient, Amount0Max.Int, Amount1Max.Int)
	if err != nil {
		return nil, nil, err
	}
	return ToAmount(amount0), ToAmount(amount1), nil
}

func (f *front) Burn(cc *types.ContractContext, PositionID uint64) error {
	return f.cont.burn(cc, PositionID)
}
