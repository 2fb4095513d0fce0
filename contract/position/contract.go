package position

import (
	"bytes"
	"math/big"
	"time"

	"github.com/pkg/errors"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/common/bin"
	"github.com/coreswap/coreswap/contract/exchange/pair"
	"github.com/coreswap/coreswap/core/types"

	. "github.com/coreswap/coreswap/contract/exchange/util"
)

// ManagerContract tracks ranged liquidity positions and owns the
// liquidity shares of every pool it deploys
type ManagerContract struct {
	addr   common.Address
	master common.Address
}

func (cont *ManagerContract) Address() common.Address {
	return cont.addr
}
func (cont *ManagerContract) Master() common.Address {
	return cont.master
}
func (cont *ManagerContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *ManagerContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &ManagerContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagPoolClassID}, bin.Uint64Bytes(data.PoolClassID))
	return nil
}

func ensure(cc *types.ContractContext, deadline uint64) error {
	if deadline == 0 {
		return nil
	}
	if cc.LastTimestamp()/uint64(time.Second) > deadline {
		return errors.New("Position: EXPIRED")
	}
	return nil
}

//////////////////////////////////////////////////
// ManagerContract : reader functions
//////////////////////////////////////////////////

func (cont *ManagerContract) poolClassID(cc types.ContractLoader) uint64 {
	return bin.Uint64(cc.ContractData([]byte{tagPoolClassID}))
}

func (cont *ManagerContract) getPool(cc types.ContractLoader, tokenA, tokenB common.Address, fee uint64) common.Address {
	token0, token1, err := pair.SortTokens(tokenA, tokenB)
	if err != nil {
		return ZeroAddress
	}
	bs := cc.ContractData(makePoolKey(token0, token1, fee))
	if bs == nil {
		return ZeroAddress
	}
	return common.BytesToAddress(bs)
}

func (cont *ManagerContract) allPools(cc types.ContractLoader) []common.Address {
	bs := cc.ContractData([]byte{tagAllPools})
	if bs == nil {
		return nil
	}
	addr := ZeroAddress
	pools := []common.Address{}
	for i := 0; i < len(bs); i += common.AddressLength {
		copy(addr[0:], bs[i:i+common.AddressLength])
		pools = append(pools, addr)
	}
	return pools
}

func (cont *ManagerContract) nextPositionID(cc types.ContractLoader) uint64 {
	bs := cc.ContractData([]byte{tagNextPositionID})
	if len(bs) == 0 {
		return 1
	}
	return bin.Uint64(bs)
}

func (cont *ManagerContract) position(cc types.ContractLoader, id uint64) (*Position, error) {
	bs := cc.ContractData(makePositionKey(id))
	if len(bs) == 0 {
		return nil, errors.New("Position: INVALID_POSITION")
	}
	pos := &Position{}
	if _, err := pos.ReadFrom(bytes.NewReader(bs)); err != nil {
		return nil, err
	}
	return pos, nil
}

func (cont *ManagerContract) ownerOf(cc types.ContractLoader, id uint64) (common.Address, error) {
	pos, err := cont.position(cc, id)
	if err != nil {
		return ZeroAddress, err
	}
	return pos.Owner, nil
}

func authorized(pos *Position, from common.Address) bool {
	return from == pos.Owner || from == pos.Operator
}

//////////////////////////////////////////////////
// ManagerContract : writer functions
//////////////////////////////////////////////////

func (cont *ManagerContract) setPosition(cc *types.ContractContext, id uint64, pos *Position) error {
	bs, err := pos.Bytes()
	if err != nil {
		return err
	}
	cc.SetContractData(makePositionKey(id), bs)
	return nil
}

// createPoolIfNecessary deploys the pool of the pair and the fee tier.
// Calling it again with the same arguments returns the existing pool.
func (cont *ManagerContract) createPoolIfNecessary(cc *types.ContractContext, tokenA, tokenB common.Address, fee uint64) (common.Address, error) {
	if _, err := TickSpacing(fee); err != nil {
		return ZeroAddress, err
	}
	token0, token1, err := pair.SortTokens(tokenA, tokenB)
	if err != nil {
		return ZeroAddress, err
	}
	if pool := cont.getPool(cc, token0, token1, fee); pool != ZeroAddress {
		return pool, nil
	}

	classID := cont.poolClassID(cc)
	poolAddr := PoolFor(cont.addr, token0, token1, fee, classID)

	poolConstruction := &pair.PairContractConstruction{
		Name:    "CoreSwap Pool Share",
		Symbol:  "CPS",
		Factory: cont.addr,
		Token0:  token0,
		Token1:  token1,
		Fee:     fee * feeTierScale,
	}
	bs, _, err := bin.WriterToBytes(poolConstruction)
	if err != nil {
		return ZeroAddress, err
	}
	if _, err := cc.DeployContractWithAddress(classID, poolAddr, bs); err != nil {
		return ZeroAddress, err
	}

	cc.SetContractData(makePoolKey(token0, token1, fee), poolAddr.Bytes())
	all := cc.ContractData([]byte{tagAllPools})
	if all == nil {
		all = []byte{}
	}
	all = append(all, poolAddr.Bytes()...)
	cc.SetContractData([]byte{tagAllPools}, all)

	return poolAddr, nil
}

// poolAmounts resolves the deposit amounts against the pool reserves
func (cont *ManagerContract) poolAmounts(
	cc *types.ContractContext,
	pool, token0, token1 common.Address,
	amount0Desired, amount1Desired, amount0Min, amount1Min *big.Int) (*big.Int, *big.Int, error) {

	if amount0Desired.Cmp(Zero) <= 0 || amount1Desired.Cmp(Zero) <= 0 {
		return nil, nil, errors.New("Position: INVALID_AMOUNT")
	}

	is, err := cc.Exec(cc, pool, "Reserves", []interface{}{})
	if err != nil {
		return nil, nil, err
	}
	reserve0 := is[0].([]*amount.Amount)[0].Int
	reserve1 := is[0].([]*amount.Amount)[1].Int

	if reserve0.Cmp(Zero) == 0 && reserve1.Cmp(Zero) == 0 {
		return amount0Desired, amount1Desired, nil
	}

	amount1Optimal, err := pair.Quote(amount0Desired, reserve0, reserve1)
	if err != nil {
		return nil, nil, err
	}
	if amount1Optimal.Cmp(amount1Desired) <= 0 {
		if !(amount1Optimal.Cmp(amount1Min) >= 0) {
			return nil, nil, errors.New("Position: INSUFFICIENT_1_AMOUNT")
		}
		return amount0Desired, amount1Optimal, nil
	}
	amount0Optimal, err := pair.Quote(amount1Desired, reserve1, reserve0)
	if err != nil {
		return nil, nil, err
	}
	if !(amount0Optimal.Cmp(amount0Desired) <= 0) {
		return nil, nil, errors.New("Position: INSUFFICIENT_0_AMOUNT")
	}
	if !(amount0Optimal.Cmp(amount0Min) >= 0) {
		return nil, nil, errors.New("Position: INSUFFICIENT_0_AMOUNT")
	}
	return amount0Optimal, amount1Desired, nil
}

// deposit pulls the amounts from the caller into the pool and mints
// the liquidity share to the manager
func (cont *ManagerContract) deposit(
	cc *types.ContractContext,
	pool, token0, token1 common.Address,
	amount0, amount1 *big.Int) (*big.Int, error) {

	if err := SafeTransferFrom(cc, token0, cc.From(), pool, amount0); err != nil {
		return nil, err
	}
	if err := SafeTransferFrom(cc, token1, cc.From(), pool, amount1); err != nil {
		return nil, err
	}
	is, err := cc.Exec(cc, pool, "Mint", []interface{}{cont.addr})
	if err != nil {
		return nil, err
	}
	return is[0].(*amount.Amount).Int, nil
}

func (cont *ManagerContract) mint(
	cc *types.ContractContext,
	to common.Address,
	tokenA, tokenB common.Address,
	fee uint64,
	tickLower, tickUpper int64,
	amountADesired, amountBDesired, amountAMin, amountBMin *big.Int,
	deadline uint64) (uint64, *big.Int, *big.Int, *big.Int, error) {

	if err := ensure(cc, deadline); err != nil {
		return 0, nil, nil, nil, err
	}
	if err := checkTicks(fee, tickLower, tickUpper); err != nil {
		return 0, nil, nil, nil, err
	}

	pool, err := cont.createPoolIfNecessary(cc, tokenA, tokenB, fee)
	if err != nil {
		return 0, nil, nil, nil, err
	}
	token0, token1, err := pair.SortTokens(tokenA, tokenB)
	if err != nil {
		return 0, nil, nil, nil, err
	}

	amount0Desired, amount1Desired := amountADesired, amountBDesired
	amount0Min, amount1Min := amountAMin, amountBMin
	if tokenA != token0 {
		amount0Desired, amount1Desired = amountBDesired, amountADesired
		amount0Min, amount1Min = amountBMin, amountAMin
	}

	amount0, amount1, err := cont.poolAmounts(cc, pool, token0, token1, amount0Desired, amount1Desired, amount0Min, amount1Min)
	if err != nil {
		return 0, nil, nil, nil, err
	}
	liquidity, err := cont.deposit(cc, pool, token0, token1, amount0, amount1)
	if err != nil {
		return 0, nil, nil, nil, err
	}

	id := cont.nextPositionID(cc)
	cc.SetContractData([]byte{tagNextPositionID}, bin.Uint64Bytes(id+1))

	pos := &Position{
		Owner:       to,
		Operator:    cc.From(),
		Token0:      token0,
		Token1:      token1,
		Fee:         fee,
		TickLower:   tickLower,
		TickUpper:   tickUpper,
		Liquidity:   liquidity,
		TokensOwed0: big.NewInt(0),
		TokensOwed1: big.NewInt(0),
	}
	if err := cont.setPosition(cc, id, pos); err != nil {
		return 0, nil, nil, nil, err
	}
	return id, liquidity, amount0, amount1, nil
}

// increaseLiquidity adds funds to an existing position. The recorded
// tick range is kept as it is.
func (cont *ManagerContract) increaseLiquidity(
	cc *types.ContractContext,
	id uint64,
	amount0Desired, amount1Desired, amount0Min, amount1Min *big.Int,
	deadline uint64) (*big.Int, *big.Int, *big.Int, error) {

	if err := ensure(cc, deadline); err != nil {
		return nil, nil, nil, err
	}
	pos, err := cont.position(cc, id)
	if err != nil {
		return nil, nil, nil, err
	}

	pool := cont.getPool(cc, pos.Token0, pos.Token1, pos.Fee)
	if pool == ZeroAddress {
		return nil, nil, nil, errors.New("Position: POOL_NOT_INITIALIZED")
	}

	amount0, amount1, err := cont.poolAmounts(cc, pool, pos.Token0, pos.Token1, amount0Desired, amount1Desired, amount0Min, amount1Min)
	if err != nil {
		return nil, nil, nil, err
	}
	liquidity, err := cont.deposit(cc, pool, pos.Token0, pos.Token1, amount0, amount1)
	if err != nil {
		return nil, nil, nil, err
	}

	pos.Liquidity = Add(pos.Liquidity, liquidity)
	if err := cont.setPosition(cc, id, pos); err != nil {
		return nil, nil, nil, err
	}
	return liquidity, amount0, amount1, nil
}

// decreaseLiquidity burns part of the position and records the freed
// funds as owed. Collect pays them out.
func (cont *ManagerContract) decreaseLiquidity(
	cc *types.ContractContext,
	id uint64,
	liquidity, amount0Min, amount1Min *big.Int,
	deadline uint64) (*big.Int, *big.Int, error) {

	if err := ensure(cc, deadline); err != nil {
		return nil, nil, err
	}
	pos, err := cont.position(cc, id)
	if err != nil {
		return nil, nil, err
	}
	if !authorized(pos, cc.From()) {
		return nil, nil, errors.New("Position: NOT_AUTHORIZED")
	}
	if liquidity.Cmp(Zero) <= 0 {
		return nil, nil, errors.New("Position: INVALID_AMOUNT")
	}
	if pos.Liquidity.Cmp(liquidity) < 0 {
		return nil, nil, errors.New("Position: INSUFFICIENT_LIQUIDITY")
	}

	pool := cont.getPool(cc, pos.Token0, pos.Token1, pos.Fee)
	if pool == ZeroAddress {
		return nil, nil, errors.New("Position: POOL_NOT_INITIALIZED")
	}

	// the pool burns whatever share it holds itself
	if err := SafeTransfer(cc, pool, pool, liquidity); err != nil {
		return nil, nil, err
	}
	is, err := cc.Exec(cc, pool, "Burn", []interface{}{cont.addr})
	if err != nil {
		return nil, nil, err
	}
	amount0 := is[0].(*amount.Amount).Int
	amount1 := is[1].(*amount.Amount).Int

	if !(amount0.Cmp(amount0Min) >= 0) {
		return nil, nil, errors.New("Position: INSUFFICIENT_0_AMOUNT")
	}
	if !(amount1.Cmp(amount1Min) >= 0) {
		return nil, nil, errors.New("Position: INSUFFICIENT_1_AMOUNT")
	}

	pos.Liquidity = Sub(pos.Liquidity, liquidity)
	pos.TokensOwed0 = Add(pos.TokensOwed0, amount0)
	pos.TokensOwed1 = Add(pos.TokensOwed1, amount1)
	if err := cont.setPosition(cc, id, pos); err != nil {
		return nil, nil, err
	}
	return amount0, amount1, nil
}

// collect pays the owed funds of the position out to the recipient
func (cont *ManagerContract) collect(
	cc *types.ContractContext,
	id uint64,
	recipient common.Address,
	amount0Max, amount1Max *big.Int) (*big.Int, *big.Int, error) {

	pos, err := cont.position(cc, id)
	if err != nil {
		return nil, nil, err
	}
	if !authorized(pos, cc.From()) {
		return nil, nil, errors.New("Position: NOT_AUTHORIZED")
	}

	amount0 := Min(pos.TokensOwed0, amount0Max)
	amount1 := Min(pos.TokensOwed1, amount1Max)

	if amount0.Cmp(Zero) > 0 {
		if err := SafeTransfer(cc, pos.Token0, recipient, amount0); err != nil {
			return nil, nil, err
		}
	}
	if amount1.Cmp(Zero) > 0 {
		if err := SafeTransfer(cc, pos.Token1, recipient, amount1); err != nil {
			return nil, nil, err
		}
	}

	pos.TokensOwed0 = Sub(pos.TokensOwed0, amount0)
	pos.TokensOwed1 = Sub(pos.TokensOwed1, amount1)
	if err := cont.setPosition(cc, id, pos); err != nil {
		return nil, nil, err
	}
	return Clone(amount0), Clone(amount1), nil
}

// burn removes an emptied position
func (cont *ManagerContract) burn(cc *types.ContractContext, id uint64) error {
	pos, err := cont.position(cc, id)
	if err != nil {
		return err
	}
	if cc.From() != pos.Owner {
		return errors.New("Position: NOT_AUTHORIZED")
	}
	if pos.Liquidity.Cmp(Zero) != 0 || pos.TokensOwed0.Cmp(Zero) != 0 || pos.TokensOwed1.Cmp(Zero) != 0 {
		return errors.New("Position: NOT_CLEARED")
	}
	cc.SetContractData(makePositionKey(id), nil)
	return nil
}
