package pair

import (
	"bytes"
	"math/big"
	"time"

	"github.com/pkg/errors"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/common/bin"
	"github.com/coreswap/coreswap/core/types"

	. "github.com/coreswap/coreswap/contract/exchange/util"
)

type PairContract struct {
	LPToken
	addr   common.Address
	master common.Address
}

func (self *PairContract) Address() common.Address {
	return self.addr
}

func (self *PairContract) Master() common.Address {
	return self.master
}

func (self *PairContract) Init(addr common.Address, master common.Address) {
	self.addr = addr
	self.master = master
}

func (self *PairContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &PairContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if data.Fee > MAX_FEE {
		return errors.New("Exchange: FEE")
	}

	self._setName(cc, data.Name)
	self._setSymbol(cc, data.Symbol)

	cc.SetContractData([]byte{tagFactory}, data.Factory[:])
	cc.SetContractData([]byte{tagPairToken0}, data.Token0[:])
	cc.SetContractData([]byte{tagPairToken1}, data.Token1[:])
	cc.SetContractData([]byte{tagPairFee}, bin.Uint64Bytes(data.Fee))
	return nil
}

//////////////////////////////////////////////////
// PairContract : getter function
//////////////////////////////////////////////////

func (self *PairContract) factory(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagFactory}))
}
func (self *PairContract) token0(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagPairToken0}))
}
func (self *PairContract) token1(cc types.ContractLoader) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagPairToken1}))
}
func (self *PairContract) fee(cc types.ContractLoader) uint64 {
	bs := cc.ContractData([]byte{tagPairFee})
	return big.NewInt(0).SetBytes(bs).Uint64()
}
func (self *PairContract) reserve0(cc types.ContractLoader) *big.Int {
	return big.NewInt(0).SetBytes(cc.ContractData([]byte{tagPairReserve0}))
}
func (self *PairContract) reserve1(cc types.ContractLoader) *big.Int {
	return big.NewInt(0).SetBytes(cc.ContractData([]byte{tagPairReserve1}))
}
func (self *PairContract) price0CumulativeLast(cc types.ContractLoader) *big.Int {
	return big.NewInt(0).SetBytes(cc.ContractData([]byte{tagPairPrice0CumulativeLast}))
}
func (self *PairContract) price1CumulativeLast(cc types.ContractLoader) *big.Int {
	return big.NewInt(0).SetBytes(cc.ContractData([]byte{tagPairPrice1CumulativeLast}))
}
func (self *PairContract) blockTimestampLast(cc types.ContractLoader) uint64 {
	return big.NewInt(0).SetBytes(cc.ContractData([]byte{tagBlockTimestampLast})).Uint64()
}
func (self *PairContract) reserves(cc types.ContractLoader) (*big.Int, *big.Int, uint64) {
	return self.reserve0(cc), self.reserve1(cc), self.blockTimestampLast(cc)
}

//////////////////////////////////////////////////
// PairContract : setter function
//////////////////////////////////////////////////

func (self *PairContract) setReserve0(cc *types.ContractContext, reserve0 *big.Int) {
	cc.SetContractData([]byte{tagPairReserve0}, reserve0.Bytes())
}
func (self *PairContract) setReserve1(cc *types.ContractContext, reserve1 *big.Int) {
	cc.SetContractData([]byte{tagPairReserve1}, reserve1.Bytes())
}
func (self *PairContract) setPrice0CumulativeLast(cc *types.ContractContext, v *big.Int) {
	cc.SetContractData([]byte{tagPairPrice0CumulativeLast}, v.Bytes())
}
func (self *PairContract) setPrice1CumulativeLast(cc *types.ContractContext, v *big.Int) {
	cc.SetContractData([]byte{tagPairPrice1CumulativeLast}, v.Bytes())
}
func (self *PairContract) _setBlockTimestampLast(cc *types.ContractContext, ts uint64) {
	cc.SetContractData([]byte{tagBlockTimestampLast}, big.NewInt(0).SetUint64(ts).Bytes())
}

func (self *PairContract) _update(cc *types.ContractContext, balance0, balance1, _reserve0, _reserve1 *big.Int) error {
	blockTimestamp := cc.LastTimestamp() / uint64(time.Second)
	timeElapsed := blockTimestamp - self.blockTimestampLast(cc)
	if timeElapsed > 0 && _reserve0.Cmp(Zero) != 0 && _reserve1.Cmp(Zero) != 0 {
		price0CumulativeLast := Add(
			self.price0CumulativeLast(cc),
			Mul(MulDiv(_reserve1, big.NewInt(amount.FractionalMax), _reserve0), big.NewInt(int64(timeElapsed))))
		price1CumulativeLast := Add(
			self.price1CumulativeLast(cc),
			Mul(MulDiv(_reserve0, big.NewInt(amount.FractionalMax), _reserve1), big.NewInt(int64(timeElapsed))))

		self.setPrice0CumulativeLast(cc, price0CumulativeLast)
		self.setPrice1CumulativeLast(cc, price1CumulativeLast)
	}
	self.setReserve0(cc, balance0)
	self.setReserve1(cc, balance1)
	self._setBlockTimestampLast(cc, blockTimestamp)
	return nil
}

//////////////////////////////////////////////////
// PairContract : core function
//////////////////////////////////////////////////

func (self *PairContract) mint(cc *types.ContractContext, to common.Address) (*big.Int, error) {
	_reserve0, _reserve1, _ := self.reserves(cc)
	balance0, err := TokenBalanceOf(cc, self.token0(cc), self.addr)
	if err != nil {
		return nil, err
	}
	balance1, err := TokenBalanceOf(cc, self.token1(cc), self.addr)
	if err != nil {
		return nil, err
	}

	_totalSupply := self.totalSupply(cc)

	amount0 := Sub(balance0, _reserve0)
	if amount0.Cmp(Zero) < 0 {
		return nil, errors.New("Exchange: INSUFFICIENT_0_INPUT")
	}
	amount1 := Sub(balance1, _reserve1)
	if amount1.Cmp(Zero) < 0 {
		return nil, errors.New("Exchange: INSUFFICIENT_1_INPUT")
	}

	var liquidity *big.Int
	if _totalSupply.Cmp(Zero) == 0 {
		liquidity = SubC(Sqrt(Mul(amount0, amount1)), MINIMUM_LIQUIDITY)
		self._mint(cc, ZeroAddress, big.NewInt(MINIMUM_LIQUIDITY))
	} else {
		liquidity = Min(MulDiv(amount0, _totalSupply, _reserve0), MulDiv(amount1, _totalSupply, _reserve1))
	}
	if !(liquidity.Cmp(Zero) > 0) {
		return nil, errors.New("Exchange: INSUFFICIENT_LIQUIDITY_MINTED")
	}
	if err := self._mint(cc, to, liquidity); err != nil {
		return nil, err
	}

	if err := self._update(cc, balance0, balance1, _reserve0, _reserve1); err != nil {
		return nil, err
	}
	return liquidity, nil
}

func (self *PairContract) burn(cc *types.ContractContext, to common.Address) (*big.Int, *big.Int, error) {
	_reserve0, _reserve1 := self.reserve0(cc), self.reserve1(cc)
	_token0, _token1 := self.token0(cc), self.token1(cc)

	balance0, err := TokenBalanceOf(cc, _token0, self.addr)
	if err != nil {
		return nil, nil, err
	}
	balance1, err := TokenBalanceOf(cc, _token1, self.addr)
	if err != nil {
		return nil, nil, err
	}

	liquidity := self.balanceOf(cc, self.addr)
	_totalSupply := self.totalSupply(cc)
	amount0 := MulDiv(liquidity, balance0, _totalSupply)
	amount1 := MulDiv(liquidity, balance1, _totalSupply)
	if !(amount0.Cmp(Zero) > 0 && amount1.Cmp(Zero) > 0) {
		return nil, nil, errors.New("Exchange: INSUFFICIENT_LIQUIDITY_BURNED")
	}

	if err := self._burn(cc, self.addr, liquidity); err != nil {
		return nil, nil, err
	}
	if err := SafeTransfer(cc, _token0, to, amount0); err != nil {
		return nil, nil, err
	}
	if err := SafeTransfer(cc, _token1, to, amount1); err != nil {
		return nil, nil, err
	}

	balance0 = Sub(balance0, amount0)
	balance1 = Sub(balance1, amount1)
	if err := self._update(cc, balance0, balance1, _reserve0, _reserve1); err != nil {
		return nil, nil, err
	}
	return amount0, amount1, nil
}

func (self *PairContract) swap(cc *types.ContractContext, amount0Out, amount1Out *big.Int, to common.Address) error {
	fee := self.fee(cc)

	if amount0Out.Cmp(Zero) < 0 || amount1Out.Cmp(Zero) < 0 {
		return errors.New("Exchange: INSUFFICIENT_OUTPUT_AMOUNT")
	}
	if !(amount0Out.Cmp(Zero) > 0 || amount1Out.Cmp(Zero) > 0) {
		return errors.New("Exchange: INSUFFICIENT_OUTPUT_AMOUNT")
	}
	_reserve0, _reserve1, _ := self.reserves(cc)
	if !(amount0Out.Cmp(_reserve0) < 0 && amount1Out.Cmp(_reserve1) < 0) {
		return errors.New("Exchange: INSUFFICIENT_LIQUIDITY")
	}
	_token0 := self.token0(cc)
	_token1 := self.token1(cc)

	if amount0Out.Cmp(Zero) > 0 {
		if err := SafeTransfer(cc, _token0, to, amount0Out); err != nil {
			return err
		}
	}
	if amount1Out.Cmp(Zero) > 0 {
		if err := SafeTransfer(cc, _token1, to, amount1Out); err != nil {
			return err
		}
	}

	balance0, err := TokenBalanceOf(cc, _token0, self.addr)
	if err != nil {
		return err
	}
	balance1, err := TokenBalanceOf(cc, _token1, self.addr)
	if err != nil {
		return err
	}

	var amount0In, amount1In *big.Int
	if balance0.Cmp(Sub(_reserve0, amount0Out)) > 0 {
		amount0In = Sub(balance0, Sub(_reserve0, amount0Out))
	} else {
		amount0In = big.NewInt(0)
	}
	if balance1.Cmp(Sub(_reserve1, amount1Out)) > 0 {
		amount1In = Sub(balance1, Sub(_reserve1, amount1Out))
	} else {
		amount1In = big.NewInt(0)
	}
	if !(amount0In.Cmp(Zero) > 0 || amount1In.Cmp(Zero) > 0) {
		return errors.New("Exchange: INSUFFICIENT_INPUT_AMOUNT")
	}

	balance0Adjusted := Sub(MulC(balance0, FEE_DENOMINATOR), MulC(amount0In, int64(fee)))
	balance1Adjusted := Sub(MulC(balance1, FEE_DENOMINATOR), MulC(amount1In, int64(fee)))
	if Mul(balance0Adjusted, balance1Adjusted).Cmp(Mul(Mul(_reserve0, _reserve1), Mul(big.NewInt(FEE_DENOMINATOR), big.NewInt(FEE_DENOMINATOR)))) < 0 {
		return errors.New("Exchange: K")
	}

	return self._update(cc, balance0, balance1, _reserve0, _reserve1)
}

// skim forces the token balances to match the reserves
func (self *PairContract) skim(cc *types.ContractContext, to common.Address) error {
	_token0 := self.token0(cc)
	_token1 := self.token1(cc)
	balance0, err := TokenBalanceOf(cc, _token0, self.addr)
	if err != nil {
		return err
	}
	balance1, err := TokenBalanceOf(cc, _token1, self.addr)
	if err != nil {
		return err
	}
	if diff := Sub(balance0, self.reserve0(cc)); diff.Cmp(Zero) > 0 {
		if err := SafeTransfer(cc, _token0, to, diff); err != nil {
			return err
		}
	}
	if diff := Sub(balance1, self.reserve1(cc)); diff.Cmp(Zero) > 0 {
		if err := SafeTransfer(cc, _token1, to, diff); err != nil {
			return err
		}
	}
	return nil
}

// sync forces the reserves to match the token balances
func (self *PairContract) sync(cc *types.ContractContext) error {
	balance0, err := TokenBalanceOf(cc, self.token0(cc), self.addr)
	if err != nil {
		return err
	}
	balance1, err := TokenBalanceOf(cc, self.token1(cc), self.addr)
	if err != nil {
		return err
	}
	return self._update(cc, balance0, balance1, self.reserve0(cc), self.reserve1(cc))
}
