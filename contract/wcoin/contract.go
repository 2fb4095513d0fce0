package wcoin

import (
	"bytes"
	"math/big"

	"github.com/pkg/errors"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/core/types"
)

var (
	tagWCoinName        = byte(0x01)
	tagWCoinSymbol      = byte(0x02)
	tagWCoinTotalSupply = byte(0x04)
	tagWCoinAmount      = byte(0x10)
	tagWCoinApprove     = byte(0x12)
)

func makeApproveKey(spender common.Address) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = tagWCoinApprove
	copy(bs[1:], spender[:])
	return bs
}

// WCoinContract wraps the native coin into a transferable token.
// Every unit of its supply is backed by a coin held at the contract.
type WCoinContract struct {
	addr   common.Address
	master common.Address
}

func (cont *WCoinContract) Address() common.Address {
	return cont.addr
}

func (cont *WCoinContract) Master() common.Address {
	return cont.master
}

func (cont *WCoinContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *WCoinContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &WCoinContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagWCoinName}, []byte(data.Name))
	cc.SetContractData([]byte{tagWCoinSymbol}, []byte(data.Symbol))
	return nil
}

func (cont *WCoinContract) addBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) {
	bal := cont.BalanceOf(cc, addr).Add(am)
	cc.SetAccountData(addr, []byte{tagWCoinAmount}, bal.Bytes())

	total := cont.TotalSupply(cc).Add(am)
	cc.SetContractData([]byte{tagWCoinTotalSupply}, total.Bytes())
}

func (cont *WCoinContract) subBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) error {
	bal := cont.BalanceOf(cc, addr)
	if bal.Less(am) {
		return errors.Errorf("WCoin: WITHDRAW_EXCEED_BALANCE %v less then %v", bal.String(), am.String())
	}
	bal = bal.Sub(am)
	if bal.IsZero() {
		cc.SetAccountData(addr, []byte{tagWCoinAmount}, nil)
	} else {
		cc.SetAccountData(addr, []byte{tagWCoinAmount}, bal.Bytes())
	}

	total := cont.TotalSupply(cc).Sub(am)
	cc.SetContractData([]byte{tagWCoinTotalSupply}, total.Bytes())
	return nil
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// Deposit wraps the coin sent with the call into the balance of the caller
func (cont *WCoinContract) Deposit(cc *types.ContractContext) error {
	value := cc.Value()
	if !value.IsPlus() {
		return errors.New("WCoin: DEPOSIT_ZERO_VALUE")
	}
	cont.addBalance(cc, cc.From(), value)
	return nil
}

// Withdraw unwraps the balance of the caller back into the coin
func (cont *WCoinContract) Withdraw(cc *types.ContractContext, am *amount.Amount) error {
	if !am.IsPlus() {
		return errors.New("WCoin: WITHDRAW_ZERO_VALUE")
	}
	if err := cont.subBalance(cc, cc.From(), am); err != nil {
		return err
	}
	return cc.SendCoin(cc.From(), am)
}

func (cont *WCoinContract) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	if To == common.ZeroAddr {
		return errors.New("WCoin: TRANSFER_TO_ZEROADDRESS")
	}
	if Amount.IsMinus() {
		return errors.New("WCoin: TRANSFER_NEGATIVE_AMOUNT")
	}
	if Amount.IsZero() {
		return nil
	}
	if err := cont.subBalance(cc, cc.From(), Amount); err != nil {
		return err
	}
	cont.addBalance(cc, To, Amount)
	return nil
}

func (cont *WCoinContract) Approve(cc *types.ContractContext, spender common.Address, Amount *amount.Amount) error {
	if spender == common.ZeroAddr {
		return errors.New("WCoin: APPROVE_TO_ZEROADDRESS")
	}
	if Amount.IsMinus() {
		return errors.New("WCoin: APPROVE_NEGATIVE_AMOUNT")
	}
	cc.SetAccountData(cc.From(), makeApproveKey(spender), Amount.Bytes())
	return nil
}

func (cont *WCoinContract) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	if Amount.IsZero() {
		return nil
	}
	allowedValue := cont.Allowance(cc, From, cc.From())
	if allowedValue.Less(Amount) {
		return errors.Errorf("WCoin: TRANSFER_EXCEED_ALLOWANCE %v less then %v", allowedValue.String(), Amount.String())
	}
	cc.SetAccountData(From, makeApproveKey(cc.From()), allowedValue.Sub(Amount).Bytes())

	if err := cont.subBalance(cc, From, Amount); err != nil {
		return err
	}
	cont.addBalance(cc, To, Amount)
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *WCoinContract) Name(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagWCoinName}))
}

func (cont *WCoinContract) Symbol(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagWCoinSymbol}))
}

func (cont *WCoinContract) TotalSupply(cc types.ContractLoader) *amount.Amount {
	bs := cc.ContractData([]byte{tagWCoinTotalSupply})
	return amount.NewAmountFromBytes(bs)
}

func (cont *WCoinContract) Decimals(cc types.ContractLoader) *big.Int {
	return big.NewInt(amount.FractionalCount)
}

func (cont *WCoinContract) BalanceOf(cc types.ContractLoader, from common.Address) *amount.Amount {
	bs := cc.AccountData(from, []byte{tagWCoinAmount})
	return amount.NewAmountFromBytes(bs)
}

func (cont *WCoinContract) Allowance(cc types.ContractLoader, _owner common.Address, _spender common.Address) *amount.Amount {
	bs := cc.AccountData(_owner, makeApproveKey(_spender))
	return amount.NewAmountFromBytes(bs)
}
