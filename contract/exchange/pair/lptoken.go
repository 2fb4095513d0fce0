package pair

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/core/types"

	. "github.com/coreswap/coreswap/contract/exchange/util"
)

// LPToken is the liquidity share ledger embedded into the pair
type LPToken struct {
}

//////////////////////////////////////////////////
// LPToken : private reader function
//////////////////////////////////////////////////

func (self *LPToken) name(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagTokenName}))
}
func (self *LPToken) symbol(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagTokenSymbol}))
}
func (self *LPToken) decimals(cc types.ContractLoader) *big.Int {
	return big.NewInt(amount.FractionalCount)
}
func (self *LPToken) totalSupply(cc types.ContractLoader) *big.Int {
	bs := cc.ContractData([]byte{tagTokenTotalSupply})
	return big.NewInt(0).SetBytes(bs)
}
func (self *LPToken) balanceOf(cc types.ContractLoader, _owner common.Address) *big.Int {
	bs := cc.AccountData(_owner, []byte{tagTokenAmount})
	return big.NewInt(0).SetBytes(bs)
}
func (self *LPToken) allowance(cc types.ContractLoader, owner, spender common.Address) *big.Int {
	bs := cc.AccountData(owner, makeTokenKey(spender, tagTokenApprove))
	return big.NewInt(0).SetBytes(bs)
}

//////////////////////////////////////////////////
// LPToken : private writer function
//////////////////////////////////////////////////

func (self *LPToken) _setName(cc *types.ContractContext, name string) {
	cc.SetContractData([]byte{tagTokenName}, []byte(name))
}
func (self *LPToken) _setSymbol(cc *types.ContractContext, symbol string) {
	cc.SetContractData([]byte{tagTokenSymbol}, []byte(symbol))
}

func (self *LPToken) _mint(cc *types.ContractContext, to common.Address, amt *big.Int) error {
	if amt.Cmp(Zero) < 0 {
		return errors.New("LPToken: MINT_NEGATIVE_AMOUNT")
	}
	total := Add(self.totalSupply(cc), amt)
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Bytes())

	bal := Add(self.balanceOf(cc, to), amt)
	cc.SetAccountData(to, []byte{tagTokenAmount}, bal.Bytes())
	return nil
}

func (self *LPToken) _burn(cc *types.ContractContext, from common.Address, amt *big.Int) error {
	if amt.Cmp(Zero) < 0 {
		return errors.New("LPToken: BURN_NEGATIVE_AMOUNT")
	}
	bal := self.balanceOf(cc, from)
	if bal.Cmp(amt) < 0 {
		return errors.New("LPToken: BURN_EXCEED_BALANCE")
	}
	bal = Sub(bal, amt)
	if bal.Cmp(Zero) == 0 {
		cc.SetAccountData(from, []byte{tagTokenAmount}, nil)
	} else {
		cc.SetAccountData(from, []byte{tagTokenAmount}, bal.Bytes())
	}

	total := Sub(self.totalSupply(cc), amt)
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Bytes())
	return nil
}

func (self *LPToken) _approve(cc *types.ContractContext, owner, spender common.Address, amt *big.Int) error {
	if amt.Cmp(Zero) < 0 {
		return errors.New("LPToken: APPROVE_NEGATIVE_AMOUNT")
	}
	cc.SetAccountData(owner, makeTokenKey(spender, tagTokenApprove), amt.Bytes())
	return nil
}

func (self *LPToken) _transfer(cc *types.ContractContext, from, to common.Address, amt *big.Int) error {
	if amt.Cmp(Zero) < 0 {
		return errors.New("LPToken: TRANSFER_NEGATIVE_AMOUNT")
	}
	bal := self.balanceOf(cc, from)
	if bal.Cmp(amt) < 0 {
		return errors.New("LPToken: TRANSFER_EXCEED_BALANCE")
	}
	bal = Sub(bal, amt)
	if bal.Cmp(Zero) == 0 {
		cc.SetAccountData(from, []byte{tagTokenAmount}, nil)
	} else {
		cc.SetAccountData(from, []byte{tagTokenAmount}, bal.Bytes())
	}
	cc.SetAccountData(to, []byte{tagTokenAmount}, Add(self.balanceOf(cc, to), amt).Bytes())
	return nil
}

//////////////////////////////////////////////////
// LPToken : public function
//////////////////////////////////////////////////

func (self *LPToken) approve(cc *types.ContractContext, spender common.Address, amt *big.Int) error {
	return self._approve(cc, cc.From(), spender, amt)
}

func (self *LPToken) transfer(cc *types.ContractContext, to common.Address, amt *big.Int) error {
	return self._transfer(cc, cc.From(), to, amt)
}

func (self *LPToken) transferFrom(cc *types.ContractContext, from, to common.Address, amt *big.Int) error {
	allowed := self.allowance(cc, from, cc.From())
	if allowed.Cmp(amt) < 0 {
		return errors.New("LPToken: TRANSFER_EXCEED_ALLOWANCE")
	}
	if err := self._approve(cc, from, cc.From(), Sub(allowed, amt)); err != nil {
		return err
	}
	return self._transfer(cc, from, to, amt)
}
