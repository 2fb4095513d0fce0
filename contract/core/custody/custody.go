// Package custody implements the funds handling discipline of the
// liquidity facades. Every pulled asset is either consumed by the
// downstream call or settled back to the caller before the operation
// returns, and every granted allowance is reset afterwards.
package custody

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/core/types"

	. "github.com/coreswap/coreswap/contract/exchange/util"
)

var tagGuard = byte(0xF0)

// GuardEnter marks the facade as executing. A nested call fails.
func GuardEnter(cc *types.ContractContext) error {
	if bs := cc.ContractData([]byte{tagGuard}); len(bs) == 1 && bs[0] == 1 {
		return errors.New("Core: REENTRANCY")
	}
	cc.SetContractData([]byte{tagGuard}, []byte{1})
	return nil
}

// GuardExit clears the executing mark
func GuardExit(cc *types.ContractContext) {
	cc.SetContractData([]byte{tagGuard}, nil)
}

// Pull moves the amount of the token from the account into the facade.
// The allowance is checked up front so the caller gets the custody
// error instead of a token internal one.
func Pull(cc *types.ContractContext, token, from common.Address, am *big.Int) error {
	if am.Cmp(Zero) <= 0 {
		return errors.New("Core: INVALID_AMOUNT")
	}
	allowance, err := TokenAllowance(cc, token, from, cc.ContractAddress())
	if err != nil {
		return err
	}
	if allowance.Cmp(am) < 0 {
		return errors.New("Core: INSUFFICIENT_ALLOWANCE")
	}
	return SafeTransferFrom(cc, token, from, cc.ContractAddress(), am)
}

// PullCoin validates and returns the coin attached to the call. The
// framework already moved it into the facade before dispatch.
func PullCoin(cc *types.ContractContext) (*big.Int, error) {
	value := cc.Value().Int
	if value.Cmp(Zero) <= 0 {
		return nil, errors.New("Core: INVALID_AMOUNT")
	}
	return value, nil
}

// Approve grants the spender the amount of the token held by the facade
func Approve(cc *types.ContractContext, token, spender common.Address, am *big.Int) error {
	return TokenApprove(cc, token, spender, am)
}

// ResetApproval revokes a granted allowance. Approvals never outlive
// the operation that granted them.
func ResetApproval(cc *types.ContractContext, token, spender common.Address) error {
	return TokenApprove(cc, token, spender, big.NewInt(0))
}

// Settle sweeps the remaining token balance of the facade back to the
// account and returns the swept amount
func Settle(cc *types.ContractContext, token, to common.Address) (*big.Int, error) {
	balance, err := TokenBalanceOf(cc, token, cc.ContractAddress())
	if err != nil {
		return nil, err
	}
	if balance.Cmp(Zero) > 0 {
		if err := SafeTransfer(cc, token, to, balance); err != nil {
			return nil, err
		}
	}
	return balance, nil
}

// SettleCoin sweeps the remaining coin balance of the facade back to
// the account and returns the swept amount
func SettleCoin(cc *types.ContractContext, to common.Address) (*big.Int, error) {
	balance := cc.CoinBalance(cc.ContractAddress()).Int
	if balance.Cmp(Zero) > 0 {
		if err := cc.SendCoin(to, ToAmount(balance)); err != nil {
			return nil, err
		}
	}
	return balance, nil
}

// Wrap turns the amount of the facade coin balance into the wrapped token
func Wrap(cc *types.ContractContext, wcoin common.Address, am *big.Int) error {
	return WCoinDeposit(cc, wcoin, am)
}

// Unwrap turns the amount of the wrapped token back into the coin
func Unwrap(cc *types.ContractContext, wcoin common.Address, am *big.Int) error {
	return WCoinWithdraw(cc, wcoin, am)
}
