package types

import (
	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
)

// ExecFunc calls the method of the contract at the address
type ExecFunc = func(cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error)

// ExecValueFunc calls the method of the contract at the address
// sending the native coin value along with the call
type ExecValueFunc = func(cc *ContractContext, Addr common.Address, Value *amount.Amount, MethodName string, Args []interface{}) ([]interface{}, error)

// ContractContext is the execution view handed to a contract method
type ContractContext struct {
	cont      common.Address
	from      common.Address
	value     *amount.Amount
	ctx       *Context
	Exec      ExecFunc
	ExecValue ExecValueFunc
}

// ContractAddress returns the executing contract address
func (cc *ContractContext) ContractAddress() common.Address {
	return cc.cont
}

// From returns the caller of the contract
func (cc *ContractContext) From() common.Address {
	return cc.from
}

// Value returns the native coin sent with the call
func (cc *ContractContext) Value() *amount.Amount {
	return cc.value.Clone()
}

// ContractData returns the contract data of the executing contract
func (cc *ContractContext) ContractData(name []byte) []byte {
	return cc.ctx.Data(cc.cont, common.Address{}, name)
}

// SetContractData inserts the contract data of the executing contract
func (cc *ContractContext) SetContractData(name []byte, value []byte) {
	cc.ctx.SetData(cc.cont, common.Address{}, name, value)
}

// AccountData returns the account data of the executing contract
func (cc *ContractContext) AccountData(addr common.Address, name []byte) []byte {
	return cc.ctx.Data(cc.cont, addr, name)
}

// SetAccountData inserts the account data of the executing contract
func (cc *ContractContext) SetAccountData(addr common.Address, name []byte, value []byte) {
	cc.ctx.SetData(cc.cont, addr, name, value)
}

// IsContract returns true when the address is a deployed contract
func (cc *ContractContext) IsContract(addr common.Address) bool {
	return cc.ctx.IsContract(addr)
}

// LastTimestamp returns the timestamp of the context
func (cc *ContractContext) LastTimestamp() uint64 {
	return cc.ctx.LastTimestamp()
}

// EmitEvent appends the event of the executing contract
func (cc *ContractContext) EmitEvent(Name string, Args ...interface{}) {
	cc.ctx.EmitEvent(&Event{
		Contract: cc.cont,
		Name:     Name,
		Args:     Args,
	})
}

// CoinBalance returns the native coin balance of the address
func (cc *ContractContext) CoinBalance(addr common.Address) *amount.Amount {
	return cc.ctx.CoinBalance(addr)
}

// SendCoin moves the native coin from the executing contract to the address
func (cc *ContractContext) SendCoin(to common.Address, am *amount.Amount) error {
	return cc.ctx.TransferCoin(cc.cont, to, am)
}

// DeployContract deploys the contract owned by the executing contract
func (cc *ContractContext) DeployContract(ClassID uint64, Args []byte) (Contract, error) {
	return cc.ctx.DeployContract(cc.cont, ClassID, Args)
}

// DeployContractWithAddress deploys the contract owned by the executing
// contract at the address
func (cc *ContractContext) DeployContractWithAddress(ClassID uint64, addr common.Address, Args []byte) (Contract, error) {
	return cc.ctx.DeployContractWithAddress(cc.cont, ClassID, addr, Args)
}
