package types

import (
	"github.com/pkg/errors"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/common/bin"
	"github.com/coreswap/coreswap/common/hash"
)

// coinAccount is the reserved pseudo contract that owns the native
// coin balances so snapshots cover them like any other state
var coinAccount = common.Address{0x00, 0x00, 0x63, 0x6f, 0x69, 0x6e}

var tagCoinBalance = []byte{0x01}

// Context manages the layered contract state of an execution
type Context struct {
	stack     []*ContextData
	timestamp uint64
	eventList []*Event
	seq       uint32
}

// NewContext returns a Context at the timestamp (nanoseconds)
func NewContext(timestamp uint64) *Context {
	return &Context{
		stack:     []*ContextData{NewContextData(nil)},
		timestamp: timestamp,
	}
}

// NewEmptyContext returns a Context at the zero timestamp
func NewEmptyContext() *Context {
	return NewContext(0)
}

// Top returns the top of the context data stack
func (ctx *Context) Top() *ContextData {
	return ctx.stack[len(ctx.stack)-1]
}

// LastTimestamp returns the timestamp of the context
func (ctx *Context) LastTimestamp() uint64 {
	return ctx.timestamp
}

// SetLastTimestamp updates the timestamp of the context
func (ctx *Context) SetLastTimestamp(timestamp uint64) {
	ctx.timestamp = timestamp
}

// Snapshot pushes a state layer and returns the snapshot number
func (ctx *Context) Snapshot() int {
	ctx.stack = append(ctx.stack, NewContextData(ctx.Top()))
	return len(ctx.stack)
}

// Revert drops every layer created at or above the snapshot
func (ctx *Context) Revert(sn int) {
	if sn < 2 {
		sn = 2
	}
	if len(ctx.stack) >= sn {
		ctx.stack = ctx.stack[:sn-1]
	}
}

// Commit merges every layer created at or above the snapshot into the layer below
func (ctx *Context) Commit(sn int) {
	for len(ctx.stack) >= sn && sn >= 2 {
		top := ctx.Top()
		ctx.stack = ctx.stack[:len(ctx.stack)-1]
		top.mergeInto(ctx.Top())
	}
}

// StackSize returns the size of the context data stack
func (ctx *Context) StackSize() int {
	return len(ctx.stack)
}

// Data returns the data of the account of the contract
func (ctx *Context) Data(cont common.Address, addr common.Address, name []byte) []byte {
	return ctx.Top().Data(cont, addr, name)
}

// SetData inserts the data of the account of the contract
func (ctx *Context) SetData(cont common.Address, addr common.Address, name []byte, value []byte) {
	ctx.Top().SetData(cont, addr, name, value)
}

// IsContract returns true when the address is a deployed contract
func (ctx *Context) IsContract(addr common.Address) bool {
	return ctx.Top().IsContract(addr)
}

// Contract instantiates the deployed contract of the address
func (ctx *Context) Contract(addr common.Address) (Contract, error) {
	cd := ctx.Top().ContractDefine(addr)
	if cd == nil {
		return nil, errors.WithStack(ErrNotExistContract)
	}
	return CreateContract(cd)
}

// NextSeq returns the next sequence of the context
func (ctx *Context) NextSeq() uint32 {
	ctx.seq++
	return ctx.seq
}

// DeployContract deploys the contract of the class at a derived address
func (ctx *Context) DeployContract(sender common.Address, ClassID uint64, Args []byte) (Contract, error) {
	base := make([]byte, 1+common.AddressLength+8+4)
	base[0] = 0xff
	copy(base[1:], sender[:])
	copy(base[1+common.AddressLength:], bin.Uint64Bytes(ClassID))
	copy(base[1+common.AddressLength+8:], bin.Uint32Bytes(ctx.NextSeq()))
	h := hash.Hash(base)
	addr := common.BytesToAddress(h[:])
	return ctx.DeployContractWithAddress(sender, ClassID, addr, Args)
}

// DeployContractWithAddress deploys the contract of the class at the address
func (ctx *Context) DeployContractWithAddress(sender common.Address, ClassID uint64, addr common.Address, Args []byte) (Contract, error) {
	if ctx.IsContract(addr) {
		return nil, errors.WithStack(ErrExistContractAddress)
	}
	cd := &ContractDefine{
		Address: addr,
		Owner:   sender,
		ClassID: ClassID,
	}
	cont, err := CreateContract(cd)
	if err != nil {
		return nil, err
	}
	ctx.Top().SetContractDefine(cd)
	cc := ctx.ContractContext(cont, cd.Address)
	intr := NewInteractor(ctx)
	cc.Exec = intr.Exec
	cc.ExecValue = intr.ExecValue
	if err := cont.OnCreate(cc, Args); err != nil {
		return nil, err
	}
	return cont, nil
}

// ContractContext returns a ContractContext of the contract with the caller
func (ctx *Context) ContractContext(cont Contract, from common.Address) *ContractContext {
	cc := &ContractContext{
		cont:  cont.Address(),
		from:  from,
		value: amount.NewAmount(0, 0),
		ctx:   ctx,
	}
	return cc
}

// EmitEvent appends the event to the event list of the context
func (ctx *Context) EmitEvent(ev *Event) {
	ev.Index = uint16(len(ctx.eventList))
	ctx.eventList = append(ctx.eventList, ev)
}

// EventList returns the events emitted on the context
func (ctx *Context) EventList() []*Event {
	return ctx.eventList
}

// CoinBalance returns the native coin balance of the address
func (ctx *Context) CoinBalance(addr common.Address) *amount.Amount {
	bs := ctx.Data(coinAccount, addr, tagCoinBalance)
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (ctx *Context) setCoinBalance(addr common.Address, am *amount.Amount) {
	if am.IsZero() {
		ctx.SetData(coinAccount, addr, tagCoinBalance, nil)
	} else {
		ctx.SetData(coinAccount, addr, tagCoinBalance, am.Bytes())
	}
}

// MintCoin credits the native coin to the address
func (ctx *Context) MintCoin(addr common.Address, am *amount.Amount) {
	ctx.setCoinBalance(addr, ctx.CoinBalance(addr).Add(am))
}

// TransferCoin moves the native coin between the addresses
func (ctx *Context) TransferCoin(from common.Address, to common.Address, am *amount.Amount) error {
	if am.IsMinus() {
		return errors.WithStack(ErrInsufficientCoin)
	}
	if am.IsZero() {
		return nil
	}
	fromBalance := ctx.CoinBalance(from)
	if fromBalance.Less(am) {
		return errors.WithStack(ErrInsufficientCoin)
	}
	ctx.setCoinBalance(from, fromBalance.Sub(am))
	ctx.setCoinBalance(to, ctx.CoinBalance(to).Add(am))
	return nil
}
