package types

import (
	"reflect"
	"runtime/debug"
	"strings"

	"github.com/pkg/errors"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
)

// IInteractor executes contract methods over a context
type IInteractor interface {
	Exec(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error)
	ExecValue(Cc *ContractContext, Addr common.Address, Value *amount.Amount, MethodName string, Args []interface{}) ([]interface{}, error)
}

type interactor struct {
	ctx *Context
}

// NewInteractor returns an IInteractor over the context
func NewInteractor(ctx *Context) IInteractor {
	return &interactor{
		ctx: ctx,
	}
}

// Exec calls the method of the contract at the address
func (i *interactor) Exec(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error) {
	return i.ExecValue(Cc, Addr, amount.NewAmount(0, 0), MethodName, Args)
}

// ExecValue calls the method of the contract at the address sending the
// native coin value along with the call. The call runs on its own
// snapshot and every state change of a failed call is reverted.
func (i *interactor) ExecValue(Cc *ContractContext, Addr common.Address, Value *amount.Amount, MethodName string, Args []interface{}) ([]interface{}, error) {
	if len(MethodName) == 0 {
		return nil, errors.New("method not given")
	}
	cont, err := i.ctx.Contract(Addr)
	if err != nil {
		return nil, err
	}
	ecc := i.currentContractContext(Cc, cont, Value)

	sn := i.ctx.Snapshot()
	if Value.IsPlus() {
		payer := Cc.cont
		if payer == Addr {
			payer = Cc.from
		}
		if err := i.ctx.TransferCoin(payer, Addr, Value); err != nil {
			i.ctx.Revert(sn)
			return nil, err
		}
	}
	result, err := i.callFront(ecc, cont, MethodName, Args)
	if err != nil {
		i.ctx.Revert(sn)
		return nil, err
	}
	i.ctx.Commit(sn)
	return result, nil
}

func (i *interactor) currentContractContext(Cc *ContractContext, cont Contract, Value *amount.Amount) *ContractContext {
	if Cc.cont == cont.Address() && !Value.IsPlus() {
		return Cc
	}
	from := Cc.cont
	if Cc.cont == cont.Address() {
		from = Cc.from
	}
	ncc := &ContractContext{
		cont:  cont.Address(),
		from:  from,
		value: Value.Clone(),
		ctx:   i.ctx,
	}
	ncc.Exec = i.Exec
	ncc.ExecValue = i.ExecValue
	return ncc
}

func (i *interactor) callFront(ecc *ContractContext, cont Contract, MethodName string, Args []interface{}) (result []interface{}, err error) {
	defer func() {
		if v := recover(); v != nil {
			debug.PrintStack()
			err = errors.Errorf("occur panic (%v) on call %v of %v", v, MethodName, cont.Address().String())
		}
	}()

	method := strings.ToUpper(string(MethodName[0])) + MethodName[1:]
	front := reflect.ValueOf(cont.Front())
	rMethod := front.MethodByName(method)
	if !rMethod.IsValid() {
		return nil, errors.Errorf("method not exist: %v of %v", method, cont.Address().String())
	}
	mt := rMethod.Type()
	if mt.NumIn() != len(Args)+1 {
		return nil, errors.Errorf("invalid method argument count: %v want %v got %v", method, mt.NumIn()-1, len(Args))
	}

	in := make([]reflect.Value, mt.NumIn())
	in[0] = reflect.ValueOf(ecc)
	if !in[0].Type().AssignableTo(mt.In(0)) {
		return nil, errors.Errorf("invalid method receiver param: %v", method)
	}
	for idx, arg := range Args {
		pt := mt.In(idx + 1)
		rv := reflect.ValueOf(arg)
		if !rv.IsValid() {
			rv = reflect.Zero(pt)
		} else if !rv.Type().AssignableTo(pt) {
			if rv.Type().ConvertibleTo(pt) && isNumericKind(rv.Kind()) && isNumericKind(pt.Kind()) {
				rv = rv.Convert(pt)
			} else {
				return nil, errors.Errorf("invalid method argument: %v param %v want %v got %v", method, idx, pt, rv.Type())
			}
		}
		in[idx+1] = rv
	}

	outs := rMethod.Call(in)
	return getResults(mt, outs)
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

func getResults(mt reflect.Type, outs []reflect.Value) ([]interface{}, error) {
	n := len(outs)
	if n > 0 && mt.Out(n-1).Implements(errType) {
		if ev := outs[n-1].Interface(); ev != nil {
			return nil, ev.(error)
		}
		outs = outs[:n-1]
	}
	result := make([]interface{}, 0, len(outs))
	for _, out := range outs {
		result = append(result, out.Interface())
	}
	return result, nil
}
