package types

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/coreswap/coreswap/common/bin"
	"github.com/coreswap/coreswap/common/hash"
)

var gContractTypeMap = map[uint64]reflect.Type{}
var gContractNameMap = map[uint64]string{}

// RegisterContractType adds the contract type to the class registry.
// It must be called only at initialization time and never concurrently
// with CreateContract.
func RegisterContractType(cont Contract) (uint64, error) {
	rt := reflect.TypeOf(cont)
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	name := rt.Name()
	if pkgPath := rt.PkgPath(); len(pkgPath) > 0 {
		name = pkgPath + "." + name
	}
	h := hash.Hash([]byte(name))
	ClassID := bin.Uint64(h[len(h)-8:])

	if v, has := gContractNameMap[ClassID]; has {
		if name != v {
			return 0, errors.WithStack(ErrExistContractType)
		}
		return ClassID, nil
	}
	gContractNameMap[ClassID] = name
	gContractTypeMap[ClassID] = rt
	return ClassID, nil
}

// CreateContract instantiates the contract of the define
func CreateContract(cd *ContractDefine) (Contract, error) {
	rt, has := gContractTypeMap[cd.ClassID]
	if !has {
		return nil, errors.WithStack(ErrInvalidClassID)
	}
	cont := reflect.New(rt).Interface().(Contract)
	cont.Init(cd.Address, cd.Owner)
	return cont, nil
}

// IsValidClassID checks the class id is registered or not
func IsValidClassID(ClassID uint64) bool {
	_, has := gContractTypeMap[ClassID]
	return has
}

// ContractName returns the registered type name of the class id
func ContractName(ClassID uint64) string {
	return gContractNameMap[ClassID]
}
