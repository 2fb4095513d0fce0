package types

import (
	"github.com/coreswap/coreswap/common"
)

// ContextData is a state layer of the context
type ContextData struct {
	cache             *ContextData
	DataMap           map[string][]byte
	DeletedDataMap    map[string]bool
	ContractDefineMap map[common.Address]*ContractDefine
}

// NewContextData returns a ContextData on top of the cache layer
func NewContextData(cache *ContextData) *ContextData {
	ctd := &ContextData{
		cache:             cache,
		DataMap:           map[string][]byte{},
		DeletedDataMap:    map[string]bool{},
		ContractDefineMap: map[common.Address]*ContractDefine{},
	}
	return ctd
}

func dataKey(cont common.Address, addr common.Address, name []byte) string {
	bs := make([]byte, 0, common.AddressLength*2+len(name))
	bs = append(bs, cont[:]...)
	bs = append(bs, addr[:]...)
	bs = append(bs, name...)
	return string(bs)
}

// Data returns the data of the account of the contract
func (ctd *ContextData) Data(cont common.Address, addr common.Address, name []byte) []byte {
	key := dataKey(cont, addr, name)
	for st := ctd; st != nil; st = st.cache {
		if st.DeletedDataMap[key] {
			return nil
		}
		if value, has := st.DataMap[key]; has {
			return value
		}
	}
	return nil
}

// SetData inserts the data of the account of the contract
func (ctd *ContextData) SetData(cont common.Address, addr common.Address, name []byte, value []byte) {
	key := dataKey(cont, addr, name)
	if len(value) == 0 {
		delete(ctd.DataMap, key)
		ctd.DeletedDataMap[key] = true
	} else {
		ctd.DataMap[key] = value
		delete(ctd.DeletedDataMap, key)
	}
}

// ContractDefine returns the contract define of the address
func (ctd *ContextData) ContractDefine(addr common.Address) *ContractDefine {
	for st := ctd; st != nil; st = st.cache {
		if cd, has := st.ContractDefineMap[addr]; has {
			return cd
		}
	}
	return nil
}

// SetContractDefine inserts the contract define
func (ctd *ContextData) SetContractDefine(cd *ContractDefine) {
	ctd.ContractDefineMap[cd.Address] = cd
}

// IsContract returns true when the address is a deployed contract
func (ctd *ContextData) IsContract(addr common.Address) bool {
	return ctd.ContractDefine(addr) != nil
}

func (ctd *ContextData) mergeInto(dst *ContextData) {
	for key, value := range ctd.DataMap {
		dst.DataMap[key] = value
		delete(dst.DeletedDataMap, key)
	}
	for key := range ctd.DeletedDataMap {
		delete(dst.DataMap, key)
		dst.DeletedDataMap[key] = true
	}
	for addr, cd := range ctd.ContractDefineMap {
		dst.ContractDefineMap[addr] = cd
	}
}
