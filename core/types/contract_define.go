package types

import (
	"github.com/coreswap/coreswap/common"
)

// ContractDefine holds the identity of a deployed contract
type ContractDefine struct {
	Address common.Address
	Owner   common.Address
	ClassID uint64
}

// Clone returns the cloned value of it
func (s *ContractDefine) Clone() *ContractDefine {
	return &ContractDefine{
		Address: s.Address,
		Owner:   s.Owner,
		ClassID: s.ClassID,
	}
}
