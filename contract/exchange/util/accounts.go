package util

import (
	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/hash"
)

// Accounts returns the fixed admin and user addresses of the test fixtures
func Accounts() (common.Address, []common.Address) {
	admin := AccountAddress(0)
	users := make([]common.Address, 0, 10)
	for i := 1; i < 11; i++ {
		users = append(users, AccountAddress(uint8(i)))
	}
	return admin, users
}

// AccountAddress derives a deterministic account address from the index
func AccountAddress(index uint8) common.Address {
	h := hash.Hash([]byte{0xac, index})
	return common.BytesToAddress(h[:])
}
