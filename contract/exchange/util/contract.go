package util

import (
	"strconv"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/bin"
	"github.com/coreswap/coreswap/contract/token"
	"github.com/coreswap/coreswap/core/types"
)

// DeployTokens deploys the number of plain tokens with the deployer as master
func DeployTokens(ctx *types.Context, classID uint64, size uint8, deployer common.Address) []common.Address {
	_coins := make([]common.Address, size, size)
	for k := uint8(0); k < size; k++ {
		tokenConstrunction := &token.TokenContractConstruction{
			Name:   "Token" + strconv.Itoa(int(k)),
			Symbol: "TOKEN" + strconv.Itoa(int(k)),
		}
		bs, _, _ := bin.WriterToBytes(tokenConstrunction)
		v, _ := ctx.DeployContract(deployer, classID, bs)
		tokenContract := v.(*token.TokenContract)
		_coins[k] = tokenContract.Address()
	}
	return _coins
}
