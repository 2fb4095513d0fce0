package factory

import (
	"github.com/coreswap/coreswap/common"
)

var (
	tagOwner       = byte(0x01)
	tagPairClassID = byte(0x02)
	tagAllPairs    = byte(0x03)
	tagPair        = byte(0x10)
)

func makePairKey(token0, token1 common.Address) []byte {
	bs := make([]byte, 1+common.AddressLength*2)
	bs[0] = tagPair
	copy(bs[1:], token0[:])
	copy(bs[1+common.AddressLength:], token1[:])
	return bs
}
