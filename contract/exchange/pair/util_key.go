package pair

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/bin"
	"github.com/coreswap/coreswap/common/hash"

	. "github.com/coreswap/coreswap/contract/exchange/util"
)

const (
	FEE_DENOMINATOR = 10000000000
	MAX_FEE         = FEE_DENOMINATOR / 2 // 50%

	// 0.3%
	DEFAULT_FEE = 30000000

	MINIMUM_LIQUIDITY = 1000
)

var (
	// lp token
	tagTokenName        = byte(0x01)
	tagTokenSymbol      = byte(0x02)
	tagTokenTotalSupply = byte(0x03)
	tagTokenAmount      = byte(0x04)
	tagTokenApprove     = byte(0x05)

	// pair
	tagFactory            = byte(0x21)
	tagPairFee            = byte(0x22)
	tagBlockTimestampLast = byte(0x23)

	tagPairToken0               = byte(0x61)
	tagPairToken1               = byte(0x62)
	tagPairReserve0             = byte(0x63)
	tagPairReserve1             = byte(0x64)
	tagPairPrice0CumulativeLast = byte(0x65)
	tagPairPrice1CumulativeLast = byte(0x66)
)

func makeTokenKey(sender common.Address, key byte) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = key
	copy(bs[1:], sender[:])
	return bs
}

func contractClassID(cont interface{}) uint64 {
	rt := reflect.TypeOf(cont)
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	name := rt.Name()
	if pkgPath := rt.PkgPath(); len(pkgPath) > 0 {
		name = pkgPath + "." + name
	}
	h := hash.Hash([]byte(name))
	return bin.Uint64(h[len(h)-8:])
}

func pairContractAddress(ClassID uint64, factory, token0, token1 common.Address) common.Address {
	base := make([]byte, 1+common.AddressLength*3+8)
	base[0] = 0xff
	copy(base[1:], factory[:])
	copy(base[1+common.AddressLength:], token0[:])
	copy(base[1+common.AddressLength*2:], token1[:])
	copy(base[1+common.AddressLength*3:], bin.Uint64Bytes(ClassID))
	h := hash.Hash(base)
	return common.BytesToAddress(h[12:])
}

// SortTokens orders the two token addresses canonically
func SortTokens(tokenA, tokenB common.Address) (common.Address, common.Address, error) {
	if tokenA == tokenB {
		return ZeroAddress, ZeroAddress, errors.New("Exchange: IDENTICAL_ADDRESSES")
	}

	var token0, token1 common.Address
	if tokenA.String() < tokenB.String() {
		token0, token1 = tokenA, tokenB
	} else {
		token0, token1 = tokenB, tokenA
	}

	if token0 == ZeroAddress {
		return ZeroAddress, ZeroAddress, errors.New("Exchange: ZERO_ADDRESS")
	}
	return token0, token1, nil
}

// PairFor calculates the pair address without any external calls
func PairFor(factory, tokenA, tokenB common.Address) (common.Address, error) {
	token0, token1, err := SortTokens(tokenA, tokenB)
	if err != nil {
		return ZeroAddress, err
	}
	ClassID := contractClassID(&PairContract{})
	return pairContractAddress(ClassID, factory, token0, token1), nil
}
