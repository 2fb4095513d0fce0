package position

import (
	"github.com/pkg/errors"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/bin"
	"github.com/coreswap/coreswap/common/hash"
)

const (
	// fee tiers in parts per million
	FeeTierLowest  = uint64(500)
	FeeTierMedium  = uint64(3000)
	FeeTierHighest = uint64(10000)

	MinTick = int64(-887272)
	MaxTick = int64(887272)

	// pair fee units are parts per 1e10, tiers are parts per 1e6
	feeTierScale = uint64(10000)
)

var (
	tagPoolClassID    = byte(0x01)
	tagNextPositionID = byte(0x02)
	tagAllPools       = byte(0x03)
	tagManager        = byte(0x04)
	tagPool           = byte(0x10)
	tagPosition       = byte(0x20)
)

// TickSpacing returns the tick alignment of the fee tier
func TickSpacing(fee uint64) (int64, error) {
	switch fee {
	case FeeTierLowest:
		return 10, nil
	case FeeTierMedium:
		return 60, nil
	case FeeTierHighest:
		return 200, nil
	}
	return 0, errors.New("Position: INVALID_FEE_TIER")
}

func checkTicks(fee uint64, tickLower, tickUpper int64) error {
	spacing, err := TickSpacing(fee)
	if err != nil {
		return err
	}
	if tickLower >= tickUpper {
		return errors.New("Position: TICK_ORDER")
	}
	if tickLower < MinTick || tickUpper > MaxTick {
		return errors.New("Position: TICK_BOUND")
	}
	if tickLower%spacing != 0 || tickUpper%spacing != 0 {
		return errors.New("Position: TICK_SPACING")
	}
	return nil
}

func makePoolKey(token0, token1 common.Address, fee uint64) []byte {
	bs := make([]byte, 1+common.AddressLength*2+8)
	bs[0] = tagPool
	copy(bs[1:], token0[:])
	copy(bs[1+common.AddressLength:], token1[:])
	copy(bs[1+common.AddressLength*2:], bin.Uint64Bytes(fee))
	return bs
}

func makePositionKey(id uint64) []byte {
	bs := make([]byte, 1+8)
	bs[0] = tagPosition
	copy(bs[1:], bin.Uint64Bytes(id))
	return bs
}

// PoolFor calculates the pool address without any external calls
func PoolFor(manager, token0, token1 common.Address, fee uint64, poolClassID uint64) common.Address {
	base := make([]byte, 1+common.AddressLength*3+16)
	base[0] = 0xff
	copy(base[1:], manager[:])
	copy(base[1+common.AddressLength:], token0[:])
	copy(base[1+common.AddressLength*2:], token1[:])
	copy(base[1+common.AddressLength*3:], bin.Uint64Bytes(fee))
	copy(base[1+common.AddressLength*3+8:], bin.Uint64Bytes(poolClassID))
	h := hash.Hash(base)
	return common.BytesToAddress(h[12:])
}
