package util

import (
	"math/big"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
)

var (
	Zero       = big.NewInt(0)
	ZeroAmount = amount.NewAmount(0, 0)
	MaxUint256 = Sub(Exp(big.NewInt(2), big.NewInt(256)), big.NewInt(1))

	ZeroAddress = common.Address{}
)
