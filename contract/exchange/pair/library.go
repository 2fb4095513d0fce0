package pair

import (
	"math/big"

	"github.com/pkg/errors"

	. "github.com/coreswap/coreswap/contract/exchange/util"
)

// Quote returns the equivalent amount of the other asset at the current ratio
func Quote(amountA, reserveA, reserveB *big.Int) (*big.Int, error) {
	if !(amountA.Cmp(Zero) > 0) {
		return nil, errors.New("Exchange: INSUFFICIENT_AMOUNT")
	}
	if !(reserveA.Cmp(Zero) > 0) || !(reserveB.Cmp(Zero) > 0) {
		return nil, errors.New("Exchange: INSUFFICIENT_LIQUIDITY")
	}
	return MulDiv(amountA, reserveB, reserveA), nil
}

// GetAmountOut returns the maximum output amount for the input amount
func GetAmountOut(fee uint64, amountIn, reserveIn, reserveOut *big.Int) (*big.Int, error) {
	if !(amountIn.Cmp(Zero) > 0) {
		return nil, errors.New("Exchange: INSUFFICIENT_INPUT_AMOUNT")
	}
	if !(reserveIn.Cmp(Zero) > 0) || !(reserveOut.Cmp(Zero) > 0) {
		return nil, errors.New("Exchange: INSUFFICIENT_LIQUIDITY")
	}
	amountInWithFee := Mul(amountIn, big.NewInt(FEE_DENOMINATOR-int64(fee)))
	numerator := Mul(amountInWithFee, reserveOut)
	denominator := Add(Mul(reserveIn, big.NewInt(FEE_DENOMINATOR)), amountInWithFee)
	return Div(numerator, denominator), nil
}

// GetAmountIn returns the required input amount for the output amount
func GetAmountIn(fee uint64, amountOut, reserveIn, reserveOut *big.Int) (*big.Int, error) {
	if !(amountOut.Cmp(Zero) > 0) {
		return nil, errors.New("Exchange: INSUFFICIENT_OUTPUT_AMOUNT")
	}
	if !(reserveIn.Cmp(Zero) > 0) || !(reserveOut.Cmp(Zero) > 0) {
		return nil, errors.New("Exchange: INSUFFICIENT_LIQUIDITY")
	}
	numerator := Mul(Mul(reserveIn, amountOut), big.NewInt(FEE_DENOMINATOR))
	denominator := Mul(Sub(reserveOut, amountOut), big.NewInt(FEE_DENOMINATOR-int64(fee)))
	return Add(Div(numerator, denominator), big.NewInt(1)), nil
}
