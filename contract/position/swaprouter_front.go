package position

import (
	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/core/types"

	. "github.com/coreswap/coreswap/contract/exchange/util"
)

func (cont *SwapRouterContract) Front() interface{} {
	return &swapRouterFront{
		cont: cont,
	}
}

type swapRouterFront struct {
	cont *SwapRouterContract
}

func (f *swapRouterFront) Manager(cc types.ContractLoader) common.Address {
	return f.cont.manager(cc)
}

func (f *swapRouterFront) ExactInputSingle(cc *types.ContractContext, TokenIn, TokenOut common.Address, Fee uint64, Recipient common.Address, AmountIn, AmountOutMin *amount.Amount, Deadline uint64) (*amount.Amount, error) {
	amountOut, err := f.cont.exactInputSingle(cc, TokenIn, TokenOut, Fee, Recipient, AmountIn.Int, AmountOutMin.Int, Deadline)
	if err != nil {
		return nil, err
	}
	return ToAmount(amountOut), nil
}
