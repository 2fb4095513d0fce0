package test

import (
	"math/big"
	"time"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"

	. "github.com/coreswap/coreswap/contract/exchange/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Router", func() {

	BeforeEach(func() {
		Expect(beforeEach()).To(Succeed())
		Expect(uniMint(genesis, alice)).To(Succeed())
		Expect(uniApprove(genesis, alice, routerAddr)).To(Succeed())
		genesis.MintCoin(alice, amount.NewAmount(10000, 0))
	})

	AfterEach(func() {
		afterEach()
	})

	It("factory, wcoin", func() {
		is, _ := Exec(genesis, alice, routerAddr, "Factory", []interface{}{})
		Expect(is[0].(common.Address)).To(Equal(factoryAddr))

		is, _ = Exec(genesis, alice, routerAddr, "WCoin", []interface{}{})
		Expect(is[0].(common.Address)).To(Equal(wcoinAddr))
	})

	It("addLiquidity : creates the pair on demand", func() {
		token0Amount := amount.NewAmount(1, 0)
		token1Amount := amount.NewAmount(4, 0)
		expectedLiquidity := amount.NewAmount(2, 0)

		is, err := Exec(genesis, alice, routerAddr, "AddLiquidity", []interface{}{
			token0, token1, token0Amount, token1Amount,
			amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, uint64(0)})
		Expect(err).To(Succeed())

		Expect(is[0].(*amount.Amount)).To(Equal(token0Amount))
		Expect(is[1].(*amount.Amount)).To(Equal(token1Amount))
		Expect(is[2].(*amount.Amount)).To(Equal(expectedLiquidity.Sub(_ML)))

		pairAddr = is[3].(common.Address)
		is, _ = Exec(genesis, alice, factoryAddr, "GetPair", []interface{}{token0, token1})
		Expect(is[0].(common.Address)).To(Equal(pairAddr))
	})

	It("addLiquidity : keeps the pool ratio", func() {
		_, err := Exec(genesis, alice, routerAddr, "AddLiquidity", []interface{}{
			token0, token1, amount.NewAmount(1, 0), amount.NewAmount(4, 0),
			amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, uint64(0)})
		Expect(err).To(Succeed())

		// the unbalanced part of the deposit is not consumed
		is, err := Exec(genesis, alice, routerAddr, "AddLiquidity", []interface{}{
			token0, token1, amount.NewAmount(2, 0), amount.NewAmount(10, 0),
			amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, uint64(0)})
		Expect(err).To(Succeed())
		Expect(is[0].(*amount.Amount)).To(Equal(amount.NewAmount(2, 0)))
		Expect(is[1].(*amount.Amount)).To(Equal(amount.NewAmount(8, 0)))
	})

	It("addLiquidity : minimum not met", func() {
		_, err := Exec(genesis, alice, routerAddr, "AddLiquidity", []interface{}{
			token0, token1, amount.NewAmount(1, 0), amount.NewAmount(4, 0),
			amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, uint64(0)})
		Expect(err).To(Succeed())

		_, err = Exec(genesis, alice, routerAddr, "AddLiquidity", []interface{}{
			token0, token1, amount.NewAmount(2, 0), amount.NewAmount(10, 0),
			amount.NewAmount(0, 0), amount.NewAmount(10, 0), alice, uint64(0)})
		Expect(err).To(MatchError("Router: INSUFFICIENT_B_AMOUNT"))
	})

	It("addLiquidity : expired deadline", func() {
		genesis.SetLastTimestamp(100 * uint64(time.Second))

		_, err := Exec(genesis, alice, routerAddr, "AddLiquidity", []interface{}{
			token0, token1, amount.NewAmount(1, 0), amount.NewAmount(4, 0),
			amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, uint64(99)})
		Expect(err).To(MatchError("Router: EXPIRED"))
	})

	It("removeLiquidity", func() {
		is, err := Exec(genesis, alice, routerAddr, "AddLiquidity", []interface{}{
			token0, token1, amount.NewAmount(1, 0), amount.NewAmount(4, 0),
			amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, uint64(0)})
		Expect(err).To(Succeed())
		liquidity := is[2].(*amount.Amount)
		pairAddr = is[3].(common.Address)

		_, err = Exec(genesis, alice, pairAddr, "Approve", []interface{}{routerAddr, liquidity})
		Expect(err).To(Succeed())

		is, err = Exec(genesis, alice, routerAddr, "RemoveLiquidity", []interface{}{
			token0, token1, liquidity,
			amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, uint64(0)})
		Expect(err).To(Succeed())
		Expect(is[0].(*amount.Amount)).To(Equal(ToAmount(big.NewInt(0).Sub(amount.NewAmount(1, 0).Int, big.NewInt(500)))))
		Expect(is[1].(*amount.Amount)).To(Equal(ToAmount(big.NewInt(0).Sub(amount.NewAmount(4, 0).Int, big.NewInt(2000)))))

		is, _ = Exec(genesis, alice, pairAddr, "BalanceOf", []interface{}{alice})
		Expect(is[0].(*amount.Amount).IsZero()).To(BeTrue())
	})

	It("swapExactTokensForTokens", func() {
		_, err := Exec(genesis, alice, routerAddr, "AddLiquidity", []interface{}{
			token0, token1, amount.NewAmount(5, 0), amount.NewAmount(10, 0),
			amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, uint64(0)})
		Expect(err).To(Succeed())

		swapAmount := amount.NewAmount(1, 0)
		expectedOutputAmount := ToAmount(big.NewInt(1662497915624478906))

		is, err := Exec(genesis, alice, routerAddr, "GetAmountsOut", []interface{}{swapAmount, []common.Address{token0, token1}})
		Expect(err).To(Succeed())
		Expect(is[0].([]*amount.Amount)[1]).To(Equal(expectedOutputAmount))

		before := balanceOf(genesis, token1, bob)
		is, err = Exec(genesis, alice, routerAddr, "SwapExactTokensForTokens", []interface{}{
			swapAmount, amount.NewAmount(0, 0), []common.Address{token0, token1}, bob, uint64(0)})
		Expect(err).To(Succeed())
		amounts := is[0].([]*amount.Amount)
		Expect(amounts[0]).To(Equal(swapAmount))
		Expect(amounts[1]).To(Equal(expectedOutputAmount))
		Expect(balanceOf(genesis, token1, bob).Sub(before)).To(Equal(expectedOutputAmount))
	})

	It("swapExactTokensForTokens : minimum not met", func() {
		_, err := Exec(genesis, alice, routerAddr, "AddLiquidity", []interface{}{
			token0, token1, amount.NewAmount(5, 0), amount.NewAmount(10, 0),
			amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, uint64(0)})
		Expect(err).To(Succeed())

		_, err = Exec(genesis, alice, routerAddr, "SwapExactTokensForTokens", []interface{}{
			amount.NewAmount(1, 0), amount.NewAmount(2, 0), []common.Address{token0, token1}, bob, uint64(0)})
		Expect(err).To(MatchError("Router: INSUFFICIENT_OUT_AMOUNT"))
	})

	It("swapTokensForExactTokens", func() {
		_, err := Exec(genesis, alice, routerAddr, "AddLiquidity", []interface{}{
			token0, token1, amount.NewAmount(5, 0), amount.NewAmount(10, 0),
			amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, uint64(0)})
		Expect(err).To(Succeed())

		outputAmount := amount.NewAmount(1, 0)
		expectedSwapAmount := ToAmount(big.NewInt(557227237267357629))

		is, err := Exec(genesis, alice, routerAddr, "GetAmountsIn", []interface{}{outputAmount, []common.Address{token0, token1}})
		Expect(err).To(Succeed())
		Expect(is[0].([]*amount.Amount)[0]).To(Equal(expectedSwapAmount))

		is, err = Exec(genesis, alice, routerAddr, "SwapTokensForExactTokens", []interface{}{
			outputAmount, amount.NewAmount(2, 0), []common.Address{token0, token1}, bob, uint64(0)})
		Expect(err).To(Succeed())
		amounts := is[0].([]*amount.Amount)
		Expect(amounts[0]).To(Equal(expectedSwapAmount))
		Expect(amounts[1]).To(Equal(outputAmount))
		Expect(balanceOf(genesis, token1, bob)).To(Equal(outputAmount))
	})

	It("swapTokensForExactTokens : excessive input", func() {
		_, err := Exec(genesis, alice, routerAddr, "AddLiquidity", []interface{}{
			token0, token1, amount.NewAmount(5, 0), amount.NewAmount(10, 0),
			amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, uint64(0)})
		Expect(err).To(Succeed())

		_, err = Exec(genesis, alice, routerAddr, "SwapTokensForExactTokens", []interface{}{
			amount.NewAmount(1, 0), ToAmount(big.NewInt(557227237267357628)), []common.Address{token0, token1}, bob, uint64(0)})
		Expect(err).To(MatchError("Router: EXCESSIVE_INPUT_AMOUNT"))
	})

	It("addLiquidityCoin, removeLiquidityCoin", func() {
		tokenAmount := amount.NewAmount(1, 0)
		coinAmount := amount.NewAmount(4, 0)

		is, err := ExecValue(genesis, alice, routerAddr, coinAmount, "AddLiquidityCoin", []interface{}{
			token0, tokenAmount,
			amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, uint64(0)})
		Expect(err).To(Succeed())
		Expect(is[0].(*amount.Amount)).To(Equal(tokenAmount))
		Expect(is[1].(*amount.Amount)).To(Equal(coinAmount))
		liquidity := is[2].(*amount.Amount)
		coinPair := is[3].(common.Address)
		Expect(liquidity).To(Equal(amount.NewAmount(2, 0).Sub(_ML)))

		// the wrapped reserve backs the deposited coin
		Expect(balanceOf(genesis, wcoinAddr, coinPair)).To(Equal(coinAmount))

		coinBefore := genesis.CoinBalance(alice)
		_, err = Exec(genesis, alice, coinPair, "Approve", []interface{}{routerAddr, liquidity})
		Expect(err).To(Succeed())

		is, err = Exec(genesis, alice, routerAddr, "RemoveLiquidityCoin", []interface{}{
			token0, liquidity,
			amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, uint64(0)})
		Expect(err).To(Succeed())
		amountCoin := is[1].(*amount.Amount)
		Expect(genesis.CoinBalance(alice)).To(Equal(coinBefore.Add(amountCoin)))
	})

	It("addLiquidityCoin : refunds the unconsumed coin", func() {
		_, err := ExecValue(genesis, alice, routerAddr, amount.NewAmount(4, 0), "AddLiquidityCoin", []interface{}{
			token0, amount.NewAmount(1, 0),
			amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, uint64(0)})
		Expect(err).To(Succeed())

		coinBefore := genesis.CoinBalance(alice)
		is, err := ExecValue(genesis, alice, routerAddr, amount.NewAmount(10, 0), "AddLiquidityCoin", []interface{}{
			token0, amount.NewAmount(1, 0),
			amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, uint64(0)})
		Expect(err).To(Succeed())
		Expect(is[1].(*amount.Amount)).To(Equal(amount.NewAmount(4, 0)))
		Expect(genesis.CoinBalance(alice)).To(Equal(coinBefore.Sub(amount.NewAmount(4, 0))))
	})

	It("swapExactCoinForTokens, swapTokensForExactCoin", func() {
		_, err := ExecValue(genesis, alice, routerAddr, amount.NewAmount(10, 0), "AddLiquidityCoin", []interface{}{
			token0, amount.NewAmount(5, 0),
			amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, uint64(0)})
		Expect(err).To(Succeed())

		swapAmount := amount.NewAmount(1, 0)
		expectedOutputAmount := ToAmount(big.NewInt(453305446940074565))

		is, err := ExecValue(genesis, bob, routerAddr, swapAmount, "SwapExactCoinForTokens", []interface{}{
			amount.NewAmount(0, 0), []common.Address{wcoinAddr, token0}, bob, uint64(0)})
		Expect(err).To(HaveOccurred()) // bob holds no coin yet

		genesis.MintCoin(bob, amount.NewAmount(100, 0))
		is, err = ExecValue(genesis, bob, routerAddr, swapAmount, "SwapExactCoinForTokens", []interface{}{
			amount.NewAmount(0, 0), []common.Address{wcoinAddr, token0}, bob, uint64(0)})
		Expect(err).To(Succeed())
		Expect(is[0].([]*amount.Amount)[1]).To(Equal(expectedOutputAmount))
		Expect(balanceOf(genesis, token0, bob)).To(Equal(expectedOutputAmount))

		// swap the tokens back into the coin
		Expect(tokenApprove(genesis, token0, bob, routerAddr, MaxUint256Amount())).To(Succeed())
		coinBefore := genesis.CoinBalance(bob)
		outputCoin := amount.NewAmount(0, 100000000000000000) // 0.1 coin
		is, err = Exec(genesis, bob, routerAddr, "SwapTokensForExactCoin", []interface{}{
			outputCoin, expectedOutputAmount, []common.Address{token0, wcoinAddr}, bob, uint64(0)})
		Expect(err).To(Succeed())
		Expect(genesis.CoinBalance(bob)).To(Equal(coinBefore.Add(outputCoin)))
	})

	It("swapExactCoinForTokens : invalid path", func() {
		genesis.MintCoin(bob, amount.NewAmount(10, 0))
		_, err := ExecValue(genesis, bob, routerAddr, amount.NewAmount(1, 0), "SwapExactCoinForTokens", []interface{}{
			amount.NewAmount(0, 0), []common.Address{token0, wcoinAddr}, bob, uint64(0)})
		Expect(err).To(MatchError("Router: INVALID_PATH"))
	})
})
