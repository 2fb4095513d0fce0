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

var _ = Describe("Core", func() {

	BeforeEach(func() {
		Expect(beforeEach()).To(Succeed())
		Expect(supply(genesis, alice, coreAddr)).To(Succeed())
	})

	AfterEach(func() {
		afterEach()
	})

	It("router, factory, wcoin", func() {
		is, _ := Exec(genesis, alice, coreAddr, "Router", []interface{}{})
		Expect(is[0].(common.Address)).To(Equal(routerAddr))

		is, _ = Exec(genesis, alice, coreAddr, "Factory", []interface{}{})
		Expect(is[0].(common.Address)).To(Equal(factoryAddr))

		is, _ = Exec(genesis, alice, coreAddr, "WCoin", []interface{}{})
		Expect(is[0].(common.Address)).To(Equal(wcoinAddr))
	})

	Describe("AddLiquidity", func() {

		It("mints the pool share to the caller and keeps nothing", func() {
			amount0 := amount.NewAmount(1, 0)
			amount1 := amount.NewAmount(4, 0)

			is, err := Exec(genesis, alice, coreAddr, "AddLiquidity", []interface{}{
				token0, token1, amount0, amount1,
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())
			Expect(is[0].(*amount.Amount)).To(Equal(amount0))
			Expect(is[1].(*amount.Amount)).To(Equal(amount1))
			liquidity := is[2].(*amount.Amount)
			Expect(liquidity).To(Equal(amount.NewAmount(2, 0).Sub(_ML)))

			is, _ = Exec(genesis, alice, factoryAddr, "GetPair", []interface{}{token0, token1})
			pairAddr := is[0].(common.Address)
			Expect(pairAddr).ToNot(Equal(ZeroAddress))

			is, _ = Exec(genesis, alice, pairAddr, "BalanceOf", []interface{}{alice})
			Expect(is[0].(*amount.Amount)).To(Equal(liquidity))

			expectNoResidual(coreAddr, routerAddr, token0, token1)

			ev := lastEvent("LiquidityAdded")
			Expect(ev).ToNot(BeNil())
			Expect(ev.Contract).To(Equal(coreAddr))
		})

		It("settles the unconsumed side back to the caller", func() {
			_, err := Exec(genesis, alice, coreAddr, "AddLiquidity", []interface{}{
				token0, token1, amount.NewAmount(1, 0), amount.NewAmount(4, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())

			before0 := balanceOf(genesis, token0, alice)
			before1 := balanceOf(genesis, token1, alice)

			is, err := Exec(genesis, alice, coreAddr, "AddLiquidity", []interface{}{
				token0, token1, amount.NewAmount(2, 0), amount.NewAmount(10, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())
			Expect(is[0].(*amount.Amount)).To(Equal(amount.NewAmount(2, 0)))
			Expect(is[1].(*amount.Amount)).To(Equal(amount.NewAmount(8, 0)))

			// only the consumed amounts left the account
			Expect(before0.Sub(balanceOf(genesis, token0, alice))).To(Equal(amount.NewAmount(2, 0)))
			Expect(before1.Sub(balanceOf(genesis, token1, alice))).To(Equal(amount.NewAmount(8, 0)))

			expectNoResidual(coreAddr, routerAddr, token0, token1)
		})

		It("rejects a caller without allowance", func() {
			Expect(tokenMint(genesis, token0, charlie, amount.NewAmount(10, 0))).To(Succeed())
			Expect(tokenMint(genesis, token1, charlie, amount.NewAmount(10, 0))).To(Succeed())

			_, err := Exec(genesis, charlie, coreAddr, "AddLiquidity", []interface{}{
				token0, token1, amount.NewAmount(1, 0), amount.NewAmount(4, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(MatchError("Core: INSUFFICIENT_ALLOWANCE"))
		})

		It("rejects identical tokens", func() {
			_, err := Exec(genesis, alice, coreAddr, "AddLiquidity", []interface{}{
				token0, token0, amount.NewAmount(1, 0), amount.NewAmount(4, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(MatchError("Core: IDENTICAL_ADDRESSES"))
		})

		It("rejects a non positive amount", func() {
			_, err := Exec(genesis, alice, coreAddr, "AddLiquidity", []interface{}{
				token0, token1, amount.NewAmount(0, 0), amount.NewAmount(4, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(MatchError("Core: INVALID_AMOUNT"))
		})

		It("rejects an expired deadline", func() {
			genesis.SetLastTimestamp(100 * uint64(time.Second))

			_, err := Exec(genesis, alice, coreAddr, "AddLiquidity", []interface{}{
				token0, token1, amount.NewAmount(1, 0), amount.NewAmount(4, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(99)})
			Expect(err).To(MatchError("Core: EXPIRED"))
		})
	})

	Describe("RemoveLiquidity", func() {

		BeforeEach(func() {
			_, err := Exec(genesis, alice, coreAddr, "AddLiquidity", []interface{}{
				token0, token1, amount.NewAmount(1, 0), amount.NewAmount(4, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())
		})

		It("burns the share and pays out both tokens", func() {
			is, _ := Exec(genesis, alice, factoryAddr, "GetPair", []interface{}{token0, token1})
			pairAddr := is[0].(common.Address)

			is, _ = Exec(genesis, alice, pairAddr, "BalanceOf", []interface{}{alice})
			liquidity := is[0].(*amount.Amount)

			_, err := Exec(genesis, alice, pairAddr, "Approve", []interface{}{coreAddr, liquidity})
			Expect(err).To(Succeed())

			before0 := balanceOf(genesis, token0, alice)
			is, err = Exec(genesis, alice, coreAddr, "RemoveLiquidity", []interface{}{
				token0, token1, liquidity,
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())
			amountA := is[0].(*amount.Amount)
			Expect(amountA).To(Equal(ToAmount(big.NewInt(0).Sub(amount.NewAmount(1, 0).Int, big.NewInt(500)))))
			Expect(balanceOf(genesis, token0, alice).Sub(before0)).To(Equal(amountA))

			is, _ = Exec(genesis, alice, pairAddr, "BalanceOf", []interface{}{alice})
			Expect(is[0].(*amount.Amount).IsZero()).To(BeTrue())

			expectNoResidual(coreAddr, routerAddr, token0, token1, pairAddr)

			ev := lastEvent("LiquidityRemoved")
			Expect(ev).ToNot(BeNil())
			Expect(ev.Contract).To(Equal(coreAddr))
		})

		It("fails without an existing pool", func() {
			other := DeployTokens(genesis, classMap["Token"], 1, admin)[0]

			_, err := Exec(genesis, alice, coreAddr, "RemoveLiquidity", []interface{}{
				token0, other, amount.NewAmount(1, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(MatchError("Core: POOL_NOT_INITIALIZED"))
		})
	})

	Describe("Swap", func() {

		BeforeEach(func() {
			_, err := Exec(genesis, alice, coreAddr, "AddLiquidity", []interface{}{
				token0, token1, amount.NewAmount(5, 0), amount.NewAmount(10, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())
			Expect(supply(genesis, bob, coreAddr)).To(Succeed())
		})

		It("swapExactTokensForTokens pays the caller directly", func() {
			swapAmount := amount.NewAmount(1, 0)
			expectedOutputAmount := ToAmount(big.NewInt(1662497915624478906))

			before0 := balanceOf(genesis, token0, bob)
			before1 := balanceOf(genesis, token1, bob)

			is, err := Exec(genesis, bob, coreAddr, "SwapExactTokensForTokens", []interface{}{
				swapAmount, amount.NewAmount(0, 0), []common.Address{token0, token1}, uint64(0)})
			Expect(err).To(Succeed())
			amounts := is[0].([]*amount.Amount)
			Expect(amounts[0]).To(Equal(swapAmount))
			Expect(amounts[1]).To(Equal(expectedOutputAmount))

			Expect(before0.Sub(balanceOf(genesis, token0, bob))).To(Equal(swapAmount))
			Expect(balanceOf(genesis, token1, bob).Sub(before1)).To(Equal(expectedOutputAmount))

			expectNoResidual(coreAddr, routerAddr, token0, token1)

			ev := lastEvent("Swapped")
			Expect(ev).ToNot(BeNil())
			Expect(ev.Contract).To(Equal(coreAddr))
		})

		It("swapTokensForExactTokens refunds the unused input", func() {
			outputAmount := amount.NewAmount(1, 0)
			expectedSwapAmount := ToAmount(big.NewInt(557227237267357629))
			inMax := amount.NewAmount(2, 0)

			before0 := balanceOf(genesis, token0, bob)
			is, err := Exec(genesis, bob, coreAddr, "SwapTokensForExactTokens", []interface{}{
				outputAmount, inMax, []common.Address{token0, token1}, uint64(0)})
			Expect(err).To(Succeed())
			amounts := is[0].([]*amount.Amount)
			Expect(amounts[0]).To(Equal(expectedSwapAmount))

			// only the consumed input left the account, the rest was settled back
			Expect(before0.Sub(balanceOf(genesis, token0, bob))).To(Equal(expectedSwapAmount))

			expectNoResidual(coreAddr, routerAddr, token0, token1)
		})

		It("rejects a short path", func() {
			_, err := Exec(genesis, bob, coreAddr, "SwapExactTokensForTokens", []interface{}{
				amount.NewAmount(1, 0), amount.NewAmount(0, 0), []common.Address{token0}, uint64(0)})
			Expect(err).To(MatchError("Core: INVALID_PATH"))
		})
	})

	Describe("Coin operations", func() {

		BeforeEach(func() {
			genesis.MintCoin(alice, amount.NewAmount(1000, 0))
			genesis.MintCoin(bob, amount.NewAmount(1000, 0))
		})

		It("addLiquidityCoin wraps the value and refunds the rest", func() {
			is, err := ExecValue(genesis, alice, coreAddr, amount.NewAmount(4, 0), "AddLiquidityCoin", []interface{}{
				token0, amount.NewAmount(1, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())
			Expect(is[0].(*amount.Amount)).To(Equal(amount.NewAmount(1, 0)))
			Expect(is[1].(*amount.Amount)).To(Equal(amount.NewAmount(4, 0)))

			coinBefore := genesis.CoinBalance(alice)
			is, err = ExecValue(genesis, alice, coreAddr, amount.NewAmount(10, 0), "AddLiquidityCoin", []interface{}{
				token0, amount.NewAmount(1, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())
			Expect(is[1].(*amount.Amount)).To(Equal(amount.NewAmount(4, 0)))
			Expect(coinBefore.Sub(genesis.CoinBalance(alice))).To(Equal(amount.NewAmount(4, 0)))

			expectNoResidual(coreAddr, routerAddr, token0, wcoinAddr)
		})

		It("addLiquidityCoin rejects a zero value", func() {
			_, err := Exec(genesis, alice, coreAddr, "AddLiquidityCoin", []interface{}{
				token0, amount.NewAmount(1, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(MatchError("Core: INVALID_AMOUNT"))
		})

		It("removeLiquidityCoin pays the coin back", func() {
			is, err := ExecValue(genesis, alice, coreAddr, amount.NewAmount(4, 0), "AddLiquidityCoin", []interface{}{
				token0, amount.NewAmount(1, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())
			liquidity := is[2].(*amount.Amount)

			is, _ = Exec(genesis, alice, factoryAddr, "GetPair", []interface{}{token0, wcoinAddr})
			coinPair := is[0].(common.Address)

			_, err = Exec(genesis, alice, coinPair, "Approve", []interface{}{coreAddr, liquidity})
			Expect(err).To(Succeed())

			coinBefore := genesis.CoinBalance(alice)
			is, err = Exec(genesis, alice, coreAddr, "RemoveLiquidityCoin", []interface{}{
				token0, liquidity,
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())
			amountCoin := is[1].(*amount.Amount)
			Expect(genesis.CoinBalance(alice)).To(Equal(coinBefore.Add(amountCoin)))

			expectNoResidual(coreAddr, routerAddr, token0, wcoinAddr, coinPair)
		})

		It("swapExactCoinForTokens and swapTokensForExactCoin", func() {
			_, err := ExecValue(genesis, alice, coreAddr, amount.NewAmount(10, 0), "AddLiquidityCoin", []interface{}{
				token0, amount.NewAmount(5, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())

			expectedOutputAmount := ToAmount(big.NewInt(453305446940074565))
			is, err := ExecValue(genesis, bob, coreAddr, amount.NewAmount(1, 0), "SwapExactCoinForTokens", []interface{}{
				amount.NewAmount(0, 0), []common.Address{wcoinAddr, token0}, uint64(0)})
			Expect(err).To(Succeed())
			Expect(is[0].([]*amount.Amount)[1]).To(Equal(expectedOutputAmount))
			Expect(balanceOf(genesis, token0, bob)).To(Equal(expectedOutputAmount))

			Expect(tokenApprove(genesis, token0, bob, coreAddr, expectedOutputAmount)).To(Succeed())
			coinBefore := genesis.CoinBalance(bob)
			outputCoin := amount.NewAmount(0, 100000000000000000) // 0.1 coin
			_, err = Exec(genesis, bob, coreAddr, "SwapTokensForExactCoin", []interface{}{
				outputCoin, expectedOutputAmount, []common.Address{token0, wcoinAddr}, uint64(0)})
			Expect(err).To(Succeed())
			Expect(genesis.CoinBalance(bob)).To(Equal(coinBefore.Add(outputCoin)))

			expectNoResidual(coreAddr, routerAddr, token0, wcoinAddr)
		})
	})
})
