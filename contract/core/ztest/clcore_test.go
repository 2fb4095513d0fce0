package test

import (
	"math/big"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/contract/position"

	. "github.com/coreswap/coreswap/contract/exchange/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CLCore", func() {

	feeTier := uint64(3000)
	tickLower := int64(-60)
	tickUpper := int64(60)

	BeforeEach(func() {
		Expect(beforeEach()).To(Succeed())
		Expect(supply(genesis, alice, clCoreAddr)).To(Succeed())
	})

	AfterEach(func() {
		afterEach()
	})

	It("manager, swapRouter", func() {
		is, _ := Exec(genesis, alice, clCoreAddr, "Manager", []interface{}{})
		Expect(is[0].(common.Address)).To(Equal(managerAddr))

		is, _ = Exec(genesis, alice, clCoreAddr, "SwapRouter", []interface{}{})
		Expect(is[0].(common.Address)).To(Equal(swapRouterAddr))
	})

	Describe("AddLiquidity", func() {

		It("mints a fresh position owned by the caller", func() {
			is, err := Exec(genesis, alice, clCoreAddr, "AddLiquidity", []interface{}{
				uint64(0), token0, token1, feeTier, tickLower, tickUpper,
				amount.NewAmount(1, 0), amount.NewAmount(4, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())

			positionID := is[0].(uint64)
			Expect(positionID).To(Equal(uint64(1)))
			liquidity := is[1].(*amount.Amount)
			Expect(liquidity).To(Equal(amount.NewAmount(2, 0).Sub(_ML)))
			Expect(is[2].(*amount.Amount)).To(Equal(amount.NewAmount(1, 0)))
			Expect(is[3].(*amount.Amount)).To(Equal(amount.NewAmount(4, 0)))

			// the caller owns the position, the facade operates it
			is, err = Exec(genesis, alice, managerAddr, "Positions", []interface{}{positionID})
			Expect(err).To(Succeed())
			pos := is[0].(*position.Position)
			Expect(pos.Owner).To(Equal(alice))
			Expect(pos.Operator).To(Equal(clCoreAddr))
			Expect(pos.Fee).To(Equal(feeTier))
			Expect(pos.TickLower).To(Equal(tickLower))
			Expect(pos.TickUpper).To(Equal(tickUpper))
			Expect(pos.Liquidity).To(Equal(liquidity.Int))

			// the manager holds the pool share
			is, _ = Exec(genesis, alice, managerAddr, "GetPool", []interface{}{token0, token1, feeTier})
			poolAddr := is[0].(common.Address)
			Expect(poolAddr).ToNot(Equal(ZeroAddress))
			is, _ = Exec(genesis, alice, poolAddr, "BalanceOf", []interface{}{managerAddr})
			Expect(is[0].(*amount.Amount)).To(Equal(liquidity))

			expectNoResidual(clCoreAddr, managerAddr, token0, token1)
		})

		It("reuses the pool on a second mint", func() {
			_, err := Exec(genesis, alice, clCoreAddr, "AddLiquidity", []interface{}{
				uint64(0), token0, token1, feeTier, tickLower, tickUpper,
				amount.NewAmount(1, 0), amount.NewAmount(4, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())
			is, _ := Exec(genesis, alice, managerAddr, "GetPool", []interface{}{token0, token1, feeTier})
			poolAddr := is[0].(common.Address)

			is, err = Exec(genesis, alice, clCoreAddr, "AddLiquidity", []interface{}{
				uint64(0), token0, token1, feeTier, tickLower, tickUpper,
				amount.NewAmount(1, 0), amount.NewAmount(4, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())
			Expect(is[0].(uint64)).To(Equal(uint64(2)))

			is, _ = Exec(genesis, alice, managerAddr, "GetPool", []interface{}{token0, token1, feeTier})
			Expect(is[0].(common.Address)).To(Equal(poolAddr))

			is, _ = Exec(genesis, alice, managerAddr, "AllPools", []interface{}{})
			Expect(is[0].([]common.Address)).To(HaveLen(1))
		})

		It("increases an existing position regardless of the passed order", func() {
			is, err := Exec(genesis, alice, clCoreAddr, "AddLiquidity", []interface{}{
				uint64(0), token0, token1, feeTier, tickLower, tickUpper,
				amount.NewAmount(1, 0), amount.NewAmount(4, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())
			positionID := is[0].(uint64)

			// the reversed order maps onto the pool order
			is, err = Exec(genesis, alice, clCoreAddr, "AddLiquidity", []interface{}{
				positionID, token1, token0, feeTier, tickLower, tickUpper,
				amount.NewAmount(8, 0), amount.NewAmount(2, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())
			Expect(is[1].(*amount.Amount)).To(Equal(amount.NewAmount(4, 0)))
			Expect(is[2].(*amount.Amount)).To(Equal(amount.NewAmount(8, 0)))
			Expect(is[3].(*amount.Amount)).To(Equal(amount.NewAmount(2, 0)))

			is, _ = Exec(genesis, alice, managerAddr, "Positions", []interface{}{positionID})
			pos := is[0].(*position.Position)
			Expect(pos.Liquidity).To(Equal(amount.NewAmount(6, 0).Sub(_ML).Int))

			expectNoResidual(clCoreAddr, managerAddr, token0, token1)
		})

		It("rejects an increase by a non owner", func() {
			is, err := Exec(genesis, alice, clCoreAddr, "AddLiquidity", []interface{}{
				uint64(0), token0, token1, feeTier, tickLower, tickUpper,
				amount.NewAmount(1, 0), amount.NewAmount(4, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())
			positionID := is[0].(uint64)

			Expect(supply(genesis, bob, clCoreAddr)).To(Succeed())
			_, err = Exec(genesis, bob, clCoreAddr, "AddLiquidity", []interface{}{
				positionID, token0, token1, feeTier, tickLower, tickUpper,
				amount.NewAmount(1, 0), amount.NewAmount(4, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(MatchError("Core: NOT_POSITION_OWNER"))
		})

		It("rejects an invalid fee tier", func() {
			_, err := Exec(genesis, alice, clCoreAddr, "AddLiquidity", []interface{}{
				uint64(0), token0, token1, uint64(1234), tickLower, tickUpper,
				amount.NewAmount(1, 0), amount.NewAmount(4, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(MatchError("Position: INVALID_FEE_TIER"))
		})

		It("rejects a misaligned tick range", func() {
			_, err := Exec(genesis, alice, clCoreAddr, "AddLiquidity", []interface{}{
				uint64(0), token0, token1, feeTier, int64(-61), tickUpper,
				amount.NewAmount(1, 0), amount.NewAmount(4, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(MatchError("Position: TICK_SPACING"))

			_, err = Exec(genesis, alice, clCoreAddr, "AddLiquidity", []interface{}{
				uint64(0), token0, token1, feeTier, tickUpper, tickLower,
				amount.NewAmount(1, 0), amount.NewAmount(4, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(MatchError("Position: TICK_ORDER"))
		})
	})

	Describe("RemoveLiquidity", func() {

		var positionID uint64

		BeforeEach(func() {
			is, err := Exec(genesis, alice, clCoreAddr, "AddLiquidity", []interface{}{
				uint64(0), token0, token1, feeTier, tickLower, tickUpper,
				amount.NewAmount(1, 0), amount.NewAmount(4, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())
			positionID = is[0].(uint64)
		})

		It("pays the withdrawn amounts to the owner", func() {
			withdraw := amount.NewAmount(1, 0)

			before0 := balanceOf(genesis, token0, alice)
			before1 := balanceOf(genesis, token1, alice)

			is, err := Exec(genesis, alice, clCoreAddr, "RemoveLiquidity", []interface{}{
				positionID, withdraw,
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())
			amount0 := is[0].(*amount.Amount)
			amount1 := is[1].(*amount.Amount)
			Expect(amount0).To(Equal(amount.NewAmount(0, 500000000000000000)))
			Expect(amount1).To(Equal(amount.NewAmount(2, 0)))

			Expect(balanceOf(genesis, token0, alice).Sub(before0)).To(Equal(amount0))
			Expect(balanceOf(genesis, token1, alice).Sub(before1)).To(Equal(amount1))

			// the position shrank and owes nothing
			is, _ = Exec(genesis, alice, managerAddr, "Positions", []interface{}{positionID})
			pos := is[0].(*position.Position)
			Expect(pos.Liquidity).To(Equal(amount.NewAmount(1, 0).Sub(_ML).Int))
			Expect(pos.TokensOwed0.Sign()).To(Equal(0))
			Expect(pos.TokensOwed1.Sign()).To(Equal(0))

			expectNoResidual(clCoreAddr, managerAddr, token0, token1)
		})

		It("rejects a non owner", func() {
			_, err := Exec(genesis, bob, clCoreAddr, "RemoveLiquidity", []interface{}{
				positionID, amount.NewAmount(1, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(MatchError("Core: NOT_POSITION_OWNER"))
		})

		It("rejects withdrawing more than the position holds", func() {
			_, err := Exec(genesis, alice, clCoreAddr, "RemoveLiquidity", []interface{}{
				positionID, amount.NewAmount(10, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(MatchError("Position: INSUFFICIENT_LIQUIDITY"))
		})

		It("collectFees returns nothing when nothing is owed", func() {
			is, err := Exec(genesis, alice, clCoreAddr, "CollectFees", []interface{}{
				positionID, ToAmount(Clone(MaxUint256)), ToAmount(Clone(MaxUint256))})
			Expect(err).To(Succeed())
			Expect(is[0].(*amount.Amount).IsZero()).To(BeTrue())
			Expect(is[1].(*amount.Amount).IsZero()).To(BeTrue())
		})
	})

	Describe("SwapTokens", func() {

		BeforeEach(func() {
			_, err := Exec(genesis, alice, clCoreAddr, "AddLiquidity", []interface{}{
				uint64(0), token0, token1, feeTier, tickLower, tickUpper,
				amount.NewAmount(5, 0), amount.NewAmount(10, 0),
				amount.NewAmount(0, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())
			Expect(supply(genesis, bob, clCoreAddr)).To(Succeed())
		})

		It("swaps exact in through the pool of the fee tier", func() {
			swapAmount := amount.NewAmount(1, 0)
			expectedOutputAmount := ToAmount(big.NewInt(1662497915624478906))

			before1 := balanceOf(genesis, token1, bob)
			is, err := Exec(genesis, bob, clCoreAddr, "SwapTokens", []interface{}{
				token0, token1, feeTier, swapAmount, amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(Succeed())
			Expect(is[0].(*amount.Amount)).To(Equal(expectedOutputAmount))
			Expect(balanceOf(genesis, token1, bob).Sub(before1)).To(Equal(expectedOutputAmount))

			expectNoResidual(clCoreAddr, swapRouterAddr, token0, token1)
		})

		It("rejects an unknown pool", func() {
			_, err := Exec(genesis, bob, clCoreAddr, "SwapTokens", []interface{}{
				token0, token1, uint64(10000), amount.NewAmount(1, 0), amount.NewAmount(0, 0), uint64(0)})
			Expect(err).To(MatchError("SwapRouter: POOL_NOT_INITIALIZED"))
		})

		It("rejects an insufficient output", func() {
			_, err := Exec(genesis, bob, clCoreAddr, "SwapTokens", []interface{}{
				token0, token1, feeTier, amount.NewAmount(1, 0), amount.NewAmount(2, 0), uint64(0)})
			Expect(err).To(MatchError("SwapRouter: INSUFFICIENT_OUTPUT_AMOUNT"))
		})
	})
})
