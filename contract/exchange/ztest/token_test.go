package test

import (
	"math/big"

	"github.com/coreswap/coreswap/common/amount"

	. "github.com/coreswap/coreswap/contract/exchange/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Token", func() {

	BeforeEach(func() {
		Expect(beforeEach()).To(Succeed())
		Expect(tokenMint(genesis, token0, alice, _TotalSupply)).To(Succeed())
	})

	AfterEach(func() {
		afterEach()
	})

	It("name, symbol, decimals, totalSupply", func() {
		is, err := Exec(genesis, alice, token0, "TotalSupply", []interface{}{})
		Expect(err).To(Succeed())
		Expect(is[0].(*amount.Amount)).To(Equal(_TotalSupply))

		is, err = Exec(genesis, alice, token0, "Decimals", []interface{}{})
		Expect(err).To(Succeed())
		Expect(is[0].(*big.Int).Int64()).To(Equal(int64(18)))
	})

	It("transfer", func() {
		_, err := Exec(genesis, alice, token0, "Transfer", []interface{}{bob, _TestAmount})
		Expect(err).To(Succeed())

		Expect(balanceOf(genesis, token0, alice)).To(Equal(_TotalSupply.Sub(_TestAmount)))
		Expect(balanceOf(genesis, token0, bob)).To(Equal(_TestAmount))
	})

	It("transfer : insufficient balance", func() {
		_, err := Exec(genesis, bob, token0, "Transfer", []interface{}{alice, _TestAmount})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Token: TRANSFER_EXCEED_BALANCE"))
	})

	It("approve, allowance", func() {
		_, err := Exec(genesis, alice, token0, "Approve", []interface{}{bob, _TestAmount})
		Expect(err).To(Succeed())

		is, err := Exec(genesis, alice, token0, "Allowance", []interface{}{alice, bob})
		Expect(err).To(Succeed())
		Expect(is[0].(*amount.Amount)).To(Equal(_TestAmount))
	})

	It("transferFrom", func() {
		_, err := Exec(genesis, alice, token0, "Approve", []interface{}{bob, _TestAmount})
		Expect(err).To(Succeed())

		_, err = Exec(genesis, bob, token0, "TransferFrom", []interface{}{alice, charlie, _TestAmount})
		Expect(err).To(Succeed())

		Expect(balanceOf(genesis, token0, charlie)).To(Equal(_TestAmount))

		// the spender's allowance is used up
		is, err := Exec(genesis, alice, token0, "Allowance", []interface{}{alice, bob})
		Expect(err).To(Succeed())
		Expect(is[0].(*amount.Amount).IsZero()).To(BeTrue())
	})

	It("transferFrom : insufficient allowance", func() {
		_, err := Exec(genesis, bob, token0, "TransferFrom", []interface{}{alice, charlie, _TestAmount})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("the token allowance is insufficient"))
	})

	It("mint : only minter", func() {
		_, err := Exec(genesis, bob, token0, "Mint", []interface{}{bob, _TestAmount})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("not token minter"))

		_, err = Exec(genesis, admin, token0, "Mint", []interface{}{bob, _TestAmount})
		Expect(err).To(Succeed())
		Expect(balanceOf(genesis, token0, bob)).To(Equal(_TestAmount))
	})

	It("burn", func() {
		_, err := Exec(genesis, alice, token0, "Burn", []interface{}{_TestAmount})
		Expect(err).To(Succeed())

		Expect(balanceOf(genesis, token0, alice)).To(Equal(_TotalSupply.Sub(_TestAmount)))
		Expect(totalSupplyOf(genesis, token0)).To(Equal(_TotalSupply.Sub(_TestAmount)))
	})
})
