package test

import (
	"github.com/coreswap/coreswap/common/amount"

	. "github.com/coreswap/coreswap/contract/exchange/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("WCoin", func() {

	BeforeEach(func() {
		Expect(beforeEach()).To(Succeed())
		genesis.MintCoin(alice, amount.NewAmount(100, 0))
	})

	AfterEach(func() {
		afterEach()
	})

	It("deposit", func() {
		_, err := ExecValue(genesis, alice, wcoinAddr, _TestAmount, "Deposit", []interface{}{})
		Expect(err).To(Succeed())

		Expect(balanceOf(genesis, wcoinAddr, alice)).To(Equal(_TestAmount))
		Expect(genesis.CoinBalance(alice)).To(Equal(amount.NewAmount(90, 0)))
		Expect(genesis.CoinBalance(wcoinAddr)).To(Equal(_TestAmount))
	})

	It("deposit : zero value", func() {
		_, err := ExecValue(genesis, alice, wcoinAddr, amount.NewAmount(0, 0), "Deposit", []interface{}{})
		Expect(err).To(HaveOccurred())
	})

	It("withdraw", func() {
		_, err := ExecValue(genesis, alice, wcoinAddr, _TestAmount, "Deposit", []interface{}{})
		Expect(err).To(Succeed())

		_, err = Exec(genesis, alice, wcoinAddr, "Withdraw", []interface{}{_TestAmount})
		Expect(err).To(Succeed())

		Expect(balanceOf(genesis, wcoinAddr, alice).IsZero()).To(BeTrue())
		Expect(genesis.CoinBalance(alice)).To(Equal(amount.NewAmount(100, 0)))
		Expect(genesis.CoinBalance(wcoinAddr).IsZero()).To(BeTrue())
	})

	It("withdraw : exceeding balance", func() {
		_, err := ExecValue(genesis, alice, wcoinAddr, _TestAmount, "Deposit", []interface{}{})
		Expect(err).To(Succeed())

		_, err = Exec(genesis, alice, wcoinAddr, "Withdraw", []interface{}{amount.NewAmount(11, 0)})
		Expect(err).To(HaveOccurred())
	})

	It("transfer", func() {
		_, err := ExecValue(genesis, alice, wcoinAddr, _TestAmount, "Deposit", []interface{}{})
		Expect(err).To(Succeed())

		_, err = Exec(genesis, alice, wcoinAddr, "Transfer", []interface{}{bob, amount.NewAmount(3, 0)})
		Expect(err).To(Succeed())

		Expect(balanceOf(genesis, wcoinAddr, bob)).To(Equal(amount.NewAmount(3, 0)))
		Expect(balanceOf(genesis, wcoinAddr, alice)).To(Equal(amount.NewAmount(7, 0)))
	})
})
