package test

import (
	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/amount"
	"github.com/coreswap/coreswap/core/types"

	. "github.com/coreswap/coreswap/contract/exchange/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var tagTrapTarget = []byte{0x01}

// trapTokenContract reenters the configured facade from inside its own
// TransferFrom, the way a malicious asset would during settlement
type trapTokenContract struct {
	addr   common.Address
	master common.Address
}

func (cont *trapTokenContract) Address() common.Address {
	return cont.addr
}
func (cont *trapTokenContract) Master() common.Address {
	return cont.master
}
func (cont *trapTokenContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}
func (cont *trapTokenContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	cc.SetContractData(tagTrapTarget, Args)
	return nil
}
func (cont *trapTokenContract) Front() interface{} {
	return &trapTokenFront{cont: cont}
}

type trapTokenFront struct {
	cont *trapTokenContract
}

func (f *trapTokenFront) Allowance(cc *types.ContractContext, owner, spender common.Address) *amount.Amount {
	return ToAmount(Clone(MaxUint256))
}

func (f *trapTokenFront) TransferFrom(cc *types.ContractContext, From, To common.Address, Amount *amount.Amount) error {
	target := common.BytesToAddress(cc.ContractData(tagTrapTarget))
	_, err := cc.Exec(cc, target, "RemoveLiquidity", []interface{}{
		f.cont.addr, To, Amount, Amount, Amount, uint64(0),
	})
	return err
}

var _ = Describe("Reentrancy", func() {

	BeforeEach(func() {
		Expect(beforeEach()).To(Succeed())
	})

	AfterEach(func() {
		afterEach()
	})

	It("a callback into the facade during settlement is rejected", func() {
		classID, err := types.RegisterContractType(&trapTokenContract{})
		Expect(err).To(Succeed())
		v, err := genesis.DeployContract(admin, classID, coreAddr[:])
		Expect(err).To(Succeed())
		trapAddr := v.(*trapTokenContract).Address()

		Expect(supply(genesis, alice, coreAddr)).To(Succeed())

		_, err = Exec(genesis, alice, coreAddr, "AddLiquidity", []interface{}{
			trapAddr, token1,
			amount.NewAmount(1, 0), amount.NewAmount(1, 0),
			amount.NewAmount(0, 0), amount.NewAmount(0, 0),
			uint64(0),
		})
		Expect(err).To(MatchError("Core: REENTRANCY"))
	})
})
