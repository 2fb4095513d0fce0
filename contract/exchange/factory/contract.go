package factory

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/coreswap/coreswap/common"
	"github.com/coreswap/coreswap/common/bin"
	"github.com/coreswap/coreswap/contract/exchange/pair"
	"github.com/coreswap/coreswap/core/types"

	. "github.com/coreswap/coreswap/contract/exchange/util"
)

type FactoryContract struct {
	addr   common.Address
	master common.Address
}

func (cont *FactoryContract) Address() common.Address {
	return cont.addr
}
func (cont *FactoryContract) Master() common.Address {
	return cont.master
}
func (cont *FactoryContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *FactoryContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &FactoryContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagOwner}, data.Owner[:])
	cc.SetContractData([]byte{tagPairClassID}, bin.Uint64Bytes(data.PairClassID))
	return nil
}

func (cont *FactoryContract) onlyOwner(cc *types.ContractContext) error {
	if cc.From() != cont.owner(cc) {
		return errors.New("Exchange: FORBIDDEN")
	}
	return nil
}

//////////////////////////////////////////////////
// FactoryContract : reader functions
//////////////////////////////////////////////////

func (cont *FactoryContract) owner(cc types.ContractLoader) common.Address {
	bs := cc.ContractData([]byte{tagOwner})
	return common.BytesToAddress(bs)
}

func (cont *FactoryContract) pairClassID(cc types.ContractLoader) uint64 {
	bs := cc.ContractData([]byte{tagPairClassID})
	return bin.Uint64(bs)
}

func (cont *FactoryContract) getPair(cc types.ContractLoader, token0, token1 common.Address) common.Address {
	bs := cc.ContractData(makePairKey(token0, token1))
	if bs == nil {
		return ZeroAddress
	}
	return common.BytesToAddress(bs)
}

func (cont *FactoryContract) allPairs(cc types.ContractLoader) []common.Address {
	bs := cc.ContractData([]byte{tagAllPairs})
	if bs == nil {
		return nil
	}

	addr := ZeroAddress
	allPairs := []common.Address{}
	for i := 0; i < len(bs); i += common.AddressLength {
		copy(addr[0:], bs[i:i+common.AddressLength])
		allPairs = append(allPairs, addr)
	}
	return allPairs
}

func (cont *FactoryContract) allPairsLength(cc types.ContractLoader) uint16 {
	bs := cc.ContractData([]byte{tagAllPairs})
	if bs == nil {
		return uint16(0)
	}
	return uint16(len(bs) / common.AddressLength)
}

//////////////////////////////////////////////////
// FactoryContract : writer functions
//////////////////////////////////////////////////

func (cont *FactoryContract) _setData(cc *types.ContractContext, pairAddr, token0, token1 common.Address) {
	cc.SetContractData(makePairKey(token0, token1), pairAddr.Bytes())
	cc.SetContractData(makePairKey(token1, token0), pairAddr.Bytes())

	bs := cc.ContractData([]byte{tagAllPairs})
	if bs == nil {
		bs = []byte{}
	}
	bs = append(bs, pairAddr.Bytes()...)
	cc.SetContractData([]byte{tagAllPairs}, bs)
}

func (cont *FactoryContract) createPair(cc *types.ContractContext, tokenA, tokenB common.Address, name, symbol string, fee uint64) (common.Address, error) {
	token0, token1, err := pair.SortTokens(tokenA, tokenB)
	if err != nil {
		return ZeroAddress, err
	}
	if cc.ContractData(makePairKey(token0, token1)) != nil {
		return ZeroAddress, errors.New("Exchange: PAIR_EXISTS")
	}

	pairAddr, err := pair.PairFor(cont.addr, token0, token1)
	if err != nil {
		return ZeroAddress, err
	}

	pairConstruction := &pair.PairContractConstruction{
		Name:    name,
		Symbol:  symbol,
		Factory: cont.addr,
		Token0:  token0,
		Token1:  token1,
		Fee:     fee,
	}
	bs, _, err := bin.WriterToBytes(pairConstruction)
	if err != nil {
		return ZeroAddress, err
	}
	if _, err = cc.DeployContractWithAddress(cont.pairClassID(cc), pairAddr, bs); err != nil {
		return ZeroAddress, err
	}

	cont._setData(cc, pairAddr, token0, token1)
	return pairAddr, nil
}

func (cont *FactoryContract) setOwner(cc *types.ContractContext, newOwner common.Address) error {
	if err := cont.onlyOwner(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagOwner}, newOwner[:])
	return nil
}
