package chain

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// ethService serves eth_getBalance from a fixed table.
type ethService struct {
	balances map[common.Address]*big.Int
}

func (s *ethService) GetBalance(address common.Address, block rpc.BlockNumberOrHash) (*hexutil.Big, error) {
	balance, ok := s.balances[address]
	if !ok {
		return nil, errors.New("unknown account")
	}
	return (*hexutil.Big)(balance), nil
}

func newTestClient(t *testing.T, balances map[common.Address]*big.Int) *EthereumClient {
	server := rpc.NewServer()
	if err := server.RegisterName("eth", &ethService{balances: balances}); err != nil {
		t.Fatalf("register eth service: %v", err)
	}
	t.Cleanup(server.Stop)

	client := NewEthereumClient(ethclient.NewClient(rpc.DialInProc(server)))
	t.Cleanup(client.Close)
	return client
}

func TestEthereumClient_BalanceOf(t *testing.T) {
	address := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	oneAndHalfEther, _ := new(big.Int).SetString("1500000000000000000", 10)

	client := newTestClient(t, map[common.Address]*big.Int{address: oneAndHalfEther})

	balance, err := client.BalanceOf(context.Background(), address.Hex())
	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("1.5")), "got %s", balance)
}

func TestEthereumClient_BalanceOf_InvalidAddress(t *testing.T) {
	client := newTestClient(t, nil)

	_, err := client.BalanceOf(context.Background(), "not-an-address")
	assert.Error(t, err)
}

func TestEthereumClient_BalanceOf_RPCError(t *testing.T) {
	client := newTestClient(t, map[common.Address]*big.Int{})

	_, err := client.BalanceOf(context.Background(), "0x00000000000000000000000000000000000000bb")
	assert.Error(t, err)
}
