// Package chain reads wallet balances from EVM-compatible nodes.
package chain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
)

// weiExponent converts wei to ether.
const weiExponent = -18

// EthereumClient reads native token balances through JSON-RPC.
type EthereumClient struct {
	client *ethclient.Client
}

// Dial connects to the node at url.
func Dial(ctx context.Context, url string) (*EthereumClient, error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, err
	}
	return &EthereumClient{client: client}, nil
}

// NewEthereumClient wraps an existing ethclient.
func NewEthereumClient(client *ethclient.Client) *EthereumClient {
	return &EthereumClient{client: client}
}

// BalanceOf returns the latest balance of address in ether.
func (c *EthereumClient) BalanceOf(ctx context.Context, address string) (decimal.Decimal, error) {
	if !common.IsHexAddress(address) {
		return decimal.Zero, fmt.Errorf("invalid address %q", address)
	}

	wei, err := c.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fetch balance of %s: %w", address, err)
	}
	return decimal.NewFromBigInt(wei, weiExponent), nil
}

// Close releases the RPC connection.
func (c *EthereumClient) Close() {
	c.client.Close()
}
