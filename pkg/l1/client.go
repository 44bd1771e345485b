package l1

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"
)

// Client is a read-only connection to the node Truffle deploys to
type Client struct {
	ethClient *ethclient.Client
	url       string
}

// Config represents the configuration for the L1 client
type Config struct {
	EthereumRPC string
}

// NewClient connects to the node at config.EthereumRPC
func NewClient(ctx context.Context, config *Config) (*Client, error) {
	ethClient, err := ethclient.DialContext(ctx, config.EthereumRPC)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum node: %w", err)
	}

	log.Debug().Str("url", config.EthereumRPC).Msg("Connected to Ethereum node")
	return &Client{
		ethClient: ethClient,
		url:       config.EthereumRPC,
	}, nil
}

// ChainID returns the EIP-155 chain id reported by the node
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	id, err := c.ethClient.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}
	return id, nil
}

// NetworkID returns the net_version of the node, which is what Truffle
// matches against network_id
func (c *Client) NetworkID(ctx context.Context) (*big.Int, error) {
	id, err := c.ethClient.NetworkID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get network id: %w", err)
	}
	return id, nil
}

// Close closes the underlying connection
func (c *Client) Close() {
	c.ethClient.Close()
}
