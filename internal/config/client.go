package config

import (
	"context"

	"github.com/ethereum/go-ethereum/rpc"
)

// WalletNodeConnect dials the wallet-node JSON-RPC endpoint.
func WalletNodeConnect(ctx context.Context, cfg Config) (*rpc.Client, error) {
	client, err := rpc.DialContext(ctx, cfg.WalletNode.Endpoint)
	if err != nil {
		return nil, err
	}

	return client, nil
}
