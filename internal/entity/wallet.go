package entity

import "github.com/shopspring/decimal"

// Wallet is the snapshot of the wallet held by the remote wallet-node.
// It is built once per RPC response and never mutated afterwards.
type Wallet struct {
	Name            string          `json:"name"`
	PrimaryAddress  string          `json:"primary_address"`
	Balance         decimal.Decimal `json:"balance"`
	UnlockedBalance decimal.Decimal `json:"unlocked_balance"`
	Height          int64           `json:"height"`
	Synced          bool            `json:"synced"`
}
