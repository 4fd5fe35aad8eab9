package mocks

import (
	"context"

	"wallet_gateway/internal/entity"
	"wallet_gateway/internal/tools"
)

// WalletNode is a function-field mock of the wallet-node facade.
type WalletNode struct {
	CreateWalletFn     func(ctx context.Context, name, password string) (entity.Wallet, error)
	RestoreWalletFn    func(ctx context.Context, name, password, mnemonic string) (entity.Wallet, error)
	OpenWalletFn       func(ctx context.Context, name, password string) (entity.Wallet, error)
	GetWalletInfoFn    func(ctx context.Context) (entity.Wallet, error)
	CreateAddressFn    func(ctx context.Context, label string) (entity.WalletAddress, error)
	ListAddressesFn    func(ctx context.Context) ([]entity.WalletAddress, error)
	ValidateAddressFn  func(ctx context.Context, address string) (bool, error)
	GetTransactionFn   func(ctx context.Context, txid string) (entity.WalletTransaction, error)
	ListTransactionsFn func(ctx context.Context, minHeight int64) ([]entity.WalletTransaction, error)
	TransferFn         func(ctx context.Context, destinations []entity.TransferDestination, priority uint) (entity.WalletTransaction, error)
	SyncStatusFn       func(ctx context.Context) (entity.SyncStatus, error)
	RefreshWalletFn    func(ctx context.Context) (entity.SyncStatus, error)
}

func (m WalletNode) CreateWallet(ctx context.Context, name, password string) (entity.Wallet, error) {
	return m.CreateWalletFn(ctx, name, password)
}

func (m WalletNode) RestoreWallet(ctx context.Context, name, password, mnemonic string) (entity.Wallet, error) {
	return m.RestoreWalletFn(ctx, name, password, mnemonic)
}

func (m WalletNode) OpenWallet(ctx context.Context, name, password string) (entity.Wallet, error) {
	return m.OpenWalletFn(ctx, name, password)
}

func (m WalletNode) GetWalletInfo(ctx context.Context) (entity.Wallet, error) {
	return m.GetWalletInfoFn(ctx)
}

func (m WalletNode) CreateAddress(ctx context.Context, label string) (entity.WalletAddress, error) {
	return m.CreateAddressFn(ctx, label)
}

func (m WalletNode) ListAddresses(ctx context.Context) ([]entity.WalletAddress, error) {
	return m.ListAddressesFn(ctx)
}

func (m WalletNode) ValidateAddress(ctx context.Context, address string) (bool, error) {
	return m.ValidateAddressFn(ctx, address)
}

func (m WalletNode) GetTransaction(ctx context.Context, txid string) (entity.WalletTransaction, error) {
	return m.GetTransactionFn(ctx, txid)
}

func (m WalletNode) ListTransactions(ctx context.Context, minHeight int64) ([]entity.WalletTransaction, error) {
	return m.ListTransactionsFn(ctx, minHeight)
}

func (m WalletNode) Transfer(
	ctx context.Context,
	destinations []entity.TransferDestination,
	priority uint,
) (entity.WalletTransaction, error) {
	return m.TransferFn(ctx, destinations, priority)
}

func (m WalletNode) SyncStatus(ctx context.Context) (entity.SyncStatus, error) {
	return m.SyncStatusFn(ctx)
}

func (m WalletNode) RefreshWallet(ctx context.Context) (entity.SyncStatus, error) {
	return m.RefreshWalletFn(ctx)
}

func (m WalletNode) CoinDecimals() int32 {
	return tools.CoinDecimals
}

func (m WalletNode) DefaultPriority() uint {
	return 1
}
