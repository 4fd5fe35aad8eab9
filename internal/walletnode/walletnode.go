package walletnode

import (
	"context"
	"time"

	"wallet_gateway/internal/config/log"
	"wallet_gateway/internal/entity"
	errs "wallet_gateway/internal/errors"
	"wallet_gateway/internal/tools"

	"github.com/ethereum/go-ethereum/rpc"
	bip39 "github.com/tyler-smith/go-bip39"
	"go.uber.org/zap"
)

// WalletNode is the typed facade over the wallet-node JSON-RPC API.
// Every method forwards one call to the remote client, maps the JSON
// result into a domain record and translates server failures into the
// domain error set.
type WalletNode interface {
	CreateWallet(ctx context.Context, name string, password string) (entity.Wallet, error)
	RestoreWallet(ctx context.Context, name string, password string, mnemonic string) (entity.Wallet, error)
	OpenWallet(ctx context.Context, name string, password string) (entity.Wallet, error)
	GetWalletInfo(ctx context.Context) (entity.Wallet, error)
	CreateAddress(ctx context.Context, label string) (entity.WalletAddress, error)
	ListAddresses(ctx context.Context) ([]entity.WalletAddress, error)
	ValidateAddress(ctx context.Context, address string) (bool, error)
	GetTransaction(ctx context.Context, txid string) (entity.WalletTransaction, error)
	ListTransactions(ctx context.Context, minHeight int64) ([]entity.WalletTransaction, error)
	Transfer(ctx context.Context, destinations []entity.TransferDestination, priority uint) (entity.WalletTransaction, error)
	SyncStatus(ctx context.Context) (entity.SyncStatus, error)
	RefreshWallet(ctx context.Context) (entity.SyncStatus, error)
	CoinDecimals() int32
	DefaultPriority() uint
}

type walletNode struct {
	client *rpc.Client
	logger log.Logger
}

// RPC method names owned by the wallet-node.
const (
	createMethod           = "wallet_create"
	restoreMethod          = "wallet_restore"
	openMethod             = "wallet_open"
	getInfoMethod          = "wallet_getInfo"
	createAddressMethod    = "wallet_createAddress"
	listAddressesMethod    = "wallet_listAddresses"
	validateAddressMethod  = "wallet_validateAddress"
	getTransactionMethod   = "wallet_getTransaction"
	listTransactionsMethod = "wallet_listTransactions"
	transferMethod         = "wallet_transfer"
	syncStatusMethod       = "wallet_syncStatus"
	refreshMethod          = "wallet_refresh"

	defaultPriority uint = 1
)

func New(client *rpc.Client, logger log.Logger) WalletNode {
	return walletNode{client, logger}
}

type (
	walletPayload struct {
		Name            string `json:"name"`
		PrimaryAddress  string `json:"primary_address"`
		Balance         uint64 `json:"balance"`
		UnlockedBalance uint64 `json:"unlocked_balance"`
		Height          int64  `json:"height"`
		Synced          bool   `json:"synced"`
	}

	addressPayload struct {
		Address string `json:"address"`
		Label   string `json:"label"`
		Index   int64  `json:"index"`
		Used    bool   `json:"used"`
	}

	transactionPayload struct {
		Txid          string `json:"txid"`
		Direction     string `json:"direction"`
		Amount        uint64 `json:"amount"`
		Fee           uint64 `json:"fee"`
		Height        int64  `json:"height"`
		Confirmations int64  `json:"confirmations"`
		Address       string `json:"address"`
		Timestamp     int64  `json:"timestamp"`
	}

	syncStatusPayload struct {
		Height       int64 `json:"height"`
		TargetHeight int64 `json:"target_height"`
		Synced       bool  `json:"synced"`
	}

	openWalletParams struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}

	restoreWalletParams struct {
		Name     string `json:"name"`
		Password string `json:"password"`
		Mnemonic string `json:"mnemonic"`
	}

	createAddressParams struct {
		Label string `json:"label"`
	}

	addressParams struct {
		Address string `json:"address"`
	}

	validatePayload struct {
		Valid bool `json:"valid"`
	}

	getTransactionParams struct {
		Txid string `json:"txid"`
	}

	listTransactionsParams struct {
		MinHeight int64 `json:"min_height"`
	}

	transferDestinationParams struct {
		Address string `json:"address"`
		Amount  uint64 `json:"amount"`
	}

	transferParams struct {
		Destinations []transferDestinationParams `json:"destinations"`
		Priority     uint                        `json:"priority"`
	}
)

func (w walletNode) CreateWallet(ctx context.Context, name string, password string) (entity.Wallet, error) {
	var payload walletPayload
	params := openWalletParams{Name: name, Password: password}
	if err := w.client.CallContext(ctx, &payload, createMethod, params); err != nil {
		return entity.Wallet{}, w.translate(createMethod, err)
	}

	return payload.toWallet(), nil
}

func (w walletNode) RestoreWallet(
	ctx context.Context,
	name string,
	password string,
	mnemonic string,
) (entity.Wallet, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return entity.Wallet{}, errs.ErrInvalidMnemonic
	}

	var payload walletPayload
	params := restoreWalletParams{Name: name, Password: password, Mnemonic: mnemonic}
	if err := w.client.CallContext(ctx, &payload, restoreMethod, params); err != nil {
		return entity.Wallet{}, w.translate(restoreMethod, err)
	}

	return payload.toWallet(), nil
}

func (w walletNode) OpenWallet(ctx context.Context, name string, password string) (entity.Wallet, error) {
	var payload walletPayload
	params := openWalletParams{Name: name, Password: password}
	if err := w.client.CallContext(ctx, &payload, openMethod, params); err != nil {
		return entity.Wallet{}, w.translate(openMethod, err)
	}

	return payload.toWallet(), nil
}

func (w walletNode) GetWalletInfo(ctx context.Context) (entity.Wallet, error) {
	var payload walletPayload
	if err := w.client.CallContext(ctx, &payload, getInfoMethod); err != nil {
		return entity.Wallet{}, w.translate(getInfoMethod, err)
	}

	return payload.toWallet(), nil
}

func (w walletNode) CreateAddress(ctx context.Context, label string) (entity.WalletAddress, error) {
	var payload addressPayload
	if err := w.client.CallContext(ctx, &payload, createAddressMethod, createAddressParams{Label: label}); err != nil {
		return entity.WalletAddress{}, w.translate(createAddressMethod, err)
	}

	return payload.toAddress(), nil
}

func (w walletNode) ListAddresses(ctx context.Context) ([]entity.WalletAddress, error) {
	var payload []addressPayload
	if err := w.client.CallContext(ctx, &payload, listAddressesMethod); err != nil {
		return nil, w.translate(listAddressesMethod, err)
	}

	addresses := make([]entity.WalletAddress, 0, len(payload))
	for _, p := range payload {
		addresses = append(addresses, p.toAddress())
	}

	return addresses, nil
}

func (w walletNode) ValidateAddress(ctx context.Context, address string) (bool, error) {
	var payload validatePayload
	if err := w.client.CallContext(ctx, &payload, validateAddressMethod, addressParams{Address: address}); err != nil {
		return false, w.translate(validateAddressMethod, err)
	}

	return payload.Valid, nil
}

func (w walletNode) GetTransaction(ctx context.Context, txid string) (entity.WalletTransaction, error) {
	var payload transactionPayload
	if err := w.client.CallContext(ctx, &payload, getTransactionMethod, getTransactionParams{Txid: txid}); err != nil {
		return entity.WalletTransaction{}, w.translate(getTransactionMethod, err)
	}

	return payload.toTransaction(), nil
}

func (w walletNode) ListTransactions(ctx context.Context, minHeight int64) ([]entity.WalletTransaction, error) {
	var payload []transactionPayload
	if err := w.client.CallContext(ctx, &payload, listTransactionsMethod, listTransactionsParams{MinHeight: minHeight}); err != nil {
		return nil, w.translate(listTransactionsMethod, err)
	}

	txs := make([]entity.WalletTransaction, 0, len(payload))
	for _, p := range payload {
		txs = append(txs, p.toTransaction())
	}

	return txs, nil
}

func (w walletNode) Transfer(
	ctx context.Context,
	destinations []entity.TransferDestination,
	priority uint,
) (entity.WalletTransaction, error) {
	params := transferParams{
		Destinations: make([]transferDestinationParams, 0, len(destinations)),
		Priority:     priority,
	}
	for _, d := range destinations {
		params.Destinations = append(params.Destinations, transferDestinationParams{
			Address: d.Address,
			Amount:  tools.ToAtomic(d.Amount),
		})
	}

	var payload transactionPayload
	if err := w.client.CallContext(ctx, &payload, transferMethod, params); err != nil {
		return entity.WalletTransaction{}, w.translate(transferMethod, err)
	}

	return payload.toTransaction(), nil
}

func (w walletNode) SyncStatus(ctx context.Context) (entity.SyncStatus, error) {
	var payload syncStatusPayload
	if err := w.client.CallContext(ctx, &payload, syncStatusMethod); err != nil {
		return entity.SyncStatus{}, w.translate(syncStatusMethod, err)
	}

	return payload.toSyncStatus(), nil
}

func (w walletNode) RefreshWallet(ctx context.Context) (entity.SyncStatus, error) {
	var payload syncStatusPayload
	if err := w.client.CallContext(ctx, &payload, refreshMethod); err != nil {
		return entity.SyncStatus{}, w.translate(refreshMethod, err)
	}

	return payload.toSyncStatus(), nil
}

func (w walletNode) CoinDecimals() int32 {
	return tools.CoinDecimals
}

func (w walletNode) DefaultPriority() uint {
	return defaultPriority
}

// translate logs the raw server failure and returns its domain error.
func (w walletNode) translate(method string, err error) error {
	w.logger.Error("wallet-node call failed",
		zap.String("method", method),
		zap.Error(err),
	)

	return errs.FromWalletNode(err)
}

func (p walletPayload) toWallet() entity.Wallet {
	return entity.Wallet{
		Name:            p.Name,
		PrimaryAddress:  p.PrimaryAddress,
		Balance:         tools.FromAtomic(p.Balance),
		UnlockedBalance: tools.FromAtomic(p.UnlockedBalance),
		Height:          p.Height,
		Synced:          p.Synced,
	}
}

func (p addressPayload) toAddress() entity.WalletAddress {
	return entity.WalletAddress{
		Address: p.Address,
		Label:   p.Label,
		Index:   p.Index,
		Used:    p.Used,
	}
}

func (p transactionPayload) toTransaction() entity.WalletTransaction {
	direction := entity.Incoming
	if p.Direction == "out" {
		direction = entity.Outgoing
	}

	return entity.WalletTransaction{
		Txid:          p.Txid,
		Direction:     direction,
		Amount:        tools.FromAtomic(p.Amount),
		Fee:           tools.FromAtomic(p.Fee),
		Height:        p.Height,
		Confirmations: p.Confirmations,
		Address:       p.Address,
		Timestamp:     time.Unix(p.Timestamp, 0).UTC(),
	}
}

func (p syncStatusPayload) toSyncStatus() entity.SyncStatus {
	return entity.SyncStatus{
		Height:       p.Height,
		TargetHeight: p.TargetHeight,
		Synced:       p.Synced,
	}
}
