package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"wallet_gateway/internal/config/log"
	"wallet_gateway/internal/entity"
	errs "wallet_gateway/internal/errors"
	"wallet_gateway/internal/randx"
	"wallet_gateway/internal/tools"
	"wallet_gateway/internal/wallet/repository"
	"wallet_gateway/internal/walletnode"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type (
	// Service encapsulates usecase logic for wallet.
	Service interface {
		CreateWallet(ctx context.Context, req CreateWalletRequest) (entity.Wallet, error)
		RestoreWallet(ctx context.Context, req RestoreWalletRequest) (entity.Wallet, error)
		OpenWallet(ctx context.Context, req OpenWalletRequest) (entity.Wallet, error)
		GetWalletInfo(ctx context.Context) (entity.Wallet, error)
		CreateAddress(ctx context.Context, req CreateAddressRequest) (entity.WalletAddress, error)
		ListAddresses(ctx context.Context) ([]entity.WalletAddress, error)
		ValidateAddress(ctx context.Context, req ValidateAddressRequest) (bool, error)
		GetTransaction(ctx context.Context, req GetTransactionRequest) (entity.WalletTransaction, error)
		ListTransactions(ctx context.Context, req ListTransactionsRequest) ([]entity.WalletTransaction, error)
		Transfer(ctx context.Context, req TransferRequest) (entity.WalletTransaction, error)
		SyncStatus(ctx context.Context) (entity.SyncStatus, error)
		RefreshWallet(ctx context.Context) (entity.SyncStatus, error)
	}

	service struct {
		node    walletnode.WalletNode
		repo    repository.Repository
		logger  log.Logger
		timeout time.Duration
	}

	CreateWalletRequest struct {
		Name     string `json:"name" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	RestoreWalletRequest struct {
		Name     string `json:"name" validate:"required"`
		Password string `json:"password" validate:"required"`
		Mnemonic string `json:"mnemonic" validate:"required"`
	}

	OpenWalletRequest struct {
		Name     string `json:"name" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	CreateAddressRequest struct {
		Label string `json:"label"`
	}

	ValidateAddressRequest struct {
		Address string `json:"address" validate:"required"`
	}

	GetTransactionRequest struct {
		Txid string `param:"txid" validate:"required"`
	}

	ListTransactionsRequest struct {
		MinHeight int64 `query:"min_height"`
	}

	TransferRequest struct {
		Destinations []TransferDestinationRequest `json:"destinations" validate:"required,min=1,dive"`
		Priority     uint                         `json:"priority"`
		TranNo       string                       `json:"tran_no"`
	}

	TransferDestinationRequest struct {
		Address string          `json:"address" validate:"required"`
		Amount  decimal.Decimal `json:"amount" validate:"required"`
	}
)

// NewService creates a new wallet service.
func New(
	node walletnode.WalletNode,
	repo repository.Repository,
	logger log.Logger,
	timeout time.Duration,
) Service {
	return service{node, repo, logger, timeout}
}

func (s service) CreateWallet(ctx context.Context, req CreateWalletRequest) (entity.Wallet, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.node.CreateWallet(ctx, req.Name, req.Password)
}

func (s service) RestoreWallet(ctx context.Context, req RestoreWalletRequest) (entity.Wallet, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.node.RestoreWallet(ctx, req.Name, req.Password, req.Mnemonic)
}

func (s service) OpenWallet(ctx context.Context, req OpenWalletRequest) (entity.Wallet, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.node.OpenWallet(ctx, req.Name, req.Password)
}

func (s service) GetWalletInfo(ctx context.Context) (entity.Wallet, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.node.GetWalletInfo(ctx)
}

func (s service) CreateAddress(ctx context.Context, req CreateAddressRequest) (entity.WalletAddress, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.node.CreateAddress(ctx, req.Label)
}

func (s service) ListAddresses(ctx context.Context) ([]entity.WalletAddress, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.node.ListAddresses(ctx)
}

func (s service) ValidateAddress(ctx context.Context, req ValidateAddressRequest) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.node.ValidateAddress(ctx, req.Address)
}

func (s service) GetTransaction(ctx context.Context, req GetTransactionRequest) (entity.WalletTransaction, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tx, err := s.node.GetTransaction(ctx, req.Txid)
	if err != nil {
		return entity.WalletTransaction{}, err
	}

	tx.TranNo = s.lookupTranNo(ctx, tx.Txid)

	return tx, nil
}

func (s service) ListTransactions(ctx context.Context, req ListTransactionsRequest) ([]entity.WalletTransaction, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	txs, err := s.node.ListTransactions(ctx, req.MinHeight)
	if err != nil {
		return nil, err
	}

	for i := range txs {
		txs[i].TranNo = s.lookupTranNo(ctx, txs[i].Txid)
	}

	return txs, nil
}

func (s service) Transfer(ctx context.Context, req TransferRequest) (entity.WalletTransaction, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tranNo := req.TranNo
	if tranNo == "" {
		tranNo = randx.GenTranNo()
	} else {
		_, err := s.repo.GetTransferByTranNo(ctx, tranNo)
		if err == nil {
			return entity.WalletTransaction{}, errs.ErrRequestProcessed
		} else if !errors.Is(err, sql.ErrNoRows) {
			return entity.WalletTransaction{}, fmt.Errorf("[Transfer] internal error: %w", err)
		}
	}

	destinations := make([]entity.TransferDestination, 0, len(req.Destinations))
	total := decimal.Zero
	for _, d := range req.Destinations {
		if d.Amount.Sign() <= 0 || d.Amount.GreaterThan(tools.MaxAtomic) {
			return entity.WalletTransaction{}, errs.ErrInvalidAmount
		}

		destinations = append(destinations, entity.TransferDestination{Address: d.Address, Amount: d.Amount})
		total = total.Add(d.Amount)
	}

	priority := req.Priority
	if priority == 0 {
		priority = s.node.DefaultPriority()
	}

	tx, err := s.node.Transfer(ctx, destinations, priority)
	if err != nil {
		return entity.WalletTransaction{}, err
	}

	record := entity.GWTransferRecord{
		Type:       entity.Withdraw,
		TranNo:     tranNo,
		Txn:        sql.NullString{String: tx.Txid, Valid: true},
		Recipient:  req.Destinations[0].Address,
		Amount:     total,
		Fee:        tx.Fee,
		Height:     tx.Height,
		IsNotified: true,
	}
	if _, err = s.repo.CreateTransfer(ctx, record); err != nil {
		// The transfer is already on the node; losing the journal row
		// must not fail the request.
		s.logger.Error("[Transfer] fail to journal transfer", zap.String("tran_no", tranNo), zap.Error(err))
	}

	tx.TranNo = tranNo

	return tx, nil
}

func (s service) SyncStatus(ctx context.Context) (entity.SyncStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.node.SyncStatus(ctx)
}

func (s service) RefreshWallet(ctx context.Context) (entity.SyncStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.node.RefreshWallet(ctx)
}

// lookupTranNo resolves the gateway reference for a txid. Transactions
// the gateway never journaled simply have no reference.
func (s service) lookupTranNo(ctx context.Context, txid string) string {
	tranNo, err := s.repo.GetTranNoByTxn(ctx, txid)
	if errors.Is(err, sql.ErrNoRows) {
		return ""
	} else if err != nil {
		s.logger.Errorf("[lookupTranNo] internal error: %s", err)
		return ""
	}

	return tranNo
}
