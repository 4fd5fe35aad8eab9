package mocks

import (
	"context"
	"database/sql"

	"wallet_gateway/internal/entity"
)

// Repository is a function-field mock of the transfer journal.
type Repository struct {
	CreateTransferFn      func(ctx context.Context, record entity.GWTransferRecord) (int64, error)
	GetTransferByTranNoFn func(ctx context.Context, tranNo string) (entity.GWTransferRecord, error)
	GetTranNoByTxnFn      func(ctx context.Context, txn string) (string, error)
	DepositExistsFn       func(ctx context.Context, txn string) (bool, error)
	ListUnnotifiedFn      func(ctx context.Context) ([]entity.GWTransferRecord, error)
	MarkNotifiedFn        func(ctx context.Context, id int64) error
}

func (m Repository) CreateTransfer(ctx context.Context, record entity.GWTransferRecord) (int64, error) {
	if m.CreateTransferFn == nil {
		return 1, nil
	}
	return m.CreateTransferFn(ctx, record)
}

func (m Repository) GetTransferByTranNo(ctx context.Context, tranNo string) (entity.GWTransferRecord, error) {
	if m.GetTransferByTranNoFn == nil {
		return entity.GWTransferRecord{}, sql.ErrNoRows
	}
	return m.GetTransferByTranNoFn(ctx, tranNo)
}

func (m Repository) GetTranNoByTxn(ctx context.Context, txn string) (string, error) {
	if m.GetTranNoByTxnFn == nil {
		return "", sql.ErrNoRows
	}
	return m.GetTranNoByTxnFn(ctx, txn)
}

func (m Repository) DepositExists(ctx context.Context, txn string) (bool, error) {
	if m.DepositExistsFn == nil {
		return false, nil
	}
	return m.DepositExistsFn(ctx, txn)
}

func (m Repository) ListUnnotified(ctx context.Context) ([]entity.GWTransferRecord, error) {
	if m.ListUnnotifiedFn == nil {
		return nil, nil
	}
	return m.ListUnnotifiedFn(ctx)
}

func (m Repository) MarkNotified(ctx context.Context, id int64) error {
	if m.MarkNotifiedFn == nil {
		return nil
	}
	return m.MarkNotifiedFn(ctx, id)
}
