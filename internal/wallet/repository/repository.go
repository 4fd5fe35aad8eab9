package repository

import (
	"context"

	"wallet_gateway/internal/config/log"
	"wallet_gateway/internal/entity"

	"github.com/jmoiron/sqlx"
)

type (
	// Repository encapsulates the transfer journal in the gateway
	// database.
	Repository interface {
		CreateTransfer(ctx context.Context, record entity.GWTransferRecord) (int64, error)
		GetTransferByTranNo(ctx context.Context, tranNo string) (entity.GWTransferRecord, error)
		GetTranNoByTxn(ctx context.Context, txn string) (string, error)
		DepositExists(ctx context.Context, txn string) (bool, error)
		ListUnnotified(ctx context.Context) ([]entity.GWTransferRecord, error)
		MarkNotified(ctx context.Context, id int64) error
	}

	// repository persists transfer records in database.
	repository struct {
		db     *sqlx.DB
		logger log.Logger
	}
)

const (
	createTransferQuery string = `INSERT INTO transfer_record(type, tran_no, txn, recipient, amount, fee, height, is_notified)
  VALUES(:type, :tran_no, :txn, :recipient, :amount, :fee, :height, :is_notified)`
	getTransferByTranNoQuery string = `SELECT * FROM transfer_record WHERE tran_no = ?`
	getTranNoByTxnQuery      string = `SELECT tran_no FROM transfer_record WHERE txn = ?`
	depositExistsQuery       string = `SELECT COUNT(id) FROM transfer_record WHERE txn = ? AND type = 'DEPOSIT'`
	listUnnotifiedQuery      string = `SELECT * FROM transfer_record WHERE is_notified = 0 AND type = 'DEPOSIT'`
	markNotifiedQuery        string = `UPDATE transfer_record SET is_notified = 1 WHERE id = ?`
)

func New(db *sqlx.DB, logger log.Logger) Repository {
	return repository{db, logger}
}

func (r repository) CreateTransfer(ctx context.Context, record entity.GWTransferRecord) (int64, error) {
	createTransferStmt, err := r.db.PrepareNamedContext(ctx, createTransferQuery)
	if err != nil {
		return 0, err
	}
	defer createTransferStmt.Close()

	result, err := createTransferStmt.ExecContext(ctx, &record)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

func (r repository) GetTransferByTranNo(ctx context.Context, tranNo string) (entity.GWTransferRecord, error) {
	getTransferStmt, err := r.db.PreparexContext(ctx, getTransferByTranNoQuery)
	if err != nil {
		return entity.GWTransferRecord{}, err
	}
	defer getTransferStmt.Close()

	var record entity.GWTransferRecord
	if err = getTransferStmt.GetContext(ctx, &record, tranNo); err != nil {
		return entity.GWTransferRecord{}, err
	}

	return record, nil
}

func (r repository) GetTranNoByTxn(ctx context.Context, txn string) (string, error) {
	getTranNoStmt, err := r.db.PreparexContext(ctx, getTranNoByTxnQuery)
	if err != nil {
		return "", err
	}
	defer getTranNoStmt.Close()

	var tranNo string
	if err = getTranNoStmt.GetContext(ctx, &tranNo, txn); err != nil {
		return "", err
	}

	return tranNo, nil
}

func (r repository) DepositExists(ctx context.Context, txn string) (bool, error) {
	depositExistsStmt, err := r.db.PreparexContext(ctx, depositExistsQuery)
	if err != nil {
		return false, err
	}
	defer depositExistsStmt.Close()

	var count int64
	if err = depositExistsStmt.GetContext(ctx, &count, txn); err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r repository) ListUnnotified(ctx context.Context) ([]entity.GWTransferRecord, error) {
	listUnnotifiedStmt, err := r.db.PreparexContext(ctx, listUnnotifiedQuery)
	if err != nil {
		return nil, err
	}
	defer listUnnotifiedStmt.Close()

	var records []entity.GWTransferRecord
	if err = listUnnotifiedStmt.SelectContext(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (r repository) MarkNotified(ctx context.Context, id int64) error {
	markNotifiedStmt, err := r.db.PreparexContext(ctx, markNotifiedQuery)
	if err != nil {
		return err
	}
	defer markNotifiedStmt.Close()

	if _, err = markNotifiedStmt.ExecContext(ctx, id); err != nil {
		return err
	}

	return nil
}
