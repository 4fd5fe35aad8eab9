package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type TransferType string

const (
	Deposit  TransferType = "DEPOSIT"
	Withdraw TransferType = "WITHDRAW"
)

type GWTransferRecord struct {
	ID         int64           `db:"id" json:"id"`
	Type       TransferType    `db:"type" json:"type"`
	TranNo     string          `db:"tran_no" json:"tran_no"`
	Txn        sql.NullString  `db:"txn" json:"txn"`
	Recipient  string          `db:"recipient" json:"recipient"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
	Fee        decimal.Decimal `db:"fee" json:"fee"`
	Height     int64           `db:"height" json:"height"`
	IsNotified bool            `db:"is_notified" json:"is_notified"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt  sql.NullTime    `db:"updated_at" json:"updated_at"`
}
