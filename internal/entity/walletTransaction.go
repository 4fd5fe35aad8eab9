package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type TxDirection string

const (
	Incoming TxDirection = "INCOMING"
	Outgoing TxDirection = "OUTGOING"
)

type WalletTransaction struct {
	Txid          string          `json:"txid"`
	Direction     TxDirection     `json:"direction"`
	Amount        decimal.Decimal `json:"amount"`
	Fee           decimal.Decimal `json:"fee"`
	Height        int64           `json:"height"`
	Confirmations int64           `json:"confirmations"`
	Address       string          `json:"address"`
	Timestamp     time.Time       `json:"timestamp"`
	// TranNo is the gateway-side reference number. The wallet-node knows
	// nothing about it; the service layer fills it in from the journal.
	TranNo string `json:"tran_no,omitempty"`
}

// TransferDestination is one recipient of an outbound transfer.
type TransferDestination struct {
	Address string          `json:"address"`
	Amount  decimal.Decimal `json:"amount"`
}
