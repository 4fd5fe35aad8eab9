package errors

import (
	"errors"
	"net/http"
	"strings"
)

// Domain errors for the wallet-node gateway. Server-side failures reach
// us as plain message strings inside the JSON-RPC error, so the closed
// set below is selected by substring matching on that text.
var (
	ErrWalletNotFound         = errors.New("wallet not found")
	ErrWalletAlreadyExists    = errors.New("wallet already exists")
	ErrInvalidPassword        = errors.New("invalid wallet password")
	ErrInvalidAddress         = errors.New("invalid address")
	ErrInvalidMnemonic        = errors.New("invalid mnemonic seed")
	ErrNotEnoughUnlockedFunds = errors.New("not enough unlocked funds")
	ErrNotEnoughFunds         = errors.New("not enough funds")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrTransactionRejected    = errors.New("transaction rejected by node")
	ErrNodeBusy               = errors.New("wallet-node is busy")
	ErrNodeUnavailable        = errors.New("wallet-node unavailable")

	// ErrWalletNode is the fallback for any server failure we cannot
	// classify.
	ErrWalletNode = errors.New("wallet-node internal error")

	// ErrRequestProcessed guards against a transfer request being
	// submitted twice with the same reference number.
	ErrRequestProcessed = errors.New("request already processed")

	// ErrInvalidAmount rejects transfer amounts the wire format cannot
	// carry: non-positive, or above the atomic-unit range.
	ErrInvalidAmount = errors.New("invalid transfer amount")
)

type match struct {
	substr string
	err    error
}

// matchTable is ordered: more specific substrings come before their
// prefixes ("not enough unlocked" must win over "not enough").
var matchTable = []match{
	{"no wallet file", ErrWalletNotFound},
	{"wallet not found", ErrWalletNotFound},
	{"already exists", ErrWalletAlreadyExists},
	{"invalid password", ErrInvalidPassword},
	{"invalid mnemonic", ErrInvalidMnemonic},
	{"invalid seed", ErrInvalidMnemonic},
	{"invalid address", ErrInvalidAddress},
	{"bad address", ErrInvalidAddress},
	{"not enough unlocked", ErrNotEnoughUnlockedFunds},
	{"not enough money", ErrNotEnoughFunds},
	{"insufficient funds", ErrNotEnoughFunds},
	{"transaction not found", ErrTransactionNotFound},
	{"no tx found", ErrTransactionNotFound},
	{"transaction was rejected", ErrTransactionRejected},
	{"rejected by daemon", ErrTransactionRejected},
	{"daemon is busy", ErrNodeBusy},
	{"no connection to daemon", ErrNodeUnavailable},
	{"connection refused", ErrNodeUnavailable},
}

// FromWalletNode translates a wallet-node error into one of the domain
// errors above. Unknown messages map to ErrWalletNode.
func FromWalletNode(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	for _, m := range matchTable {
		if strings.Contains(msg, m.substr) {
			return m.err
		}
	}

	return ErrWalletNode
}

// GetStatusCodeMap maps domain errors to the HTTP status the gateway
// answers with. Consumed by the echo error handler.
func GetStatusCodeMap() map[error]int {
	return map[error]int{
		ErrWalletNotFound:         http.StatusNotFound,
		ErrWalletAlreadyExists:    http.StatusConflict,
		ErrInvalidPassword:        http.StatusUnauthorized,
		ErrInvalidAddress:         http.StatusBadRequest,
		ErrInvalidMnemonic:        http.StatusBadRequest,
		ErrNotEnoughUnlockedFunds: http.StatusUnprocessableEntity,
		ErrNotEnoughFunds:         http.StatusUnprocessableEntity,
		ErrTransactionNotFound:    http.StatusNotFound,
		ErrTransactionRejected:    http.StatusUnprocessableEntity,
		ErrNodeBusy:               http.StatusServiceUnavailable,
		ErrNodeUnavailable:        http.StatusBadGateway,
		ErrWalletNode:             http.StatusInternalServerError,
		ErrRequestProcessed:       http.StatusConflict,
		ErrInvalidAmount:          http.StatusBadRequest,
	}
}
