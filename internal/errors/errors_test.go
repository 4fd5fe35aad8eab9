package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromWalletNode(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    error
	}{
		{"wallet not found", "wallet not found: primary", ErrWalletNotFound},
		{"no wallet file", "failed to open: no wallet file", ErrWalletNotFound},
		{"already exists", "wallet \"primary\" already exists", ErrWalletAlreadyExists},
		{"invalid password", "invalid password for wallet primary", ErrInvalidPassword},
		{"invalid mnemonic", "restore failed: invalid mnemonic", ErrInvalidMnemonic},
		{"invalid seed", "Invalid seed phrase supplied", ErrInvalidMnemonic},
		{"invalid address", "invalid address format", ErrInvalidAddress},
		{"bad address", "parse error: bad address", ErrInvalidAddress},
		{"unlocked beats total", "not enough unlocked money", ErrNotEnoughUnlockedFunds},
		{"not enough money", "not enough money to transfer", ErrNotEnoughFunds},
		{"insufficient funds", "insufficient funds for fee", ErrNotEnoughFunds},
		{"transaction not found", "transaction not found in pool", ErrTransactionNotFound},
		{"no tx found", "no tx found for hash", ErrTransactionNotFound},
		{"rejected", "transaction was rejected by daemon", ErrTransactionRejected},
		{"daemon busy", "daemon is busy, try again later", ErrNodeBusy},
		{"no connection", "no connection to daemon", ErrNodeUnavailable},
		{"connection refused", "dial tcp 127.0.0.1:18082: connection refused", ErrNodeUnavailable},
		{"case insensitive", "WALLET NOT FOUND", ErrWalletNotFound},
		{"unknown message", "something exploded internally", ErrWalletNode},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FromWalletNode(errors.New(tc.message))
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestFromWalletNodeNil(t *testing.T) {
	assert.NoError(t, FromWalletNode(nil))
}

func TestGetStatusCodeMap(t *testing.T) {
	m := GetStatusCodeMap()

	assert.Equal(t, http.StatusNotFound, m[ErrWalletNotFound])
	assert.Equal(t, http.StatusConflict, m[ErrWalletAlreadyExists])
	assert.Equal(t, http.StatusUnauthorized, m[ErrInvalidPassword])
	assert.Equal(t, http.StatusBadGateway, m[ErrNodeUnavailable])
	assert.Equal(t, http.StatusInternalServerError, m[ErrWalletNode])

	// every error in the match table must have a status
	for _, entry := range matchTable {
		_, ok := m[entry.err]
		assert.True(t, ok, "missing status for %v", entry.err)
	}
}
