package walletnode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wallet_gateway/internal/config/log"
	"wallet_gateway/internal/entity"
	errs "wallet_gateway/internal/errors"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMnemonic is a valid BIP39 test vector.
const testMnemonic = "legal winner thank year wave sausage worth useful legal winner thank yellow"

type (
	rpcRequest struct {
		ID     json.RawMessage   `json:"id"`
		Method string            `json:"method"`
		Params []json.RawMessage `json:"params"`
	}

	rpcHandler func(method string, params []json.RawMessage) (interface{}, string)
)

// newTestNode starts a fake wallet-node that answers every call through
// handler. A non-empty second return value becomes a JSON-RPC error
// with that message.
func newTestNode(t *testing.T, handler rpcHandler) WalletNode {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		result, errMsg := handler(req.Method, req.Params)

		resp := map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
		}
		if errMsg != "" {
			resp["error"] = map[string]interface{}{"code": -32000, "message": errMsg}
		} else {
			resp["result"] = result
		}

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(server.Close)

	client, err := rpc.Dial(server.URL)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	l, _ := log.NewForTest()

	return New(client, log.NewWithZap(l))
}

func TestGetWalletInfo(t *testing.T) {
	node := newTestNode(t, func(method string, _ []json.RawMessage) (interface{}, string) {
		assert.Equal(t, getInfoMethod, method)
		return map[string]interface{}{
			"name":             "primary",
			"primary_address":  "gw1qtestaddress",
			"balance":          uint64(1_500_000_000_000),
			"unlocked_balance": uint64(1_000_000_000_000),
			"height":           int64(20500),
			"synced":           true,
		}, ""
	})

	wallet, err := node.GetWalletInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "primary", wallet.Name)
	assert.Equal(t, "gw1qtestaddress", wallet.PrimaryAddress)
	assert.True(t, wallet.Balance.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, wallet.UnlockedBalance.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, int64(20500), wallet.Height)
	assert.True(t, wallet.Synced)
}

func TestListTransactions(t *testing.T) {
	node := newTestNode(t, func(method string, params []json.RawMessage) (interface{}, string) {
		assert.Equal(t, listTransactionsMethod, method)
		require.Len(t, params, 1)
		assert.JSONEq(t, `{"min_height":100}`, string(params[0]))

		return []map[string]interface{}{
			{
				"txid":          "aa11",
				"direction":     "in",
				"amount":        uint64(250_000_000_000),
				"fee":           uint64(0),
				"height":        int64(120),
				"confirmations": int64(30),
				"address":       "gw1qreceiver",
				"timestamp":     int64(1700000000),
			},
			{
				"txid":          "bb22",
				"direction":     "out",
				"amount":        uint64(100_000_000_000),
				"fee":           uint64(2_000_000_000),
				"height":        int64(130),
				"confirmations": int64(20),
				"address":       "gw1qrecipient",
				"timestamp":     int64(1700000600),
			},
		}, ""
	})

	txs, err := node.ListTransactions(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, entity.Incoming, txs[0].Direction)
	assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("0.25")))
	assert.Equal(t, int64(1700000000), txs[0].Timestamp.Unix())

	assert.Equal(t, entity.Outgoing, txs[1].Direction)
	assert.True(t, txs[1].Fee.Equal(decimal.RequireFromString("0.002")))
}

func TestTransferSendsAtomicUnits(t *testing.T) {
	node := newTestNode(t, func(method string, params []json.RawMessage) (interface{}, string) {
		assert.Equal(t, transferMethod, method)
		require.Len(t, params, 1)
		assert.JSONEq(t,
			`{"destinations":[{"address":"gw1qrecipient","amount":1500000000000}],"priority":2}`,
			string(params[0]),
		)

		return map[string]interface{}{
			"txid":      "cc33",
			"direction": "out",
			"amount":    uint64(1_500_000_000_000),
			"fee":       uint64(3_000_000_000),
			"height":    int64(0),
			"timestamp": int64(1700001000),
		}, ""
	})

	tx, err := node.Transfer(
		context.Background(),
		[]entity.TransferDestination{
			{Address: "gw1qrecipient", Amount: decimal.RequireFromString("1.5")},
		},
		2,
	)
	require.NoError(t, err)

	assert.Equal(t, "cc33", tx.Txid)
	assert.Equal(t, entity.Outgoing, tx.Direction)
	assert.True(t, tx.Fee.Equal(decimal.RequireFromString("0.003")))
}

func TestValidateAddress(t *testing.T) {
	node := newTestNode(t, func(method string, params []json.RawMessage) (interface{}, string) {
		assert.Equal(t, validateAddressMethod, method)
		require.Len(t, params, 1)
		assert.JSONEq(t, `{"address":"gw1qsomeaddress"}`, string(params[0]))

		return map[string]interface{}{"valid": true}, ""
	})

	valid, err := node.ValidateAddress(context.Background(), "gw1qsomeaddress")
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestServerErrorTranslation(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    error
	}{
		{"not enough money", "not enough money to transfer", errs.ErrNotEnoughFunds},
		{"not enough unlocked", "not enough unlocked money", errs.ErrNotEnoughUnlockedFunds},
		{"daemon busy", "daemon is busy", errs.ErrNodeBusy},
		{"unknown", "unexpected internal failure", errs.ErrWalletNode},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			node := newTestNode(t, func(string, []json.RawMessage) (interface{}, string) {
				return nil, tc.message
			})

			_, err := node.Transfer(
				context.Background(),
				[]entity.TransferDestination{{Address: "gw1qrecipient", Amount: decimal.NewFromInt(1)}},
				1,
			)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRestoreWalletRejectsBadMnemonic(t *testing.T) {
	called := false
	node := newTestNode(t, func(string, []json.RawMessage) (interface{}, string) {
		called = true
		return nil, ""
	})

	_, err := node.RestoreWallet(context.Background(), "primary", "pass", "definitely not a seed")
	assert.ErrorIs(t, err, errs.ErrInvalidMnemonic)
	assert.False(t, called, "bad mnemonic must not reach the node")
}

func TestRestoreWalletValidMnemonic(t *testing.T) {
	node := newTestNode(t, func(method string, params []json.RawMessage) (interface{}, string) {
		assert.Equal(t, restoreMethod, method)
		return map[string]interface{}{
			"name":            "primary",
			"primary_address": "gw1qrestored",
			"synced":          false,
		}, ""
	})

	wallet, err := node.RestoreWallet(context.Background(), "primary", "pass", testMnemonic)
	require.NoError(t, err)
	assert.Equal(t, "gw1qrestored", wallet.PrimaryAddress)
	assert.False(t, wallet.Synced)
}
