package v1

import (
	"context"
	"net/http"
	"testing"
	"time"

	"wallet_gateway/internal/config/log"
	"wallet_gateway/internal/entity"
	errs "wallet_gateway/internal/errors"
	"wallet_gateway/internal/mocks"
	"wallet_gateway/internal/test"
	"wallet_gateway/internal/wallet/service"

	"github.com/shopspring/decimal"
)

func TestAPI(t *testing.T) {
	l, _ := log.NewForTest()
	logger := log.NewWithZap(l)

	node := mocks.WalletNode{
		GetWalletInfoFn: func(context.Context) (entity.Wallet, error) {
			return entity.Wallet{
				Name:            "primary",
				PrimaryAddress:  "gw1qtestaddress",
				Balance:         decimal.RequireFromString("1.5"),
				UnlockedBalance: decimal.NewFromInt(1),
				Height:          20500,
				Synced:          true,
			}, nil
		},
		GetTransactionFn: func(context.Context, string) (entity.WalletTransaction, error) {
			return entity.WalletTransaction{}, errs.ErrTransactionNotFound
		},
		SyncStatusFn: func(context.Context) (entity.SyncStatus, error) {
			return entity.SyncStatus{Height: 20500, TargetHeight: 20500, Synced: true}, nil
		},
	}

	router := mocks.Router(logger)
	RegisterHandlers(
		router.Group("/v1"),
		service.New(node, mocks.Repository{}, logger, 5*time.Second),
		logger,
	)

	tests := []test.APITestCase{
		{
			Name:         "get wallet info",
			Method:       http.MethodGet,
			URL:          "/v1/wallet",
			WantStatus:   http.StatusOK,
			WantResponse: `*"primary_address":"gw1qtestaddress"*`,
		},
		{
			Name:         "get sync status",
			Method:       http.MethodGet,
			URL:          "/v1/wallet/status",
			WantStatus:   http.StatusOK,
			WantResponse: `*"synced":true*`,
		},
		{
			Name:       "create wallet missing password",
			Method:     http.MethodPost,
			URL:        "/v1/wallet",
			Body:       `{"name":"primary"}`,
			WantStatus: http.StatusBadRequest,
		},
		{
			Name:         "transaction not found",
			Method:       http.MethodGet,
			URL:          "/v1/wallet/transactions/deadbeef",
			WantStatus:   http.StatusNotFound,
			WantResponse: `*transaction not found*`,
		},
		{
			Name:       "transfer without destinations",
			Method:     http.MethodPost,
			URL:        "/v1/wallet/transfer",
			Body:       `{"destinations":[]}`,
			WantStatus: http.StatusBadRequest,
		},
		{
			Name:         "unique id",
			Method:       http.MethodGet,
			URL:          "/v1/wallet/get_unique_id",
			WantStatus:   http.StatusOK,
			WantResponse: `*SUCCESS*`,
		},
	}

	for _, tc := range tests {
		test.Endpoint(t, router, tc)
	}
}
