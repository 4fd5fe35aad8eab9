package v1

import (
	"net/http"

	"wallet_gateway/internal/config/log"
	"wallet_gateway/internal/randx"
	"wallet_gateway/internal/tools"
	"wallet_gateway/internal/wallet/service"

	"github.com/labstack/echo/v4"
)

type resource struct {
	logger  log.Logger
	service service.Service
}

func RegisterHandlers(g *echo.Group, service service.Service, logger log.Logger) {
	r := &resource{logger, service}

	wallet := g.Group("/wallet")
	{
		wallet.POST("", r.CreateWallet)
		wallet.POST("/restore", r.RestoreWallet)
		wallet.POST("/open", r.OpenWallet)
		wallet.GET("", r.GetWalletInfo)
		wallet.GET("/status", r.SyncStatus)
		wallet.POST("/refresh", r.RefreshWallet)
		wallet.GET("/get_unique_id", r.GetUniqueId)

		wallet.POST("/addresses", r.CreateAddress)
		wallet.GET("/addresses", r.ListAddresses)
		wallet.POST("/addresses/validate", r.ValidateAddress)

		wallet.GET("/transactions", r.ListTransactions)
		wallet.GET("/transactions/:txid", r.GetTransaction)
		wallet.POST("/transfer", r.Transfer)
	}
}

func (r resource) CreateWallet(c echo.Context) error {
	var req service.CreateWalletRequest
	if err := tools.BindValidate(c, &req); err != nil {
		return err
	}

	wallet, err := r.service.CreateWallet(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return tools.JSON(c, http.StatusCreated, tools.Success, wallet)
}

func (r resource) RestoreWallet(c echo.Context) error {
	var req service.RestoreWalletRequest
	if err := tools.BindValidate(c, &req); err != nil {
		return err
	}

	wallet, err := r.service.RestoreWallet(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return tools.JSON(c, http.StatusCreated, tools.Success, wallet)
}

func (r resource) OpenWallet(c echo.Context) error {
	var req service.OpenWalletRequest
	if err := tools.BindValidate(c, &req); err != nil {
		return err
	}

	wallet, err := r.service.OpenWallet(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return tools.JSON(c, http.StatusOK, tools.Success, wallet)
}

func (r resource) GetWalletInfo(c echo.Context) error {
	wallet, err := r.service.GetWalletInfo(c.Request().Context())
	if err != nil {
		return err
	}

	return tools.JSON(c, http.StatusOK, tools.Success, wallet)
}

func (r resource) SyncStatus(c echo.Context) error {
	status, err := r.service.SyncStatus(c.Request().Context())
	if err != nil {
		return err
	}

	return tools.JSON(c, http.StatusOK, tools.Success, status)
}

func (r resource) RefreshWallet(c echo.Context) error {
	status, err := r.service.RefreshWallet(c.Request().Context())
	if err != nil {
		return err
	}

	return tools.JSON(c, http.StatusOK, tools.Success, status)
}

func (r resource) CreateAddress(c echo.Context) error {
	var req service.CreateAddressRequest
	if err := tools.BindValidate(c, &req); err != nil {
		return err
	}

	address, err := r.service.CreateAddress(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return tools.JSON(c, http.StatusCreated, tools.Success, address)
}

func (r resource) ListAddresses(c echo.Context) error {
	addresses, err := r.service.ListAddresses(c.Request().Context())
	if err != nil {
		return err
	}

	return tools.JSON(c, http.StatusOK, tools.Success, addresses)
}

func (r resource) ValidateAddress(c echo.Context) error {
	var req service.ValidateAddressRequest
	if err := tools.BindValidate(c, &req); err != nil {
		return err
	}

	valid, err := r.service.ValidateAddress(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return tools.JSON(
		c,
		http.StatusOK,
		tools.Success,
		struct {
			Valid bool `json:"valid"`
		}{
			Valid: valid,
		},
	)
}

func (r resource) ListTransactions(c echo.Context) error {
	var req service.ListTransactionsRequest
	if err := tools.BindValidate(c, &req); err != nil {
		return err
	}

	txs, err := r.service.ListTransactions(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return tools.JSON(c, http.StatusOK, tools.Success, txs)
}

func (r resource) GetTransaction(c echo.Context) error {
	var req service.GetTransactionRequest
	if err := tools.BindValidate(c, &req); err != nil {
		return err
	}

	tx, err := r.service.GetTransaction(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return tools.JSON(c, http.StatusOK, tools.Success, tx)
}

func (r resource) Transfer(c echo.Context) error {
	var req service.TransferRequest
	if err := tools.BindValidate(c, &req); err != nil {
		return err
	}

	tx, err := r.service.Transfer(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return tools.JSON(c, http.StatusOK, tools.Success, tx)
}

func (r resource) GetUniqueId(c echo.Context) error {
	return tools.JSON(c, http.StatusOK, tools.Success, randx.GenTranNo())
}
