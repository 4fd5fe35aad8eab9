package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"

	"wallet_gateway/internal/config"
	"wallet_gateway/internal/config/db"
	"wallet_gateway/internal/config/log"
	"wallet_gateway/internal/cron"
	errs "wallet_gateway/internal/errors"
	hcController "wallet_gateway/internal/healthcheck/controller/http"
	m "wallet_gateway/internal/middleware"
	v1WalletController "wallet_gateway/internal/wallet/controller/http/v1"
	walletRepo "wallet_gateway/internal/wallet/repository"
	walletService "wallet_gateway/internal/wallet/service"
	"wallet_gateway/internal/walletnode"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var (
	Version = "1.0.0"
	flagEnv = flag.String("env", "local", "environment")
)

const (
	gracefulTimeout   = 10 * time.Second
	readHeaderTimeout = 2 * time.Second
)

func main() {
	flag.Parse()
	ctx := context.Background()

	logger := log.NewWithZap(log.New(*flagEnv, log.ErrorLog)).With(ctx, "version", Version)

	cfg, err := config.Load(*flagEnv)
	if err != nil {
		logger.Fatal(err)
	}

	// connect to database
	db, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal(err)
	}

	// connect to redis
	rds, err := config.RedisConnect(ctx, cfg)
	if err != nil {
		logger.Fatal(err)
	}

	// connect to the wallet-node
	client, err := config.WalletNodeConnect(ctx, cfg)
	if err != nil {
		logger.Fatal(err)
	}

	node := walletnode.New(client, logger)
	repo := walletRepo.New(db, logger)

	watcherLogger := log.NewWithZap(log.New(*flagEnv, log.WatcherLog)).With(ctx, "version", Version)

	// run deposit watcher cron
	depositWatcher, err := cron.NewDepositWatcher(ctx, *flagEnv, node, cfg, rds, repo, watcherLogger)
	if err != nil {
		logger.Fatal(err)
	}
	depositWatcher.Run(ctx)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           buildHandler(node, logger, rds, db, &cfg),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	logger.Infof("Server listening on %s", server.Addr)

	go func() {
		if err = server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server shutting down")

	ctx, cancel := context.WithTimeout(ctx, gracefulTimeout)
	defer cancel()

	if err = server.Shutdown(ctx); err != nil {
		logger.Error(err)
	}

	logger.Info("Server exiting")
}

func decrypt(encrypted string, secretKey string, salt string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", err
	}

	key := pbkdf2.Key([]byte(secretKey), []byte(salt), 65536, 32, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	if len(data) < aes.BlockSize {
		return "", fmt.Errorf("cipher text too short")
	}
	if len(data)%aes.BlockSize != 0 {
		return "", fmt.Errorf("cipher text is not a multiple of the block size")
	}

	iv := make([]byte, aes.BlockSize) // all zeros IV
	cipherText := data

	mode := cipher.NewCBCDecrypter(block, iv)
	mode.CryptBlocks(cipherText, cipherText)

	// Remove PKCS5 padding. The last byte is attacker-controlled, so it
	// must be range-checked before slicing.
	padding := int(cipherText[len(cipherText)-1])
	if padding < 1 || padding > aes.BlockSize || padding > len(cipherText) {
		return "", fmt.Errorf("invalid padding")
	}
	cipherText = cipherText[:len(cipherText)-padding]

	return string(cipherText), nil
}

// buildMiddleware sets up the middlewre logic and builds a handler.
func buildMiddleware() []echo.MiddlewareFunc {
	var middlewares []echo.MiddlewareFunc
	logger := log.NewWithZap(log.New(*flagEnv, log.AccessLog)).With(context.TODO(), "version", Version)

	middlewares = append(middlewares,

		// Echo built-in middleware
		middleware.Recover(),

		middleware.Secure(),

		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: func() string {
				return uuid.New().String()
			},
		}),

		// Api access log
		m.AccessLogHandler(logger),
	)

	return middlewares
}

func tokenValidationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get("X-Secret")

		if token == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "X-Secret is required"})
		}

		decToken, err := decrypt(token, config.GlobalConfig.Security.Key, config.GlobalConfig.Security.Salt)

		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid X-Secret Provided"})
		}

		if decToken != config.GlobalConfig.Security.Token {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid X-Secret Provided"})
		}

		return next(c)
	}
}

// buildHandler sets up the HTTP routing and builds an HTTP handler.
func buildHandler(
	node walletnode.WalletNode,
	logger log.Logger,
	rds redis.Client,
	db *sqlx.DB,
	cfg *config.Config,
) *echo.Echo {
	t := time.Duration(cfg.Context.Timeout) * time.Second

	e := echo.New()
	e.HTTPErrorHandler = m.NewHTTPErrorHandler(errs.GetStatusCodeMap()).Handler(logger)
	e.Validator = &m.CustomValidator{Validator: validator.New()}
	e.Use(buildMiddleware()...)

	hcController.RegisterHandlers(e.Group(""), Version)

	dg := e.Group("")
	// checking the token validation
	// dg.Use(tokenValidationMiddleware)

	v1WalletController.RegisterHandlers(
		dg.Group("/v1"),
		walletService.New(node, walletRepo.New(db, logger), logger, t),
		logger,
	)

	return e
}
