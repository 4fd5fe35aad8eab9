package cron

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"wallet_gateway/internal/config"
	"wallet_gateway/internal/config/log"
	"wallet_gateway/internal/entity"
	"wallet_gateway/internal/wallet/repository"
	"wallet_gateway/internal/walletnode"
)

type (
	// DepositWatcher polls the wallet-node for confirmed incoming
	// transfers, journals them and notifies the operations channel.
	DepositWatcher interface {
		Run(ctx context.Context)
	}

	depositWatcher struct {
		env    string
		node   walletnode.WalletNode
		cfg    config.Config
		rds    redis.Client
		repo   repository.Repository
		logger log.Logger
		viper  *viper.Viper
		mu     sync.Mutex

		checkpoint int64
	}

	gwRedisKey string
)

const (
	// Checkpoint file setting.
	watcherFileName string = "deposit-checkpoint"
	watcherFileEXT  string = "yml"
	checkpointKey   string = "height"

	defaultWatcherInterval time.Duration = 10 * time.Second

	// Redis key.
	gwPrefix      gwRedisKey = "wallet-gateway:"
	ownAddressKey gwRedisKey = "own_address"
)

func NewDepositWatcher(
	ctx context.Context,
	env string,
	node walletnode.WalletNode,
	cfg config.Config,
	rds redis.Client,
	repo repository.Repository,
	logger log.Logger,
) (DepositWatcher, error) {
	v := viper.New()
	v.SetConfigName(watcherFileName)
	v.SetConfigType(watcherFileEXT)
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		v.Set(checkpointKey, int64(0))
		if err = v.WriteConfigAs(fmt.Sprintf("./%s.%s", watcherFileName, watcherFileEXT)); err != nil {
			return &depositWatcher{}, fmt.Errorf("[NewDepositWatcher] internal error: %w", err)
		}
	}

	w := &depositWatcher{
		env:        env,
		node:       node,
		cfg:        cfg,
		rds:        rds,
		repo:       repo,
		logger:     logger,
		viper:      v,
		checkpoint: v.GetInt64(checkpointKey),
	}

	return w, nil
}

func (w *depositWatcher) Run(ctx context.Context) {
	interval := defaultWatcherInterval
	if w.cfg.WalletNode.PollInterval > 0 {
		interval = time.Duration(w.cfg.WalletNode.PollInterval) * time.Second
	}

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				w.logger.Error("depositWatcher panic", zap.Stack("stack"))
			}
		}()

		for {
			w.logger.Info("Checking for new deposits...")

			if err := w.scan(ctx); err != nil {
				w.logger.Errorf("[Run] internal error: %s", err)
			}

			if err := w.notify(ctx); err != nil {
				w.logger.Errorf("[Run] internal error: %s", err)
			}

			select {
			case <-ctx.Done():
				w.logger.Info("deposit watcher stopped")
				return
			case <-time.After(interval):
			}
		}
	}()
}

// scan journals every confirmed incoming transfer above the checkpoint
// and advances the checkpoint to the highest height the node considers
// final.
func (w *depositWatcher) scan(ctx context.Context) error {
	status, err := w.node.SyncStatus(ctx)
	if err != nil {
		return fmt.Errorf("[scan] sync status error: %w", err)
	}

	if !status.Synced {
		w.logger.Info("wallet-node still syncing",
			zap.Int64("height", status.Height),
			zap.Int64("target_height", status.TargetHeight),
		)
		return nil
	}

	if err = w.cacheOwnAddresses(ctx); err != nil {
		w.logger.Errorf("[scan] address cache error: %s", err)
	}

	txs, err := w.node.ListTransactions(ctx, w.checkpoint)
	if err != nil {
		return fmt.Errorf("[scan] list transactions error: %w", err)
	}

	for _, tx := range txs {
		if tx.Direction != entity.Incoming {
			continue
		}
		if tx.Confirmations < w.cfg.WalletNode.MinConfirmations {
			continue
		}

		exists, err := w.repo.DepositExists(ctx, tx.Txid)
		if err != nil {
			w.logger.Errorf("[scan] internal error: %s", err)
			continue
		}
		if exists {
			continue
		}

		record := entity.GWTransferRecord{
			Type:      entity.Deposit,
			TranNo:    tx.Txid,
			Txn:       sql.NullString{String: tx.Txid, Valid: true},
			Recipient: tx.Address,
			Amount:    tx.Amount,
			Fee:       tx.Fee,
			Height:    tx.Height,
		}
		if _, err = w.repo.CreateTransfer(ctx, record); err != nil {
			w.logger.Errorf("[scan] internal error: %s", err)
			continue
		}

		w.logger.Info("new deposit journaled",
			zap.String("txid", tx.Txid),
			zap.String("amount", tx.Amount.String()),
			zap.Int64("height", tx.Height),
		)
	}

	// Keep rescanning the confirmation window: anything above it is
	// final and never revisited.
	checkpoint := status.Height - w.cfg.WalletNode.MinConfirmations
	if checkpoint < 0 {
		checkpoint = 0
	}

	return w.saveCheckpoint(checkpoint)
}

// cacheOwnAddresses mirrors the wallet's address book into a redis hash
// so the GUI can label incoming transfers without a node round trip.
func (w *depositWatcher) cacheOwnAddresses(ctx context.Context) error {
	addresses, err := w.node.ListAddresses(ctx)
	if err != nil {
		return err
	}

	key := string(gwPrefix + ownAddressKey)
	for _, a := range addresses {
		if err = w.rds.HSet(ctx, key, a.Address, a.Index).Err(); err != nil {
			return err
		}
	}

	return nil
}

func (w *depositWatcher) notify(ctx context.Context) error {
	records, err := w.repo.ListUnnotified(ctx)
	if err != nil {
		return fmt.Errorf("[notify] internal error: %w", err)
	}

	for _, record := range records {
		text := w.depositTextMessage(record.Recipient, record.Amount, record.Height)
		if err = w.sendTelegramBotMessage(text); err != nil {
			continue
		}

		if err = w.repo.MarkNotified(ctx, record.ID); err != nil {
			w.logger.Errorf("[notify] internal error: %s", err)
		}
	}

	return nil
}

func (w *depositWatcher) sendTelegramBotMessage(text string) error {
	bot, err := tgbotapi.NewBotAPI(config.GlobalConfig.TelegramBot.BotToken)
	if err != nil {
		w.logger.Error("error loading bot", err)
		return err
	}
	chatId := config.GlobalConfig.TelegramBot.ChannelId
	message := tgbotapi.NewMessage(chatId, text)

	if _, err = bot.Send(message); err != nil {
		w.logger.Error("Error sending bot message", err)
		return err
	}

	return nil
}

func (w *depositWatcher) depositTextMessage(address string, amount decimal.Decimal, height int64) string {
	text := "New deposit received.\n\n" +
		"Address: " + address + "\n" +
		"Amount: " + amount.String() + "\n" +
		fmt.Sprintf("Height: %d", height)
	return text
}

func (w *depositWatcher) saveCheckpoint(height int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if height <= w.checkpoint {
		return nil
	}

	w.checkpoint = height
	w.viper.Set(checkpointKey, height)
	if err := w.viper.WriteConfig(); err != nil {
		return fmt.Errorf("[saveCheckpoint] internal error: %w", err)
	}

	return nil
}
