// Package backend selects and wires the ledger storage for the
// configured environment.
package backend

import (
	"fmt"
	"log/slog"

	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/amqp"
	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/config"
	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/ledger"
	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/ledger/memory"
	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/services"
	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/storage"
)

// Backend bundles the ledger ports a running engine needs.
type Backend interface {
	ledger.TransactionWriter
	ledger.TransactionLister
	ledger.AccountReader
	ledger.GoalReader
}

// CleanupFunc releases backend resources on shutdown.
type CleanupFunc func()

// New builds the configured backend plus an optional sync publisher.
// The memory backend seeds the demo accounts and goals; the sqlite
// backend runs migrations on open. An unset AMQP URL disables sync
// events rather than failing startup.
func New(cfg *config.Config) (Backend, services.SyncPublisher, CleanupFunc, error) {
	var (
		b       Backend
		cleanup []func()
	)

	switch cfg.DataBackend {
	case "memory":
		slog.Info("Using in-memory backend")
		b = memory.NewWithDefaults()
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("create sqlite backend: %w", err)
		}
		slog.Info("Using SQLite backend", "path", cfg.SQLiteDBPath)
		cleanup = append(cleanup, func() {
			if err := repo.Close(); err != nil {
				slog.Error("Failed to close SQLite repository", "error", err)
			}
		})
		b = repo
	default:
		return nil, nil, nil, fmt.Errorf("unknown data backend %q", cfg.DataBackend)
	}

	var publisher services.SyncPublisher
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			// Sync is an enhancement on top of the ledger; the engine
			// still runs without it.
			slog.Error("Failed to connect to AMQP, sync events disabled", "error", err)
		} else {
			slog.Info("AMQP sync publisher connected",
				"exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
			cleanup = append(cleanup, func() {
				if err := client.Close(); err != nil {
					slog.Error("Failed to close AMQP client", "error", err)
				}
			})
			publisher = client
		}
	}

	return b, publisher, func() {
		for i := len(cleanup) - 1; i >= 0; i-- {
			cleanup[i]()
		}
	}, nil
}
