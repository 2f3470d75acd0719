// Package worker moves appended transactions from SQLite to the
// spreadsheet export. It is driven by queue messages with a periodic
// catch-up sweep for anything the queue missed.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/amqp"
	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/core"
	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/storage"
)

// TransactionExporter mirrors one ledger entry to the external surface.
type TransactionExporter interface {
	AppendTransaction(ctx context.Context, t core.Transaction) error
}

type SyncWorker struct {
	storage   *storage.SQLiteRepository
	exporter  TransactionExporter
	batchSize int
}

func NewSyncWorker(storage *storage.SQLiteRepository, exporter TransactionExporter, batchSize int) *SyncWorker {
	return &SyncWorker{
		storage:   storage,
		exporter:  exporter,
		batchSize: batchSize,
	}
}

// HandleSyncMessage exports the transaction named by a queue message.
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *amqp.TransactionSyncMessage) error {
	slog.InfoContext(ctx, "Processing sync message", "id", msg.ID)

	t, err := w.storage.Get(ctx, msg.ID)
	if err != nil {
		return fmt.Errorf("get transaction from storage: %w", err)
	}

	if err := w.exporter.AppendTransaction(ctx, t); err != nil {
		return fmt.Errorf("export transaction: %w", err)
	}

	if err := w.storage.MarkSynced(ctx, t.ID); err != nil {
		return fmt.Errorf("mark synced: %w", err)
	}

	return nil
}

// ProcessPending sweeps unsynced transactions in batches. It picks up
// anything that never made it onto the queue.
func (w *SyncWorker) ProcessPending(ctx context.Context) (int, error) {
	pending, err := w.storage.PendingSync(ctx, w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("list pending transactions: %w", err)
	}

	synced := 0
	for _, t := range pending {
		if err := w.exporter.AppendTransaction(ctx, t); err != nil {
			slog.ErrorContext(ctx, "Failed to export transaction",
				"id", t.ID, "error", err)
			continue
		}
		if err := w.storage.MarkSynced(ctx, t.ID); err != nil {
			slog.ErrorContext(ctx, "Failed to mark transaction synced",
				"id", t.ID, "error", err)
			continue
		}
		synced++
	}

	if synced > 0 {
		slog.InfoContext(ctx, "Pending sweep complete", "synced", synced)
	}
	return synced, nil
}

// RunSweep runs ProcessPending on a fixed interval until ctx is done.
func (w *SyncWorker) RunSweep(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := w.ProcessPending(ctx); err != nil {
				slog.ErrorContext(ctx, "Pending sweep failed", "error", err)
			}
		}
	}
}
