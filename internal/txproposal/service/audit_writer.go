package service

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txproposal-backend/internal/clock"
	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
	"github.com/goodnatureofminers/txproposal-backend/pkg/batcher"
	"go.uber.org/zap"
)

const (
	defaultAuditBatchSize     = 100
	defaultAuditFlushInterval = 5 * time.Second
	defaultAuditRPS           = 10

	auditFlushAttempts = 3
	auditRetryDelay    = 500 * time.Millisecond
)

// AuditWriterConfig tunes the batched action audit.
type AuditWriterConfig struct {
	BatchSize     int
	FlushInterval time.Duration
	RPS           int
}

func (c AuditWriterConfig) withDefaults() AuditWriterConfig {
	if c.BatchSize <= 0 {
		c.BatchSize = defaultAuditBatchSize
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = defaultAuditFlushInterval
	}
	if c.RPS <= 0 {
		c.RPS = defaultAuditRPS
	}
	return c
}

type auditWriter struct {
	repo       Repository
	logger     *zap.Logger
	batcher    *batcher.Batcher[model.AuditEntry]
	retryDelay time.Duration
}

// NewAuditWriter batches action audit entries into Repository.InsertActions.
func NewAuditWriter(repo Repository, cfg AuditWriterConfig, logger *zap.Logger, metrics batcher.Metrics) AuditWriter {
	cfg = cfg.withDefaults()
	w := &auditWriter{
		repo:       repo,
		logger:     logger,
		retryDelay: auditRetryDelay,
	}
	w.batcher = batcher.New[model.AuditEntry](
		logger.Named("auditBatcher"),
		w.flush,
		cfg.BatchSize,
		cfg.FlushInterval,
		cfg.RPS,
		metrics,
	)
	return w
}

func (w *auditWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

func (w *auditWriter) Stop() {
	w.batcher.Stop()
}

func (w *auditWriter) Write(ctx context.Context, entry model.AuditEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return w.batcher.Add(ctx, entry)
}

func (w *auditWriter) flush(ctx context.Context, entries []model.AuditEntry) error {
	err := clock.Retry(ctx, auditFlushAttempts, w.retryDelay, func(attempt int) error {
		err := w.repo.InsertActions(ctx, entries)
		if err != nil {
			w.logger.Warn("insert actions failed",
				zap.Int("attempt", attempt),
				zap.Int("count", len(entries)),
				zap.Error(err),
			)
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("insert %d actions: %w", len(entries), err)
	}
	return nil
}
