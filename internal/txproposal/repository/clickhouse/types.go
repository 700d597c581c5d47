package clickhouse

//go:generate mockgen -source=types.go -destination=mocks_test.go -package=clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
)

type (
	Metrics interface {
		Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time)
	}

	// Conn is the part of clickhouse.Conn the repository uses.
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (Rows, error)
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Ping(ctx context.Context) error
		Close() error
	}

	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close() error
	}

	Batch interface {
		Append(v ...any) error
		Send() error
		Abort() error
	}
)
