package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
)

// Proposal loads the latest revision of a proposal by id.
func (r *Repository) Proposal(ctx context.Context, id string) (p *model.Proposal, err error) {
	start := time.Now()
	var (
		coin    model.Coin
		network model.Network
	)
	defer func() {
		r.metrics.Observe("proposal", coin, network, err, start)
	}()

	const query = `
SELECT record
FROM txproposals
WHERE id = ?
ORDER BY revision DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("query proposal: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate proposal: %w", err)
		}
		return nil, fmt.Errorf("proposal %s: %w", id, model.ErrNotFound)
	}

	var record string
	if err = rows.Scan(&record); err != nil {
		return nil, fmt.Errorf("scan proposal: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate proposal: %w", err)
	}

	if p, err = model.Decode([]byte(record)); err != nil {
		return nil, fmt.Errorf("decode proposal %s: %w", id, err)
	}
	coin, network = p.Coin, p.Network
	return p, nil
}
