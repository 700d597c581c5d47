package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
)

// PendingProposals returns the pending proposals of a wallet, oldest first.
func (r *Repository) PendingProposals(ctx context.Context, walletID string) (proposals []*model.Proposal, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("pending_proposals", "", "", err, start)
	}()

	const query = `
SELECT record
FROM txproposals FINAL
WHERE wallet_id = ? AND status = ?
ORDER BY created_on ASC, id ASC`

	rows, err := r.conn.Query(ctx, query, walletID, string(model.StatusPending))
	if err != nil {
		return nil, fmt.Errorf("query pending proposals: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var record string
		if err = rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("scan pending proposal: %w", err)
		}
		p, decodeErr := model.Decode([]byte(record))
		if decodeErr != nil {
			err = fmt.Errorf("decode pending proposal: %w", decodeErr)
			return nil, err
		}
		proposals = append(proposals, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending proposals: %w", err)
	}

	return proposals, nil
}
