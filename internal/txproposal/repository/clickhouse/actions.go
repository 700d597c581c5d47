package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
)

// Actions returns the audit trail of a proposal in the order the votes were recorded.
func (r *Repository) Actions(ctx context.Context, proposalID string) (entries []model.AuditEntry, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("actions", "", "", err, start)
	}()

	const query = `
SELECT
	wallet_id,
	coin,
	network,
	copayer_id,
	type,
	status,
	signatures,
	xpub,
	comment,
	created_on
FROM txproposal_actions
WHERE proposal_id = ?
ORDER BY created_on ASC, copayer_id ASC`

	rows, err := r.conn.Query(ctx, query, proposalID)
	if err != nil {
		return nil, fmt.Errorf("query actions: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var (
			e                          model.AuditEntry
			coin, network, typ, status string
		)
		e.ProposalID = proposalID
		if err = rows.Scan(
			&e.WalletID,
			&coin,
			&network,
			&e.Action.CopayerID,
			&typ,
			&status,
			&e.Action.Signatures,
			&e.Action.XPubKey,
			&e.Action.Comment,
			&e.Action.CreatedOn,
		); err != nil {
			return nil, fmt.Errorf("scan action: %w", err)
		}
		e.Coin = model.Coin(coin)
		e.Network = model.Network(network)
		e.Action.Type = model.ActionType(typ)
		e.Status = model.Status(status)
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate actions: %w", err)
	}

	return entries, nil
}
