package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
)

// InsertActions appends vote audit entries in a single batch.
func (r *Repository) InsertActions(ctx context.Context, entries []model.AuditEntry) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_actions", firstCoin(entries), firstNetwork(entries), err, start)
	}()

	if len(entries) == 0 {
		return nil
	}

	const query = `
INSERT INTO txproposal_actions (
    proposal_id,
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
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare actions batch: %w", err)
	}

	for _, e := range entries {
		signatures := e.Action.Signatures
		if signatures == nil {
			signatures = []string{}
		}
		if err = batch.Append(
			e.ProposalID,
			e.WalletID,
			string(e.Coin),
			string(e.Network),
			e.Action.CopayerID,
			string(e.Action.Type),
			string(e.Status),
			signatures,
			e.Action.XPubKey,
			e.Action.Comment,
			e.Action.CreatedOn,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append action %s/%s: %w", e.ProposalID, e.Action.CopayerID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("send actions batch: %w", err)
	}
	return nil
}

func firstCoin(entries []model.AuditEntry) model.Coin {
	if len(entries) == 0 {
		return ""
	}
	return entries[0].Coin
}

func firstNetwork(entries []model.AuditEntry) model.Network {
	if len(entries) == 0 {
		return ""
	}
	return entries[0].Network
}
