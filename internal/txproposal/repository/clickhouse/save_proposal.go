package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
	"github.com/goodnatureofminers/txproposal-backend/pkg/safe"
)

// SaveProposal stores the current state of p. Older revisions are collapsed by the table engine.
func (r *Repository) SaveProposal(ctx context.Context, p *model.Proposal) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_proposal", p.Coin, p.Network, err, start)
	}()

	record, err := json.Marshal(p.Record())
	if err != nil {
		return fmt.Errorf("encode proposal %s: %w", p.ID, err)
	}
	requiredSignatures, err := safe.Uint32(p.RequiredSignatures)
	if err != nil {
		return fmt.Errorf("proposal %s required signatures: %w", p.ID, err)
	}
	requiredRejections, err := safe.Uint32(p.RequiredRejections)
	if err != nil {
		return fmt.Errorf("proposal %s required rejections: %w", p.ID, err)
	}

	const query = `
INSERT INTO txproposals (
    id,
    wallet_id,
    creator_id,
    coin,
    network,
    type,
    status,
    required_signatures,
    required_rejections,
    created_on,
    revision,
    record
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare proposal batch: %w", err)
	}

	if err = batch.Append(
		p.ID,
		p.WalletID,
		p.CreatorID,
		string(p.Coin),
		string(p.Network),
		string(p.Type()),
		string(p.Status),
		requiredSignatures,
		requiredRejections,
		p.CreatedOn,
		p.Revision(),
		string(record),
	); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append proposal %s: %w", p.ID, err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("send proposal batch: %w", err)
	}
	return nil
}
