package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ProposalService interface {
		Create(ctx context.Context, req service.CreateRequest) (*model.Proposal, error)
		Sign(ctx context.Context, id, copayerID string, signatures []string, xpub string) (*model.Proposal, error)
		Reject(ctx context.Context, id, copayerID, comment string) (*model.Proposal, error)
		RawTx(ctx context.Context, id string) (string, error)
		MarkBroadcasted(ctx context.Context, id, txid string) (*model.Proposal, error)
		Proposal(ctx context.Context, id string) (*model.Proposal, error)
		Pending(ctx context.Context, walletID string) ([]*model.Proposal, error)
		Actions(ctx context.Context, id string) ([]model.AuditEntry, error)
	}

	Metrics interface {
		Observe(route, method string, code int, started time.Time)
	}
)
