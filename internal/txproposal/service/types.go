package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/bitcoin"
	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		SaveProposal(ctx context.Context, p *model.Proposal) error
		Proposal(ctx context.Context, id string) (*model.Proposal, error)
		PendingProposals(ctx context.Context, walletID string) ([]*model.Proposal, error)
		Actions(ctx context.Context, proposalID string) ([]model.AuditEntry, error)
		InsertActions(ctx context.Context, entries []model.AuditEntry) error
	}

	Signer interface {
		Sign(ctx context.Context, p *model.Proposal) (*bitcoin.Tx, error)
		VerifyCopayerSignatures(ctx context.Context, p *model.Proposal, xpub string, signatures []string) error
	}

	AuditWriter interface {
		Start(ctx context.Context)
		Stop()
		Write(ctx context.Context, entry model.AuditEntry) error
	}

	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveVote(action model.ActionType, status model.Status)
	}
)
