// Package service coordinates proposal storage, voting and transaction signing.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/bitcoin"
	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
	"go.uber.org/zap"
)

// CreateRequest carries the payment intent plus the optional creator key used to
// check the proposal signature.
type CreateRequest struct {
	Options       model.CreateOptions
	CreatorPubKey string
}

// ProposalService serializes every mutation of a proposal by id.
type ProposalService struct {
	repo             Repository
	signer           Signer
	audit            AuditWriter
	metrics          Metrics
	logger           *zap.Logger
	locks            *keyedMutex
	verifySignatures bool
	now              func() time.Time
}

// Option configures a ProposalService.
type Option func(*ProposalService)

// WithSignatureVerification checks copayer signatures against the inputs before recording them.
func WithSignatureVerification(enabled bool) Option {
	return func(s *ProposalService) {
		s.verifySignatures = enabled
	}
}

func NewProposalService(repo Repository, signer Signer, audit AuditWriter, metrics Metrics, logger *zap.Logger, opts ...Option) *ProposalService {
	s := &ProposalService{
		repo:    repo,
		signer:  signer,
		audit:   audit,
		metrics: metrics,
		logger:  logger.Named("proposalService"),
		locks:   newKeyedMutex(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start runs the audit writer until ctx is done or Stop is called.
func (s *ProposalService) Start(ctx context.Context) {
	s.audit.Start(ctx)
}

// Stop flushes pending audit entries.
func (s *ProposalService) Stop() {
	s.audit.Stop()
}

// Create builds, checks and stores a new pending proposal.
func (s *ProposalService) Create(ctx context.Context, req CreateRequest) (p *model.Proposal, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("create", err, start)
	}()

	p, err = model.New(req.Options)
	if err != nil {
		return nil, err
	}
	if len(p.Inputs) > 0 {
		if _, err = bitcoin.BuildTx(p); err != nil {
			return nil, fmt.Errorf("assemble proposal %s: %w", p.ID, err)
		}
	}
	if req.CreatorPubKey != "" {
		if err = bitcoin.VerifyProposalSignature(p, req.CreatorPubKey); err != nil {
			return nil, err
		}
	}

	unlock := s.locks.Lock(p.ID)
	defer unlock()

	if _, err = s.repo.Proposal(ctx, p.ID); err == nil {
		err = fmt.Errorf("proposal %s already exists: %w", p.ID, model.ErrInvalidState)
		return nil, err
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("load proposal %s: %w", p.ID, err)
	}

	if err = s.repo.SaveProposal(ctx, p); err != nil {
		return nil, fmt.Errorf("save proposal %s: %w", p.ID, err)
	}

	s.logger.Info("proposal created",
		zap.String("id", p.ID),
		zap.String("walletId", p.WalletID),
		zap.String("creatorId", p.CreatorID),
		zap.String("type", string(p.Type())),
		zap.Int("requiredSignatures", p.RequiredSignatures),
		zap.Int("requiredRejections", p.RequiredRejections),
	)
	return p, nil
}

// Sign records an accept vote with one signature per input.
func (s *ProposalService) Sign(ctx context.Context, id, copayerID string, signatures []string, xpub string) (*model.Proposal, error) {
	return s.vote(ctx, "sign", id, copayerID, func(p *model.Proposal) error {
		if _, voted := p.ActionBy(copayerID); !voted && s.verifySignatures && len(p.Inputs) > 0 {
			if err := s.signer.VerifyCopayerSignatures(ctx, p, xpub, signatures); err != nil {
				return err
			}
		}
		return p.Sign(copayerID, signatures, xpub)
	})
}

// Reject records a reject vote.
func (s *ProposalService) Reject(ctx context.Context, id, copayerID, comment string) (*model.Proposal, error) {
	return s.vote(ctx, "reject", id, copayerID, func(p *model.Proposal) error {
		return p.Reject(copayerID, comment)
	})
}

func (s *ProposalService) vote(ctx context.Context, operation, id, copayerID string, apply func(*model.Proposal) error) (p *model.Proposal, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe(operation, err, start)
	}()

	unlock := s.locks.Lock(id)
	defer unlock()

	p, err = s.repo.Proposal(ctx, id)
	if err != nil {
		return nil, err
	}
	logger := s.logger.With(zap.String("id", id), zap.String("copayerId", copayerID))

	before := p.Status
	if err = apply(p); err != nil {
		logger.Warn("vote refused", zap.String("operation", operation), zap.Error(err))
		return nil, err
	}
	if err = s.repo.SaveProposal(ctx, p); err != nil {
		return nil, fmt.Errorf("save proposal %s: %w", id, err)
	}

	action, _ := p.LastAction()
	s.metrics.ObserveVote(action.Type, p.Status)
	if auditErr := s.audit.Write(ctx, p.AuditEntry(action)); auditErr != nil {
		logger.Warn("audit entry dropped", zap.Error(auditErr))
	}

	logger.Info("vote recorded",
		zap.String("action", string(action.Type)),
		zap.Int("accepts", p.AcceptCount()),
		zap.Int("rejects", p.RejectCount()),
	)
	if p.Status != before {
		logger.Info("proposal status changed",
			zap.String("from", string(before)),
			zap.String("to", string(p.Status)),
		)
	}
	return p, nil
}

// RawTx returns the signed transaction of an accepted proposal.
func (s *ProposalService) RawTx(ctx context.Context, id string) (raw string, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("raw_tx", err, start)
	}()

	p, err := s.repo.Proposal(ctx, id)
	if err != nil {
		return "", err
	}
	tx, err := s.signer.Sign(ctx, p)
	if err != nil {
		s.logger.Warn("raw tx refused", zap.String("id", id), zap.Error(err))
		return "", err
	}
	if raw, err = tx.Hex(); err != nil {
		return "", err
	}

	s.logger.Info("raw tx produced", zap.String("id", id), zap.String("txid", tx.TxID()))
	return raw, nil
}

// MarkBroadcasted moves an accepted proposal to broadcasted. An empty txid is
// computed from the signed transaction.
func (s *ProposalService) MarkBroadcasted(ctx context.Context, id, txid string) (p *model.Proposal, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("mark_broadcasted", err, start)
	}()

	unlock := s.locks.Lock(id)
	defer unlock()

	p, err = s.repo.Proposal(ctx, id)
	if err != nil {
		return nil, err
	}
	if txid == "" && p.IsAccepted() {
		tx, signErr := s.signer.Sign(ctx, p)
		if signErr != nil {
			err = signErr
			return nil, err
		}
		txid = tx.TxID()
	}
	if err = p.MarkBroadcasted(txid, s.now()); err != nil {
		return nil, err
	}
	if err = s.repo.SaveProposal(ctx, p); err != nil {
		return nil, fmt.Errorf("save proposal %s: %w", id, err)
	}

	s.logger.Info("proposal broadcasted", zap.String("id", id), zap.String("txid", txid))
	return p, nil
}

// Proposal returns a stored proposal.
func (s *ProposalService) Proposal(ctx context.Context, id string) (p *model.Proposal, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("proposal", err, start)
	}()

	return s.repo.Proposal(ctx, id)
}

// Pending returns the pending proposals of a wallet.
func (s *ProposalService) Pending(ctx context.Context, walletID string) (proposals []*model.Proposal, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("pending", err, start)
	}()

	return s.repo.PendingProposals(ctx, walletID)
}

// Actions returns the audit trail of a proposal.
func (s *ProposalService) Actions(ctx context.Context, id string) (entries []model.AuditEntry, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("actions", err, start)
	}()

	return s.repo.Actions(ctx, id)
}
