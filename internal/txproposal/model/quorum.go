package model

import (
	"fmt"
	"time"
)

// Sign records an accept action carrying one signature per input and the copayer xpub.
// Signatures are not verified here.
func (p *Proposal) Sign(copayerID string, signatures []string, xpub string) error {
	if len(signatures) == 0 {
		return fmt.Errorf("copayer %s sent no signatures: %w", copayerID, ErrInvalidAction)
	}
	if len(p.Inputs) > 0 && len(signatures) != len(p.Inputs) {
		return fmt.Errorf("copayer %s sent %d signatures for %d inputs: %w",
			copayerID, len(signatures), len(p.Inputs), ErrInvalidAction)
	}
	return p.addAction(Action{
		CopayerID:  copayerID,
		Type:       ActionAccept,
		Signatures: cloneSlice(signatures),
		XPubKey:    xpub,
		CreatedOn:  now(),
	})
}

// Reject records a reject action.
func (p *Proposal) Reject(copayerID, comment string) error {
	return p.addAction(Action{
		CopayerID: copayerID,
		Type:      ActionReject,
		CreatedOn: now(),
		Comment:   comment,
	})
}

func (p *Proposal) addAction(action Action) error {
	if action.CopayerID == "" {
		return fmt.Errorf("copayer id is required: %w", ErrInvalidAction)
	}
	if _, ok := p.ActionBy(action.CopayerID); ok {
		return fmt.Errorf("proposal %s copayer %s: %w", p.ID, action.CopayerID, ErrDuplicateVote)
	}

	p.Actions = append(p.Actions, action)
	p.Status = nextStatus(p.Status, p.Actions, p.RequiredSignatures, p.RequiredRejections)
	return nil
}

// nextStatus derives the status after the latest action. Terminal states never change.
func nextStatus(current Status, actions []Action, requiredSignatures, requiredRejections int) Status {
	if current != StatusPending {
		return current
	}
	accepts, rejects := countActions(actions)
	switch {
	case accepts >= requiredSignatures:
		return StatusAccepted
	case rejects >= requiredRejections:
		return StatusRejected
	default:
		return StatusPending
	}
}

// replayStatus derives the pending/accepted/rejected status by applying actions in order.
func replayStatus(actions []Action, requiredSignatures, requiredRejections int) Status {
	status := StatusPending
	for i := range actions {
		status = nextStatus(status, actions[:i+1], requiredSignatures, requiredRejections)
	}
	return status
}

func countActions(actions []Action) (accepts, rejects int) {
	for _, action := range actions {
		switch action.Type {
		case ActionAccept:
			accepts++
		case ActionReject:
			rejects++
		}
	}
	return accepts, rejects
}

// ActionBy returns the action recorded for copayerID.
func (p *Proposal) ActionBy(copayerID string) (Action, bool) {
	for _, action := range p.Actions {
		if action.CopayerID == copayerID {
			return action, true
		}
	}
	return Action{}, false
}

// AcceptCount returns the number of accept actions.
func (p *Proposal) AcceptCount() int {
	accepts, _ := countActions(p.Actions)
	return accepts
}

// RejectCount returns the number of reject actions.
func (p *Proposal) RejectCount() int {
	_, rejects := countActions(p.Actions)
	return rejects
}

func (p *Proposal) IsPending() bool { return p.Status == StatusPending }

func (p *Proposal) IsAccepted() bool { return p.Status == StatusAccepted }

func (p *Proposal) IsRejected() bool { return p.Status == StatusRejected }

func (p *Proposal) IsBroadcasted() bool { return p.Status == StatusBroadcasted }

// MarkBroadcasted moves an accepted proposal to broadcasted.
func (p *Proposal) MarkBroadcasted(txid string, at time.Time) error {
	if p.Status != StatusAccepted {
		return fmt.Errorf("proposal %s is %s: %w", p.ID, p.Status, ErrInvalidState)
	}
	if txid == "" {
		return fmt.Errorf("proposal %s broadcast txid is required: %w", p.ID, ErrInvalidState)
	}
	p.Status = StatusBroadcasted
	p.TxID = txid
	p.BroadcastedOn = at.UTC().Truncate(time.Second)
	return nil
}
