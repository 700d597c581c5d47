package model

// AuditEntry is one recorded vote together with the proposal it was cast on.
type AuditEntry struct {
	ProposalID string
	WalletID   string
	Coin       Coin
	Network    Network
	Status     Status
	Action     Action
}

// AuditEntry returns the audit entry for action as seen after it was applied.
func (p *Proposal) AuditEntry(action Action) AuditEntry {
	action.Signatures = cloneSlice(action.Signatures)
	return AuditEntry{
		ProposalID: p.ID,
		WalletID:   p.WalletID,
		Coin:       p.Coin,
		Network:    p.Network,
		Status:     p.Status,
		Action:     action,
	}
}

// LastAction returns the most recent action.
func (p *Proposal) LastAction() (Action, bool) {
	if len(p.Actions) == 0 {
		return Action{}, false
	}
	return p.Actions[len(p.Actions)-1], true
}

// Revision increases with every stored mutation of the proposal.
func (p *Proposal) Revision() uint64 {
	rev := uint64(len(p.Actions))
	if p.Status == StatusBroadcasted {
		rev++
	}
	return rev
}
