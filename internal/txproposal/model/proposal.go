// Package model defines the multisig transaction proposal and its quorum rules.
package model

import (
	"time"
)

// ProposalVersion is stamped on proposals built by New.
const ProposalVersion = "2.0.0"

// Type discriminates the payment shape of a proposal.
type Type string

const (
	TypeNormal          Type = "simple"
	TypeMultipleOutputs Type = "multiple_outputs"
	TypeExternal        Type = "external"
)

// Status is the lifecycle state of a proposal.
type Status string

const (
	StatusPending     Status = "pending"
	StatusAccepted    Status = "accepted"
	StatusRejected    Status = "rejected"
	StatusBroadcasted Status = "broadcasted"
)

// ActionType is the vote carried by an Action.
type ActionType string

const (
	ActionAccept ActionType = "accept"
	ActionReject ActionType = "reject"
)

// Output is a single payment destination.
type Output struct {
	ToAddress string
	Amount    uint64
	Message   string
}

// Input is a UTXO spent by the proposal.
type Input struct {
	TxID         string
	Vout         uint32
	Satoshis     uint64
	ScriptPubKey string
	Address      string
	Path         string
	PublicKeys   []string
}

// Address is a derived wallet address, used for change.
type Address struct {
	Version    string
	CreatedOn  time.Time
	Address    string
	Path       string
	PublicKeys []string
}

// Action is a single copayer vote. Accept actions carry one signature per input.
type Action struct {
	CopayerID  string
	Type       ActionType
	Signatures []string
	XPubKey    string
	CreatedOn  time.Time
	Comment    string
}

// Payment is the variant-specific payment intent of a proposal.
// It is implemented by NormalPayment, MultipleOutputsPayment and ExternalPayment.
type Payment interface {
	Type() Type
	payees() []Output
	clone() Payment
}

// NormalPayment pays a single destination. Its output message is the proposal message.
type NormalPayment struct {
	ToAddress string
	Amount    uint64
}

func (NormalPayment) Type() Type { return TypeNormal }

func (n NormalPayment) payees() []Output {
	return []Output{{ToAddress: n.ToAddress, Amount: n.Amount}}
}

func (n NormalPayment) clone() Payment { return n }

// MultipleOutputsPayment pays an ordered list of destinations.
type MultipleOutputsPayment struct {
	Outputs []Output
}

func (MultipleOutputsPayment) Type() Type { return TypeMultipleOutputs }

func (m MultipleOutputsPayment) payees() []Output { return cloneSlice(m.Outputs) }

func (m MultipleOutputsPayment) clone() Payment {
	return MultipleOutputsPayment{Outputs: cloneSlice(m.Outputs)}
}

// ExternalPayment pays an ordered list of destinations from caller supplied inputs.
type ExternalPayment struct {
	Outputs []Output
}

func (ExternalPayment) Type() Type { return TypeExternal }

func (e ExternalPayment) payees() []Output { return cloneSlice(e.Outputs) }

func (e ExternalPayment) clone() Payment {
	return ExternalPayment{Outputs: cloneSlice(e.Outputs)}
}

// Proposal is a pending spend from a shared wallet. A Proposal is not safe for
// concurrent mutation; callers serialize Sign, Reject and MarkBroadcasted per proposal.
type Proposal struct {
	ID                string
	WalletID          string
	CreatorID         string
	Version           string
	CreatedOn         time.Time
	Coin              Coin
	Network           Network
	Payment           Payment
	Message           string
	Inputs            []Input
	InputPaths        []string
	ChangeAddress     *Address
	Fee               uint64
	OutputOrder       []int
	ProposalSignature string

	RequiredSignatures int
	RequiredRejections int
	WalletN            int

	Status        Status
	Actions       []Action
	TxID          string
	BroadcastedOn time.Time
}

// Type returns the payment variant of the proposal.
func (p *Proposal) Type() Type {
	if p.Payment == nil {
		return ""
	}
	return p.Payment.Type()
}

// Outputs returns the logical destination outputs, without change.
func (p *Proposal) Outputs() []Output {
	if p.Payment == nil {
		return nil
	}
	outputs := p.Payment.payees()
	if p.Payment.Type() == TypeNormal {
		outputs[0].Message = p.Message
	}
	return outputs
}

// Clone returns a deep copy of the proposal.
func (p *Proposal) Clone() *Proposal {
	c := *p
	if p.Payment != nil {
		c.Payment = p.Payment.clone()
	}
	c.Inputs = cloneInputs(p.Inputs)
	c.InputPaths = cloneSlice(p.InputPaths)
	c.OutputOrder = cloneSlice(p.OutputOrder)
	if p.ChangeAddress != nil {
		addr := *p.ChangeAddress
		addr.PublicKeys = cloneSlice(addr.PublicKeys)
		c.ChangeAddress = &addr
	}
	c.Actions = cloneActions(p.Actions)
	return &c
}

func cloneInputs(in []Input) []Input {
	if in == nil {
		return nil
	}
	out := make([]Input, len(in))
	for i, input := range in {
		input.PublicKeys = cloneSlice(input.PublicKeys)
		out[i] = input
	}
	return out
}

func cloneActions(in []Action) []Action {
	if in == nil {
		return nil
	}
	out := make([]Action, len(in))
	for i, action := range in {
		action.Signatures = cloneSlice(action.Signatures)
		out[i] = action
	}
	return out
}

// cloneSlice copies in, keeping the nil/empty distinction so copies stay deep-equal.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
