package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// nowFunc is replaced in tests.
var nowFunc = time.Now

func now() time.Time {
	return nowFunc().UTC().Truncate(time.Second)
}

// CreateOptions is the payment intent and wallet context for a new proposal.
// ToAddress and Amount are used by TypeNormal; Outputs by the other types.
type CreateOptions struct {
	ID                string
	Type              Type
	WalletID          string
	CreatorID         string
	Coin              Coin
	Network           Network
	ToAddress         string
	Amount            uint64
	Message           string
	Outputs           []Output
	Inputs            []Input
	ChangeAddress     *Address
	Fee               uint64
	OutputOrder       []int
	ProposalSignature string

	RequiredSignatures int
	RequiredRejections int
	WalletN            int
}

// New builds a pending proposal from opts. The output order defaults to the identity
// permutation over the destinations plus one slot for a change output.
func New(opts CreateOptions) (*Proposal, error) {
	if opts.Type == "" {
		opts.Type = TypeNormal
	}

	payment, err := newPayment(opts)
	if err != nil {
		return nil, err
	}
	if opts.Type == TypeExternal && len(opts.Inputs) == 0 {
		return nil, fmt.Errorf("external proposal requires inputs: %w", ErrInvalidProposalShape)
	}

	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}
	coin, err := ParseCoin(string(opts.Coin))
	if err != nil {
		return nil, err
	}
	network, err := ParseNetwork(string(opts.Network))
	if err != nil {
		return nil, err
	}

	p := &Proposal{
		ID:                 id,
		WalletID:           opts.WalletID,
		CreatorID:          opts.CreatorID,
		Version:            ProposalVersion,
		CreatedOn:          now(),
		Coin:               coin,
		Network:            network,
		Payment:            payment,
		Message:            opts.Message,
		Inputs:             cloneInputs(opts.Inputs),
		Fee:                opts.Fee,
		OutputOrder:        cloneSlice(opts.OutputOrder),
		ProposalSignature:  opts.ProposalSignature,
		RequiredSignatures: opts.RequiredSignatures,
		RequiredRejections: opts.RequiredRejections,
		WalletN:            opts.WalletN,
		Status:             StatusPending,
		Actions:            []Action{},
	}
	for _, input := range p.Inputs {
		p.InputPaths = append(p.InputPaths, input.Path)
	}
	if opts.ChangeAddress != nil {
		addr := *opts.ChangeAddress
		addr.PublicKeys = cloneSlice(addr.PublicKeys)
		p.ChangeAddress = &addr
	}
	if p.OutputOrder == nil {
		p.OutputOrder = identityOrder(len(p.Outputs()) + 1)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func newPayment(opts CreateOptions) (Payment, error) {
	switch opts.Type {
	case TypeNormal:
		if len(opts.Outputs) > 0 {
			return nil, fmt.Errorf("%s proposal must not have outputs: %w", opts.Type, ErrInvalidProposalShape)
		}
		return NormalPayment{ToAddress: opts.ToAddress, Amount: opts.Amount}, nil
	case TypeMultipleOutputs, TypeExternal:
		if opts.ToAddress != "" || opts.Amount != 0 {
			return nil, fmt.Errorf("%s proposal must not have toAddress or amount: %w", opts.Type, ErrInvalidProposalShape)
		}
		if opts.Type == TypeExternal {
			return ExternalPayment{Outputs: cloneSlice(opts.Outputs)}, nil
		}
		return MultipleOutputsPayment{Outputs: cloneSlice(opts.Outputs)}, nil
	default:
		return nil, fmt.Errorf("unknown proposal type %q: %w", opts.Type, ErrInvalidProposalShape)
	}
}

// validate checks identity, payment and quorum fields shared by New and FromRecord.
func (p *Proposal) validate() error {
	if p.ID == "" || p.WalletID == "" || p.CreatorID == "" {
		return fmt.Errorf("proposal id, wallet id and creator id are required: %w", ErrInvalidProposalShape)
	}

	outputs := p.Outputs()
	if len(outputs) == 0 {
		return fmt.Errorf("proposal %s has no outputs: %w", p.ID, ErrInvalidProposalShape)
	}
	for i, output := range outputs {
		if output.ToAddress == "" {
			return fmt.Errorf("proposal %s output %d missing address: %w", p.ID, i, ErrInvalidProposalShape)
		}
		if output.Amount == 0 {
			return fmt.Errorf("proposal %s output %d has zero amount: %w", p.ID, i, ErrInvalidProposalShape)
		}
	}
	for i, input := range p.Inputs {
		if input.TxID == "" {
			return fmt.Errorf("proposal %s input %d missing txid: %w", p.ID, i, ErrInvalidProposalShape)
		}
	}

	if p.RequiredSignatures < 1 || p.RequiredRejections < 1 {
		return fmt.Errorf("proposal %s quorum thresholds must be positive: %w", p.ID, ErrInvalidProposalShape)
	}
	if p.WalletN < p.RequiredSignatures || p.WalletN < p.RequiredRejections {
		return fmt.Errorf("proposal %s thresholds exceed %d copayers: %w", p.ID, p.WalletN, ErrInvalidProposalShape)
	}
	for _, idx := range p.OutputOrder {
		if idx < 0 {
			return fmt.Errorf("proposal %s output order has negative index: %w", p.ID, ErrInvalidOutputOrder)
		}
	}
	return nil
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
