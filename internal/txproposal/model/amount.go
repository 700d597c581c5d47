package model

import (
	"fmt"

	"github.com/goodnatureofminers/txproposal-backend/pkg/safe"
)

// TotalAmount returns the value paid to the destinations, in satoshis.
func (p *Proposal) TotalAmount() (uint64, error) {
	outputs := p.Outputs()
	amounts := make([]uint64, 0, len(outputs))
	for _, output := range outputs {
		amounts = append(amounts, output.Amount)
	}
	total, err := safe.AddUint64(amounts...)
	if err != nil {
		return 0, fmt.Errorf("proposal %s total amount: %w", p.ID, err)
	}
	return total, nil
}

// InputAmount returns the value of all inputs, in satoshis.
func (p *Proposal) InputAmount() (uint64, error) {
	amounts := make([]uint64, 0, len(p.Inputs))
	for _, input := range p.Inputs {
		amounts = append(amounts, input.Satoshis)
	}
	total, err := safe.AddUint64(amounts...)
	if err != nil {
		return 0, fmt.Errorf("proposal %s input amount: %w", p.ID, err)
	}
	return total, nil
}

// ChangeAmount returns inputs minus outputs minus fee. It fails with ErrInsufficientFunds
// when the inputs do not cover the outputs and the fee.
func (p *Proposal) ChangeAmount() (uint64, error) {
	in, err := p.InputAmount()
	if err != nil {
		return 0, err
	}
	out, err := p.TotalAmount()
	if err != nil {
		return 0, err
	}
	spend, err := safe.AddUint64(out, p.Fee)
	if err != nil {
		return 0, fmt.Errorf("proposal %s spend: %w", p.ID, err)
	}
	change, err := safe.SubUint64(in, spend)
	if err != nil {
		return 0, fmt.Errorf("proposal %s inputs %d below spend %d: %w", p.ID, in, spend, ErrInsufficientFunds)
	}
	return change, nil
}
