package model

import (
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

type header struct {
	Type    Type           `json:"type"`
	Coin    Coin           `json:"coin"`
	Network Network        `json:"network"`
	Message string         `json:"message,omitempty"`
	Outputs []OutputRecord `json:"outputs"`
	Fee     uint64         `json:"fee"`
}

// Header returns the RFC 8785 canonical JSON of the payment intent. The creator's
// proposalSignature is computed over it.
func (p *Proposal) Header() ([]byte, error) {
	h := header{
		Type:    p.Type(),
		Coin:    p.Coin,
		Network: p.Network,
		Message: p.Message,
		Fee:     p.Fee,
	}
	for _, output := range p.Outputs() {
		h.Outputs = append(h.Outputs, OutputRecord(output))
	}

	raw, err := json.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("marshal proposal %s header: %w", p.ID, err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("canonicalize proposal %s header: %w", p.ID, err)
	}
	return canonical, nil
}
