package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Record is the persisted and transmitted form of a Proposal. It keeps the flat
// layout where NORMAL proposals carry toAddress/amount and the other types carry outputs.
type Record struct {
	Version            string         `json:"version"`
	Type               Type           `json:"type,omitempty"`
	CreatedOn          int64          `json:"createdOn"`
	ID                 string         `json:"id"`
	WalletID           string         `json:"walletId"`
	CreatorID          string         `json:"creatorId"`
	Coin               Coin           `json:"coin,omitempty"`
	Network            Network        `json:"network"`
	ToAddress          string         `json:"toAddress,omitempty"`
	Amount             *uint64        `json:"amount,omitempty"`
	Message            string         `json:"message,omitempty"`
	Outputs            []OutputRecord `json:"outputs,omitempty"`
	ProposalSignature  string         `json:"proposalSignature,omitempty"`
	ChangeAddress      *AddressRecord `json:"changeAddress,omitempty"`
	Inputs             []InputRecord  `json:"inputs"`
	InputPaths         []string       `json:"inputPaths"`
	RequiredSignatures int            `json:"requiredSignatures"`
	RequiredRejections int            `json:"requiredRejections"`
	WalletN            int            `json:"walletN"`
	Status             Status         `json:"status"`
	Actions            []ActionRecord `json:"actions"`
	OutputOrder        []int          `json:"outputOrder"`
	Fee                uint64         `json:"fee"`
	TxID               string         `json:"txid,omitempty"`
	BroadcastedOn      int64          `json:"broadcastedOn,omitempty"`
}

type OutputRecord struct {
	ToAddress string `json:"toAddress"`
	Amount    uint64 `json:"amount"`
	Message   string `json:"message,omitempty"`
}

type AddressRecord struct {
	Version    string   `json:"version,omitempty"`
	CreatedOn  int64    `json:"createdOn,omitempty"`
	Address    string   `json:"address"`
	Path       string   `json:"path"`
	PublicKeys []string `json:"publicKeys"`
}

type InputRecord struct {
	TxID         string   `json:"txid"`
	Vout         uint32   `json:"vout"`
	Satoshis     uint64   `json:"satoshis"`
	ScriptPubKey string   `json:"scriptPubKey,omitempty"`
	Address      string   `json:"address,omitempty"`
	Path         string   `json:"path,omitempty"`
	PublicKeys   []string `json:"publicKeys,omitempty"`
}

type ActionRecord struct {
	CreatedOn  int64      `json:"createdOn"`
	CopayerID  string     `json:"copayerId"`
	Type       ActionType `json:"type"`
	Signatures []string   `json:"signatures,omitempty"`
	XPubKey    string     `json:"xpub,omitempty"`
	Comment    string     `json:"comment,omitempty"`
}

// FromRecord rebuilds a Proposal from its record. The result shares no memory with r.
// The record status must agree with the status derived from its actions.
func FromRecord(r Record) (*Proposal, error) {
	typ := r.Type
	if typ == "" {
		typ = TypeNormal
	}
	payment, err := paymentFromRecord(typ, r)
	if err != nil {
		return nil, err
	}
	if typ == TypeExternal && len(r.Inputs) == 0 {
		return nil, fmt.Errorf("external proposal %s has no inputs: %w", r.ID, ErrInvalidProposalShape)
	}

	coin, err := ParseCoin(string(r.Coin))
	if err != nil {
		return nil, err
	}
	network, err := ParseNetwork(string(r.Network))
	if err != nil {
		return nil, err
	}
	status := r.Status
	if status == "" {
		status = StatusPending
	}

	p := &Proposal{
		ID:                 r.ID,
		WalletID:           r.WalletID,
		CreatorID:          r.CreatorID,
		Version:            r.Version,
		CreatedOn:          fromUnix(r.CreatedOn),
		Coin:               coin,
		Network:            network,
		Payment:            payment,
		Message:            r.Message,
		InputPaths:         cloneSlice(r.InputPaths),
		Fee:                r.Fee,
		OutputOrder:        cloneSlice(r.OutputOrder),
		ProposalSignature:  r.ProposalSignature,
		RequiredSignatures: r.RequiredSignatures,
		RequiredRejections: r.RequiredRejections,
		WalletN:            r.WalletN,
		Status:             status,
		TxID:               r.TxID,
		BroadcastedOn:      fromUnix(r.BroadcastedOn),
	}
	if r.Inputs != nil {
		p.Inputs = make([]Input, 0, len(r.Inputs))
		for _, in := range r.Inputs {
			p.Inputs = append(p.Inputs, Input{
				TxID:         in.TxID,
				Vout:         in.Vout,
				Satoshis:     in.Satoshis,
				ScriptPubKey: in.ScriptPubKey,
				Address:      in.Address,
				Path:         in.Path,
				PublicKeys:   cloneSlice(in.PublicKeys),
			})
		}
	}
	if r.ChangeAddress != nil {
		p.ChangeAddress = &Address{
			Version:    r.ChangeAddress.Version,
			CreatedOn:  fromUnix(r.ChangeAddress.CreatedOn),
			Address:    r.ChangeAddress.Address,
			Path:       r.ChangeAddress.Path,
			PublicKeys: cloneSlice(r.ChangeAddress.PublicKeys),
		}
	}
	if r.Actions != nil {
		p.Actions = make([]Action, 0, len(r.Actions))
		seen := make(map[string]struct{}, len(r.Actions))
		for _, a := range r.Actions {
			if a.CopayerID == "" || (a.Type != ActionAccept && a.Type != ActionReject) {
				return nil, fmt.Errorf("proposal %s action %q by %q: %w", r.ID, a.Type, a.CopayerID, ErrInvalidAction)
			}
			if _, ok := seen[a.CopayerID]; ok {
				return nil, fmt.Errorf("proposal %s copayer %s: %w", r.ID, a.CopayerID, ErrDuplicateVote)
			}
			seen[a.CopayerID] = struct{}{}
			p.Actions = append(p.Actions, Action{
				CopayerID:  a.CopayerID,
				Type:       a.Type,
				Signatures: cloneSlice(a.Signatures),
				XPubKey:    a.XPubKey,
				CreatedOn:  fromUnix(a.CreatedOn),
				Comment:    a.Comment,
			})
		}
	}

	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := p.checkStatus(); err != nil {
		return nil, err
	}
	return p, nil
}

func paymentFromRecord(typ Type, r Record) (Payment, error) {
	switch typ {
	case TypeNormal:
		if r.ToAddress == "" || r.Amount == nil {
			return nil, fmt.Errorf("proposal %s requires toAddress and amount: %w", r.ID, ErrInvalidProposalShape)
		}
		if r.Outputs != nil {
			return nil, fmt.Errorf("proposal %s must not have outputs: %w", r.ID, ErrInvalidProposalShape)
		}
		return NormalPayment{ToAddress: r.ToAddress, Amount: *r.Amount}, nil
	case TypeMultipleOutputs, TypeExternal:
		if r.ToAddress != "" || r.Amount != nil {
			return nil, fmt.Errorf("%s proposal %s must not have toAddress or amount: %w", typ, r.ID, ErrInvalidProposalShape)
		}
		outputs := make([]Output, 0, len(r.Outputs))
		for _, o := range r.Outputs {
			outputs = append(outputs, Output(o))
		}
		if typ == TypeExternal {
			return ExternalPayment{Outputs: outputs}, nil
		}
		return MultipleOutputsPayment{Outputs: outputs}, nil
	default:
		return nil, fmt.Errorf("proposal %s has unknown type %q: %w", r.ID, typ, ErrInvalidProposalShape)
	}
}

func (p *Proposal) checkStatus() error {
	derived := replayStatus(p.Actions, p.RequiredSignatures, p.RequiredRejections)
	switch p.Status {
	case StatusPending, StatusAccepted, StatusRejected:
		if derived != p.Status {
			return fmt.Errorf("proposal %s status %s disagrees with actions (%s): %w", p.ID, p.Status, derived, ErrInvalidState)
		}
	case StatusBroadcasted:
		if derived != StatusAccepted {
			return fmt.Errorf("broadcasted proposal %s is not accepted by its actions: %w", p.ID, ErrInvalidState)
		}
	default:
		return fmt.Errorf("proposal %s has unknown status %q: %w", p.ID, p.Status, ErrInvalidState)
	}
	return nil
}

// Record returns the persisted form of the proposal.
func (p *Proposal) Record() Record {
	r := Record{
		Version:            p.Version,
		Type:               p.Type(),
		CreatedOn:          toUnix(p.CreatedOn),
		ID:                 p.ID,
		WalletID:           p.WalletID,
		CreatorID:          p.CreatorID,
		Coin:               p.Coin,
		Network:            p.Network,
		Message:            p.Message,
		ProposalSignature:  p.ProposalSignature,
		InputPaths:         cloneSlice(p.InputPaths),
		RequiredSignatures: p.RequiredSignatures,
		RequiredRejections: p.RequiredRejections,
		WalletN:            p.WalletN,
		Status:             p.Status,
		OutputOrder:        cloneSlice(p.OutputOrder),
		Fee:                p.Fee,
		TxID:               p.TxID,
		BroadcastedOn:      toUnix(p.BroadcastedOn),
	}

	switch payment := p.Payment.(type) {
	case NormalPayment:
		amount := payment.Amount
		r.ToAddress = payment.ToAddress
		r.Amount = &amount
	case MultipleOutputsPayment, ExternalPayment:
		r.Outputs = make([]OutputRecord, 0)
		for _, o := range payment.payees() {
			r.Outputs = append(r.Outputs, OutputRecord(o))
		}
	}

	if p.Inputs != nil {
		r.Inputs = make([]InputRecord, 0, len(p.Inputs))
		for _, in := range p.Inputs {
			r.Inputs = append(r.Inputs, InputRecord{
				TxID:         in.TxID,
				Vout:         in.Vout,
				Satoshis:     in.Satoshis,
				ScriptPubKey: in.ScriptPubKey,
				Address:      in.Address,
				Path:         in.Path,
				PublicKeys:   cloneSlice(in.PublicKeys),
			})
		}
	}
	if p.ChangeAddress != nil {
		r.ChangeAddress = &AddressRecord{
			Version:    p.ChangeAddress.Version,
			CreatedOn:  toUnix(p.ChangeAddress.CreatedOn),
			Address:    p.ChangeAddress.Address,
			Path:       p.ChangeAddress.Path,
			PublicKeys: cloneSlice(p.ChangeAddress.PublicKeys),
		}
	}
	if p.Actions != nil {
		r.Actions = make([]ActionRecord, 0, len(p.Actions))
		for _, a := range p.Actions {
			r.Actions = append(r.Actions, ActionRecord{
				CreatedOn:  toUnix(a.CreatedOn),
				CopayerID:  a.CopayerID,
				Type:       a.Type,
				Signatures: cloneSlice(a.Signatures),
				XPubKey:    a.XPubKey,
				Comment:    a.Comment,
			})
		}
	}
	return r
}

// MarshalJSON encodes the proposal as its Record.
func (p *Proposal) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Record())
}

// UnmarshalJSON decodes a Record and validates it with FromRecord.
func (p *Proposal) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*p = *decoded
	return nil
}

// Decode parses a JSON record into a Proposal.
func Decode(data []byte) (*Proposal, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode proposal record: %w", err)
	}
	return FromRecord(r)
}

func toUnix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func fromUnix(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
