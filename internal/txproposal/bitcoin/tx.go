// Package bitcoin assembles and signs the transaction described by a proposal.
package bitcoin

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
	"github.com/goodnatureofminers/txproposal-backend/pkg/safe"
)

const txVersion = 1

type scriptKind int

const (
	kindMultisig scriptKind = iota
	kindPubKeyHash
)

// spend is what the signer needs to unlock one input.
type spend struct {
	kind scriptKind
	// subscript is the redeem script for multisig inputs and the previous
	// output script for pay-to-pubkey-hash inputs.
	subscript []byte
	keys      []pubKey
	required  int
}

type pubKey struct {
	raw []byte
	key *btcec.PublicKey
}

// Tx is an assembled proposal transaction.
type Tx struct {
	msg          *wire.MsgTx
	params       *chaincfg.Params
	spends       []spend
	changeScript []byte
}

// BuildTx assembles the unsigned transaction of p. Inputs keep their proposal order.
// Outputs are the destinations plus change, permuted by p.OutputOrder.
func BuildTx(p *model.Proposal) (*Tx, error) {
	params, err := ChainParams(p.Coin, p.Network)
	if err != nil {
		return nil, err
	}

	tx := &Tx{msg: wire.NewMsgTx(txVersion), params: params}
	for i, input := range p.Inputs {
		sp, err := buildSpend(input, p.RequiredSignatures, params)
		if err != nil {
			return nil, fmt.Errorf("proposal %s input %d: %w", p.ID, i, err)
		}
		hash, err := chainhash.NewHashFromStr(input.TxID)
		if err != nil {
			return nil, fmt.Errorf("proposal %s input %d txid: %v: %w", p.ID, i, err, model.ErrInvalidProposalShape)
		}
		txIn := wire.NewTxIn(wire.NewOutPoint(hash, input.Vout), nil, nil)
		if txIn.SignatureScript, err = sp.unsignedScript(); err != nil {
			return nil, fmt.Errorf("proposal %s input %d script: %w", p.ID, i, err)
		}
		tx.msg.AddTxIn(txIn)
		tx.spends = append(tx.spends, sp)
	}

	outputs, err := tx.logicalOutputs(p)
	if err != nil {
		return nil, err
	}
	order, err := outputOrder(p.OutputOrder, len(outputs))
	if err != nil {
		return nil, fmt.Errorf("proposal %s: %w", p.ID, err)
	}
	for _, idx := range order {
		tx.msg.AddTxOut(outputs[idx])
	}
	return tx, nil
}

// logicalOutputs returns the destination outputs followed by change, before permutation.
func (t *Tx) logicalOutputs(p *model.Proposal) ([]*wire.TxOut, error) {
	destinations := p.Outputs()
	outputs := make([]*wire.TxOut, 0, len(destinations)+1)
	for i, dest := range destinations {
		out, err := t.txOut(dest.ToAddress, dest.Amount)
		if err != nil {
			return nil, fmt.Errorf("proposal %s output %d: %w", p.ID, i, err)
		}
		outputs = append(outputs, out)
	}

	change, err := p.ChangeAmount()
	if err != nil {
		return nil, err
	}
	if change <= DustThreshold {
		return outputs, nil
	}
	if p.ChangeAddress == nil || p.ChangeAddress.Address == "" {
		return nil, fmt.Errorf("proposal %s has change %d but no change address: %w", p.ID, change, model.ErrInvalidProposalShape)
	}
	out, err := t.txOut(p.ChangeAddress.Address, change)
	if err != nil {
		return nil, fmt.Errorf("proposal %s change: %w", p.ID, err)
	}
	t.changeScript = out.PkScript
	return append(outputs, out), nil
}

func (t *Tx) txOut(address string, amount uint64) (*wire.TxOut, error) {
	script, err := addressScript(address, t.params)
	if err != nil {
		return nil, err
	}
	value, err := safe.Int64(amount)
	if err != nil {
		return nil, fmt.Errorf("amount: %v: %w", err, model.ErrInvalidProposalShape)
	}
	return wire.NewTxOut(value, script), nil
}

// outputOrder drops entries that point past the real outputs, then checks the rest is a
// permutation of [0, count). An empty order keeps the logical order.
func outputOrder(order []int, count int) ([]int, error) {
	if len(order) == 0 {
		order = make([]int, count)
		for i := range order {
			order[i] = i
		}
		return order, nil
	}

	trimmed := make([]int, 0, count)
	for _, idx := range order {
		if idx < count {
			trimmed = append(trimmed, idx)
		}
	}
	if len(trimmed) != count {
		return nil, fmt.Errorf("order %v covers %d of %d outputs: %w", order, len(trimmed), count, model.ErrInvalidOutputOrder)
	}
	seen := make([]bool, count)
	for _, idx := range trimmed {
		if idx < 0 || seen[idx] {
			return nil, fmt.Errorf("order %v is not a permutation: %w", order, model.ErrInvalidOutputOrder)
		}
		seen[idx] = true
	}
	return trimmed, nil
}

func addressScript(address string, params *chaincfg.Params) ([]byte, error) {
	addr, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return nil, fmt.Errorf("decode address %q: %v: %w", address, err, model.ErrInvalidProposalShape)
	}
	if !addr.IsForNet(params) {
		return nil, fmt.Errorf("address %q is not for %s: %w", address, params.Name, model.ErrInvalidProposalShape)
	}
	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return nil, fmt.Errorf("script for %q: %v: %w", address, err, model.ErrInvalidProposalShape)
	}
	return script, nil
}

func buildSpend(input model.Input, required int, params *chaincfg.Params) (spend, error) {
	prevScript, err := previousScript(input, params)
	if err != nil {
		return spend{}, err
	}
	keys, err := sortedKeys(input.PublicKeys)
	if err != nil {
		return spend{}, err
	}

	switch txscript.GetScriptClass(prevScript) {
	case txscript.ScriptHashTy:
		if required < 1 || required > len(keys) {
			return spend{}, fmt.Errorf("%d of %d multisig: %w", required, len(keys), model.ErrInvalidProposalShape)
		}
		redeem, err := multisigScript(keys, required)
		if err != nil {
			return spend{}, err
		}
		if !bytes.Equal(btcutil.Hash160(redeem), prevScript[2:22]) {
			return spend{}, fmt.Errorf("redeem script does not match %x: %w", prevScript, model.ErrInvalidProposalShape)
		}
		return spend{kind: kindMultisig, subscript: redeem, keys: keys, required: required}, nil
	case txscript.PubKeyHashTy:
		if len(keys) != 1 {
			return spend{}, fmt.Errorf("pubkey hash input with %d keys: %w", len(keys), model.ErrInvalidProposalShape)
		}
		if !bytes.Equal(btcutil.Hash160(keys[0].raw), prevScript[3:23]) {
			return spend{}, fmt.Errorf("public key does not match %x: %w", prevScript, model.ErrInvalidProposalShape)
		}
		return spend{kind: kindPubKeyHash, subscript: prevScript, keys: keys, required: 1}, nil
	default:
		return spend{}, fmt.Errorf("unsupported previous script %x: %w", prevScript, model.ErrInvalidProposalShape)
	}
}

// previousScript decodes the spent output script, deriving it from the input address when absent.
func previousScript(input model.Input, params *chaincfg.Params) ([]byte, error) {
	if input.ScriptPubKey == "" {
		if input.Address == "" {
			return nil, fmt.Errorf("no scriptPubKey or address: %w", model.ErrInvalidProposalShape)
		}
		return addressScript(input.Address, params)
	}
	script, err := hex.DecodeString(input.ScriptPubKey)
	if err != nil {
		return nil, fmt.Errorf("scriptPubKey: %v: %w", err, model.ErrInvalidProposalShape)
	}
	return script, nil
}

// sortedKeys parses the input keys and orders them by their serialized bytes.
func sortedKeys(hexKeys []string) ([]pubKey, error) {
	keys := make([]pubKey, 0, len(hexKeys))
	for _, h := range hexKeys {
		raw, err := hex.DecodeString(h)
		if err != nil {
			return nil, fmt.Errorf("public key %q: %v: %w", h, err, model.ErrInvalidProposalShape)
		}
		key, err := btcec.ParsePubKey(raw)
		if err != nil {
			return nil, fmt.Errorf("public key %q: %v: %w", h, err, model.ErrInvalidProposalShape)
		}
		keys = append(keys, pubKey{raw: raw, key: key})
	}
	sort.SliceStable(keys, func(i, j int) bool { return bytes.Compare(keys[i].raw, keys[j].raw) < 0 })
	return keys, nil
}

func multisigScript(keys []pubKey, required int) ([]byte, error) {
	b := txscript.NewScriptBuilder().AddInt64(int64(required))
	for _, key := range keys {
		b.AddData(key.raw)
	}
	script, err := b.AddInt64(int64(len(keys))).AddOp(txscript.OP_CHECKMULTISIG).Script()
	if err != nil {
		return nil, fmt.Errorf("multisig script: %w", err)
	}
	return script, nil
}

// unsignedScript is OP_0 <redeem script> for multisig inputs and empty otherwise.
func (s spend) unsignedScript() ([]byte, error) {
	if s.kind != kindMultisig {
		return nil, nil
	}
	return txscript.NewScriptBuilder().AddOp(txscript.OP_0).AddData(s.subscript).Script()
}

// MsgTx returns a copy of the wire transaction.
func (t *Tx) MsgTx() *wire.MsgTx {
	return t.msg.Copy()
}

// TxID returns the transaction hash in display order.
func (t *Tx) TxID() string {
	return t.msg.TxHash().String()
}

// Hex returns the serialized transaction.
func (t *Tx) Hex() (string, error) {
	var buf bytes.Buffer
	buf.Grow(t.msg.SerializeSize())
	if err := t.msg.Serialize(&buf); err != nil {
		return "", fmt.Errorf("serialize tx: %w", err)
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

// ChangeOutput returns the output paying the change address and its position,
// or nil and -1 when the transaction has no change.
func (t *Tx) ChangeOutput() (*wire.TxOut, int) {
	if t.changeScript == nil {
		return nil, -1
	}
	for i, out := range t.msg.TxOut {
		if bytes.Equal(out.PkScript, t.changeScript) {
			return out, i
		}
	}
	return nil, -1
}

// UnsignedRawTx serializes the transaction of p with no signatures.
func UnsignedRawTx(p *model.Proposal) (string, error) {
	tx, err := BuildTx(p)
	if err != nil {
		return "", err
	}
	return tx.Hex()
}
