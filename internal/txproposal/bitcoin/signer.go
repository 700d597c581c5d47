package bitcoin

import (
	"context"
	"encoding/hex"
	"fmt"
	"runtime"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
	"github.com/goodnatureofminers/txproposal-backend/pkg/workerpool"
)

// Signer turns the signatures collected on an accepted proposal into a signed transaction.
// Inputs are matched concurrently.
type Signer struct {
	workers int
}

// NewSigner returns a signer matching up to workers inputs at once.
func NewSigner(workers int) *Signer {
	if workers < 1 {
		workers = 1
	}
	return &Signer{workers: workers}
}

var defaultSigner = NewSigner(runtime.GOMAXPROCS(0))

// RawTx returns the signed serialized transaction of an accepted proposal.
func RawTx(ctx context.Context, p *model.Proposal) (string, error) {
	return defaultSigner.RawTx(ctx, p)
}

// RawTx returns the signed serialized transaction of an accepted proposal.
func (s *Signer) RawTx(ctx context.Context, p *model.Proposal) (string, error) {
	tx, err := s.Sign(ctx, p)
	if err != nil {
		return "", err
	}
	return tx.Hex()
}

// Sign assembles the transaction of p and fills every input script from the accept actions.
// Each signature must verify against one key of its input; the first RequiredSignatures
// matches in key order are used.
func (s *Signer) Sign(ctx context.Context, p *model.Proposal) (*Tx, error) {
	if !p.IsAccepted() && !p.IsBroadcasted() {
		return nil, fmt.Errorf("proposal %s is %s with %d of %d signatures: %w",
			p.ID, p.Status, p.AcceptCount(), p.RequiredSignatures, model.ErrInsufficientSignatures)
	}

	tx, err := BuildTx(p)
	if err != nil {
		return nil, err
	}
	signatures, err := inputSignatures(p)
	if err != nil {
		return nil, err
	}

	scripts, err := workerpool.Map(ctx, s.workers, tx.spends, func(_ context.Context, idx int, sp spend) ([]byte, error) {
		script, err := tx.signInput(idx, sp, signatures[idx])
		if err != nil {
			return nil, fmt.Errorf("proposal %s input %d: %w", p.ID, idx, err)
		}
		return script, nil
	})
	if err != nil {
		return nil, err
	}

	for idx, script := range scripts {
		tx.msg.TxIn[idx].SignatureScript = script
	}
	return tx, nil
}

// inputSignatures regroups the accept actions per input, in action order.
func inputSignatures(p *model.Proposal) ([][][]byte, error) {
	perInput := make([][][]byte, len(p.Inputs))
	for _, action := range p.Actions {
		if action.Type != model.ActionAccept {
			continue
		}
		if len(action.Signatures) != len(p.Inputs) {
			return nil, fmt.Errorf("proposal %s copayer %s has %d signatures for %d inputs: %w",
				p.ID, action.CopayerID, len(action.Signatures), len(p.Inputs), model.ErrInvalidProposalShape)
		}
		for i, sig := range action.Signatures {
			der, err := hex.DecodeString(sig)
			if err != nil {
				return nil, fmt.Errorf("proposal %s copayer %s signature %d: %v: %w",
					p.ID, action.CopayerID, i, err, model.ErrSignatureMatchFailure)
			}
			perInput[i] = append(perInput[i], der)
		}
	}
	return perInput, nil
}

// signInput matches signatures to the input keys by trial verification and builds the
// unlocking script. The transaction is only read here.
func (t *Tx) signInput(idx int, sp spend, candidates [][]byte) ([]byte, error) {
	hash, err := txscript.CalcSignatureHash(sp.subscript, txscript.SigHashAll, t.msg, idx)
	if err != nil {
		return nil, fmt.Errorf("signature hash: %w", err)
	}

	parsed := make([]*ecdsa.Signature, len(candidates))
	for i, der := range candidates {
		if parsed[i], err = ecdsa.ParseDERSignature(der); err != nil {
			return nil, fmt.Errorf("signature %d: %v: %w", i, err, model.ErrSignatureMatchFailure)
		}
	}

	used := make([]bool, len(candidates))
	matched := make([][]byte, 0, sp.required)
	for _, key := range sp.keys {
		for i, sig := range parsed {
			if used[i] || !sig.Verify(hash, key.key) {
				continue
			}
			used[i] = true
			if len(matched) < sp.required {
				matched = append(matched, candidates[i])
			}
			break
		}
	}
	for i := range used {
		if !used[i] {
			return nil, fmt.Errorf("signature %d: %w", i, model.ErrSignatureMatchFailure)
		}
	}
	if len(matched) < sp.required {
		return nil, fmt.Errorf("%d of %d signatures matched: %w", len(matched), sp.required, model.ErrInsufficientSignatures)
	}

	b := txscript.NewScriptBuilder()
	if sp.kind == kindMultisig {
		// CHECKMULTISIG pops one extra stack item.
		b.AddOp(txscript.OP_0)
	}
	for _, der := range matched {
		b.AddData(withHashType(der))
	}
	if sp.kind == kindMultisig {
		b.AddData(sp.subscript)
	} else {
		b.AddData(sp.keys[0].raw)
	}
	script, err := b.Script()
	if err != nil {
		return nil, fmt.Errorf("unlocking script: %w", err)
	}
	return script, nil
}

func withHashType(der []byte) []byte {
	sig := make([]byte, 0, len(der)+1)
	sig = append(sig, der...)
	return append(sig, byte(txscript.SigHashAll))
}
