package bitcoin

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
	"github.com/goodnatureofminers/txproposal-backend/pkg/workerpool"
)

// VerifyCopayerSignatures checks that signatures hold one valid signature per input made
// by the key xpub derives at the input path, before they are recorded with Sign.
func (s *Signer) VerifyCopayerSignatures(ctx context.Context, p *model.Proposal, xpub string, signatures []string) error {
	if len(signatures) != len(p.Inputs) {
		return fmt.Errorf("%d signatures for %d inputs: %w", len(signatures), len(p.Inputs), model.ErrInvalidAction)
	}
	tx, err := BuildTx(p)
	if err != nil {
		return err
	}

	return workerpool.Process(ctx, s.workers, p.Inputs, func(_ context.Context, idx int, input model.Input) error {
		path := input.Path
		if path == "" && idx < len(p.InputPaths) {
			path = p.InputPaths[idx]
		}
		pub, err := DerivePublicKey(xpub, path, tx.params)
		if err != nil {
			return fmt.Errorf("input %d: %w", idx, err)
		}
		if !tx.spends[idx].hasKey(pub) {
			return fmt.Errorf("input %d: derived key %x is not a signer: %w",
				idx, pub.SerializeCompressed(), model.ErrSignatureMatchFailure)
		}

		der, err := hex.DecodeString(signatures[idx])
		if err != nil {
			return fmt.Errorf("input %d signature: %v: %w", idx, err, model.ErrSignatureMatchFailure)
		}
		sig, err := ecdsa.ParseDERSignature(der)
		if err != nil {
			return fmt.Errorf("input %d signature: %v: %w", idx, err, model.ErrSignatureMatchFailure)
		}
		sp := tx.spends[idx]
		hash, err := txscript.CalcSignatureHash(sp.subscript, txscript.SigHashAll, tx.msg, idx)
		if err != nil {
			return fmt.Errorf("input %d signature hash: %w", idx, err)
		}
		if !sig.Verify(hash, pub) {
			return fmt.Errorf("input %d: %w", idx, model.ErrSignatureMatchFailure)
		}
		return nil
	})
}

// VerifyCopayerSignatures checks copayer signatures with the default signer.
func VerifyCopayerSignatures(ctx context.Context, p *model.Proposal, xpub string, signatures []string) error {
	return defaultSigner.VerifyCopayerSignatures(ctx, p, xpub, signatures)
}

func (s spend) hasKey(pub *btcec.PublicKey) bool {
	for _, key := range s.keys {
		if key.key.IsEqual(pub) {
			return true
		}
	}
	return false
}

// VerifyProposalSignature checks the creator's DER signature over the double SHA-256 of
// the proposal header.
func VerifyProposalSignature(p *model.Proposal, pubKeyHex string) error {
	rawKey, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return fmt.Errorf("creator key: %v: %w", err, model.ErrSignatureMatchFailure)
	}
	pub, err := btcec.ParsePubKey(rawKey)
	if err != nil {
		return fmt.Errorf("creator key: %v: %w", err, model.ErrSignatureMatchFailure)
	}
	der, err := hex.DecodeString(p.ProposalSignature)
	if err != nil || len(der) == 0 {
		return fmt.Errorf("proposal %s signature is not hex DER: %w", p.ID, model.ErrSignatureMatchFailure)
	}
	sig, err := ecdsa.ParseDERSignature(der)
	if err != nil {
		return fmt.Errorf("proposal %s signature: %v: %w", p.ID, err, model.ErrSignatureMatchFailure)
	}

	header, err := p.Header()
	if err != nil {
		return err
	}
	if !sig.Verify(chainhash.DoubleHashB(header), pub) {
		return fmt.Errorf("proposal %s header signature: %w", p.ID, model.ErrSignatureMatchFailure)
	}
	return nil
}
