package bitcoin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
)

// DerivePublicKey derives the public key at a non-hardened path such as "m/1/4" below xpub.
func DerivePublicKey(xpub, path string, params *chaincfg.Params) (*btcec.PublicKey, error) {
	key, err := hdkeychain.NewKeyFromString(xpub)
	if err != nil {
		return nil, fmt.Errorf("parse xpub: %w", err)
	}
	if key.IsPrivate() {
		return nil, fmt.Errorf("extended key is private: %w", model.ErrInvalidAction)
	}
	if !key.IsForNet(params) {
		return nil, fmt.Errorf("xpub is not for %s: %w", params.Name, model.ErrInvalidAction)
	}

	indexes, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	for _, idx := range indexes {
		if key, err = key.Derive(idx); err != nil {
			return nil, fmt.Errorf("derive %s: %w", path, err)
		}
	}
	pub, err := key.ECPubKey()
	if err != nil {
		return nil, fmt.Errorf("public key at %s: %w", path, err)
	}
	return pub, nil
}

func parsePath(path string) ([]uint32, error) {
	parts := strings.Split(strings.TrimSpace(path), "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, fmt.Errorf("derivation path %q must start with m: %w", path, model.ErrInvalidProposalShape)
	}
	indexes := make([]uint32, 0, len(parts)-1)
	for _, part := range parts[1:] {
		if strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h") {
			return nil, fmt.Errorf("derivation path %q is hardened: %w", path, model.ErrInvalidProposalShape)
		}
		idx, err := strconv.ParseUint(part, 10, 32)
		if err != nil || idx >= uint64(hdkeychain.HardenedKeyStart) {
			return nil, fmt.Errorf("derivation path %q has bad index %q: %w", path, part, model.ErrInvalidProposalShape)
		}
		indexes = append(indexes, uint32(idx))
	}
	return indexes, nil
}
