package model

import (
	"fmt"
	"strings"
)

type Coin string
type Network string

var (
	DASH Coin = "dash"
	BTC  Coin = "btc"
)

var (
	Livenet Network = "livenet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
)

// ParseCoin normalizes a coin name. Empty selects DASH.
func ParseCoin(s string) (Coin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dash":
		return DASH, nil
	case "btc", "bitcoin":
		return BTC, nil
	default:
		return "", fmt.Errorf("unsupported coin %q: %w", s, ErrInvalidProposalShape)
	}
}

// ParseNetwork normalizes a network name, accepting the usual aliases.
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "livenet", "mainnet":
		return Livenet, nil
	case "testnet", "testnet3":
		return Testnet, nil
	case "regtest":
		return Regtest, nil
	default:
		return "", fmt.Errorf("unsupported network %q: %w", s, ErrInvalidProposalShape)
	}
}
