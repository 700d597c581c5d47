package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
)

// DustThreshold is the smallest change value, in satoshis, worth an output.
// Smaller remainders are left to the fee.
const DustThreshold = 546

// DashMainNetParams and DashTestNetParams carry the Dash address and HD key prefixes on
// top of the bitcoin parameters. They are not registered with chaincfg.
var (
	DashMainNetParams = dashParams(chaincfg.MainNetParams, "dash-livenet", 0xbd6b0cbf, 76, 16, 204, 5)
	DashTestNetParams = dashParams(chaincfg.TestNet3Params, "dash-testnet", 0xffcae2ce, 140, 19, 239, 1)
)

func dashParams(base chaincfg.Params, name string, net wire.BitcoinNet, pkh, p2sh, wif byte, coinType uint32) chaincfg.Params {
	base.Name = name
	base.Net = net
	base.PubKeyHashAddrID = pkh
	base.ScriptHashAddrID = p2sh
	base.PrivateKeyID = wif
	base.HDCoinType = coinType
	base.Bech32HRPSegwit = ""
	return base
}

// ChainParams returns the address and key parameters of coin on network.
func ChainParams(coin model.Coin, network model.Network) (*chaincfg.Params, error) {
	switch coin {
	case model.DASH:
		switch network {
		case model.Livenet:
			return &DashMainNetParams, nil
		case model.Testnet, model.Regtest:
			return &DashTestNetParams, nil
		}
	case model.BTC:
		switch network {
		case model.Livenet:
			return &chaincfg.MainNetParams, nil
		case model.Testnet:
			return &chaincfg.TestNet3Params, nil
		case model.Regtest:
			return &chaincfg.RegressionNetParams, nil
		}
	}
	return nil, fmt.Errorf("unsupported coin %q on network %q: %w", coin, network, model.ErrInvalidProposalShape)
}
