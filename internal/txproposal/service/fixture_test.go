package service

import (
	"testing"

	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
)

const (
	proposalID = "75c34f49-1ed6-255f-e9fd-0c71ae75ed1e"

	xpub1 = "tpubDDTaaaSM1Ga2NKTdr8i3NYRanNsQga3q57pfNrRNB8hqz7RMvSiQohu38HNEmSFWiPHbuPNbvKYfSWQZFTfAhxYy1icWwVVvxAjNeWpubwS"
	xpub2 = "tpubDDb5nCWVNuPEbm9ztztimbb5PfZQmMJx4d1r4WaXfkTeTu6kVfToQL2CK5sGgyNPRcr9SmisQTe8kcd2jEh74i4N2UqfGthYvZgTkfRczFX"

	sig1 = "3044022063d67e4399715a5327ceab3a61ed3b828dc6aea824522c347cd6fbcc4e4481db02206a8735a7fc61da48eada10a15e91b7d2a47d5c76750bbd7d99c830f42565fdbd"
	sig2 = "3045022100c10bab14ad832b703f1a1303499521093a64624aae7ce92710574e467d85488b022051af9e4443efaa21956072bcad406d58194ac0d54ab6e861b32330aea2fb95c8"

	signedRawTx = "01000000013768fb3473c0f10758abc1fda4ef8c54f059003f2d448968c0ad804c4dcf0b4800000000da00483045022100c10bab14ad832b703f1a1303499521093a64624aae7ce92710574e467d85488b022051af9e4443efaa21956072bcad406d58194ac0d54ab6e861b32330aea2fb95c801473044022063d67e4399715a5327ceab3a61ed3b828dc6aea824522c347cd6fbcc4e4481db02206a8735a7fc61da48eada10a15e91b7d2a47d5c76750bbd7d99c830f42565fdbd01475221029153fd3f81a098634e7439fe7acf18a0464b6518fbf693b4c9f17b599a079ad82103f39e325ed77e2a95986f595042b8b3208382d1e74ea5b24831c67280a21ace6752aeffffffff0280c3c901000000001976a914f4d7feb11bc143018d55a463e3690703a9d9352188acd0e6e2441700000017a91403d4b30b14cafa3047955b2764586d40b105733c8700000000"
	signedTxID  = "276c71fe6f83706f8c2290dcd39072976088dd8530dbb9a8629430deb59fb771"
)

func fixtureOptions() model.CreateOptions {
	return model.CreateOptions{
		ID:        proposalID,
		WalletID:  "1",
		CreatorID: "1",
		Network:   model.Testnet,
		ToAddress: "yie4Ubd2ieCdzqwNyAc8QRutfri3E9ChTm",
		Amount:    30000000,
		Message:   "some message",
		ChangeAddress: &model.Address{
			Address: "8emiYFa4FG2CrY2YKbdbUNdWV2EEtw3swq",
			Path:    "m/1/9",
			PublicKeys: []string{
				"0297e50b5db89d18f1115e2c35b3c101ac2812658ba95a1a84fe2505b52a0aa655",
				"02406072e42e4f03940de60ad3386ed243d718f8ae0e5ae8a28d6418be95034f3a",
			},
		},
		Inputs: []model.Input{{
			TxID:         "480bcf4d4c80adc06889442d3f0059f0548cefa4fdc1ab5807f1c07334fb6837",
			Vout:         0,
			Satoshis:     99969984360,
			ScriptPubKey: "a91422cece6b0e08688ba7c7ad4e1b1f6dbb0ad80cb987",
			Address:      "8hbWRjx1CWXx1J65ZmZxUShb2PYMXWNok4",
			Path:         "m/1/4",
			PublicKeys: []string{
				"03f39e325ed77e2a95986f595042b8b3208382d1e74ea5b24831c67280a21ace67",
				"029153fd3f81a098634e7439fe7acf18a0464b6518fbf693b4c9f17b599a079ad8",
			},
		}},
		Fee:                15640,
		OutputOrder:        []int{0, 1, 2},
		RequiredSignatures: 2,
		RequiredRejections: 1,
		WalletN:            2,
	}
}

func pendingProposal(t *testing.T) *model.Proposal {
	t.Helper()
	p, err := model.New(fixtureOptions())
	if err != nil {
		t.Fatalf("model.New() error = %v", err)
	}
	return p
}

func acceptedProposal(t *testing.T) *model.Proposal {
	t.Helper()
	p := pendingProposal(t)
	if err := p.Sign("1", []string{sig1}, xpub1); err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if err := p.Sign("2", []string{sig2}, xpub2); err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	return p
}
