package model

import "time"

const (
	fixtureToAddress     = "yie4Ubd2ieCdzqwNyAc8QRutfri3E9ChTm"
	fixtureChangeAddress = "8emiYFa4FG2CrY2YKbdbUNdWV2EEtw3swq"
)

func fixtureRecord(typ Type) Record {
	amount := uint64(30000000)
	r := Record{
		Version:           "2.0.0",
		Type:              typ,
		CreatedOn:         1423146231,
		ID:                "75c34f49-1ed6-255f-e9fd-0c71ae75ed1e",
		WalletID:          "1",
		CreatorID:         "1",
		Network:           Testnet,
		ToAddress:         fixtureToAddress,
		Amount:            &amount,
		Message:           "some message",
		ProposalSignature: "304402201cf9f446d9d0cbcf075186ce1df2ac0e25a1f76a939518f2e0e365eefd729c4602203503fb852619d62697624d42960f2c03784cd2d47a7a8005e44c937ffab09600",
		ChangeAddress: &AddressRecord{
			Version:   "1.0.0",
			CreatedOn: 1475385139,
			Address:   fixtureChangeAddress,
			Path:      "m/1/9",
			PublicKeys: []string{
				"0297e50b5db89d18f1115e2c35b3c101ac2812658ba95a1a84fe2505b52a0aa655",
				"02406072e42e4f03940de60ad3386ed243d718f8ae0e5ae8a28d6418be95034f3a",
			},
		},
		Inputs: []InputRecord{{
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
		InputPaths:         []string{"m/1/4"},
		RequiredSignatures: 2,
		RequiredRejections: 1,
		WalletN:            2,
		Status:             StatusPending,
		Actions:            []ActionRecord{},
		OutputOrder:        []int{0, 1, 2},
		Fee:                15640,
	}
	if typ == TypeMultipleOutputs || typ == TypeExternal {
		r.ToAddress = ""
		r.Amount = nil
		r.Outputs = []OutputRecord{
			{ToAddress: fixtureToAddress, Amount: 10000000, Message: "first message"},
			{ToAddress: fixtureToAddress, Amount: 20000000, Message: "second message"},
		}
	}
	return r
}

func fixtureOptions(typ Type) CreateOptions {
	opts := CreateOptions{
		Type:               typ,
		WalletID:           "1",
		CreatorID:          "1",
		Network:            Testnet,
		ToAddress:          fixtureToAddress,
		Amount:             50000000,
		Message:            "some message",
		RequiredSignatures: 2,
		RequiredRejections: 1,
		WalletN:            2,
	}
	if typ == TypeMultipleOutputs || typ == TypeExternal {
		opts.ToAddress = ""
		opts.Amount = 0
		opts.Outputs = []Output{
			{ToAddress: fixtureToAddress, Amount: 10000000, Message: "first message"},
			{ToAddress: fixtureToAddress, Amount: 20000000, Message: "second message"},
		}
	}
	if typ == TypeExternal {
		opts.Inputs = []Input{{
			TxID:         "6ee699846d2d6605f96d20c7cc8230382e5da43342adb11b499bbe73709f06ab",
			Vout:         8,
			Satoshis:     100000000,
			ScriptPubKey: "a914a8a9648754fbda1b6c208ac9d4e252075447f36887",
			Address:      "3H4pNP6J4PW4NnvdrTg37VvZ7h2QWuAwtA",
			Path:         "m/2147483647/0/1",
			PublicKeys: []string{
				"0319008ffe1b3e208f5ebed8f46495c056763f87b07930a7027a92ee477fb0cb0f",
				"03b5f035af8be40d0db5abb306b7754949ab39032cf99ad177691753b37d101301",
			},
		}}
	}
	return opts
}

func fixedNow(t time.Time) func() {
	prev := nowFunc
	nowFunc = func() time.Time { return t }
	return func() { nowFunc = prev }
}
