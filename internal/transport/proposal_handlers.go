package transport

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/service"
)

type createRequest struct {
	ID                 string               `json:"id"`
	Type               model.Type           `json:"type"`
	WalletID           string               `json:"walletId"`
	CreatorID          string               `json:"creatorId"`
	CreatorPubKey      string               `json:"creatorPubKey"`
	Coin               model.Coin           `json:"coin"`
	Network            model.Network        `json:"network"`
	ToAddress          string               `json:"toAddress"`
	Amount             uint64               `json:"amount"`
	Message            string               `json:"message"`
	Outputs            []model.OutputRecord `json:"outputs"`
	Inputs             []model.InputRecord  `json:"inputs"`
	ChangeAddress      *model.AddressRecord `json:"changeAddress"`
	Fee                uint64               `json:"fee"`
	OutputOrder        []int                `json:"outputOrder"`
	ProposalSignature  string               `json:"proposalSignature"`
	RequiredSignatures int                  `json:"requiredSignatures"`
	RequiredRejections int                  `json:"requiredRejections"`
	WalletN            int                  `json:"walletN"`
}

func (c createRequest) toServiceRequest() service.CreateRequest {
	opts := model.CreateOptions{
		ID:                 c.ID,
		Type:               c.Type,
		WalletID:           c.WalletID,
		CreatorID:          c.CreatorID,
		Coin:               c.Coin,
		Network:            c.Network,
		ToAddress:          c.ToAddress,
		Amount:             c.Amount,
		Message:            c.Message,
		Fee:                c.Fee,
		OutputOrder:        c.OutputOrder,
		ProposalSignature:  c.ProposalSignature,
		RequiredSignatures: c.RequiredSignatures,
		RequiredRejections: c.RequiredRejections,
		WalletN:            c.WalletN,
	}
	for _, o := range c.Outputs {
		opts.Outputs = append(opts.Outputs, model.Output(o))
	}
	for _, in := range c.Inputs {
		opts.Inputs = append(opts.Inputs, model.Input{
			TxID:         in.TxID,
			Vout:         in.Vout,
			Satoshis:     in.Satoshis,
			ScriptPubKey: in.ScriptPubKey,
			Address:      in.Address,
			Path:         in.Path,
			PublicKeys:   in.PublicKeys,
		})
	}
	if c.ChangeAddress != nil {
		opts.ChangeAddress = &model.Address{
			Version:    c.ChangeAddress.Version,
			Address:    c.ChangeAddress.Address,
			Path:       c.ChangeAddress.Path,
			PublicKeys: c.ChangeAddress.PublicKeys,
		}
	}
	return service.CreateRequest{Options: opts, CreatorPubKey: c.CreatorPubKey}
}

type signRequest struct {
	CopayerID  string   `json:"copayerId"`
	Signatures []string `json:"signatures"`
	XPubKey    string   `json:"xpub"`
}

type rejectRequest struct {
	CopayerID string `json:"copayerId"`
	Comment   string `json:"comment"`
}

type broadcastedRequest struct {
	TxID string `json:"txid"`
}

type rawTxResponse struct {
	ID    string `json:"id"`
	RawTx string `json:"rawTx"`
}

type actionResponse struct {
	CopayerID      string           `json:"copayerId"`
	Type           model.ActionType `json:"type"`
	Signatures     []string         `json:"signatures,omitempty"`
	XPubKey        string           `json:"xpub,omitempty"`
	Comment        string           `json:"comment,omitempty"`
	CreatedOn      int64            `json:"createdOn"`
	ProposalStatus model.Status     `json:"proposalStatus"`
}

func (h *Handler) handlePOSTProposal(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errorResponse(w, r, err)
		return
	}

	p, err := h.service.Create(r.Context(), req.toServiceRequest())
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, http.StatusCreated, p)
}

func (h *Handler) handleGETProposal(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Proposal(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, p)
}

func (h *Handler) handleGETPending(w http.ResponseWriter, r *http.Request) {
	proposals, err := h.service.Pending(r.Context(), mux.Vars(r)["walletId"])
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	if proposals == nil {
		proposals = []*model.Proposal{}
	}
	jsonResponse(w, http.StatusOK, proposals)
}

func (h *Handler) handlePOSTSignatures(w http.ResponseWriter, r *http.Request) {
	var req signRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errorResponse(w, r, err)
		return
	}

	p, err := h.service.Sign(r.Context(), mux.Vars(r)["id"], req.CopayerID, req.Signatures, req.XPubKey)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, p)
}

func (h *Handler) handlePOSTRejection(w http.ResponseWriter, r *http.Request) {
	var req rejectRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errorResponse(w, r, err)
		return
	}

	p, err := h.service.Reject(r.Context(), mux.Vars(r)["id"], req.CopayerID, req.Comment)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, p)
}

func (h *Handler) handleGETRawTx(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	raw, err := h.service.RawTx(r.Context(), id)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, rawTxResponse{ID: id, RawTx: raw})
}

func (h *Handler) handlePOSTBroadcasted(w http.ResponseWriter, r *http.Request) {
	var req broadcastedRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errorResponse(w, r, err)
		return
	}

	p, err := h.service.MarkBroadcasted(r.Context(), mux.Vars(r)["id"], req.TxID)
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, p)
}

func (h *Handler) handleGETActions(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Actions(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	actions := make([]actionResponse, 0, len(entries))
	for _, e := range entries {
		actions = append(actions, actionResponse{
			CopayerID:      e.Action.CopayerID,
			Type:           e.Action.Type,
			Signatures:     e.Action.Signatures,
			XPubKey:        e.Action.XPubKey,
			Comment:        e.Action.Comment,
			CreatedOn:      e.Action.CreatedOn.Unix(),
			ProposalStatus: e.Status,
		})
	}
	jsonResponse(w, http.StatusOK, actions)
}
