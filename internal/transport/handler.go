// Package transport exposes the proposal service over HTTP.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
)

const maxBodyBytes = 1 << 20

// Handler serves the proposal HTTP API.
type Handler struct {
	service ProposalService
	metrics Metrics
	logger  *zap.Logger
}

// NewHandler returns a Handler instance.
func NewHandler(service ProposalService, metrics Metrics, logger *zap.Logger) *Handler {
	return &Handler{service: service, metrics: metrics, logger: logger.Named("http")}
}

// Router returns the API routes wrapped with CORS. An empty allowedOrigins allows any origin.
func (h *Handler) Router(allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(h.observe)

	r.HandleFunc("/healthz", h.handleGETHealth).Methods(http.MethodGet)
	r.HandleFunc("/v1/txproposals", h.handlePOSTProposal).Methods(http.MethodPost)
	r.HandleFunc("/v1/txproposals/{id}", h.handleGETProposal).Methods(http.MethodGet)
	r.HandleFunc("/v1/txproposals/{id}/signatures", h.handlePOSTSignatures).Methods(http.MethodPost)
	r.HandleFunc("/v1/txproposals/{id}/rejections", h.handlePOSTRejection).Methods(http.MethodPost)
	r.HandleFunc("/v1/txproposals/{id}/rawtx", h.handleGETRawTx).Methods(http.MethodGet)
	r.HandleFunc("/v1/txproposals/{id}/broadcasted", h.handlePOSTBroadcasted).Methods(http.MethodPost)
	r.HandleFunc("/v1/txproposals/{id}/actions", h.handleGETActions).Methods(http.MethodGet)
	r.HandleFunc("/v1/wallets/{walletId}/txproposals", h.handleGETPending).Methods(http.MethodGet)

	opts := cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}
	if len(allowedOrigins) > 0 {
		opts.AllowedOrigins = allowedOrigins
	}
	return cors.New(opts).Handler(r)
}

func (h *Handler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := ""
		if current := mux.CurrentRoute(r); current != nil {
			route, _ = current.GetPathTemplate()
		}
		h.metrics.Observe(route, r.Method, rec.code, started)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.code = code
	s.ResponseWriter.WriteHeader(code)
}

func (h *Handler) handleGETHealth(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// errorStatus maps domain errors to HTTP status codes.
func errorStatus(err error) int {
	var badRequest *badRequestError
	switch {
	case errors.As(err, &badRequest):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidProposalShape),
		errors.Is(err, model.ErrInvalidOutputOrder),
		errors.Is(err, model.ErrInvalidAction):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrDuplicateVote),
		errors.Is(err, model.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, model.ErrInsufficientSignatures),
		errors.Is(err, model.ErrSignatureMatchFailure),
		errors.Is(err, model.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	code := errorStatus(err)
	if code == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	} else {
		h.logger.Debug("request refused", zap.String("path", r.URL.Path), zap.Int("code", code), zap.Error(err))
	}
	jsonResponse(w, code, errorBody{Error: err.Error()})
}

type errorBody struct {
	Error string `json:"error"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &badRequestError{err: err}
	}
	return nil
}

type badRequestError struct {
	err error
}

func (e *badRequestError) Error() string { return "invalid request body: " + e.err.Error() }

func (e *badRequestError) Unwrap() error { return e.err }

func jsonResponse(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
