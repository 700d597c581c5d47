package metrics

import (
	"time"

	"github.com/goodnatureofminers/txproposal-backend/internal/txproposal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	proposalServiceOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "proposal_service",
		Name:      "operations_total",
		Help:      "Count of proposal service operations.",
	}, []string{"operation", "status"})
	proposalServiceOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "proposal_service",
		Name:      "operation_duration_seconds",
		Help:      "Duration of proposal service operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
	proposalServiceVotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "proposal_service",
		Name:      "votes_total",
		Help:      "Count of recorded votes by action and resulting proposal status.",
	}, []string{"action", "proposal_status"})
)

// ProposalService tracks metrics for proposal service operations.
type ProposalService struct{}

// NewProposalService constructs a metrics collector for the proposal service.
func NewProposalService() *ProposalService {
	return &ProposalService{}
}

// Observe records a single service operation outcome and duration.
func (m ProposalService) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)

	proposalServiceOperationsTotal.WithLabelValues(operation, status).Inc()
	proposalServiceOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// ObserveVote counts a recorded vote.
func (m ProposalService) ObserveVote(action model.ActionType, status model.Status) {
	proposalServiceVotesTotal.WithLabelValues(string(action), string(status)).Inc()
}
