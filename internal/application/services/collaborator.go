package services

import (
	"time"

	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/infrastructure/metrics"
)

// Collaborator call kinds, used as metric labels.
const (
	KindProjection = "projection"
	KindDiagnosis  = "diagnosis"
	KindGuide      = "guide"
	KindTip        = "tip"
)

// clock returns now, or time.Now when now is nil.
func clock(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}

// observeCall records the outcome of one collaborator call. A non-nil err
// means the caller substituted its fallback.
func observeCall(log *logger.Logger, m *metrics.Metrics, kind string, started time.Time, err error) {
	elapsed := time.Since(started)

	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeFallback
	}
	m.ObserveCollaborator(kind, outcome, elapsed.Seconds())

	if log != nil {
		log.LogCollaboratorCall(kind, elapsed, err)
	}
}
