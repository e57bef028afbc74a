package usecase

import (
	"context"
	"time"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"
	"github.com/allisson/biscuit/internal/metrics"
)

const metricsDomain = "biscuit"

// secretReaderWithMetrics decorates SecretReader with metrics instrumentation.
type secretReaderWithMetrics struct {
	next    SecretReader
	metrics metrics.BusinessMetrics
}

// NewSecretReaderWithMetrics wraps a SecretReader with metrics recording.
func NewSecretReaderWithMetrics(reader SecretReader, m metrics.BusinessMetrics) SecretReader {
	return &secretReaderWithMetrics{
		next:    reader,
		metrics: m,
	}
}

// Update delegates without recording metrics.
func (s *secretReaderWithMetrics) Update(entries biscuitDomain.Entries) SecretReader {
	s.next.Update(entries)
	return s
}

// Names delegates without recording metrics.
func (s *secretReaderWithMetrics) Names() []string {
	return s.next.Names()
}

// Get records metrics for secret reads. It resolves through the wrapped
// reader so skipped candidates can be counted.
func (s *secretReaderWithMetrics) Get(ctx context.Context, name string) ([]byte, bool, error) {
	resolution, err := s.resolve(ctx, "secret_get", name)
	if err != nil {
		return nil, false, err
	}
	return resolution.Plaintext, resolution.Found, nil
}

// Resolve records metrics for secret resolutions.
func (s *secretReaderWithMetrics) Resolve(ctx context.Context, name string) (*biscuitDomain.Resolution, error) {
	return s.resolve(ctx, "secret_resolve", name)
}

func (s *secretReaderWithMetrics) resolve(
	ctx context.Context,
	operation, name string,
) (*biscuitDomain.Resolution, error) {
	start := time.Now()
	resolution, err := s.next.Resolve(ctx, name)

	status := "success"
	switch {
	case err != nil:
		status = "error"
	case !resolution.Found:
		status = "miss"
	}

	if resolution != nil {
		for _, failure := range resolution.Failures {
			s.metrics.RecordCandidateFailure(ctx, metricsDomain, biscuitDomain.FailureReason(failure.Err))
		}
	}
	s.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	s.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)

	return resolution, err
}
