package service

import (
	"context"
	"log/slog"

	"github.com/legitimatebusiness/todo/internal/domain"
	"github.com/legitimatebusiness/todo/internal/platform/catfact"
)

// FactFetcher retrieves one fact from an upstream source.
type FactFetcher interface {
	Fetch(ctx context.Context) catfact.Result
}

// FactService serves cat facts and hides every upstream failure.
type FactService struct {
	fetcher FactFetcher
	logger  *slog.Logger
}

// NewFactService creates a FactService. If logger is nil, the default logger is used.
func NewFactService(fetcher FactFetcher, logger *slog.Logger) *FactService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FactService{
		fetcher: fetcher,
		logger:  logger.With(slog.String("component", "fact_service")),
	}
}

// RandomFact returns an upstream fact, or the fallback fact when the fetch
// fails for any reason. It never fails.
func (s *FactService) RandomFact(ctx context.Context) domain.CatFact {
	return s.resolve(ctx, s.fetcher.Fetch(ctx))
}

// resolve maps a fetch result onto the fact that is served.
func (s *FactService) resolve(ctx context.Context, res catfact.Result) domain.CatFact {
	if res.OK() {
		return res.Fact
	}

	s.logger.DebugContext(ctx, "serving fallback cat fact",
		slog.String("failure_kind", string(res.Err.Kind)),
		slog.Int("upstream_status", res.Err.StatusCode))
	return domain.FallbackCatFact()
}
