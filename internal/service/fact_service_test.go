package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/legitimatebusiness/todo/internal/domain"
	"github.com/legitimatebusiness/todo/internal/platform/catfact"
	"github.com/legitimatebusiness/todo/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFactFetcher is a mock implementation of FactFetcher for testing
type MockFactFetcher struct {
	FetchFn func(ctx context.Context) catfact.Result
	calls   int
}

// Fetch implements FactFetcher
func (m *MockFactFetcher) Fetch(ctx context.Context) catfact.Result {
	m.calls++
	return m.FetchFn(ctx)
}

func TestFactService_RandomFact_Success(t *testing.T) {
	fetcher := &MockFactFetcher{FetchFn: func(ctx context.Context) catfact.Result {
		return catfact.Result{Fact: domain.CatFact{Text: "A group of cats is called a clowder."}}
	}}
	svc := NewFactService(fetcher, nil)

	fact := svc.RandomFact(context.Background())

	assert.Equal(t, "A group of cats is called a clowder.", fact.Text)
	assert.Equal(t, 1, fetcher.calls)
}

func TestFactService_RandomFact_EveryFailureFallsBack(t *testing.T) {
	kinds := []catfact.FailureKind{
		catfact.FailureRequest,
		catfact.FailureTransport,
		catfact.FailureStatus,
		catfact.FailureDecode,
		catfact.FailureEmptyText,
	}

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			fetcher := &MockFactFetcher{FetchFn: func(ctx context.Context) catfact.Result {
				return catfact.Result{Err: &catfact.FetchError{Kind: kind, Err: errors.New("boom")}}
			}}
			svc := NewFactService(fetcher, nil)

			fact := svc.RandomFact(context.Background())

			assert.Equal(t, domain.FallbackFactText, fact.Text)
			assert.Equal(t, 1, fetcher.calls, "failures are not retried")
		})
	}
}

func TestFactService_FallbackIsLoggedAtDebugOnly(t *testing.T) {
	fetcher := &MockFactFetcher{FetchFn: func(ctx context.Context) catfact.Result {
		return catfact.Result{Err: &catfact.FetchError{
			Kind:       catfact.FailureStatus,
			StatusCode: http.StatusBadGateway,
		}}
	}}

	t.Run("info level records nothing", func(t *testing.T) {
		rec := testutils.NewLogRecorder(slog.LevelInfo)
		svc := NewFactService(fetcher, rec.Logger())

		svc.RandomFact(context.Background())

		assert.Empty(t, rec.Entries())
	})

	t.Run("debug level records the failure kind", func(t *testing.T) {
		rec := testutils.NewLogRecorder(slog.LevelDebug)
		svc := NewFactService(fetcher, rec.Logger())

		svc.RandomFact(context.Background())

		entries := rec.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, slog.LevelDebug, entries[0].Level)
		assert.Equal(t, "status", entries[0].Attrs["failure_kind"])
		assert.Equal(t, int64(http.StatusBadGateway), entries[0].Attrs["upstream_status"])
		assert.Equal(t, "fact_service", entries[0].Attrs["component"])
	})
}
