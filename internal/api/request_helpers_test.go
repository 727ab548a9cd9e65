package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/legitimatebusiness/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithID returns a request whose chi route context holds id.
func requestWithID(id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	r := httptest.NewRequest(http.MethodGet, "/todos/"+id, nil)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPathID(t *testing.T) {
	id, err := getPathID(requestWithID("42"), "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-3", "1.5", "99999999999999999999"} {
		t.Run(bad, func(t *testing.T) {
			_, err := getPathID(requestWithID(bad), "id")
			assert.ErrorIs(t, err, domain.ErrInvalidID)
		})
	}
}
