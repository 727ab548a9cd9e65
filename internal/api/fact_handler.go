package api

import (
	"context"
	"net/http"

	"github.com/legitimatebusiness/todo/internal/api/shared"
	"github.com/legitimatebusiness/todo/internal/domain"
)

// FactProvider supplies the fact served by GET /fact. It never fails.
type FactProvider interface {
	RandomFact(ctx context.Context) domain.CatFact
}

// FactHandler handles GET /fact requests
type FactHandler struct {
	facts FactProvider
}

// NewFactHandler creates a new FactHandler
func NewFactHandler(facts FactProvider) *FactHandler {
	return &FactHandler{facts: facts}
}

// GetFact handles GET /fact requests. The response is always 200.
func (h *FactHandler) GetFact(w http.ResponseWriter, r *http.Request) {
	fact := h.facts.RandomFact(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, CatFactResponse{Text: fact.Text})
}
