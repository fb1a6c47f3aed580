// Package graphql serves the read side of profiles, question lists and
// answers as a GraphQL query endpoint. Queries are parsed and validated
// against schema.graphqls by gqlparser and executed over Resolver, with
// per-profile reads batched through the dataloader package.
package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/werdnakof/ask-parents-25-questions/internal/transport/graphql/dataloader"
)

const maxQueryBody = 64 << 10

// Handler serves POST /v1/graphql.
type Handler struct {
	schema    *ast.Schema
	resolvers map[string]fieldFunc
	present   func(ctx context.Context, err error) *gqlerror.Error
	loaders   func(http.Handler) http.Handler
}

// NewHandler creates a Handler over r. Loaders are rebuilt from repos for
// every request.
func NewHandler(r *Resolver, repos *dataloader.Repos, log *slog.Logger) *Handler {
	return &Handler{
		schema:    Schema,
		resolvers: r.fields(),
		present:   NewErrorPresenter(log.With("handler", "graphql")),
		loaders:   dataloader.Middleware(repos),
	}
}

// ServeHTTP decodes the request, runs it and writes the JSON result. Field
// errors still answer 200; only undecodable bodies get a 400.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.loaders(http.HandlerFunc(h.serve)).ServeHTTP(w, r)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request) {
	var req Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxQueryBody))
	if err := dec.Decode(&req); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeResponse(w, status, &Response{Errors: gqlerror.List{gqlerror.Errorf("invalid request body")}})
		return
	}
	if req.Query == "" {
		writeResponse(w, http.StatusBadRequest, &Response{Errors: gqlerror.List{gqlerror.Errorf("query is required")}})
		return
	}

	writeResponse(w, http.StatusOK, h.Execute(r.Context(), req))
}

func writeResponse(w http.ResponseWriter, status int, resp *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp) //nolint:errcheck
}
