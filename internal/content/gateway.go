// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package content

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pdiddy/labsite/pkg/types"
)

// Kind classifies the shape of a query result so the gateway can return a
// type-appropriate empty value without a store round-trip.
type Kind int

const (
	// KindList queries return a sequence of documents.
	KindList Kind = iota

	// KindSingle queries return at most one document.
	KindSingle
)

// ClassifyQuery infers the result shape of a hand-built query from its text:
// a "[0]" suffix marks single-document queries. The heuristic misclassifies
// a query that uses [0] as an unrelated array index; callers that know their
// shape should pass a Kind explicitly instead.
func ClassifyQuery(query string) Kind {
	if strings.Contains(query, "[0]") {
		return KindSingle
	}
	return KindList
}

// Gateway wraps the store client with tenant scoping. It is built per request
// from the resolved tenant and immutable configuration, never from ambient
// global state.
//
// Three modes:
//   - isolation disabled: transparent passthrough to the store.
//   - isolation enabled, no tenant: every fetch returns an empty value and
//     the store is never contacted. Direct template access must not see any
//     tenant's documents.
//   - isolation enabled, tenant known: the customerId predicate is conjoined
//     to every query.
type Gateway struct {
	store     *Client
	cfg       types.TenantConfig
	tenantID  string
	hasTenant bool
}

// NewGateway returns a gateway scoped to the given tenant. Pass ok=false when
// no tenant resolved.
func NewGateway(store *Client, cfg types.TenantConfig, tenantID string, ok bool) *Gateway {
	return &Gateway{store: store, cfg: cfg, tenantID: tenantID, hasTenant: ok}
}

// TenantID returns the resolved tenant and whether one is set.
func (g *Gateway) TenantID() (string, bool) { return g.tenantID, g.hasTenant }

// FilterClause returns the tenant predicate for embedding in hand-built query
// text, or the empty string in single-tenant mode. Composition is plain string
// concatenation at the query-language level; the caller owns query syntax.
func (g *Gateway) FilterClause() string {
	if !g.cfg.MultiTenant {
		return ""
	}
	return "&& customerId == $customerId"
}

var (
	emptyList   = json.RawMessage("[]")
	emptySingle = json.RawMessage("null")
)

// Fetch executes hand-built query text through the tenant scope, inferring
// the result shape from the text. Callers that know their shape should use
// FetchKind.
func (g *Gateway) Fetch(ctx context.Context, query string, params map[string]any) (json.RawMessage, error) {
	return g.FetchKind(ctx, query, params, ClassifyQuery(query))
}

// FetchKind executes a query through the tenant scope with an explicit result
// shape. In multi-tenant mode with no resolved tenant it returns the empty
// value for kind. Store failures surface unchanged.
func (g *Gateway) FetchKind(ctx context.Context, query string, params map[string]any, kind Kind) (json.RawMessage, error) {
	if !g.cfg.MultiTenant {
		return g.store.Query(ctx, query, params)
	}

	if !g.hasTenant {
		if kind == KindSingle {
			return emptySingle, nil
		}
		return emptyList, nil
	}

	scoped := make(map[string]any, len(params)+1)
	for k, v := range params {
		scoped[k] = v
	}
	scoped["customerId"] = g.tenantID
	return g.store.Query(ctx, query, scoped)
}

// FetchList executes a list-shaped query and decodes the result. A nil result
// decodes to an empty slice.
func FetchList[T any](ctx context.Context, g *Gateway, query string, params map[string]any) ([]T, error) {
	raw, err := g.FetchKind(ctx, query, params, KindList)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchOne executes a single-shaped query and decodes the result. Absence is
// a value: a missing document returns (nil, nil).
func FetchOne[T any](ctx context.Context, g *Gateway, query string, params map[string]any) (*T, error) {
	raw, err := g.FetchKind(ctx, query, params, KindSingle)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}
