// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tenant resolves which customer a request belongs to and propagates
// that identity to the client. One deployed instance serves many labs; every
// content query downstream is scoped by the identifier resolved here.
package tenant

import (
	"net/http"

	"github.com/pdiddy/labsite/pkg/types"
)

// Signal names set by the upstream edge. The edge validates the tenant before
// forwarding, so values are trusted verbatim here.
const (
	HeaderTenantID        = "x-tenant-id"
	HeaderTenantSubdomain = "x-tenant-subdomain"

	// HeaderCustomerID is the legacy name for HeaderTenantID, retained for
	// deployments that predate the rename.
	HeaderCustomerID = "x-customer-id"

	// CookieCustomerID carries the tenant id where the upstream headers are
	// not visible, and is readable by client-side code.
	CookieCustomerID = "customerId"
)

// Resolver derives the tenant identifier for a request. It is read-only and
// never touches the content store.
type Resolver struct {
	cfg types.TenantConfig
}

// NewResolver returns a Resolver using the given configuration.
func NewResolver(cfg types.TenantConfig) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve returns the tenant identifier for the request and whether one was
// found. Resolution order is fixed: x-tenant-id header, x-tenant-subdomain
// header, legacy x-customer-id header, customerId cookie, then the configured
// development override. No tenant is not an error; it means the template is
// being accessed directly (preview mode) and callers must treat it as a
// defined empty state.
func (res *Resolver) Resolve(r *http.Request) (string, bool) {
	if id := r.Header.Get(HeaderTenantID); id != "" {
		return id, true
	}
	if id := r.Header.Get(HeaderTenantSubdomain); id != "" {
		return id, true
	}
	if id := r.Header.Get(HeaderCustomerID); id != "" {
		return id, true
	}
	if c, err := r.Cookie(CookieCustomerID); err == nil && c.Value != "" {
		return c.Value, true
	}
	if res.cfg.DevTenantID != "" {
		return res.cfg.DevTenantID, true
	}
	return "", false
}
