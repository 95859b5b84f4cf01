// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tenant

import (
	"net/http"

	"github.com/pdiddy/labsite/pkg/types"
)

// Middleware constructor, chi-compatible.
type Middleware func(http.Handler) http.Handler

// Propagate mirrors the upstream x-tenant-id header into the customerId
// cookie so client-side code can read the tenant without a server round-trip.
// It is a one-directional mirror: presence is the only check, because the
// upstream edge has already validated the tenant. Requests without the header
// pass through untouched.
func Propagate(cfg types.TenantConfig) Middleware {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if id := r.Header.Get(HeaderTenantID); id != "" {
				http.SetCookie(w, &http.Cookie{
					Name:     CookieCustomerID,
					Value:    id,
					Path:     "/",
					HttpOnly: false,
					Secure:   cfg.SecureCookies,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}
