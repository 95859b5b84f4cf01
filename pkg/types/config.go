// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "labsite/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// StoreConfig holds connection parameters for the content store.
type StoreConfig struct {
	// ProjectID is the content store project identifier. Required.
	ProjectID string `json:"project_id" yaml:"project_id"`

	// Dataset is the dataset name within the project (default "production").
	Dataset string `json:"dataset" yaml:"dataset"`

	// APIVersion is a fixed API version date for stable query results
	// (e.g. "2023-05-03").
	APIVersion string `json:"api_version" yaml:"api_version"`

	// UseCDN routes read queries through the CDN edge for faster responses
	// at the cost of freshness.
	UseCDN bool `json:"use_cdn" yaml:"use_cdn"`

	// WriteToken is the write-capable credential. Only the import pipeline's
	// commit phase needs it; read paths never send it.
	WriteToken string `json:"write_token,omitempty" yaml:"write_token,omitempty"`
}

// TenantConfig controls tenant isolation behavior.
type TenantConfig struct {
	// MultiTenant enables tenant-scoped queries. When false the deployment
	// serves a single lab and queries pass through unfiltered.
	MultiTenant bool `json:"multi_tenant" yaml:"multi_tenant"`

	// DevTenantID forces a fixed tenant when no header or cookie resolves one.
	// Development convenience only; lowest priority before "no tenant".
	DevTenantID string `json:"dev_tenant_id,omitempty" yaml:"dev_tenant_id,omitempty"`

	// SecureCookies marks the propagated tenant cookie Secure. Tied to the
	// deployment environment, not to the individual request.
	SecureCookies bool `json:"secure_cookies" yaml:"secure_cookies"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// Addr is the listen address (e.g. ":8080").
	Addr string `json:"addr" yaml:"addr"`
}

// ImportConfig holds settings for the publication import pipeline.
type ImportConfig struct {
	HTTPConfig `yaml:",inline"`

	// WriteDelay is the pause before each record write. Advisory backpressure
	// for the external API and the store's write capacity.
	WriteDelay time.Duration `json:"write_delay" yaml:"write_delay"`

	// SemanticScholarAPIKey is an optional API key for higher rate limits.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty"`
}
