// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package content talks to the headless content store: a low-level query
// client, a tenant-scoped gateway, a small query builder, and the named
// fetchers the pages consume.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pdiddy/labsite/pkg/types"
)

// Client executes queries and mutations against the content store HTTP API.
// Store failures surface unchanged to callers; there is no retry and no
// fallback, store health belongs to the store's operators.
type Client struct {
	httpClient *http.Client
	cfg        types.StoreConfig

	// BaseURL overrides the derived API endpoint. Tests point it at an
	// httptest server.
	BaseURL string
}

// NewClient validates the store configuration and returns a query client.
// A missing project identifier is a configuration error reported before any
// work begins.
func NewClient(cfg types.StoreConfig, httpClient *http.Client) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("content store project ID is not configured")
	}
	if cfg.Dataset == "" {
		cfg.Dataset = "production"
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2023-05-03"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, cfg: cfg}, nil
}

// Config returns the store configuration the client was built with.
func (c *Client) Config() types.StoreConfig { return c.cfg }

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	host := "api.sanity.io"
	if c.cfg.UseCDN {
		host = "apicdn.sanity.io"
	}
	return fmt.Sprintf("https://%s.%s/v%s", c.cfg.ProjectID, host, c.cfg.APIVersion)
}

// queryResponse is the store's query envelope.
type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// Query executes a textual query with named parameters and returns the raw
// result. Parameters are JSON-encoded and passed as $name values alongside
// the query, never interpolated into the query text.
func (c *Client) Query(ctx context.Context, query string, params map[string]any) (json.RawMessage, error) {
	vals := url.Values{"query": {query}}
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encoding query param %s: %w", name, err)
		}
		vals.Set("$"+name, string(encoded))
	}

	reqURL := fmt.Sprintf("%s/data/query/%s?%s", c.baseURL(), c.cfg.Dataset, vals.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("content store request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("content store returned HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var qr queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return nil, fmt.Errorf("parsing content store response: %w", err)
	}
	return qr.Result, nil
}

// Create writes a new document through the mutation endpoint. It requires the
// write-capable token; read paths never call it.
func (c *Client) Create(ctx context.Context, doc any) error {
	if c.cfg.WriteToken == "" {
		return fmt.Errorf("content store write token is not configured")
	}

	payload := map[string]any{
		"mutations": []map[string]any{{"create": doc}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding mutation: %w", err)
	}

	reqURL := fmt.Sprintf("%s/data/mutate/%s", c.baseURL(), c.cfg.Dataset)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.WriteToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("content store mutation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("content store mutation returned HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(respBody))
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}
