// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import (
	"strings"

	"github.com/pdiddy/labsite/internal/content"
	"github.com/pdiddy/labsite/pkg/types"
)

// Metadata fallbacks for tenants that have not filled in their settings.
const (
	defaultSiteName    = "Research Laboratory"
	defaultDescription = "Advancing the frontiers of scientific research."
	defaultSiteURL     = "https://example.com"
)

var defaultKeywords = []string{"research", "laboratory", "science", "publications", "academic"}

// Metadata is the page-level SEO and social metadata derived from settings.
type Metadata struct {
	Title          string   `json:"title"`
	TitleTemplate  string   `json:"titleTemplate"`
	Description    string   `json:"description"`
	Keywords       []string `json:"keywords"`
	SiteName       string   `json:"siteName"`
	SocialImageURL string   `json:"socialImageUrl,omitempty"`
	TwitterHandle  string   `json:"twitterHandle,omitempty"`
	TwitterCard    string   `json:"twitterCard"`
}

// StructuredData is the schema.org ResearchOrganization block.
type StructuredData struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// SiteName joins the lab name and its accent, or falls back to the default.
func SiteName(settings *types.SiteSettings) string {
	if settings == nil || settings.LabName == "" {
		return defaultSiteName
	}
	return strings.TrimSpace(settings.LabName + " " + settings.LabNameAccent)
}

// DeriveMetadata maps settings to metadata with literal fallbacks for every
// absent field. The social image, when present, is rendered at 1200×630.
func DeriveMetadata(settings *types.SiteSettings, store types.StoreConfig) Metadata {
	siteName := SiteName(settings)

	m := Metadata{
		Title:         siteName,
		TitleTemplate: "%s | " + siteName,
		Description:   defaultDescription,
		Keywords:      defaultKeywords,
		SiteName:      siteName,
		TwitterCard:   "summary_large_image",
	}

	if settings == nil {
		return m
	}

	if settings.SEOTitle != "" {
		m.Title = settings.SEOTitle
	}
	switch {
	case settings.SEODescription != "":
		m.Description = settings.SEODescription
	case settings.LabNameDescription != "":
		m.Description = settings.LabNameDescription
	}
	if len(settings.SEOKeywords) > 0 {
		m.Keywords = settings.SEOKeywords
	}
	if settings.TwitterHandle != "" {
		m.TwitterHandle = settings.TwitterHandle
	}
	if settings.SocialImage != nil {
		if u, err := content.ImageURL(store, settings.SocialImage, 1200, 630); err == nil {
			m.SocialImageURL = u
		}
	}
	return m
}

// DeriveStructuredData builds the JSON-LD organization block.
func DeriveStructuredData(settings *types.SiteSettings, siteURL string) StructuredData {
	description := "Research laboratory"
	if settings != nil && settings.LabNameDescription != "" {
		description = settings.LabNameDescription
	}
	if siteURL == "" {
		siteURL = defaultSiteURL
	}
	return StructuredData{
		Context:     "https://schema.org",
		Type:        "ResearchOrganization",
		Name:        SiteName(settings),
		Description: description,
		URL:         siteURL,
	}
}
