// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the lab site:
// content store document shapes and component configuration.
package types

// Image is a content store image reference. The asset reference encodes the
// original asset ID, dimensions, and format; the image URL builder turns it
// into a CDN URL.
type Image struct {
	Asset AssetRef `json:"asset"`
}

// AssetRef points at a stored media asset (e.g. "image-<id>-<WxH>-<ext>").
type AssetRef struct {
	Ref string `json:"_ref"`
}

// Slug is the content store's slug wrapper.
type Slug struct {
	Current string `json:"current"`
}

// SiteSettings is the per-tenant site configuration document.
type SiteSettings struct {
	// LabName is the primary name of the lab (e.g. "Rutherford").
	LabName string `json:"labName"`

	// LabNameAccent is the second part of the name, styled differently
	// (e.g. "Lab").
	LabNameAccent string `json:"labNameAccent"`

	// LabNameDescription is a brief description shown in the footer and metadata.
	LabNameDescription string `json:"labNameDescription"`

	// FooterText overrides the default copyright line when set.
	FooterText string `json:"footerText"`

	HeroImage *Image `json:"heroImage"`

	// ColorTheme names one of the built-in theme presets (e.g. "ocean").
	ColorTheme string `json:"colorTheme"`

	SEOTitle       string   `json:"seoTitle"`
	SEODescription string   `json:"seoDescription"`
	SEOKeywords    []string `json:"seoKeywords"`
	SocialImage    *Image   `json:"socialImage"`
	TwitterHandle  string   `json:"twitterHandle"`

	ShowPrivacyPolicy bool   `json:"showPrivacyPolicy"`
	PrivacyPolicyURL  string `json:"privacyPolicyUrl"`
	ShowTerms         bool   `json:"showTerms"`
	TermsURL          string `json:"termsUrl"`
}

// Publication is a bibliographic record. The import pipeline creates these;
// the publications page lists them newest-first.
type Publication struct {
	ID    string `json:"_id,omitempty"`
	Type  string `json:"_type,omitempty"`
	Title string `json:"title"`
	Slug  Slug   `json:"slug"`

	// Authors is a single display string in "J. Smith, A. Doe" form.
	Authors string `json:"authors"`

	// Journal is the venue: journal, conference, or publisher.
	Journal string `json:"journal"`

	// PublicationDate is "YYYY-MM".
	PublicationDate string `json:"publicationDate"`

	Abstract string `json:"abstract,omitempty"`

	// JournalLink points at the published article, a DOI resolver URL, or a
	// scholar search as a last resort.
	JournalLink string `json:"journalLink"`
}

// Person is a team member profile.
type Person struct {
	Name string `json:"name"`
	Role string `json:"role"`

	// Status is "current" or "past".
	Status string `json:"status"`

	// CurrentPosition is where a past member went next.
	CurrentPosition string `json:"currentPosition"`

	Image *Image `json:"image"`

	// OrderRank controls display order within the team page.
	OrderRank int `json:"orderRank"`
}

// NewsArticle is a dated news post.
type NewsArticle struct {
	Title           string `json:"title"`
	Slug            Slug   `json:"slug"`
	PublicationDate string `json:"publicationDate"`
	Author          string `json:"author"`
	FeaturedImage   *Image `json:"featuredImage"`
	Summary         string `json:"summary"`
	Content         string `json:"content"`
}

// GalleryImage is one photo in the lab gallery.
type GalleryImage struct {
	Image   *Image `json:"image"`
	Caption string `json:"caption"`
	AltText string `json:"altText"`
}

// ResearchArea is one entry in the home page research highlights.
type ResearchArea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Stat is a headline figure on the home page (e.g. "42 publications").
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// HomePage is the home page content document.
type HomePage struct {
	Title              string         `json:"title"`
	HeroTagline        string         `json:"heroTagline"`
	HeroHeading        string         `json:"heroHeading"`
	HeroHeadingAccent  string         `json:"heroHeadingAccent"`
	HeroDescription    string         `json:"heroDescription"`
	HeroCTAText        string         `json:"heroCtaText"`
	HeroCTALink        string         `json:"heroCtaLink"`
	HeroImage          *Image         `json:"heroImage"`
	ResearchAreasTitle string         `json:"researchAreasTitle"`
	ResearchAreas      []ResearchArea `json:"researchAreas"`
	StatsEnabled       bool           `json:"statsEnabled"`
	Stats              []Stat         `json:"stats"`
}

// ResearchPage is the research overview page document.
type ResearchPage struct {
	Title       string `json:"title"`
	PageContent string `json:"pageContent"`
}

// ContactPage is the contact page document.
type ContactPage struct {
	Title              string `json:"title"`
	PIName             string `json:"piName"`
	Email              string `json:"email"`
	LabAddress         string `json:"labAddress"`
	GoogleMapsLink     string `json:"googleMapsLink"`
	GoogleMapsEmbedURL string `json:"googleMapsEmbedUrl"`
	GuidanceText       string `json:"guidanceText"`
}

// BookPage is the book showcase page document.
type BookPage struct {
	Title         string `json:"title"`
	BookTitle     string `json:"bookTitle"`
	BookCover     *Image `json:"bookCover"`
	AmazonLink    string `json:"amazonLink"`
	CambridgeLink string `json:"cambridgeLink"`
	Description   string `json:"description"`
}

// LegalPage is a privacy policy or terms-of-use document.
type LegalPage struct {
	// PageType is "privacy" or "terms".
	PageType    string `json:"pageType"`
	Title       string `json:"title"`
	LastUpdated string `json:"lastUpdated"`
	Content     string `json:"content"`
}
