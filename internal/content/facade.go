// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package content

import (
	"context"

	"github.com/pdiddy/labsite/pkg/types"
)

// Facade is the fixed catalog of named queries the pages consume. Each method
// builds one query, delegates to the gateway, and returns a typed shape;
// there is no business logic here beyond shape and ordering.
type Facade struct {
	g *Gateway
}

// NewFacade returns the query catalog bound to a per-request gateway.
func NewFacade(g *Gateway) *Facade {
	return &Facade{g: g}
}

// SiteSettings fetches the tenant's site configuration. When several
// settings documents exist the most recently updated one wins.
func (f *Facade) SiteSettings(ctx context.Context) (*types.SiteSettings, error) {
	q := Query("siteSettings").Scope(f.g).OrderBy("_updatedAt desc").First().Build()
	return FetchOne[types.SiteSettings](ctx, f.g, q, nil)
}

// HomePage fetches the home page document.
func (f *Facade) HomePage(ctx context.Context) (*types.HomePage, error) {
	q := Query("homePage").Scope(f.g).First().Build()
	return FetchOne[types.HomePage](ctx, f.g, q, nil)
}

// Publications lists publications newest-first.
func (f *Facade) Publications(ctx context.Context) ([]types.Publication, error) {
	q := Query("publication").Scope(f.g).OrderBy("publicationDate desc").Build()
	return FetchList[types.Publication](ctx, f.g, q, nil)
}

// TeamMembers lists people ordered by their explicit rank, ascending.
func (f *Facade) TeamMembers(ctx context.Context) ([]types.Person, error) {
	q := Query("person").Scope(f.g).OrderBy("orderRank asc").Build()
	return FetchList[types.Person](ctx, f.g, q, nil)
}

// NewsArticles lists news newest-first. A limit of 0 means no limit.
func (f *Facade) NewsArticles(ctx context.Context, limit int) ([]types.NewsArticle, error) {
	b := Query("newsArticle").Scope(f.g).OrderBy("publicationDate desc")
	if limit > 0 {
		b.Limit(limit)
	}
	return FetchList[types.NewsArticle](ctx, f.g, b.Build(), nil)
}

// NewsArticleBySlug fetches a single news article, or nil when none matches.
func (f *Facade) NewsArticleBySlug(ctx context.Context, slug string) (*types.NewsArticle, error) {
	q := Query("newsArticle").Where("slug.current == $slug").Scope(f.g).First().Build()
	return FetchOne[types.NewsArticle](ctx, f.g, q, map[string]any{"slug": slug})
}

// ResearchPage fetches the research overview page.
func (f *Facade) ResearchPage(ctx context.Context) (*types.ResearchPage, error) {
	q := Query("researchPage").Scope(f.g).First().Build()
	return FetchOne[types.ResearchPage](ctx, f.g, q, nil)
}

// ContactPage fetches the contact page.
func (f *Facade) ContactPage(ctx context.Context) (*types.ContactPage, error) {
	q := Query("contactPage").Scope(f.g).First().Build()
	return FetchOne[types.ContactPage](ctx, f.g, q, nil)
}

// BookPage fetches the book showcase page.
func (f *Facade) BookPage(ctx context.Context) (*types.BookPage, error) {
	q := Query("bookPage").Scope(f.g).First().Build()
	return FetchOne[types.BookPage](ctx, f.g, q, nil)
}

// GalleryImages lists gallery photos newest-first.
func (f *Facade) GalleryImages(ctx context.Context) ([]types.GalleryImage, error) {
	q := Query("galleryImage").Scope(f.g).OrderBy("_createdAt desc").Build()
	return FetchList[types.GalleryImage](ctx, f.g, q, nil)
}

// LegalPage fetches the privacy or terms document by page type.
func (f *Facade) LegalPage(ctx context.Context, pageType string) (*types.LegalPage, error) {
	q := Query("legalPage").Where("pageType == $pageType").Scope(f.g).First().Build()
	return FetchOne[types.LegalPage](ctx, f.g, q, map[string]any{"pageType": pageType})
}
