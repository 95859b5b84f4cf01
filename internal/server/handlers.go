// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/labsite/internal/site"
	"github.com/pdiddy/labsite/internal/webutil"
	"github.com/pdiddy/labsite/pkg/types"
)

func (s *Server) respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", zap.Error(err))
	}
}

// respondError surfaces a store failure to the caller. There is no retry and
// no fallback content; store health is the store operator's problem.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("content fetch failed",
		zap.String("path", r.URL.Path),
		zap.Error(err))
	http.Error(w, "content store error", http.StatusBadGateway)
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.facade(r).SiteSettings(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	// Operator-entered links pass through only when they are plain web URLs.
	if settings != nil {
		settings.PrivacyPolicyURL = webutil.SanitizeURL(settings.PrivacyPolicyURL)
		settings.TermsURL = webutil.SanitizeURL(settings.TermsURL)
	}
	s.respondJSON(w, settings)
}

func (s *Server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	settings, err := s.facade(r).SiteSettings(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, map[string]any{
		"metadata":       site.DeriveMetadata(settings, s.store.Config()),
		"structuredData": site.DeriveStructuredData(settings, ""),
	})
}

// handleHome issues the page's queries as one unordered parallel batch and
// waits for all of them before responding.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	f := s.facade(r)

	var (
		settings *types.SiteSettings
		home     *types.HomePage
		news     []types.NewsArticle
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		settings, err = f.SiteSettings(ctx)
		return err
	})
	g.Go(func() (err error) {
		home, err = f.HomePage(ctx)
		return err
	})
	g.Go(func() (err error) {
		news, err = f.NewsArticles(ctx, 3)
		return err
	})

	if err := g.Wait(); err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, map[string]any{
		"settings":   settings,
		"page":       home,
		"latestNews": news,
	})
}

func (s *Server) handlePublications(w http.ResponseWriter, r *http.Request) {
	pubs, err := s.facade(r).Publications(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if pubs == nil {
		pubs = []types.Publication{}
	}
	s.respondJSON(w, pubs)
}

func (s *Server) handlePeople(w http.ResponseWriter, r *http.Request) {
	people, err := s.facade(r).TeamMembers(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	// The people page splits current and past members; past members show
	// where they went next.
	current := []types.Person{}
	past := []types.Person{}
	for _, p := range people {
		if p.Status == "past" {
			past = append(past, p)
		} else {
			current = append(current, p)
		}
	}
	s.respondJSON(w, map[string]any{"current": current, "past": past})
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	articles, err := s.facade(r).NewsArticles(r.Context(), 0)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if articles == nil {
		articles = []types.NewsArticle{}
	}
	s.respondJSON(w, articles)
}

func (s *Server) handleNewsArticle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !webutil.IsValidSlug(slug) {
		http.NotFound(w, r)
		return
	}
	article, err := s.facade(r).NewsArticleBySlug(r.Context(), slug)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if article == nil {
		http.NotFound(w, r)
		return
	}
	s.respondJSON(w, article)
}

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	page, err := s.facade(r).ResearchPage(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, page)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	page, err := s.facade(r).ContactPage(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	// Contact details are operator-entered content; anything that does not
	// hold its declared shape is dropped rather than rendered.
	if page != nil {
		if !webutil.IsValidGoogleMapsEmbedURL(page.GoogleMapsEmbedURL) {
			page.GoogleMapsEmbedURL = ""
		}
		page.GoogleMapsLink = webutil.SanitizeURL(page.GoogleMapsLink)
		if !webutil.IsValidEmail(page.Email) {
			page.Email = ""
		}
	}
	s.respondJSON(w, page)
}

func (s *Server) handleBook(w http.ResponseWriter, r *http.Request) {
	page, err := s.facade(r).BookPage(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, page)
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	images, err := s.facade(r).GalleryImages(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if images == nil {
		images = []types.GalleryImage{}
	}
	s.respondJSON(w, images)
}

func (s *Server) handleLegal(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	if kind != "privacy" && kind != "terms" {
		http.NotFound(w, r)
		return
	}
	page, err := s.facade(r).LegalPage(r.Context(), kind)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if page == nil {
		http.NotFound(w, r)
		return
	}
	s.respondJSON(w, page)
}

func (s *Server) handleThemeCSS(w http.ResponseWriter, r *http.Request) {
	settings, err := s.facade(r).SiteSettings(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(site.ThemeCSS(settings)))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
