// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package webutil validates externally sourced URLs, emails, and slugs before
// they reach rendered pages.
package webutil

import (
	"net/url"
	"regexp"
	"strings"
)

// IsValidExternalURL reports whether a URL is safe to use as an external
// link. Only http and https schemes pass; javascript:, data:, and malformed
// URLs do not.
func IsValidExternalURL(raw string) bool {
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "https" || parsed.Scheme == "http") && parsed.Host != ""
}

// SanitizeURL returns the URL unchanged when valid, or the empty string.
func SanitizeURL(raw string) string {
	if IsValidExternalURL(raw) {
		return raw
	}
	return ""
}

// mapsEmbedHosts are the only hosts allowed to serve the contact page's
// embedded map.
var mapsEmbedHosts = map[string]bool{
	"www.google.com":  true,
	"google.com":      true,
	"maps.google.com": true,
}

// IsValidGoogleMapsEmbedURL reports whether a URL is an https Google Maps
// embed: an allowed Google host and a path under /maps/embed.
func IsValidGoogleMapsEmbedURL(raw string) bool {
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Scheme == "https" &&
		mapsEmbedHosts[parsed.Hostname()] &&
		strings.HasPrefix(parsed.Path, "/maps/embed")
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail checks basic email shape: local part, @, dotted domain.
func IsValidEmail(email string) bool {
	return email != "" && len(email) <= 254 && emailRe.MatchString(email)
}

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IsValidSlug checks lowercase hyphenated slug shape, at most 200 characters.
func IsValidSlug(slug string) bool {
	return slug != "" && len(slug) <= 200 && slugRe.MatchString(slug)
}
