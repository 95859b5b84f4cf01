// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package content

import (
	"testing"

	"github.com/pdiddy/labsite/pkg/types"
)

func TestImageURL(t *testing.T) {
	cfg := types.StoreConfig{ProjectID: "testproj", Dataset: "production"}
	img := &types.Image{Asset: types.AssetRef{Ref: "image-abc123-1200x630-jpg"}}

	u, err := ImageURL(cfg, img, 1200, 630)
	if err != nil {
		t.Fatalf("ImageURL: %v", err)
	}
	want := "https://cdn.sanity.io/images/testproj/production/abc123-1200x630.jpg?fit=crop&h=630&w=1200"
	if u != want {
		t.Errorf("ImageURL = %q, want %q", u, want)
	}
}

func TestImageURLWithoutDimensions(t *testing.T) {
	cfg := types.StoreConfig{ProjectID: "testproj", Dataset: "production"}
	img := &types.Image{Asset: types.AssetRef{Ref: "image-abc123-800x600-png"}}

	u, err := ImageURL(cfg, img, 0, 0)
	if err != nil {
		t.Fatalf("ImageURL: %v", err)
	}
	if u != "https://cdn.sanity.io/images/testproj/production/abc123-800x600.png" {
		t.Errorf("ImageURL = %q", u)
	}
}

func TestImageURLRejectsMalformedRefs(t *testing.T) {
	cfg := types.StoreConfig{ProjectID: "testproj", Dataset: "production"}

	for _, ref := range []string{"", "file-abc-1x1-pdf", "image-abc", "not a ref"} {
		img := &types.Image{Asset: types.AssetRef{Ref: ref}}
		if _, err := ImageURL(cfg, img, 0, 0); err == nil {
			t.Errorf("ImageURL(%q) succeeded, want error", ref)
		}
	}

	if _, err := ImageURL(cfg, nil, 0, 0); err == nil {
		t.Error("ImageURL(nil) succeeded, want error")
	}
}
