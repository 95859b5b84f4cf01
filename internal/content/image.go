// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package content

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pdiddy/labsite/pkg/types"
)

const imageCDNBase = "https://cdn.sanity.io/images"

// ImageURL turns a stored image reference into a CDN URL, optionally cropped
// to width×height. Asset references have the form "image-<id>-<WxH>-<ext>".
func ImageURL(cfg types.StoreConfig, img *types.Image, width, height int) (string, error) {
	if img == nil || img.Asset.Ref == "" {
		return "", fmt.Errorf("empty image reference")
	}

	parts := strings.Split(img.Asset.Ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return "", fmt.Errorf("malformed image reference %q", img.Asset.Ref)
	}
	id, dims, ext := parts[1], parts[2], parts[3]

	u := fmt.Sprintf("%s/%s/%s/%s-%s.%s", imageCDNBase, cfg.ProjectID, cfg.Dataset, id, dims, ext)
	if width > 0 && height > 0 {
		vals := url.Values{}
		vals.Set("w", fmt.Sprintf("%d", width))
		vals.Set("h", fmt.Sprintf("%d", height))
		vals.Set("fit", "crop")
		u += "?" + vals.Encode()
	}
	return u, nil
}
