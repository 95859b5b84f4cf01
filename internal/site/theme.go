// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package site derives presentation-level values from a tenant's settings:
// the theme CSS variable block, SEO metadata, and structured data. Everything
// here is a pure function of its input with literal defaults for missing data.
package site

import (
	"fmt"
	"strings"

	"github.com/pdiddy/labsite/pkg/types"
)

// Palette is one mode's accent colors.
type Palette struct {
	Primary string
	Hover   string
	Muted   string
}

// ThemeColors pairs the light and dark palettes of a preset.
type ThemeColors struct {
	Light Palette
	Dark  Palette
}

// DefaultTheme is used when the settings name no preset or an unknown one.
const DefaultTheme = "ocean"

// themePresets is the fixed table of named palettes.
var themePresets = map[string]ThemeColors{
	"ocean": {
		Light: Palette{Primary: "#2563EB", Hover: "#1D4ED8", Muted: "rgba(37, 99, 235, 0.1)"},
		Dark:  Palette{Primary: "#60A5FA", Hover: "#93C5FD", Muted: "rgba(96, 165, 250, 0.15)"},
	},
	"verdant": {
		Light: Palette{Primary: "#16A34A", Hover: "#15803D", Muted: "rgba(22, 163, 74, 0.1)"},
		Dark:  Palette{Primary: "#4ADE80", Hover: "#86EFAC", Muted: "rgba(74, 222, 128, 0.15)"},
	},
	"sunset": {
		Light: Palette{Primary: "#EA580C", Hover: "#C2410C", Muted: "rgba(234, 88, 12, 0.1)"},
		Dark:  Palette{Primary: "#FB923C", Hover: "#FDBA74", Muted: "rgba(251, 146, 60, 0.15)"},
	},
	"violet": {
		Light: Palette{Primary: "#7C3AED", Hover: "#6D28D9", Muted: "rgba(124, 58, 237, 0.1)"},
		Dark:  Palette{Primary: "#A78BFA", Hover: "#C4B5FD", Muted: "rgba(167, 139, 250, 0.15)"},
	},
	"rose": {
		Light: Palette{Primary: "#E11D48", Hover: "#BE123C", Muted: "rgba(225, 29, 72, 0.1)"},
		Dark:  Palette{Primary: "#FB7185", Hover: "#FDA4AF", Muted: "rgba(251, 113, 133, 0.15)"},
	},
	"slate": {
		Light: Palette{Primary: "#475569", Hover: "#334155", Muted: "rgba(71, 85, 105, 0.1)"},
		Dark:  Palette{Primary: "#94A3B8", Hover: "#CBD5E1", Muted: "rgba(148, 163, 184, 0.15)"},
	},
	"copper": {
		Light: Palette{Primary: "#B45309", Hover: "#92400E", Muted: "rgba(180, 83, 9, 0.1)"},
		Dark:  Palette{Primary: "#FBBF24", Hover: "#FCD34D", Muted: "rgba(251, 191, 36, 0.15)"},
	},
	"forest": {
		Light: Palette{Primary: "#166534", Hover: "#14532D", Muted: "rgba(22, 101, 52, 0.1)"},
		Dark:  Palette{Primary: "#4ADE80", Hover: "#86EFAC", Muted: "rgba(74, 222, 128, 0.15)"},
	},
}

// Theme looks up the preset named in settings, falling back to the default
// for missing or unrecognized names.
func Theme(settings *types.SiteSettings) ThemeColors {
	name := DefaultTheme
	if settings != nil && settings.ColorTheme != "" {
		name = settings.ColorTheme
	}
	theme, ok := themePresets[name]
	if !ok {
		theme = themePresets[DefaultTheme]
	}
	return theme
}

// ThemeCSS renders the CSS variable block for the tenant's theme: light-mode
// values on :root, dark-mode values on the .dark and [data-theme="dark"]
// selectors.
func ThemeCSS(settings *types.SiteSettings) string {
	theme := Theme(settings)

	var sb strings.Builder
	sb.WriteString(":root {\n")
	writePalette(&sb, theme.Light)
	sb.WriteString("}\n\n.dark,\n[data-theme=\"dark\"] {\n")
	writePalette(&sb, theme.Dark)
	sb.WriteString("}\n")
	return sb.String()
}

func writePalette(sb *strings.Builder, p Palette) {
	fmt.Fprintf(sb, "  --accent-primary: %s;\n", p.Primary)
	fmt.Fprintf(sb, "  --accent-hover: %s;\n", p.Hover)
	fmt.Fprintf(sb, "  --accent-muted: %s;\n", p.Muted)
}
