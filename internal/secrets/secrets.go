// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads the CLI's credentials from a directory of plain-text
// files. Each file is one secret: the filename is the key name and the file
// contents (trimmed) are the value. Credentials stay out of config files and
// the environment; the directory is expected to be git-ignored.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Key files the labsite commands look for.
const (
	// KeySanityWriteToken is the content store's write-capable token. Only
	// the import pipeline's commit phase needs it.
	KeySanityWriteToken = "sanity-write-token"

	// KeySemanticScholarAPIKey raises the Semantic Scholar rate limit.
	// Optional.
	KeySemanticScholarAPIKey = "semantic-scholar-api-key"
)

// DefaultDir is where the CLI looks for secrets, relative to the working
// directory.
const DefaultDir = ".secrets/"

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Value resolves a credential: an explicit override (flag or config value)
// beats the loaded secret file; absent both, the empty string.
func Value(loaded map[string]string, key, override string) string {
	if override != "" {
		return override
	}
	return loaded[key]
}
