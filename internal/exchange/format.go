// Package exchange moves contacts between the directory and other file
// formats: plain rows, JSON, YAML and Excel workbooks.
package exchange

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type Format string

const (
	FormatText Format = "txt"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

var ErrUnsupportedFormat = errors.New("exchange: unsupported format")

// Formats lists the accepted format names.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatXLSX}

// ParseFormat accepts a format name, case-insensitively. "yml" is an alias
// for yaml.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatText, FormatJSON, FormatYAML, FormatXLSX:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedFormat, s, FormatNames())
	}
}

// FormatNames joins Formats for help and error text.
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Expand resolves glob patterns such as "backups/**/*.txt" into a
// de-duplicated list of files, sorted within each pattern. A pattern without meta characters is
// kept as is, so a missing file surfaces later as an open error.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			add(pattern)
			continue
		}
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("exchange: bad pattern %q", pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("exchange: glob %q: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}
	return files, nil
}
