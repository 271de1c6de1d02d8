// Package types defines the data structures shared across the dirdoc packages.
package types

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	DestinationFile      = "file"
	DestinationStdout    = "stdout"
	DestinationClipboard = "clipboard"
)

// PatternSet holds literal ignore patterns. Order is irrelevant; each pattern is stored once.
type PatternSet map[string]struct{}

// NewPatternSet builds a set from the provided patterns.
func NewPatternSet(patterns ...string) PatternSet {
	set := make(PatternSet, len(patterns))
	for _, pattern := range patterns {
		set.Add(pattern)
	}
	return set
}

// Add inserts a pattern into the set.
func (set PatternSet) Add(pattern string) {
	set[pattern] = struct{}{}
}

// Contains reports whether the pattern is present.
func (set PatternSet) Contains(pattern string) bool {
	_, present := set[pattern]
	return present
}

// Sorted returns the patterns in ascending order, for logging and stable comparisons.
func (set PatternSet) Sorted() []string {
	patterns := make([]string, 0, len(set))
	for pattern := range set {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)
	return patterns
}

// DirectoryEntry is a file or subdirectory surviving the ignore filter.
type DirectoryEntry struct {
	Name        string
	Path        string
	IsDirectory bool
}

// ContentBlock is the rendered unit for one non-empty text file.
type ContentBlock struct {
	RelativePath string
	Language     string
	Delimiter    string
	Text         string
}

// Report is the assembled markdown document along with scan statistics.
type Report struct {
	Directory    string
	Markdown     string
	EntryCount   int
	FileCount    int
	SkippedFiles int
}

// LanguageTable maps file extensions to fenced code block language tags.
// A table is never mutated after construction; WithOverrides returns a copy.
type LanguageTable struct {
	tags map[string]string
}

// DefaultLanguageTable returns the built-in extension table.
func DefaultLanguageTable() LanguageTable {
	return LanguageTable{tags: map[string]string{
		".py":  "python",
		".md":  "markdown",
		".txt": "plaintext",
	}}
}

// WithOverrides returns a new table extended by overrides. Keys are normalized to
// a lower-case extension with a leading dot.
func (table LanguageTable) WithOverrides(overrides map[string]string) LanguageTable {
	merged := make(map[string]string, len(table.tags)+len(overrides))
	for extension, tag := range table.tags {
		merged[extension] = tag
	}
	for extension, tag := range overrides {
		normalized := NormalizeExtension(extension)
		if normalized == "" {
			continue
		}
		merged[normalized] = strings.TrimSpace(tag)
	}
	return LanguageTable{tags: merged}
}

// Lookup returns the language tag for a file name, or an empty string when the
// extension is unknown. Dot files without a further extension have no extension.
func (table LanguageTable) Lookup(fileName string) string {
	extension := filepath.Ext(fileName)
	if extension == fileName {
		return ""
	}
	return table.tags[extension]
}

// Len reports the number of known extensions.
func (table LanguageTable) Len() int {
	return len(table.tags)
}

// NormalizeExtension lower-cases an extension and ensures it starts with a dot.
func NormalizeExtension(extension string) string {
	trimmed := strings.ToLower(strings.TrimSpace(extension))
	if trimmed == "" || trimmed == "." {
		return ""
	}
	if !strings.HasPrefix(trimmed, ".") {
		trimmed = "." + trimmed
	}
	return trimmed
}
