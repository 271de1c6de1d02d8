// Package utils contains general helper functions used across dirdoc.
package utils

import (
	"strings"

	"github.com/temirov/dirdoc/internal/types"
)

// ShouldIgnore reports whether an entry name is excluded by any pattern. A name is
// excluded when it equals a pattern or starts with the pattern stripped of its
// trailing directory marker. Matching uses the bare name only, so "build/" also
// excludes a file named "build.log" at any depth.
func ShouldIgnore(entryName string, ignorePatterns types.PatternSet) bool {
	for patternValue := range ignorePatterns {
		if entryName == patternValue {
			return true
		}
		if strings.HasPrefix(entryName, strings.TrimSuffix(patternValue, DirectoryMarker)) {
			return true
		}
	}
	return false
}

// LongestBacktickRun returns the length of the longest run of consecutive backticks in text.
func LongestBacktickRun(text string) int {
	longestRun := 0
	currentRun := 0
	for index := 0; index < len(text); index++ {
		if text[index] == '`' {
			currentRun++
			if currentRun > longestRun {
				longestRun = currentRun
			}
			continue
		}
		currentRun = 0
	}
	return longestRun
}

// IsBlank reports whether text is empty or contains only whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == EmptyString
}
