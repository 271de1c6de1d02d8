// Package config loads the root ignore file and the optional dirdoc configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/dirdoc/internal/types"
	"github.com/temirov/dirdoc/internal/utils"
)

const (
	errorReadIgnoreFileFormat = "reading %s: %w"
	lineSeparator             = "\n"
)

// LoadIgnorePatterns reads the .gitignore located directly inside directoryPath and
// returns its literal patterns. A missing file yields an empty set. Undecodable
// bytes are replaced rather than rejected. Nested ignore files are never consulted.
//
// #nosec G304
func LoadIgnorePatterns(directoryPath string) (types.PatternSet, error) {
	ignorePatterns := types.NewPatternSet()
	ignoreFilePath := filepath.Join(directoryPath, utils.GitIgnoreFileName)

	fileBytes, readError := os.ReadFile(ignoreFilePath)
	if readError != nil {
		if errors.Is(readError, fs.ErrNotExist) {
			return ignorePatterns, nil
		}
		return nil, fmt.Errorf(errorReadIgnoreFileFormat, ignoreFilePath, readError)
	}

	for _, line := range strings.Split(utils.DecodeText(fileBytes), lineSeparator) {
		trimmedLine := strings.TrimSpace(line)
		if trimmedLine == utils.EmptyString || strings.HasPrefix(trimmedLine, utils.CommentPrefix) {
			continue
		}
		ignorePatterns.Add(trimmedLine)
	}
	return ignorePatterns, nil
}
