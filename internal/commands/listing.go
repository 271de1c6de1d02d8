package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/dirdoc/internal/types"
	"github.com/temirov/dirdoc/internal/utils"
)

const (
	// errorReadDirectoryFormat is used when a directory cannot be read.
	errorReadDirectoryFormat = "reading directory %s: %w"
	// errorStatPathFormat is used when an entry cannot be classified, e.g. a broken symlink.
	errorStatPathFormat = "stat %s: %w"
	// errorResolvePathFormat is used when a directory's canonical path cannot be determined.
	errorResolvePathFormat = "resolving %s: %w"

	symlinkCycleMessage = "skipping directory that links back to an ancestor"
)

// ancestry holds the canonical paths of the directories on the current recursion branch.
type ancestry map[string]struct{}

// listEntries returns the entries of directoryPath sorted by name with ignored names removed.
// Symlinks are followed when deciding whether an entry is a directory.
func (treeBuilder *TreeBuilder) listEntries(directoryPath string) ([]types.DirectoryEntry, error) {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, directoryPath, readDirectoryError)
	}
	slices.SortFunc(directoryEntries, func(left, right os.DirEntry) int {
		return strings.Compare(left.Name(), right.Name())
	})

	entries := make([]types.DirectoryEntry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		if utils.ShouldIgnore(entryName, treeBuilder.IgnorePatterns) {
			continue
		}
		entryPath := filepath.Join(directoryPath, entryName)
		entryInfo, statError := os.Stat(entryPath)
		if statError != nil {
			return nil, fmt.Errorf(errorStatPathFormat, entryPath, statError)
		}
		entries = append(entries, types.DirectoryEntry{
			Name:        entryName,
			Path:        entryPath,
			IsDirectory: entryInfo.IsDir(),
		})
	}
	return entries, nil
}

// enterDirectory extends ancestors with directoryPath. It reports false when the
// directory resolves to one already on the branch, which only happens through symlinks.
func (treeBuilder *TreeBuilder) enterDirectory(directoryPath string, ancestors ancestry, warn bool) (ancestry, bool, error) {
	canonicalPath, resolveError := filepath.EvalSymlinks(directoryPath)
	if resolveError != nil {
		return nil, false, fmt.Errorf(errorResolvePathFormat, directoryPath, resolveError)
	}
	if _, visited := ancestors[canonicalPath]; visited {
		if warn {
			treeBuilder.Logger.Warn(symlinkCycleMessage, zap.String("path", directoryPath), zap.String("target", canonicalPath))
		}
		return nil, false, nil
	}
	branch := make(ancestry, len(ancestors)+1)
	for ancestorPath := range ancestors {
		branch[ancestorPath] = struct{}{}
	}
	branch[canonicalPath] = struct{}{}
	return branch, true, nil
}
