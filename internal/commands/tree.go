// Package commands renders the directory tree and file contents that make up a report.
package commands

import (
	"fmt"
	"strings"
)

const (
	branchConnector = "├── "
	lastConnector   = "└── "
	branchIndent    = "│   "
	lastIndent      = "    "
	lineTerminator  = "\n"

	// errorBuildTreeFormat is used when building the tree fails.
	errorBuildTreeFormat = "building tree for %s: %w"
)

// RenderTree returns the indented tree of directoryPath's contents, one
// newline-terminated line per entry. The root itself is not listed and an empty
// directory renders as an empty string.
func (treeBuilder *TreeBuilder) RenderTree(directoryPath string) (string, error) {
	treeLines, buildError := treeBuilder.TreeLines(directoryPath)
	if buildError != nil {
		return "", buildError
	}
	return joinLines(treeLines), nil
}

// TreeLines returns the rendered tree as individual lines without terminators.
func (treeBuilder *TreeBuilder) TreeLines(directoryPath string) ([]string, error) {
	rootAncestry, _, enterError := treeBuilder.enterDirectory(directoryPath, ancestry{}, false)
	if enterError != nil {
		return nil, fmt.Errorf(errorBuildTreeFormat, directoryPath, enterError)
	}
	treeLines, buildError := treeBuilder.buildTreeLines(directoryPath, rootAncestry)
	if buildError != nil {
		return nil, fmt.Errorf(errorBuildTreeFormat, directoryPath, buildError)
	}
	return treeLines, nil
}

// buildTreeLines recursively renders one directory level; nested lines are
// indented according to whether their parent was the last sibling.
func (treeBuilder *TreeBuilder) buildTreeLines(directoryPath string, ancestors ancestry) ([]string, error) {
	entries, listError := treeBuilder.listEntries(directoryPath)
	if listError != nil {
		return nil, listError
	}

	var treeLines []string
	for entryIndex, entry := range entries {
		connector, indent := branchConnector, branchIndent
		if entryIndex == len(entries)-1 {
			connector, indent = lastConnector, lastIndent
		}
		treeLines = append(treeLines, connector+entry.Name)
		if !entry.IsDirectory {
			continue
		}

		branch, descend, enterError := treeBuilder.enterDirectory(entry.Path, ancestors, true)
		if enterError != nil {
			return nil, enterError
		}
		if !descend {
			continue
		}
		nestedLines, nestedError := treeBuilder.buildTreeLines(entry.Path, branch)
		if nestedError != nil {
			return nil, nestedError
		}
		for _, nestedLine := range nestedLines {
			treeLines = append(treeLines, indent+nestedLine)
		}
	}
	return treeLines, nil
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, lineTerminator) + lineTerminator
}
