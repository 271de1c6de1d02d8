package commands

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/temirov/dirdoc/internal/types"
	"github.com/temirov/dirdoc/internal/utils"
)

const (
	minimumFenceLength = 3
	backtick           = "`"
	fileHeadingFormat  = "## File: %s\n\n"

	// errorReadFileFormat is used when a file cannot be read.
	errorReadFileFormat = "reading file %s: %w"
	// errorCollectContentFormat is used when collecting file contents fails.
	errorCollectContentFormat = "collecting content for %s: %w"
)

// contentCollection accumulates blocks across the recursion.
type contentCollection struct {
	blocks       []types.ContentBlock
	skippedFiles int
}

// FenceDelimiter returns a backtick fence one longer than the longest backtick
// run in text, never shorter than three.
func FenceDelimiter(text string) string {
	return strings.Repeat(backtick, max(minimumFenceLength, utils.LongestBacktickRun(text)+1))
}

// RenderContentBlock formats a block as a heading followed by a fenced body.
func RenderContentBlock(block types.ContentBlock) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, fileHeadingFormat, block.RelativePath)
	builder.WriteString(block.Delimiter)
	builder.WriteString(block.Language)
	builder.WriteString(lineTerminator)
	builder.WriteString(block.Text)
	builder.WriteString(lineTerminator)
	builder.WriteString(block.Delimiter)
	builder.WriteString(lineTerminator)
	builder.WriteString(lineTerminator)
	return builder.String()
}

// ConcatenateContents renders a block for every non-blank file under
// directoryPath, in tree order. relativePrefix is prepended to the headings and
// is empty when directoryPath is the scan root.
func (treeBuilder *TreeBuilder) ConcatenateContents(directoryPath string, relativePrefix string) (string, error) {
	blocks, _, collectError := treeBuilder.ContentBlocks(directoryPath, relativePrefix)
	if collectError != nil {
		return "", collectError
	}
	var builder strings.Builder
	for _, block := range blocks {
		builder.WriteString(RenderContentBlock(block))
	}
	return builder.String(), nil
}

// ContentBlocks collects the blocks for directoryPath and reports how many files
// were skipped for being empty or whitespace-only.
func (treeBuilder *TreeBuilder) ContentBlocks(directoryPath string, relativePrefix string) ([]types.ContentBlock, int, error) {
	rootAncestry, _, enterError := treeBuilder.enterDirectory(directoryPath, ancestry{}, false)
	if enterError != nil {
		return nil, 0, fmt.Errorf(errorCollectContentFormat, directoryPath, enterError)
	}
	collection := &contentCollection{}
	if collectError := treeBuilder.collectContent(directoryPath, relativePrefix, rootAncestry, collection); collectError != nil {
		return nil, 0, fmt.Errorf(errorCollectContentFormat, directoryPath, collectError)
	}
	return collection.blocks, collection.skippedFiles, nil
}

func (treeBuilder *TreeBuilder) collectContent(directoryPath string, relativePrefix string, ancestors ancestry, collection *contentCollection) error {
	entries, listError := treeBuilder.listEntries(directoryPath)
	if listError != nil {
		return listError
	}

	for _, entry := range entries {
		relativePath := path.Join(relativePrefix, entry.Name)
		if entry.IsDirectory {
			branch, descend, enterError := treeBuilder.enterDirectory(entry.Path, ancestors, false)
			if enterError != nil {
				return enterError
			}
			if !descend {
				continue
			}
			if nestedError := treeBuilder.collectContent(entry.Path, relativePath, branch, collection); nestedError != nil {
				return nestedError
			}
			continue
		}

		fileText, readError := readText(entry.Path)
		if readError != nil {
			return readError
		}
		if utils.IsBlank(fileText) {
			collection.skippedFiles++
			continue
		}
		collection.blocks = append(collection.blocks, types.ContentBlock{
			RelativePath: relativePath,
			Language:     treeBuilder.Languages.Lookup(entry.Name),
			Delimiter:    FenceDelimiter(fileText),
			Text:         fileText,
		})
	}
	return nil
}

// readText reads the whole file and decodes it leniently.
//
// #nosec G304
func readText(filePath string) (string, error) {
	fileBytes, readError := os.ReadFile(filePath)
	if readError != nil {
		return "", fmt.Errorf(errorReadFileFormat, filePath, readError)
	}
	return utils.DecodeText(fileBytes), nil
}
