package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/dirdoc/internal/config"
	"github.com/temirov/dirdoc/internal/types"
)

const (
	reportTitleFormat = "# Directory Structure for '%s'\n\n"
	treeFenceOpening  = "```plaintext\n"
	treeFenceClosing  = "```\n\n"

	// errorPathMissingFormat reports a missing path.
	errorPathMissingFormat = "path '%s' does not exist"
	// errorStatFormat reports failure to retrieve file statistics.
	errorStatFormat = "stat failed for '%s': %w"
	// errorNotDirectoryFormat wraps ErrNotDirectory with the offending path.
	errorNotDirectoryFormat = "path '%s': %w"
	// errorLoadIgnoreFormat is used when the root ignore file cannot be read.
	errorLoadIgnoreFormat = "loading ignore patterns for %s: %w"
)

// ErrNotDirectory is returned when the scan target exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// ReportOptions configures report generation.
type ReportOptions struct {
	Languages types.LanguageTable
	Logger    *zap.Logger
}

// GenerateReport scans directory and assembles the markdown report: a title, the
// fenced tree, then the content blocks. The ignore set is read once from the
// directory's .gitignore and applied at every depth. The title uses directory as given.
func GenerateReport(directory string, options ReportOptions) (types.Report, error) {
	if validationError := validateDirectory(directory); validationError != nil {
		return types.Report{}, validationError
	}

	ignorePatterns, loadError := config.LoadIgnorePatterns(directory)
	if loadError != nil {
		return types.Report{}, fmt.Errorf(errorLoadIgnoreFormat, directory, loadError)
	}
	treeBuilder := NewTreeBuilder(ignorePatterns, options.Languages, options.Logger)
	treeBuilder.Logger.Debug("loaded ignore patterns", zap.Strings("patterns", ignorePatterns.Sorted()))

	treeLines, treeError := treeBuilder.TreeLines(directory)
	if treeError != nil {
		return types.Report{}, treeError
	}
	contentBlocks, skippedFiles, contentError := treeBuilder.ContentBlocks(directory, "")
	if contentError != nil {
		return types.Report{}, contentError
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, reportTitleFormat, directory)
	builder.WriteString(treeFenceOpening)
	builder.WriteString(joinLines(treeLines))
	builder.WriteString(treeFenceClosing)
	for _, block := range contentBlocks {
		builder.WriteString(RenderContentBlock(block))
	}

	return types.Report{
		Directory:    directory,
		Markdown:     builder.String(),
		EntryCount:   len(treeLines),
		FileCount:    len(contentBlocks),
		SkippedFiles: skippedFiles,
	}, nil
}

func validateDirectory(directory string) error {
	directoryInfo, statError := os.Stat(directory)
	if statError != nil {
		if os.IsNotExist(statError) {
			return fmt.Errorf(errorPathMissingFormat, directory)
		}
		return fmt.Errorf(errorStatFormat, directory, statError)
	}
	if !directoryInfo.IsDir() {
		return fmt.Errorf(errorNotDirectoryFormat, directory, ErrNotDirectory)
	}
	return nil
}
