package commands

import (
	"go.uber.org/zap"

	"github.com/temirov/dirdoc/internal/types"
)

// TreeBuilder walks a directory with a fixed ignore set and language table.
// The same filtered, sorted listing feeds both the tree and the content blocks.
type TreeBuilder struct {
	IgnorePatterns types.PatternSet
	Languages      types.LanguageTable
	Logger         *zap.Logger
}

// NewTreeBuilder returns a TreeBuilder. A nil logger is replaced with a no-op logger.
func NewTreeBuilder(ignorePatterns types.PatternSet, languages types.LanguageTable, logger *zap.Logger) *TreeBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ignorePatterns == nil {
		ignorePatterns = types.NewPatternSet()
	}
	return &TreeBuilder{
		IgnorePatterns: ignorePatterns,
		Languages:      languages,
		Logger:         logger,
	}
}
