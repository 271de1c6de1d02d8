package commands_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/dirdoc/internal/commands"
	"github.com/temirov/dirdoc/internal/types"
)

const backtickFileContent = "def example():\n    return \"```\n    print('Hello')\n```\n\""

// createSampleProject lays out the fixture used across the tests: two ignored
// entries, a file with an embedded fence, and one nested directory.
func createSampleProject(t *testing.T) string {
	t.Helper()
	rootDirectory := t.TempDir()
	writeFile(t, rootDirectory, "file1.py", "print('Hello from file1')")
	writeFile(t, rootDirectory, "file2.py", "print('Hello from file2')")
	writeFile(t, rootDirectory, "subdir1/file3.py", "print('Hello from file3')")
	writeFile(t, rootDirectory, "subdir2/file4.py", "print('Hello from file4')")
	writeFile(t, rootDirectory, "file_with_backticks.py", backtickFileContent)
	writeFile(t, rootDirectory, ".gitignore", ".gitignore\nfile2.py\nsubdir2/\n")
	return rootDirectory
}

func writeFile(t *testing.T, rootDirectory string, relativePath string, content string) {
	t.Helper()
	filePath := filepath.Join(rootDirectory, filepath.FromSlash(relativePath))
	require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
}

func newTreeBuilder(patterns ...string) *commands.TreeBuilder {
	return commands.NewTreeBuilder(types.NewPatternSet(patterns...), types.DefaultLanguageTable(), nil)
}

func TestRenderTree(t *testing.T) {
	rootDirectory := createSampleProject(t)
	treeBuilder := newTreeBuilder(".gitignore", "file2.py", "subdir2/")

	tree, renderError := treeBuilder.RenderTree(rootDirectory)
	require.NoError(t, renderError)

	expectedTree := "├── file1.py\n" +
		"├── file_with_backticks.py\n" +
		"└── subdir1\n" +
		"    └── file3.py\n"
	assert.Equal(t, expectedTree, tree)
}

func TestRenderTreeIndentsNonLastDirectories(t *testing.T) {
	rootDirectory := t.TempDir()
	writeFile(t, rootDirectory, "a/x/deep.txt", "deep")
	writeFile(t, rootDirectory, "a/y.txt", "y")
	writeFile(t, rootDirectory, "b/z.txt", "z")
	writeFile(t, rootDirectory, "c.txt", "c")
	require.NoError(t, os.Mkdir(filepath.Join(rootDirectory, "empty"), 0o755))

	tree, renderError := newTreeBuilder().RenderTree(rootDirectory)
	require.NoError(t, renderError)

	expectedTree := "├── a\n" +
		"│   ├── x\n" +
		"│   │   └── deep.txt\n" +
		"│   └── y.txt\n" +
		"├── b\n" +
		"│   └── z.txt\n" +
		"├── c.txt\n" +
		"└── empty\n"
	assert.Equal(t, expectedTree, tree)

	treeLines := strings.Split(strings.TrimSuffix(tree, "\n"), "\n")
	assert.Len(t, treeLines, 8)
}

func TestRenderTreeEmptyDirectory(t *testing.T) {
	rootDirectory := t.TempDir()
	writeFile(t, rootDirectory, "only.log", "x")

	tree, renderError := newTreeBuilder("only").RenderTree(rootDirectory)
	require.NoError(t, renderError)
	assert.Equal(t, "", tree)
}

func TestRenderTreeSortsByCodepoint(t *testing.T) {
	rootDirectory := t.TempDir()
	for _, fileName := range []string{"b.txt", "B.txt", "a.txt", "_x.txt"} {
		writeFile(t, rootDirectory, fileName, fileName)
	}

	tree, renderError := newTreeBuilder().RenderTree(rootDirectory)
	require.NoError(t, renderError)
	assert.Equal(t, "├── B.txt\n├── _x.txt\n├── a.txt\n└── b.txt\n", tree)
}

func TestRenderTreeMissingDirectory(t *testing.T) {
	_, renderError := newTreeBuilder().RenderTree(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, renderError)
}

func TestConcatenateContents(t *testing.T) {
	rootDirectory := createSampleProject(t)
	treeBuilder := newTreeBuilder(".gitignore", "file2.py", "subdir2/")

	contents, concatenateError := treeBuilder.ConcatenateContents(rootDirectory, "")
	require.NoError(t, concatenateError)

	expectedContents := "## File: file1.py\n\n" +
		"```python\nprint('Hello from file1')\n```\n\n" +
		"## File: file_with_backticks.py\n\n" +
		"````python\n" + backtickFileContent + "\n````\n\n" +
		"## File: subdir1/file3.py\n\n" +
		"```python\nprint('Hello from file3')\n```\n\n"
	assert.Equal(t, expectedContents, contents)
}

func TestConcatenateContentsUsesRelativePrefix(t *testing.T) {
	rootDirectory := t.TempDir()
	writeFile(t, rootDirectory, "inner/notes.md", "# Notes")

	contents, concatenateError := newTreeBuilder().ConcatenateContents(rootDirectory, "outer")
	require.NoError(t, concatenateError)
	assert.Equal(t, "## File: outer/inner/notes.md\n\n```markdown\n# Notes\n```\n\n", contents)
}

func TestBlankFilesAppearInTreeOnly(t *testing.T) {
	rootDirectory := t.TempDir()
	writeFile(t, rootDirectory, "empty.txt", "")
	writeFile(t, rootDirectory, "spaces.txt", "  \n\t\n")
	writeFile(t, rootDirectory, "real.txt", "content")
	treeBuilder := newTreeBuilder()

	tree, renderError := treeBuilder.RenderTree(rootDirectory)
	require.NoError(t, renderError)
	assert.Equal(t, "├── empty.txt\n├── real.txt\n└── spaces.txt\n", tree)

	blocks, skippedFiles, collectError := treeBuilder.ContentBlocks(rootDirectory, "")
	require.NoError(t, collectError)
	require.Len(t, blocks, 1)
	assert.Equal(t, "real.txt", blocks[0].RelativePath)
	assert.Equal(t, "plaintext", blocks[0].Language)
	assert.Equal(t, 2, skippedFiles)
}

func TestContentBlocksUnknownExtensionHasNoTag(t *testing.T) {
	rootDirectory := t.TempDir()
	writeFile(t, rootDirectory, "Makefile", "all:\n\tgo build")
	writeFile(t, rootDirectory, ".env", "KEY=value")

	blocks, _, collectError := newTreeBuilder().ContentBlocks(rootDirectory, "")
	require.NoError(t, collectError)
	require.Len(t, blocks, 2)
	assert.Equal(t, ".env", blocks[0].RelativePath)
	assert.Equal(t, "", blocks[0].Language)
	assert.Equal(t, "", blocks[1].Language)
}

func TestContentBlocksDecodeLeniently(t *testing.T) {
	rootDirectory := t.TempDir()
	writeFile(t, rootDirectory, "latin1.txt", "caf\xe9")

	blocks, _, collectError := newTreeBuilder().ContentBlocks(rootDirectory, "")
	require.NoError(t, collectError)
	require.Len(t, blocks, 1)
	assert.Equal(t, "caf�", blocks[0].Text)
}

func TestFenceDelimiter(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "no_backticks", text: "plain", expected: "```"},
		{name: "short_runs", text: "a `b` ``c``", expected: "```"},
		{name: "triple", text: "```go\n```", expected: "````"},
		{name: "long_run", text: "``````", expected: "```````"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, commands.FenceDelimiter(testCase.text))
		})
	}
}

func TestSymlinkCycleIsListedButNotDescended(t *testing.T) {
	rootDirectory := t.TempDir()
	writeFile(t, rootDirectory, "pkg/main.py", "print('main')")
	linkPath := filepath.Join(rootDirectory, "pkg", "loop")
	if symlinkError := os.Symlink(rootDirectory, linkPath); symlinkError != nil {
		t.Skipf("symlinks unavailable: %v", symlinkError)
	}

	observedCore, observedLogs := observer.New(zap.WarnLevel)
	treeBuilder := commands.NewTreeBuilder(types.NewPatternSet(), types.DefaultLanguageTable(), zap.New(observedCore))

	tree, renderError := treeBuilder.RenderTree(rootDirectory)
	require.NoError(t, renderError)
	assert.Equal(t, "└── pkg\n    ├── loop\n    └── main.py\n", tree)
	assert.Equal(t, 1, observedLogs.Len())

	blocks, _, collectError := treeBuilder.ContentBlocks(rootDirectory, "")
	require.NoError(t, collectError)
	require.Len(t, blocks, 1)
	assert.Equal(t, "pkg/main.py", blocks[0].RelativePath)
}

func TestBrokenSymlinkIsFatal(t *testing.T) {
	rootDirectory := t.TempDir()
	if symlinkError := os.Symlink(filepath.Join(rootDirectory, "missing"), filepath.Join(rootDirectory, "dangling")); symlinkError != nil {
		t.Skipf("symlinks unavailable: %v", symlinkError)
	}

	_, renderError := newTreeBuilder().RenderTree(rootDirectory)
	require.Error(t, renderError)
}

func TestGenerateReport(t *testing.T) {
	rootDirectory := createSampleProject(t)

	report, generateError := commands.GenerateReport(rootDirectory, commands.ReportOptions{Languages: types.DefaultLanguageTable()})
	require.NoError(t, generateError)

	expectedReport := "# Directory Structure for '" + rootDirectory + "'\n\n" +
		"```plaintext\n" +
		"├── file1.py\n" +
		"├── file_with_backticks.py\n" +
		"└── subdir1\n" +
		"    └── file3.py\n" +
		"```\n\n" +
		"## File: file1.py\n\n" +
		"```python\nprint('Hello from file1')\n```\n\n" +
		"## File: file_with_backticks.py\n\n" +
		"````python\n" + backtickFileContent + "\n````\n\n" +
		"## File: subdir1/file3.py\n\n" +
		"```python\nprint('Hello from file3')\n```\n\n"
	assert.Equal(t, expectedReport, report.Markdown)
	assert.Equal(t, 4, report.EntryCount)
	assert.Equal(t, 3, report.FileCount)
	assert.Equal(t, 0, report.SkippedFiles)
}

func TestGenerateReportWithoutIgnoreFile(t *testing.T) {
	rootDirectory := t.TempDir()

	report, generateError := commands.GenerateReport(rootDirectory, commands.ReportOptions{Languages: types.DefaultLanguageTable()})
	require.NoError(t, generateError)
	assert.Equal(t, "# Directory Structure for '"+rootDirectory+"'\n\n```plaintext\n```\n\n", report.Markdown)
}

func TestGenerateReportRejectsInvalidTargets(t *testing.T) {
	rootDirectory := t.TempDir()
	writeFile(t, rootDirectory, "file.txt", "x")

	_, missingError := commands.GenerateReport(filepath.Join(rootDirectory, "absent"), commands.ReportOptions{})
	require.Error(t, missingError)
	assert.Contains(t, missingError.Error(), "does not exist")

	_, fileError := commands.GenerateReport(filepath.Join(rootDirectory, "file.txt"), commands.ReportOptions{})
	require.ErrorIs(t, fileError, commands.ErrNotDirectory)
}
