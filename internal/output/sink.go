// Package output delivers an assembled report to a file, stdout, or the clipboard.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/temirov/dirdoc/internal/services/clipboard"
	"github.com/temirov/dirdoc/internal/types"
)

const (
	outputFilePermissions = 0o644

	errorWriteFileFormat = "writing report to %s: %w"
	errorPrintFormat     = "printing report: %w"
	errorCopyFormat      = "copying report to clipboard: %w"
)

// Destination captures the output flags. When several are set the file wins,
// then stdout; the clipboard is used when none are.
type Destination struct {
	OutputPath string
	Print      bool
}

// Target names the destination that Deliver will use.
func (destination Destination) Target() string {
	switch {
	case destination.OutputPath != "":
		return types.DestinationFile
	case destination.Print:
		return types.DestinationStdout
	default:
		return types.DestinationClipboard
	}
}

// Sink writes reports to exactly one destination per call.
type Sink struct {
	Stdout    io.Writer
	Clipboard clipboard.Copier
}

// NewSink returns a Sink bound to the given writer and clipboard.
func NewSink(stdout io.Writer, copier clipboard.Copier) *Sink {
	return &Sink{Stdout: stdout, Clipboard: copier}
}

// Deliver sends report to the destination chosen by priority and returns its name.
// The output file is overwritten; stdout receives the report plus a trailing newline.
func (sink *Sink) Deliver(report string, destination Destination) (string, error) {
	target := destination.Target()
	switch target {
	case types.DestinationFile:
		if writeError := os.WriteFile(destination.OutputPath, []byte(report), outputFilePermissions); writeError != nil {
			return target, fmt.Errorf(errorWriteFileFormat, destination.OutputPath, writeError)
		}
	case types.DestinationStdout:
		if _, printError := fmt.Fprintln(sink.Stdout, report); printError != nil {
			return target, fmt.Errorf(errorPrintFormat, printError)
		}
	default:
		if copyError := sink.Clipboard.Copy(report); copyError != nil {
			return target, fmt.Errorf(errorCopyFormat, copyError)
		}
	}
	return target, nil
}
