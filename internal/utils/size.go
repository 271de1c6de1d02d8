package utils

import (
	"github.com/dustin/go-humanize"
)

// FormatReportSize converts a byte length into a human-readable IEC string such as "1.5 KiB".
func FormatReportSize(byteCount int) string {
	if byteCount < 0 {
		byteCount = 0
	}
	return humanize.IBytes(uint64(byteCount))
}
