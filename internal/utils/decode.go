package utils

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

const replacementCharacter = "�"

// DecodeText converts raw bytes to a string, replacing invalid UTF-8 sequences
// with U+FFFD instead of failing.
func DecodeText(data []byte) string {
	decoded, decodeError := unicode.UTF8.NewDecoder().Bytes(data)
	if decodeError != nil {
		return strings.ToValidUTF8(string(data), replacementCharacter)
	}
	return string(decoded)
}
