package util

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

const maxBinaryCheckBytes = 512

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CleanMessage strips a leading BOM and repairs invalid UTF-8. Every other
// character, control characters included, is kept as-is so keyword matching
// sees exactly what the user sent. Size is bounded by the transport.
func CleanMessage(raw string) string {
	b := bytes.TrimPrefix([]byte(raw), utf8BOM)

	if !utf8.Valid(b) {
		log.WithField("bytes", len(b)).Warn("message has invalid UTF-8, replacing invalid sequences")
		b = bytes.ToValidUTF8(b, []byte(string(utf8.RuneError)))
	}
	return string(b)
}

// IsBlank reports whether s has no non-space characters.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsLikelyBinary reports whether the first bytes of the file at path
// contain a NUL byte.
func IsLikelyBinary(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, maxBinaryCheckBytes)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	return bytes.Contains(buffer[:n], []byte{0}), nil
}
