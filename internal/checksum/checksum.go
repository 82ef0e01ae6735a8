// Package checksum computes the content hashes the lock file records
// for drift detection.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Calculator is an interface for computing file checksums. The
// abstraction allows different hash strategies without touching the
// lock file mechanism.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of normalized content,
	// resilient to line-ending and trailing-whitespace churn.
	CalculateNormalized(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256. Normalization
// converts line endings to \n, strips trailing whitespace per line and
// collapses runs of blank lines, so re-saving a file with different
// editor settings does not register as drift. Canonically formatted
// text is already normal under these rules.
//
// SHA256 is a zero-size type and safe for concurrent use.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	hash := sha256.Sum256([]byte(normalize(string(content))))
	return hex.EncodeToString(hash[:])
}

func normalize(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
