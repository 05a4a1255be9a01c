// SPDX-License-Identifier: MIT
// Package: ninefold/digits
//
// parse.go — digit extraction from constant and sequence files.

package digits

import (
	"fmt"
	"io"
	"os"
	"unicode"
)

// ParseOptions controls Parse and ReadFile.
type ParseOptions struct {
	// Limit caps the number of digits kept; 0 means no limit.
	Limit int
	// Strict rejects any rune other than digits, whitespace, '.', ',' and '_'.
	Strict bool
}

// Parse extracts the decimal digits of text in order. Separators ('.', ',',
// '_' and whitespace) are skipped; other runes are skipped too unless
// opts.Strict is set.
func Parse(text string, opts ParseOptions) (Sequence, error) {
	seq := make(Sequence, 0, len(text))
	for i, r := range text {
		if opts.Limit > 0 && len(seq) >= opts.Limit {
			break
		}
		switch {
		case r >= '0' && r <= '9':
			seq = append(seq, uint8(r-'0'))
		case isSeparator(r):
		case opts.Strict:
			return nil, fmt.Errorf("Parse: %q at byte %d: %w", r, i, ErrForeignRune)
		}
	}

	return seq, nil
}

// ReadFrom parses everything readable from r.
func ReadFrom(r io.Reader, opts ParseOptions) (Sequence, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ReadFrom: %w", err)
	}

	return Parse(string(data), opts)
}

// ReadFile parses the file at path.
func ReadFile(path string, opts ParseOptions) (Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	return ReadFrom(f, opts)
}

func isSeparator(r rune) bool {
	return r == '.' || r == ',' || r == '_' || unicode.IsSpace(r) || r == '\uFEFF'
}
