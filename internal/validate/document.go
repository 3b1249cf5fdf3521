// document.go implements the documents-format line contract.
//
// Only the first tab separates identifier from text. Later tabs belong to
// the text, so "7\ta\tb" is document 7 with text "a\tb".

package validate

import (
	"fmt"
	"strings"
)

// Document is a parsed documents-format line. It lives only as long as the
// scan that produced it.
type Document struct {
	ID   string
	Text string
}

// ParseDocument splits a documents line into its identifier and text.
//
// Validation rules:
//   - The line must contain a tab (otherwise ErrNoTab)
//   - The identifier must be one or more ASCII digits 0-9 (otherwise ErrInvalidID)
//   - The text must be non-empty after trimming whitespace (otherwise ErrEmptyText)
//
// Note: the identifier is kept as written. Leading zeros are accepted and no
// numeric range is checked.
func ParseDocument(line string) (Document, error) {
	id, text, ok := strings.Cut(StripEOL(line), "\t")
	if !ok {
		return Document{}, ErrNoTab
	}
	if !isDigits(id) {
		return Document{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	if strings.TrimSpace(text) == "" {
		return Document{}, fmt.Errorf("%w: document %s", ErrEmptyText, id)
	}
	return Document{ID: id, Text: text}, nil
}

// DocumentLine reports whether line is a valid documents-format line.
func DocumentLine(line string) bool {
	_, err := ParseDocument(line)
	return err == nil
}

// isDigits reports whether s is a non-empty run of ASCII decimal digits.
// Signs, whitespace and non-ASCII digits are all rejected.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
