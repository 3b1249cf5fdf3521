// fields.go implements tab field counting for the field-count contract
// shared by words and documents files.

package validate

import "strings"

// StripEOL removes a single trailing "\n", and the "\r" before it if any.
// A lone trailing "\r" without "\n" is left alone.
func StripEOL(line string) string {
	if s, ok := strings.CutSuffix(line, "\n"); ok {
		return strings.TrimSuffix(s, "\r")
	}
	return line
}

// IsEmpty reports whether line has no characters once its terminator is
// stripped.
func IsEmpty(line string) bool {
	return StripEOL(line) == ""
}

// Fields returns the number of tab-separated fields in line. A line with k
// tabs has k+1 fields. The empty line returns 0 rather than 1; callers that
// distinguish empty lines should check IsEmpty first.
func Fields(line string) int {
	s := StripEOL(line)
	if s == "" {
		return 0
	}
	return strings.Count(s, "\t") + 1
}
