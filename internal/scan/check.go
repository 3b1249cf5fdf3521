// check.go implements the reporting pass used by validate.
//
// An empty line gets exactly one report, as empty, and is never also
// reported as malformed. That holds even when the minimum is 1.

package scan

import (
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/textidx/internal/validate"
)

// Kind classifies an anomaly.
type Kind string

const (
	KindEmpty     Kind = "empty"
	KindMalformed Kind = "malformed"
)

// Anomaly is a line that failed the field-count contract. Anomalies are
// observations: they never stop a scan.
type Anomaly struct {
	Kind    Kind   `json:"kind"`
	Path    string `json:"path"`
	Line    int    `json:"line"`              // 1-indexed
	Content string `json:"content,omitempty"` // malformed only, terminator stripped
}

// String formats the anomaly as printed by the validate command.
func (a Anomaly) String() string {
	if a.Kind == KindEmpty {
		return fmt.Sprintf("Empty line at %s:%d", a.Path, a.Line)
	}
	return fmt.Sprintf("Malformed line at %s:%d: %s", a.Path, a.Line, a.Content)
}

// Check reads r and calls report for every empty line and every line with
// fewer than minFields tab-separated fields. path is only used to label
// anomalies.
func Check(r io.Reader, path string, minFields int, report func(Anomaly), opts Options) error {
	if minFields < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidMinFields, minFields)
	}
	return lines(r, opts, func(n int, raw []byte) error {
		if validate.IsEmpty(string(raw)) {
			report(Anomaly{Kind: KindEmpty, Path: path, Line: n})
			return nil
		}
		line := validate.StripEOL(string(raw))
		if validate.Fields(line) < minFields {
			report(Anomaly{Kind: KindMalformed, Path: path, Line: n, Content: line})
		}
		return nil
	})
}

// CheckFile opens path and runs Check over it.
func CheckFile(path string, minFields int, report func(Anomaly), opts Options) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if err := Check(f, path, minFields, report, opts); err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	return nil
}

// Collect returns a report func that appends to dst.
func Collect(dst *[]Anomaly) func(Anomaly) {
	return func(a Anomaly) { *dst = append(*dst, a) }
}
