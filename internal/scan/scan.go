// Package scan drives single forward passes over text index files.
//
// A pass visits every line exactly once, in file order, numbering lines
// from 1. Two modes exist: Clean copies valid documents lines through to an
// output and silently drops the rest; Check reports empty and short lines
// without writing anything. Both are sequential and hold their file handles
// only for the duration of the pass.
package scan

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// DefaultMaxLineLength is used when Options.MaxLineLength is unset.
const DefaultMaxLineLength = 10 * 1024 * 1024 // 10 MB

var (
	// ErrInvalidMinFields is returned when a check is asked for fewer than
	// one field per line.
	ErrInvalidMinFields = errors.New("minimum field count must be at least 1")
	// ErrSamePath is returned when clean would truncate its own input.
	ErrSamePath = errors.New("input and output are the same file")
)

// Options configures a scan.
type Options struct {
	// MaxLineLength is the longest line accepted, terminator included
	// (0 = DefaultMaxLineLength). Longer lines abort the scan.
	MaxLineLength int

	// Progress, if set, is called once per line visited.
	Progress func()
}

// lines visits each line of r, terminator included, calling fn with the
// 1-based line number. A final line without a terminator is still visited.
// Iteration stops at the first error returned by fn.
func lines(r io.Reader, opts Options, fn func(n int, line []byte) error) error {
	maxLen := opts.MaxLineLength
	if maxLen <= 0 {
		maxLen = DefaultMaxLineLength
	}
	// One spare byte lets an unterminated final line of exactly maxLen
	// bytes reach EOF; the length check below enforces the real limit.
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, min(64*1024, maxLen+1)), maxLen+1)
	scanner.Split(scanLinesKeepEOL)

	n := 0
	for scanner.Scan() {
		n++
		if len(scanner.Bytes()) > maxLen {
			return fmt.Errorf("line %d: %w", n, bufio.ErrTooLong)
		}
		if opts.Progress != nil {
			opts.Progress()
		}
		if err := fn(n, scanner.Bytes()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// scanLinesKeepEOL is bufio.ScanLines without the terminator stripping, so
// clean can write lines back byte for byte.
func scanLinesKeepEOL(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
