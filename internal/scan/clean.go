// clean.go implements the clean pass over a documents file.
//
// Invalid lines are dropped without a trace: nothing is reported, counted
// or logged for them. Callers get an error only for I/O failures.

package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/jpl-au/textidx/internal/validate"
)

// Clean copies every valid documents line from r to w, unchanged and in
// order, including its original terminator.
func Clean(r io.Reader, w io.Writer, opts Options) error {
	bw := bufio.NewWriter(w)
	err := lines(r, opts, func(_ int, line []byte) error {
		if !validate.DocumentLine(string(line)) {
			return nil
		}
		_, err := bw.Write(line)
		return err
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// CleanFile runs Clean from the file at in to the file at out. The output
// is created or truncated. Both files are closed on every return path.
func CleanFile(in, out string, opts Options) (err error) {
	src, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer src.Close()

	if err := checkDistinct(src, out); err != nil {
		return err
	}

	dst, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", closeErr)
		}
	}()

	if err := Clean(src, dst, opts); err != nil {
		return fmt.Errorf("cleaning %s: %w", in, err)
	}
	return nil
}

// checkDistinct refuses an output path that resolves to the open input,
// since creating it would truncate the data before it is read.
func checkDistinct(src *os.File, out string) error {
	outInfo, err := os.Stat(out)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking output: %w", err)
	}
	inInfo, err := src.Stat()
	if err != nil {
		return fmt.Errorf("checking input: %w", err)
	}
	if os.SameFile(inInfo, outInfo) {
		return fmt.Errorf("%w: %s", ErrSamePath, out)
	}
	return nil
}
