// Package progress provides CLI progress indicators for long scans. Output
// goes to stderr to keep stdout clean for piping, and nothing is drawn
// unless stderr is a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// every is how many lines pass between redraws. Index files run to
// millions of lines; redrawing per line would dominate the scan.
const every = 100_000

// Spinner shows that a scan is still moving. It counts lines visited, not
// lines kept or dropped.
type Spinner struct {
	w       io.Writer
	label   string
	lines   int
	frame   int
	isTTY   bool
	frames  []string
	running bool
	width   int // columns used by the last draw
}

// NewSpinner creates a spinner that writes to stderr.
func NewSpinner(label string) *Spinner {
	return newSpinner(os.Stderr, label, term.IsTerminal(int(os.Stderr.Fd())))
}

func newSpinner(w io.Writer, label string, isTTY bool) *Spinner {
	return &Spinner{
		w:      w,
		label:  label,
		isTTY:  isTTY,
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start displays the spinner.
func (s *Spinner) Start() {
	if !s.isTTY {
		return
	}
	s.running = true
	s.draw(fmt.Sprintf("%s %s...", s.frames[0], s.label))
}

// Line records one visited line and redraws every so often.
// Pass it as scan.Options.Progress.
func (s *Spinner) Line() {
	s.lines++
	if !s.isTTY || !s.running || s.lines%every != 0 {
		return
	}
	s.frame = (s.frame + 1) % len(s.frames)
	s.draw(fmt.Sprintf("%s %s... %d lines", s.frames[s.frame], s.label, s.lines))
}

// Clear blanks the spinner line so other output can be written to the
// terminal. The next redraw brings the spinner back.
func (s *Spinner) Clear() {
	if !s.isTTY || !s.running || s.width == 0 {
		return
	}
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
	s.width = 0
}

// Stop clears the spinner line.
func (s *Spinner) Stop() {
	s.Clear()
	s.running = false
}

func (s *Spinner) draw(text string) {
	fmt.Fprintf(s.w, "\r%s", text)
	s.width = max(s.width, utf8.RuneCountInString(text))
}
