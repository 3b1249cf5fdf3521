// Package log provides the audit trail for textidx runs.
// Entries are stored in ~/.textidx/log/textidx-log.db and record which
// command ran against which files, when, and whether it succeeded.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("cli:clean", "clean").
//		Author(author).
//		Input(in).
//		Output(out).
//		Write(err)
//
//	log.Event("cli:validate", "validate").
//		Input(words).
//		Detail("empty", nEmpty).
//		Detail("malformed", nMalformed).
//		Write(err)
//
// The source follows "cli:{command}" for CLI commands and "mcp:{tool}" for
// MCP tools.
//
// Clean runs are logged per run only. Dropped lines never appear here.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "cli:clean", "mcp:textidx_validate"
	Author string // who ran it
	Action string // verb: clean, validate, config, etc.
	Input  string // file read
	Output string // file written, if any

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether the run succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional run-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write].
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who ran the operation.
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Input sets the file the operation read.
func (b *Builder) Input(path string) *Builder {
	b.entry.Input = path
	return b
}

// Output sets the file the operation wrote.
func (b *Builder) Output(path string) *Builder {
	b.entry.Output = path
	return b
}

// Detail adds a key-value pair to the entry's detail map.
// Can be called multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write records the entry, deriving success/failure from err.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent entries.
// The dir should be the absolute working directory of the run.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
