// The cmd/ package tests build the textidx binary once and run it against
// files in a temp directory, exercising argument handling, config loading,
// the scan passes and output formatting together. HOME points at a temp
// directory so the audit log and global config never touch the real user.

package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the textidx binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "textidx-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "textidx"
		if os.PathSeparator == '\\' {
			binaryName = "textidx.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Project root is the parent of cmd/
		projectRoot := filepath.Dir(mustGetwd())

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	home   string // HOME for the child process
	dir    string // working directory, inside home
	binary string
}

// newTestEnv creates an empty working directory under a fresh HOME.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	home := t.TempDir()
	dir := filepath.Join(home, "work")
	require.NoError(t, os.Mkdir(dir, 0755))
	return &testEnv{t: t, home: home, dir: dir, binary: buildBinary(t)}
}

// invoke runs textidx and returns stdout, stderr and the exit error.
func (e *testEnv) invoke(args ...string) (string, string, error) {
	e.t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.home, "USERPROFILE="+e.home)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// run executes textidx with the given args and returns stdout.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	stdout, stderr, err := e.invoke(args...)
	if err != nil {
		e.t.Fatalf("textidx %v failed: %v\nstdout: %s\nstderr: %s", args, err, stdout, stderr)
	}
	return stdout
}

// runErr executes textidx and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	stdout, stderr, err := e.invoke(args...)
	return stdout + stderr, err
}

// write creates a file in the working directory.
func (e *testEnv) write(name, content string) string {
	e.t.Helper()
	p := filepath.Join(e.dir, name)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(e.t, os.WriteFile(p, []byte(content), 0644))
	return name
}

// read returns the content of a file in the working directory.
func (e *testEnv) read(name string) string {
	e.t.Helper()
	b, err := os.ReadFile(filepath.Join(e.dir, name))
	require.NoError(e.t, err)
	return string(b)
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
