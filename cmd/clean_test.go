package cmd

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const docs = "42\tHello world\n7\t   \nnotanid\tfoo\n100\tBar\n"

func TestClean(t *testing.T) {
	t.Run("drops invalid lines", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("docs.tsv", docs)

		out := env.run("clean", "docs.tsv", "clean.tsv")
		env.equals(out, "Cleaned docsfile written to clean.tsv")
		assert.Equal(t, "42\tHello world\n100\tBar\n", env.read("clean.tsv"))
	})

	t.Run("idempotent", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("docs.tsv", docs+"\n5\tfive\r\n6\tsix")

		env.run("clean", "docs.tsv", "once.tsv")
		env.run("clean", "once.tsv", "twice.tsv")
		assert.Equal(t, env.read("once.tsv"), env.read("twice.tsv"))
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("docs.tsv", docs)

		out := env.run("clean", "-o", "json", "docs.tsv", "clean.tsv")
		assert.JSONEq(t, `{"output":"clean.tsv"}`, out)
	})

	t.Run("nothing printed about dropped lines", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("docs.tsv", docs)

		out, err := env.runErr("clean", "docs.tsv", "clean.tsv")
		require.NoError(t, err)
		env.equals(out, "Cleaned docsfile written to clean.tsv")
	})

	t.Run("audit entry per run", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("docs.tsv", docs)
		env.run("clean", "docs.tsv", "clean.tsv")

		db, err := sql.Open("sqlite", filepath.Join(env.home, ".textidx", "log", "textidx-log.db"))
		require.NoError(t, err)
		defer db.Close()

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM log WHERE source = 'cli:clean'").Scan(&count))
		assert.Equal(t, 1, count)

		var input, output string
		var detail sql.NullString
		require.NoError(t, db.QueryRow("SELECT input, output, detail FROM log WHERE source = 'cli:clean'").
			Scan(&input, &output, &detail))
		assert.Equal(t, "docs.tsv", input)
		assert.Equal(t, "clean.tsv", output)
		assert.False(t, detail.Valid)
	})
}

func TestClean_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", []string{"clean"}},
		{"one arg", []string{"clean", "docs.tsv"}},
		{"three args", []string{"clean", "a", "b", "c"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			out, err := env.runErr(tc.args...)
			require.Error(t, err)
			env.contains(out, "Usage:")
			env.contains(out, "clean <input_docsfile> <output_docsfile>")
		})
	}

	t.Run("missing input", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("clean", "missing.tsv", "clean.tsv")
		require.Error(t, err)
		env.contains(out, "opening input")
		assert.NoFileExists(t, filepath.Join(env.dir, "clean.tsv"))
	})

	t.Run("missing input JSON", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("clean", "-o", "json", "missing.tsv", "clean.tsv")
		require.Error(t, err)
		env.contains(out, `"error"`)
	})

	t.Run("same file", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("docs.tsv", docs)

		_, err := env.runErr("clean", "docs.tsv", "docs.tsv")
		require.Error(t, err)
		assert.Equal(t, docs, env.read("docs.tsv"))
	})
}
