package cmd

import "testing"

func TestGuide(t *testing.T) {
	t.Run("main guide", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("guide")
		env.contains(out, "# textidx")
	})

	t.Run("topic", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("guide", "formats")
		env.contains(out, "## Documents file")
	})

	t.Run("unknown topic", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("guide", "nope")
		if err == nil {
			t.Error("Guide(nope) = nil, want error")
		}
		env.contains(out, "Available: clean, formats, validate")
	})
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version")
	env.contains(out, "Build Tag:")

	out = env.run("version", "-o", "json")
	env.contains(out, `"build_tag"`)
}
