package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	content, err := Get("")
	require.NoError(t, err)
	assert.Contains(t, content, "# textidx")

	content, err = Get("formats")
	require.NoError(t, err)
	assert.Contains(t, content, "Documents file")

	_, err = Get("missing")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	names, err := List()
	require.NoError(t, err)
	assert.Equal(t, []string{"clean", "formats", "validate"}, names)
}
