package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		// Valid lines
		{"simple", "42\tHello world\n", true},
		{"no terminator", "42\tHello world", true},
		{"crlf", "42\tHello\r\n", true},
		{"extra tabs in text", "7\ta\tb\tc\n", true},
		{"leading zeros", "007\tbond\n", true},
		{"padded text", "1\t  x  \n", true},

		// No tab
		{"empty", "", false},
		{"newline only", "\n", false},
		{"no tab", "42 Hello\n", false},
		{"digits only", "42\n", false},

		// Bad identifier
		{"empty id", "\tHello\n", false},
		{"word id", "notanid\tfoo\n", false},
		{"negative id", "-1\tfoo\n", false},
		{"plus sign", "+1\tfoo\n", false},
		{"spaced id", " 1\tfoo\n", false},
		{"decimal id", "1.5\tfoo\n", false},
		{"full-width digits", "１２\tfoo\n", false},

		// Empty text
		{"empty text", "1\t\n", false},
		{"whitespace text", "7\t   \n", false},
		{"tab only text", "7\t\t\t\n", false},
		{"cr only text", "7\t\r\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DocumentLine(tt.line); got != tt.want {
				t.Errorf("DocumentLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseDocument(t *testing.T) {
	t.Run("splits on first tab", func(t *testing.T) {
		doc, err := ParseDocument("12\tfirst\tsecond\n")
		require.NoError(t, err)
		assert.Equal(t, "12", doc.ID)
		assert.Equal(t, "first\tsecond", doc.Text)
	})

	t.Run("keeps surrounding whitespace in text", func(t *testing.T) {
		doc, err := ParseDocument("3\t hi \n")
		require.NoError(t, err)
		assert.Equal(t, " hi ", doc.Text)
	})

	t.Run("sentinels", func(t *testing.T) {
		_, err := ParseDocument("nope\n")
		assert.ErrorIs(t, err, ErrNoTab)

		_, err = ParseDocument("x1\ttext\n")
		assert.ErrorIs(t, err, ErrInvalidID)

		_, err = ParseDocument("1\t \n")
		assert.ErrorIs(t, err, ErrEmptyText)
		assert.False(t, errors.Is(err, ErrInvalidID))
	})
}

func TestFields(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"", 0},
		{"\n", 0},
		{"\r\n", 0},
		{"a", 1},
		{"a\n", 1},
		{"a\tb\n", 2},
		{"a\tb\tc", 3},
		{"\t\t\n", 3},
		{"a\tb\t\n", 3},
	}

	for _, tt := range tests {
		if got := Fields(tt.line); got != tt.want {
			t.Errorf("Fields(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestStripEOL(t *testing.T) {
	assert.Equal(t, "a\tb", StripEOL("a\tb\n"))
	assert.Equal(t, "a\tb", StripEOL("a\tb\r\n"))
	assert.Equal(t, "a\tb\r", StripEOL("a\tb\r"))
	assert.Equal(t, "a\n", StripEOL("a\n\n"))
	assert.Equal(t, "", StripEOL("\n"))

	assert.True(t, IsEmpty("\n"))
	assert.True(t, IsEmpty(""))
	assert.False(t, IsEmpty(" \n"))
}
