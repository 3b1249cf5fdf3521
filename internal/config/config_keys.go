// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go so that file stays about YAML structure and
// loading. The config command and the MCP server address settings by
// dotted string keys (e.g., "validate.words_fields").
//
// Pointers distinguish "not set" (nil) from an explicit value, so defaults
// apply only when the user has not chosen one.

package config

import (
	"fmt"
	"slices"
	"strconv"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name",
		"limits.max_line_length",
		"validate.words_fields", "validate.docs_fields",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "limits.max_line_length":
		return strconv.Itoa(c.MaxLineLength()), nil
	case "validate.words_fields":
		return strconv.Itoa(c.WordsFields()), nil
	case "validate.docs_fields":
		return strconv.Itoa(c.DocsFields()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "limits.max_line_length":
		n, err := parseBounded(key, value, MinMaxLineLength, MaxMaxLineLength)
		if err != nil {
			return err
		}
		c.Limits.MaxLineLength = &n
	case "validate.words_fields":
		n, err := parseBounded(key, value, MinFields, MaxFields)
		if err != nil {
			return err
		}
		c.Fields.WordsFields = &n
	case "validate.docs_fields":
		n, err := parseBounded(key, value, MinFields, MaxFields)
		if err != nil {
			return err
		}
		c.Fields.DocsFields = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func parseBounded(key, value string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < lo || n > hi {
		return 0, fmt.Errorf("%w: %s must be an integer between %d and %d", ErrInvalidValue, key, lo, hi)
	}
	return n, nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"author.name":            c.Author.Name,
		"limits.max_line_length": strconv.Itoa(c.MaxLineLength()),
		"validate.words_fields":  strconv.Itoa(c.WordsFields()),
		"validate.docs_fields":   strconv.Itoa(c.DocsFields()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "limits.max_line_length":
		return c.Limits.MaxLineLength != nil
	case "validate.words_fields":
		return c.Fields.WordsFields != nil
	case "validate.docs_fields":
		return c.Fields.DocsFields != nil
	default:
		return false
	}
}
