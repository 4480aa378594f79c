package git

import (
	"context"
)

// Default commit message prefix delimiters, overridable via git config.
const (
	DefaultLeftDelim  = "["
	DefaultRightDelim = "]"
)

// Git config keys for the display prefix delimiters
const (
	leftDelimKey  = "state.delim.left"
	rightDelimKey = "state.delim.right"
)

// ReadConfig reads a single git config value. A missing key is reported as
// not-ok, not as an error (git config exits non-zero for unset keys).
func ReadConfig(ctx context.Context, key string) (string, bool) {
	value, err := RunGitCommandWithContext(ctx, "config", "--get", key)
	if err != nil {
		return "", false
	}
	return value, true
}

// GetDelimiters returns the configured display prefix delimiters,
// falling back to the defaults for unset keys.
func GetDelimiters(ctx context.Context) (left, right string) {
	left, ok := ReadConfig(ctx, leftDelimKey)
	if !ok {
		left = DefaultLeftDelim
	}
	right, ok = ReadConfig(ctx, rightDelimKey)
	if !ok {
		right = DefaultRightDelim
	}
	return left, right
}
