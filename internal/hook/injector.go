package hook

import (
	"fmt"
	"os"
	"strings"

	"gitstate.dev/gitstate/internal/state"
)

// Injector rewrites an in-progress commit message with the current branch's
// display prefix. It runs at commit time, invoked by the installed hook
// snippet, once per commit attempt.
type Injector struct {
	store      *state.Store
	leftDelim  string
	rightDelim string
}

// NewInjector creates an Injector reading from store and wrapping state text
// in the given delimiters.
func NewInjector(store *state.Store, leftDelim, rightDelim string) *Injector {
	return &Injector{
		store:      store,
		leftDelim:  leftDelim,
		rightDelim: rightDelim,
	}
}

// Prefix returns the display prefix for a state text, including the
// trailing separator space.
func (j *Injector) Prefix(text string) string {
	return j.leftDelim + text + j.rightDelim + " "
}

// Inject prepends the branch's display prefix to the commit message file at
// msgPath. The message is left untouched when the branch has no state or
// when the prefix already occurs in the message (amend and re-edit flows).
func (j *Injector) Inject(msgPath, branch string) error {
	text, found, err := j.store.Get(branch)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	text = strings.TrimRight(text, "\r\n")

	message, err := os.ReadFile(msgPath)
	if err != nil {
		return fmt.Errorf("failed to read commit message: %w", err)
	}

	prefix := j.Prefix(text)
	if strings.Contains(string(message), prefix) {
		return nil
	}

	rewritten := append([]byte(prefix), message...)
	if err := os.WriteFile(msgPath, rewritten, 0o644); err != nil {
		return fmt.Errorf("failed to rewrite commit message: %w", err)
	}
	return nil
}
