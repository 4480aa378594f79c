// Package hook manages the prepare-commit-msg hook: one-time installation of
// the injection snippet and the commit-time message rewrite it triggers.
package hook

import (
	"fmt"
	"os"
	"path/filepath"

	gitstateerrors "gitstate.dev/gitstate/internal/errors"
)

// HookName is the git hook this tool participates in
const HookName = "prepare-commit-msg"

// MarkerName is the flag file inside the .git directory recording that the
// injection snippet has already been appended to the hook. Created once,
// never removed.
const MarkerName = "branch-state-hook"

const shebang = "#!/bin/sh\n"

// injectionSnippet is appended verbatim to the hook script. It calls back
// into this binary so the actual injection logic stays in Go, and always
// exits 0 so a commit is never aborted by it.
const injectionSnippet = `
# git-state: prepend the branch state to new commit messages
git-state --prepare-commit-msg "$1" || true
`

// Installer appends the injection snippet to the repository's
// prepare-commit-msg hook, exactly once per repository. It never rewrites
// hook content it did not add itself.
type Installer struct {
	gitDir   string
	hooksDir string
}

// NewInstaller creates an Installer for the given .git directory and hooks
// directory (which may differ when core.hooksPath is configured).
func NewInstaller(gitDir, hooksDir string) *Installer {
	return &Installer{gitDir: gitDir, hooksDir: hooksDir}
}

// HookPath returns the path of the managed hook script
func (i *Installer) HookPath() string {
	return filepath.Join(i.hooksDir, HookName)
}

// MarkerPath returns the path of the installation marker file
func (i *Installer) MarkerPath() string {
	return filepath.Join(i.gitDir, MarkerName)
}

// EnsureInstalled appends the injection snippet to the hook script unless
// the marker file says it already has been. The hook is created with a
// shebang and the executable bit if absent; pre-existing hook content is
// preserved. A failure leaves any partially-created hook in place; an
// empty executable hook is harmless residue.
func (i *Installer) EnsureInstalled() error {
	if _, err := os.Stat(i.MarkerPath()); err == nil {
		return nil
	}

	hookPath := i.HookPath()
	if err := os.MkdirAll(i.hooksDir, 0o755); err != nil {
		return gitstateerrors.NewInstallError(hookPath, err)
	}

	info, err := os.Stat(hookPath)
	switch {
	case os.IsNotExist(err):
		if err := os.WriteFile(hookPath, []byte(shebang), 0o755); err != nil {
			return gitstateerrors.NewInstallError(hookPath, err)
		}
		if err := os.Chmod(hookPath, 0o755); err != nil {
			return gitstateerrors.NewInstallError(hookPath, err)
		}
	case err != nil:
		return gitstateerrors.NewInstallError(hookPath, err)
	default:
		// Hooks created by other tools may have lost their executable
		// bit; git silently skips non-executable hooks. Add execute
		// where read is granted, keeping the user's mode otherwise.
		perm := info.Mode().Perm()
		if err := os.Chmod(hookPath, perm|(perm&0o444)>>2); err != nil {
			return gitstateerrors.NewInstallError(hookPath, err)
		}
	}

	f, err := os.OpenFile(hookPath, os.O_APPEND|os.O_WRONLY, 0o755)
	if err != nil {
		return gitstateerrors.NewInstallError(hookPath, err)
	}
	if _, err := f.WriteString(injectionSnippet); err != nil {
		f.Close()
		return gitstateerrors.NewInstallError(hookPath, err)
	}
	if err := f.Close(); err != nil {
		return gitstateerrors.NewInstallError(hookPath, err)
	}

	if err := os.WriteFile(i.MarkerPath(), []byte("installed\n"), 0o644); err != nil {
		return gitstateerrors.NewInstallError(hookPath, fmt.Errorf("failed to write marker: %w", err))
	}
	return nil
}
