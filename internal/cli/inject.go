package cli

import (
	"context"
	"errors"
	"path/filepath"

	gitstateerrors "gitstate.dev/gitstate/internal/errors"
	"gitstate.dev/gitstate/internal/git"
	"gitstate.dev/gitstate/internal/hook"
	"gitstate.dev/gitstate/internal/output"
	"gitstate.dev/gitstate/internal/state"
)

// runInject is the commit-time path, entered via the hidden
// --prepare-commit-msg flag the installed hook snippet passes. It prepends
// the current branch's display prefix to the in-progress commit message.
func runInject(ctx context.Context, msgPath string) error {
	gitDir, err := git.GetGitDir(ctx)
	if err != nil {
		return err
	}

	branch, err := git.GetCurrentBranch()
	if err != nil {
		// Commits on a detached HEAD (rebase, cherry-pick) have no
		// branch state to inject; leave the message alone.
		if errors.Is(err, gitstateerrors.ErrNotOnBranch) {
			return nil
		}
		return err
	}

	left, right := git.GetDelimiters(ctx)
	store := state.New(filepath.Join(gitDir, state.FileName))
	injector := hook.NewInjector(store, left, right)

	output.Debugf("injecting state for branch %q into %s", branch, msgPath)
	return injector.Inject(msgPath, branch)
}
