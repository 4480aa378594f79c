package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	gitstateerrors "gitstate.dev/gitstate/internal/errors"
	"gitstate.dev/gitstate/internal/git"
	"gitstate.dev/gitstate/internal/hook"
	"gitstate.dev/gitstate/internal/output"
	"gitstate.dev/gitstate/internal/state"
)

// reusePrevious is the sentinel text meaning "set the state back to the
// branch's previous (stale) value"
const reusePrevious = "-"

// runState handles the user-facing command surface: query, set and clear.
func runState(cmd *cobra.Command, clearState bool, args []string) error {
	ctx := cmd.Context()

	gitDir, err := git.GetGitDir(ctx)
	if err != nil {
		return err
	}
	branch, err := git.GetCurrentBranch()
	if err != nil {
		return err
	}

	// Every invocation makes sure the hook is in place before doing
	// anything else; a repository where commits silently lose their
	// prefix is worse than a failed command.
	installer := hook.NewInstaller(gitDir, git.GetHooksDir(ctx, gitDir))
	if err := installer.EnsureInstalled(); err != nil {
		return err
	}

	store := state.New(filepath.Join(gitDir, state.FileName))

	switch {
	case clearState:
		if len(args) > 0 {
			return gitstateerrors.NewUsageError("--clear takes no arguments")
		}
		output.Debugf("clearing state for branch %q", branch)
		return store.Clear(branch)

	case len(args) == 0:
		text, found, err := store.Get(branch)
		if err != nil {
			return err
		}
		if !found {
			return gitstateerrors.ErrStateNotSet
		}
		splog := output.NewSplogWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr())
		splog.Info("%s", text)
		return nil

	default:
		text := strings.Join(args, " ")
		if text == reusePrevious {
			stale, found, err := store.GetStale(branch)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%w recorded for branch %s", gitstateerrors.ErrNoStaleState, branch)
			}
			text = stale
		}
		output.Debugf("setting state for branch %q to %q", branch, text)
		return store.Set(branch, text)
	}
}
