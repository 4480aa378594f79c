// Package cli wires the git-state command surface: setting, querying and
// clearing the current branch's state, plus the hidden commit-time
// injection path invoked by the installed hook.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gitstateerrors "gitstate.dev/gitstate/internal/errors"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var clearState bool
	var prepareMsgPath string

	rootCmd := &cobra.Command{
		Use:   "git-state [text...]",
		Short: "Attach a state label to the current branch",
		Long: `git-state attaches a short state label (a ticket number, a WIP marker)
to the branch you are on and prepends it to every commit message authored
while that branch stays checked out.

With no arguments, prints the current branch's state. With arguments, sets
the state to the arguments joined by spaces; the single argument "-" reuses
the branch's previous state. --clear removes the state again.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			if prepareMsgPath != "" {
				return runInject(cmd.Context(), prepareMsgPath)
			}
			return runState(cmd, clearState, args)
		},
	}

	rootCmd.Flags().BoolVar(&clearState, "clear", false, "remove the current branch's state")
	rootCmd.Flags().StringVar(&prepareMsgPath, "prepare-commit-msg", "", "")
	_ = rootCmd.Flags().MarkHidden("prepare-commit-msg")

	// Unrecognized options are usage errors, reported via a distinct exit status
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return gitstateerrors.NewUsageError("%v", err)
	})

	return rootCmd
}
