package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	gitstateerrors "gitstate.dev/gitstate/internal/errors"
	"gitstate.dev/gitstate/internal/git"
	"gitstate.dev/gitstate/testhelpers"
)

func TestCommandRunnerRunsInWorkingDir(t *testing.T) {
	repo, err := testhelpers.NewGitRepo(t.TempDir())
	require.NoError(t, err)

	runner := git.NewCommandRunner(repo.Dir)
	out, err := runner.Run(context.Background(), "rev-parse", "--is-inside-work-tree")
	require.NoError(t, err)
	require.Equal(t, "true", out)
}

func TestCommandRunnerReportsTypedError(t *testing.T) {
	runner := git.NewCommandRunner(t.TempDir())

	_, err := runner.Run(context.Background(), "rev-parse", "--git-dir")
	require.Error(t, err)

	var cmdErr *gitstateerrors.GitCommandError
	require.ErrorAs(t, err, &cmdErr)
	require.Equal(t, "git", cmdErr.Command)
	require.NotEmpty(t, cmdErr.Stderr)
}
