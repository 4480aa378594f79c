package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	gitstateerrors "gitstate.dev/gitstate/internal/errors"
)

// GetRepoRoot returns the root directory of the Git repository
func GetRepoRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	// Use go-git to find the repository
	repo, err := gogit.PlainOpenWithOptions(wd, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", gitstateerrors.ErrNotInRepository, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}

// GetCurrentBranch returns the short name of the currently checked-out branch.
// A detached HEAD is reported as ErrNotOnBranch. HEAD is read without
// resolving it, so an unborn branch (a fresh repository before its first
// commit) still reports its name.
func GetCurrentBranch() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(wd, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", gitstateerrors.ErrNotInRepository, err)
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}

	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return "", gitstateerrors.ErrNotOnBranch
	}

	return head.Target().Short(), nil
}

// GetGitDir returns the absolute path of the repository's .git directory.
// Worktrees and submodules are resolved by git itself.
func GetGitDir(ctx context.Context) (string, error) {
	gitDir, err := RunGitCommandWithContext(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", fmt.Errorf("%w: %v", gitstateerrors.ErrNotInRepository, err)
	}
	return gitDir, nil
}

// GetHooksDir returns the directory git resolves hooks from: core.hooksPath
// when configured, otherwise <git-dir>/hooks.
func GetHooksDir(ctx context.Context, gitDir string) string {
	hooksPath, ok := ReadConfig(ctx, "core.hooksPath")
	if !ok || hooksPath == "" {
		return filepath.Join(gitDir, "hooks")
	}
	if !filepath.IsAbs(hooksPath) {
		// Relative core.hooksPath is resolved against the worktree root
		if root, err := GetRepoRoot(); err == nil {
			return filepath.Join(root, hooksPath)
		}
	}
	return hooksPath
}
