package hook_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gitstate.dev/gitstate/internal/hook"
)

const snippetCall = `git-state --prepare-commit-msg "$1"`

func newInstaller(t *testing.T) *hook.Installer {
	t.Helper()
	gitDir := t.TempDir()
	return hook.NewInstaller(gitDir, filepath.Join(gitDir, "hooks"))
}

func TestEnsureInstalledCreatesHook(t *testing.T) {
	installer := newInstaller(t)

	require.NoError(t, installer.EnsureInstalled())

	data, err := os.ReadFile(installer.HookPath())
	require.NoError(t, err)
	content := string(data)
	require.True(t, strings.HasPrefix(content, "#!/bin/sh\n"))
	require.Contains(t, content, snippetCall)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(installer.HookPath())
		require.NoError(t, err)
		require.NotZero(t, info.Mode()&0o111, "hook must be executable")
	}

	_, err = os.Stat(installer.MarkerPath())
	require.NoError(t, err, "marker file must exist after install")
}

func TestEnsureInstalledIsIdempotent(t *testing.T) {
	installer := newInstaller(t)

	require.NoError(t, installer.EnsureInstalled())
	require.NoError(t, installer.EnsureInstalled())
	require.NoError(t, installer.EnsureInstalled())

	data, err := os.ReadFile(installer.HookPath())
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(data), snippetCall),
		"injection snippet must appear exactly once")
}

func TestEnsureInstalledPreservesExistingHook(t *testing.T) {
	installer := newInstaller(t)

	existing := "#!/bin/sh\necho 'user hook logic'\n"
	require.NoError(t, os.MkdirAll(filepath.Dir(installer.HookPath()), 0o755))
	require.NoError(t, os.WriteFile(installer.HookPath(), []byte(existing), 0o755))

	require.NoError(t, installer.EnsureInstalled())

	data, err := os.ReadFile(installer.HookPath())
	require.NoError(t, err)
	content := string(data)
	require.True(t, strings.HasPrefix(content, existing),
		"pre-existing hook content must be preserved and stay first")
	require.Contains(t, content, snippetCall)
}

func TestEnsureInstalledKeepsExistingHookMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful here")
	}

	installer := newInstaller(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(installer.HookPath()), 0o755))
	require.NoError(t, os.WriteFile(installer.HookPath(), []byte("#!/bin/sh\n"), 0o700))
	require.NoError(t, os.Chmod(installer.HookPath(), 0o700))

	require.NoError(t, installer.EnsureInstalled())

	info, err := os.Stat(installer.HookPath())
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o700), info.Mode().Perm(),
		"a private user hook must not be widened")
}

func TestEnsureInstalledRestoresExecuteBit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful here")
	}

	installer := newInstaller(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(installer.HookPath()), 0o755))
	require.NoError(t, os.WriteFile(installer.HookPath(), []byte("#!/bin/sh\n"), 0o600))
	require.NoError(t, os.Chmod(installer.HookPath(), 0o600))

	require.NoError(t, installer.EnsureInstalled())

	info, err := os.Stat(installer.HookPath())
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o700), info.Mode().Perm())
}

func TestEnsureInstalledRespectsMarkerOverHookContent(t *testing.T) {
	installer := newInstaller(t)

	// A pre-existing marker means no append, even if someone edited the
	// hook since.
	require.NoError(t, os.WriteFile(installer.MarkerPath(), []byte("installed\n"), 0o644))

	require.NoError(t, installer.EnsureInstalled())

	_, err := os.Stat(installer.HookPath())
	require.True(t, os.IsNotExist(err), "marker alone gates installation")
}

func TestEnsureInstalledFailsOnUnwritableHooksDir(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}

	gitDir := t.TempDir()
	hooksDir := filepath.Join(gitDir, "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0o555))
	t.Cleanup(func() { os.Chmod(hooksDir, 0o755) })

	installer := hook.NewInstaller(gitDir, hooksDir)
	require.Error(t, installer.EnsureInstalled())

	_, err := os.Stat(installer.MarkerPath())
	require.True(t, os.IsNotExist(err), "marker must not be written on failure")
}
