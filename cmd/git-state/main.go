package main

import (
	"os"

	"gitstate.dev/gitstate/internal/cli"
	gitstateerrors "gitstate.dev/gitstate/internal/errors"
	"gitstate.dev/gitstate/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		if !gitstateerrors.IsSilent(err) {
			output.NewSplog().Error("%v", err)
		}
		os.Exit(gitstateerrors.ExitCode(err))
	}
}
