package output

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	debugOnce   sync.Once
	debugLogger *log.Logger
)

// logFilePath returns the path to the debug log file.
// If GIT_STATE_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.git-state/logs/git-state.log
func logFilePath() string {
	if customPath := os.Getenv("GIT_STATE_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "git-state.log"
	}

	return filepath.Join(homeDir, ".git-state", "logs", "git-state.log")
}

// Debugf writes a debug line to the rotating log file. Logging is off unless
// GIT_STATE_DEBUG or GIT_STATE_LOG_FILE is set; hook invocations run inside
// every commit, so the default is to stay quiet and touch no files.
func Debugf(format string, args ...interface{}) {
	debugOnce.Do(func() {
		if os.Getenv("GIT_STATE_DEBUG") == "" && os.Getenv("GIT_STATE_LOG_FILE") == "" {
			debugLogger = log.New(io.Discard, "", 0)
			return
		}
		debugLogger = log.New(&lumberjack.Logger{
			Filename:   logFilePath(),
			MaxSize:    5, // megabytes
			MaxBackups: 2,
		}, "", log.LstdFlags)
	})
	debugLogger.Printf(format, args...)
}
