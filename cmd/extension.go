package cmd

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Environment of extensions, set from the global flags.
const (
	EnvJournalFile = "FJ_JOURNAL_FILE"
	EnvGoalsFile   = "FJ_GOALS_FILE"
	EnvConfig      = "FJ_CONFIG"
	EnvVerbose     = "FJ_VERBOSE"
)

// RunExtension attempts to find and execute an external fj-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "fj-" + subcommand
	log := logger.WithField("extension", name)

	lp, err := exec.LookPath(name)
	if err != nil {
		log.WithError(err).Debug("extension not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		log.WithError(err).Error("cannot execute extension")
		return true, 1
	}
	return true, 0
}

// extensionEnv passes the global flags to extensions, with absolute paths.
func extensionEnv() []string {
	return []string{
		EnvJournalFile + "=" + absPath(*journalFile),
		EnvGoalsFile + "=" + absPath(*goalsFile),
		EnvConfig + "=" + absPath(*configFile),
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
	}
}

func absPath(name string) string {
	abs, err := filepath.Abs(name)
	if err != nil {
		logger.WithFields(logrus.Fields{"file": name}).WithError(err).Debug("cannot make path absolute")
		return name
	}
	return abs
}
