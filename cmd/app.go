// Package cmd implements the CLI application to manage a field journal.
package cmd

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	journal "github.com/etnz/fieldjournal"
	"github.com/etnz/fieldjournal/export"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "journal")
	c.Register(&listCmd{}, "journal")
	c.Register(&showCmd{}, "journal")
	c.Register(&deleteCmd{}, "journal")
	c.Register(&fmtCmd{}, "journal")

	c.Register(&addGoalCmd{}, "goals")
	c.Register(&deleteGoalCmd{}, "goals")
	c.Register(&linkCmd{}, "goals")
	c.Register(&goalsCmd{}, "goals")

	c.Register(&dashboardCmd{}, "reports")
	c.Register(&progressCmd{}, "reports")
	c.Register(&portfolioCmd{}, "reports")

	c.Register(&importCmd{}, "backup")

	c.Register(&reflectCmd{}, "assistant")
	c.Register(&sentimentCmd{}, "assistant")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	journalFile = flag.String("journal-file", "journal.jsonl", "Path to the journal file containing entries (JSONL format)")
	goalsFile   = flag.String("goals-file", "goals.jsonl", "Path to the goals file (JSONL format)")
	configFile  = flag.String("config", "fj.yaml", "Path to the profile file: owner name and vocabularies (YAML format)")
	Verbose     = flag.Bool("v", false, "Enable debug logs")
)

// logger reports diagnostics on stderr. Results go to out.
var logger = newLogger()

// out is where commands print their results.
var out io.Writer = os.Stdout

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetupLogger applies the verbosity flag, it must be called after flag parsing.
func SetupLogger() {
	if *Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
}

// Profile is the content of the profile file.
type Profile struct {
	Owner      export.Owner
	Vocabulary *journal.Vocabulary
}

// LoadProfile reads the profile file. A missing file is the default profile.
func LoadProfile() (*Profile, error) {
	data, err := os.ReadFile(*configFile)
	if errors.Is(err, fs.ErrNotExist) {
		logger.WithField("file", *configFile).Debug("no profile file, using the default vocabulary")
		return &Profile{Vocabulary: journal.DefaultVocabulary()}, nil
	}
	if err != nil {
		return nil, err
	}

	var p struct {
		Owner export.Owner `yaml:"owner"`
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("invalid profile %q: %w", *configFile, err)
	}
	v, err := journal.DecodeVocabulary(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid profile %q: %w", *configFile, err)
	}
	return &Profile{Owner: p.Owner, Vocabulary: v}, nil
}

// DecodeJournal reads the journal file. A missing file is an empty journal.
func DecodeJournal() ([]journal.Entry, error) {
	f, err := os.Open(*journalFile)
	if errors.Is(err, fs.ErrNotExist) {
		logger.WithField("file", *journalFile).Warn("journal does not exist, starting with an empty journal")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return journal.DecodeEntries(*journalFile, f)
}

// DecodeGoals reads the goals file. A missing file is an empty list.
func DecodeGoals() ([]journal.Goal, error) {
	f, err := os.Open(*goalsFile)
	if errors.Is(err, fs.ErrNotExist) {
		logger.WithField("file", *goalsFile).Debug("no goals file")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return journal.DecodeGoals(*goalsFile, f)
}

// EncodeJournal replaces the journal file.
func EncodeJournal(entries []journal.Entry) error {
	return writeFile(*journalFile, func(w io.Writer) error { return journal.EncodeEntries(w, entries) })
}

// EncodeGoals replaces the goals file.
func EncodeGoals(goals []journal.Goal) error {
	return writeFile(*goalsFile, func(w io.Writer) error { return journal.EncodeGoals(w, goals) })
}

// writeFile writes a temporary file next to filename and renames it, so that
// filename is never left half written.
func writeFile(filename string, encode func(io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %q: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), filename)
}

// loadAll reads the journal and the goals.
func loadAll() ([]journal.Entry, []journal.Goal, error) {
	entries, err := DecodeJournal()
	if err != nil {
		return nil, nil, err
	}
	goals, err := DecodeGoals()
	if err != nil {
		return nil, nil, err
	}
	return entries, goals, nil
}

// saveAll writes the journal, recomputes the goal progress and writes the
// goals when they changed.
func saveAll(entries []journal.Entry, goals []journal.Goal, goalsModified bool) error {
	if err := EncodeJournal(entries); err != nil {
		return err
	}
	return updateGoals(entries, goals, goalsModified)
}

// updateGoals recomputes the goal progress and writes the goals file only if
// something changed.
func updateGoals(entries []journal.Entry, goals []journal.Goal, modified bool) error {
	recomputed := journal.RecomputeGoalProgress(entries, goals)
	if !modified && !journal.GoalsChanged(goals, recomputed) {
		logger.Debug("goals unchanged")
		return nil
	}
	for _, g := range recomputed {
		if g.Completed {
			logger.WithField("goal", g.ID).Debug("goal completed")
		}
	}
	return EncodeGoals(recomputed)
}

// resolveEntry finds an entry by id or by unambiguous id prefix.
func resolveEntry(entries []journal.Entry, id string) (journal.Entry, error) {
	return resolve(entries, id, func(e journal.Entry) string { return e.ID }, "entry", journal.ErrEntryNotFound)
}

// resolveGoal finds a goal by id or by unambiguous id prefix.
func resolveGoal(goals []journal.Goal, id string) (journal.Goal, error) {
	return resolve(goals, id, func(g journal.Goal) string { return g.ID }, "goal", journal.ErrGoalNotFound)
}

func resolve[T any](items []T, id string, idOf func(T) string, kind string, notFound error) (T, error) {
	var found []T
	for _, item := range items {
		switch itemID := idOf(item); {
		case itemID == id:
			return item, nil
		case id != "" && strings.HasPrefix(itemID, id):
			found = append(found, item)
		}
	}
	var zero T
	switch len(found) {
	case 0:
		return zero, fmt.Errorf("%s %q: %w", kind, id, notFound)
	case 1:
		return found[0], nil
	}
	return zero, fmt.Errorf("%s id %q is ambiguous, it matches %d items", kind, id, len(found))
}

// printMarkdown renders markdown for the terminal when out is a terminal,
// and prints it raw otherwise.
func printMarkdown(md string) {
	if f, ok := out.(*os.File); ok && isTerminal(f) {
		rendered, err := glamour.RenderWithEnvironmentConfig(md)
		if err == nil {
			fmt.Fprint(out, rendered)
			return
		}
		logger.WithError(err).Debug("cannot render markdown")
	}
	fmt.Fprint(out, md)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// fail logs the error and returns the failure status.
func fail(err error, msg string) subcommands.ExitStatus {
	logger.WithError(err).Error(msg)
	return subcommands.ExitFailure
}
