package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	journal "github.com/etnz/fieldjournal"
)

type importCmd struct {
	entriesPath string
	goalsPath   string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a JSON backup of the web application" }
func (*importCmd) Usage() string {
	return `fj import [-entries <jsonpath>] [-goals <jsonpath>] <backup.json>

  Imports entries and goals from a JSON document. Imported items replace
  the items with the same id, the others are appended.

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.entriesPath, "entries", journal.BackupEntriesPath, "JSONPath of the entries in the backup")
	f.StringVar(&c.goalsPath, "goals", journal.BackupGoalsPath, "JSONPath of the goals in the backup")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one backup file")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		return fail(err, "cannot open the backup")
	}
	defer file.Close()
	backup, err := journal.ImportBackup(file, c.entriesPath, c.goalsPath)
	if err != nil {
		return fail(err, "cannot import the backup")
	}

	entries, goals, err := loadAll()
	if err != nil {
		return fail(err, "cannot load the journal")
	}
	entries = merge(entries, backup.Entries, func(e journal.Entry) string { return e.ID })
	goals = merge(goals, backup.Goals, func(g journal.Goal) string { return g.ID })
	if err := saveAll(entries, goals, true); err != nil {
		return fail(err, "cannot save the journal")
	}
	logger.WithFields(logrus.Fields{"entries": len(backup.Entries), "goals": len(backup.Goals)}).Info("backup imported")
	return subcommands.ExitSuccess
}

// merge replaces the items of base with the imported ones of same id and
// appends the others.
func merge[T any](base, imported []T, idOf func(T) string) []T {
	index := make(map[string]int, len(base))
	for i, item := range base {
		index[idOf(item)] = i
	}
	for _, item := range imported {
		if i, ok := index[idOf(item)]; ok {
			base[i] = item
			continue
		}
		index[idOf(item)] = len(base)
		base = append(base, item)
	}
	return base
}
