package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	journal "github.com/etnz/fieldjournal"
	"github.com/etnz/fieldjournal/prompt"
)

// newAssistant is the Gemini assistant factory, replaced in tests.
var newAssistant = prompt.New

type reflectCmd struct{}

func (*reflectCmd) Name() string     { return "reflect" }
func (*reflectCmd) Synopsis() string { return "ask Gemini for questions to deepen a reflection" }
func (*reflectCmd) Usage() string {
	return `fj reflect <entry-id>

  Asks Gemini for three or four open questions about an entry. Requires
  GEMINI_API_KEY or GOOGLE_API_KEY.

`
}

func (*reflectCmd) SetFlags(f *flag.FlagSet) {}

func (*reflectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, status := assistedEntry(f)
	if status != subcommands.ExitSuccess {
		return status
	}
	a, err := newAssistant(ctx)
	if err != nil {
		logger.WithError(err).Debug("assistant unavailable")
	}
	text, err := a.Reflect(ctx, e)
	if err != nil {
		logger.WithError(err).WithField("entry", e.ID).Debug("no reflection prompts")
	}
	printMarkdown(text + "\n")
	return subcommands.ExitSuccess
}

type sentimentCmd struct{}

func (*sentimentCmd) Name() string     { return "sentiment" }
func (*sentimentCmd) Synopsis() string { return "analyze and store the sentiment of an entry" }
func (*sentimentCmd) Usage() string {
	return `fj sentiment <entry-id>

  Asks Gemini for the overall sentiment of an entry and stores it in the
  entry. Requires GEMINI_API_KEY or GOOGLE_API_KEY.

`
}

func (*sentimentCmd) SetFlags(f *flag.FlagSet) {}

func (*sentimentCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, status := assistedEntry(f)
	if status != subcommands.ExitSuccess {
		return status
	}
	a, err := newAssistant(ctx)
	if err != nil {
		logger.WithError(err).Debug("assistant unavailable")
	}
	tag, err := a.Sentiment(ctx, e)
	if err != nil {
		// the journal is left untouched.
		logger.WithError(err).Warn("no sentiment analysis")
		fmt.Fprintln(out, prompt.Failed)
		return subcommands.ExitSuccess
	}

	entries, err := DecodeJournal()
	if err != nil {
		return fail(err, "cannot load the journal")
	}
	e.Sentiment = tag
	if entries, err = journal.ReplaceEntry(entries, e); err != nil {
		return fail(err, "cannot update the entry")
	}
	if err := EncodeJournal(entries); err != nil {
		return fail(err, "cannot save the journal")
	}
	fmt.Fprintln(out, tag)
	return subcommands.ExitSuccess
}

// assistedEntry resolves the single entry argument of assistant commands.
func assistedEntry(f *flag.FlagSet) (journal.Entry, subcommands.ExitStatus) {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one entry id")
		return journal.Entry{}, subcommands.ExitUsageError
	}
	entries, err := DecodeJournal()
	if err != nil {
		return journal.Entry{}, fail(err, "cannot load the journal")
	}
	e, err := resolveEntry(entries, f.Arg(0))
	if err != nil {
		return journal.Entry{}, fail(err, "unknown entry")
	}
	return e, subcommands.ExitSuccess
}
