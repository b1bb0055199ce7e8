package cmd

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	journal "github.com/etnz/fieldjournal"
	"github.com/etnz/fieldjournal/renderer"
)

// listFlag is a comma separated list flag.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }
func (l *listFlag) Set(s string) error {
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*l = append(*l, v)
		}
	}
	return nil
}

type goalLink struct {
	goal     string
	progress journal.Progress
}

// linksFlag is a repeatable <goal-id>=<progress> flag.
type linksFlag []goalLink

func (l *linksFlag) String() string {
	var res []string
	for _, link := range *l {
		res = append(res, link.goal+"="+link.progress.String())
	}
	return strings.Join(res, ",")
}

func (l *linksFlag) Set(s string) error {
	goal, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("invalid goal link %q, want <goal-id>=<progress>", s)
	}
	p, err := journal.ParseProgress(value)
	if err != nil {
		return err
	}
	*l = append(*l, goalLink{strings.TrimSpace(goal), p})
	return nil
}

type addCmd struct {
	date           string
	title          string
	reflectionFile string
	skills         string
	deontology     string
	dimensions     string
	feedback       string
	attach         string
	tags           listFlag
	competencies   listFlag
	bibliography   listFlag
	goals          linksFlag
	sentiment      bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an entry to the journal" }
func (*addCmd) Usage() string {
	return `fj add -title <title> [-date <date>] [<options>] [<reflection>...]

  Adds an entry to the journal. The reflection is the rest of the command
  line, or the content of -reflection-file ("-" reads stdin).

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "0d", "Date of the entry (YYYY-MM-DD or relative like -1d)")
	f.StringVar(&c.title, "title", "", "Title of the entry")
	f.StringVar(&c.reflectionFile, "reflection-file", "", "Read the reflection (markdown) from a file")
	f.StringVar(&c.skills, "skills", "", "Skills developed or observed")
	f.StringVar(&c.deontology, "deontology", "", "Deontology and ethos elements")
	f.StringVar(&c.dimensions, "dimensions", "", "Pedagogical dimensions involved")
	f.StringVar(&c.feedback, "feedback", "", "Supervisor feedback")
	f.StringVar(&c.attach, "attach", "", "File to attach to the entry")
	f.Var(&c.tags, "tags", "Comma separated tags")
	f.Var(&c.competencies, "competencies", "Comma separated competency codes")
	f.Var(&c.bibliography, "bib", "Comma separated bibliography references")
	f.Var(&c.goals, "goal", "Goal contribution as <goal-id>=<progress>, can be repeated")
	f.BoolVar(&c.sentiment, "sentiment", false, "Analyze the sentiment of the entry with Gemini")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := journal.ParseDate(c.date)
	if err != nil {
		return fail(err, "invalid date")
	}
	if strings.TrimSpace(c.title) == "" {
		fmt.Fprintln(os.Stderr, "Error: -title is required")
		return subcommands.ExitUsageError
	}
	reflection, err := c.reflection(f.Args())
	if err != nil {
		return fail(err, "cannot read the reflection")
	}

	entries, goals, err := loadAll()
	if err != nil {
		return fail(err, "cannot load the journal")
	}
	profile, err := LoadProfile()
	if err != nil {
		return fail(err, "cannot load the profile")
	}

	e := journal.Entry{
		ID:                 journal.NewEntryID(),
		Date:               on,
		Title:              strings.TrimSpace(c.title),
		Reflection:         reflection,
		Skills:             c.skills,
		Deontology:         c.deontology,
		Dimensions:         c.dimensions,
		SupervisorFeedback: c.feedback,
		Tags:               journal.NormalizeTags(c.tags),
		Competencies:       journal.NormalizeCompetencies(c.competencies),
		LinkedBibliography: c.bibliography,
	}
	for _, code := range e.Competencies {
		if _, ok := profile.Vocabulary.Competency(code); !ok {
			logger.WithField("competency", code).Warn("unknown competency, it will not be counted")
		}
	}
	for _, link := range c.goals {
		g, err := resolveGoal(goals, link.goal)
		if err != nil {
			return fail(err, "invalid goal link")
		}
		e.LinkedGoals = append(e.LinkedGoals, journal.LinkedGoal{GoalID: g.ID, Progress: link.progress})
	}
	if c.attach != "" {
		if e.Attachment, err = readAttachment(c.attach); err != nil {
			return fail(err, "cannot attach the file")
		}
	}
	if c.sentiment {
		e.Sentiment = analyzeSentiment(ctx, e)
	}

	entries = append(entries, e)
	if err := saveAll(entries, goals, false); err != nil {
		return fail(err, "cannot save the journal")
	}
	logger.WithField("entry", e.ID).Debug("entry added")
	fmt.Fprintln(out, e.ID)
	return subcommands.ExitSuccess
}

func (c *addCmd) reflection(args []string) (string, error) {
	switch c.reflectionFile {
	case "":
		return strings.Join(args, " "), nil
	case "-":
		content, err := io.ReadAll(os.Stdin)
		return string(content), err
	}
	content, err := os.ReadFile(c.reflectionFile)
	return string(content), err
}

// readAttachment inlines a file as a data URL.
func readAttachment(filename string) (*journal.Attachment, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	mimeType := mime.TypeByExtension(filepath.Ext(filename))
	if mimeType == "" {
		mimeType = http.DetectContentType(content)
	}
	mimeType, _, _ = strings.Cut(mimeType, ";")
	return &journal.Attachment{
		Name: filepath.Base(filename),
		Type: mimeType,
		Data: "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(content),
	}, nil
}

// analyzeSentiment returns the sentiment of an entry, or "" when it is not
// available.
func analyzeSentiment(ctx context.Context, e journal.Entry) string {
	a, err := newAssistant(ctx)
	if err != nil {
		logger.WithError(err).Debug("assistant unavailable")
	}
	tag, err := a.Sentiment(ctx, e)
	if err != nil {
		logger.WithError(err).Warn("no sentiment analysis")
	}
	return tag
}

type listCmd struct {
	search string
	tag    string
	tags   bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list journal entries, newest first" }
func (*listCmd) Usage() string {
	return `fj list [-search <text>] [-tag <tag>] [-tags]

  Lists the entries whose title or reflection contains the search text
  (case insensitive) and that have the tag. With -tags, lists the distinct
  tags instead.

`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "search", "", "Only entries containing this text")
	f.StringVar(&c.tag, "tag", "", "Only entries with this tag")
	f.BoolVar(&c.tags, "tags", false, "List the distinct tags")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, err := DecodeJournal()
	if err != nil {
		return fail(err, "cannot load the journal")
	}
	if c.tags {
		for _, tag := range journal.AllTags(entries) {
			fmt.Fprintln(out, tag)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderEntries(journal.List(entries, journal.Filter{Search: c.search, Tag: c.tag})))
	return subcommands.ExitSuccess
}

type showCmd struct {
	outputDir string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show an entry, or export it as a markdown file" }
func (*showCmd) Usage() string {
	return `fj show [-o <dir>] <entry-id>

  Prints an entry as markdown. With -o, writes it into
  <dir>/<date>-<title>.md instead.

`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "", "Directory to export the entry into")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one entry id")
		return subcommands.ExitUsageError
	}
	entries, err := DecodeJournal()
	if err != nil {
		return fail(err, "cannot load the journal")
	}
	profile, err := LoadProfile()
	if err != nil {
		return fail(err, "cannot load the profile")
	}
	e, err := resolveEntry(entries, f.Arg(0))
	if err != nil {
		return fail(err, "cannot show the entry")
	}

	md := journal.EntryMarkdown(e, profile.Vocabulary)
	if c.outputDir == "" {
		printMarkdown(md)
		return subcommands.ExitSuccess
	}
	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		return fail(err, "cannot create the output directory")
	}
	name := filepath.Join(c.outputDir, journal.EntryFilename(e))
	if err := os.WriteFile(name, []byte(md), 0644); err != nil {
		return fail(err, "cannot export the entry")
	}
	fmt.Fprintln(out, name)
	return subcommands.ExitSuccess
}

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an entry" }
func (*deleteCmd) Usage() string {
	return `fj delete <entry-id>

  Deletes an entry. The progress of the goals it was linked to is recomputed.

`
}

func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (*deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one entry id")
		return subcommands.ExitUsageError
	}
	entries, goals, err := loadAll()
	if err != nil {
		return fail(err, "cannot load the journal")
	}
	e, err := resolveEntry(entries, f.Arg(0))
	if err != nil {
		return fail(err, "cannot delete the entry")
	}
	if entries, err = journal.RemoveEntry(entries, e.ID); err != nil {
		return fail(err, "cannot delete the entry")
	}
	if err := saveAll(entries, goals, false); err != nil {
		return fail(err, "cannot save the journal")
	}
	logger.WithField("entry", e.ID).Info("entry deleted")
	return subcommands.ExitSuccess
}

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the journal and goals files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fj fmt

  Validates the journal and goals files, sorts the entries by date,
  normalizes tags and competencies, recomputes the goal progress, and writes
  both files back in a canonical JSONL format.

`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, goals, err := loadAll()
	if err != nil {
		return fail(err, "cannot load the journal")
	}
	entries = journal.Chronological(entries)
	for i := range entries {
		entries[i].Tags = journal.NormalizeTags(entries[i].Tags)
		entries[i].Competencies = journal.NormalizeCompetencies(entries[i].Competencies)
		for _, l := range entries[i].LinkedGoals {
			if _, err := journal.FindGoal(goals, l.GoalID); err != nil {
				logger.WithFields(logrus.Fields{"entry": entries[i].ID, "goal": l.GoalID}).Warn("link to an unknown goal")
			}
		}
	}
	if err := saveAll(entries, goals, true); err != nil {
		return fail(err, "cannot save the journal")
	}
	logger.WithField("entries", len(entries)).Info("journal formatted")
	return subcommands.ExitSuccess
}
