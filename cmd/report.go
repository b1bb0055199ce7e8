package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	journal "github.com/etnz/fieldjournal"
	"github.com/etnz/fieldjournal/export"
	"github.com/etnz/fieldjournal/renderer"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the journal statistics and tag cloud" }
func (*dashboardCmd) Usage() string {
	return `fj dashboard

  Displays the number of entries, the completed goals, the most used tags and
  an entry to reflect on again.

`
}

func (*dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (*dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, goals, err := loadAll()
	if err != nil {
		return fail(err, "cannot load the journal")
	}
	profile, err := LoadProfile()
	if err != nil {
		return fail(err, "cannot load the profile")
	}
	goals = journal.RecomputeGoalProgress(entries, goals)
	printMarkdown(renderer.RenderDashboard(renderer.NewDashboard(profile.Owner.Name, entries, goals, journal.RandomHighlight)))
	return subcommands.ExitSuccess
}

type progressCmd struct {
	outputDir string
}

func (*progressCmd) Name() string     { return "progress" }
func (*progressCmd) Synopsis() string { return "display the journal evolution, and write its charts" }
func (*progressCmd) Usage() string {
	return `fj progress [-o <dir>]

  Displays the entries per month and the competency usage. With -o, writes
  the bar, radar and heatmap charts as SVG files into the directory.

`
}

func (c *progressCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "", "Directory to write the SVG charts into")
}

func (c *progressCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, err := DecodeJournal()
	if err != nil {
		return fail(err, "cannot load the journal")
	}
	profile, err := LoadProfile()
	if err != nil {
		return fail(err, "cannot load the profile")
	}
	p := renderer.NewProgress(entries, profile.Vocabulary)

	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return fail(err, "cannot create the output directory")
		}
		for _, fig := range p.Figures {
			if fig.Drawing.IsEmpty() {
				logger.WithField("chart", fig.Name).Debug("no data, chart skipped")
				continue
			}
			name := filepath.Join(c.outputDir, fig.Name+".svg")
			if err := os.WriteFile(name, []byte(fig.Drawing.SVG()), 0644); err != nil {
				return fail(err, "cannot write the chart")
			}
			logger.WithField("file", name).Info("chart written")
		}
	}
	printMarkdown(renderer.RenderProgress(p))
	return subcommands.ExitSuccess
}

type portfolioCmd struct {
	format    string
	outputDir string
	search    string
	tag       string
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "export a selection of entries as a portfolio" }
func (*portfolioCmd) Usage() string {
	return `fj portfolio [-format html|md] [-o <dir>] [-search <text>] [-tag <tag>] [<entry-id>...]

  Exports the selected entries as a self-contained document, named
  portafolio-diario-de-campo-<date>.<ext>. Without ids, every entry matching
  -search and -tag is selected.

`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "html", "Document format: html or md")
	f.StringVar(&c.outputDir, "o", ".", "Directory to save the portfolio into")
	f.StringVar(&c.search, "search", "", "Only entries containing this text")
	f.StringVar(&c.tag, "tag", "", "Only entries with this tag")
}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	format, err := export.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
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

	selected := journal.List(entries, journal.Filter{Search: c.search, Tag: c.tag})
	if f.NArg() > 0 {
		var ids []string
		for _, id := range f.Args() {
			e, err := resolveEntry(entries, id)
			if err != nil {
				return fail(err, "invalid selection")
			}
			ids = append(ids, e.ID)
		}
		selected = journal.Select(selected, ids)
	}
	if len(selected) == 0 {
		logger.Warn("no entry selected, the portfolio has a cover only")
	}

	a := export.Assembler{Owner: profile.Owner, Vocabulary: profile.Vocabulary}
	artifact, err := a.Assemble(selected).Encode(format)
	if err != nil {
		return fail(err, "cannot encode the portfolio")
	}
	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		return fail(err, "cannot create the output directory")
	}
	name, err := export.DirSaver{Dir: c.outputDir}.Save(artifact)
	if err != nil {
		return fail(err, "cannot save the portfolio")
	}
	logger.WithFields(logrus.Fields{"file": name, "entries": len(selected)}).Debug("portfolio saved")
	fmt.Fprintln(out, name)
	return subcommands.ExitSuccess
}
