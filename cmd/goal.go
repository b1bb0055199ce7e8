package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	journal "github.com/etnz/fieldjournal"
	"github.com/etnz/fieldjournal/renderer"
)

type addGoalCmd struct{}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "add a professional goal" }
func (*addGoalCmd) Usage() string {
	return `fj add-goal <text>...

  Adds a goal. Its progress is derived from the entries linked to it.

`
}

func (*addGoalCmd) SetFlags(f *flag.FlagSet) {}

func (*addGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	text := strings.TrimSpace(strings.Join(f.Args(), " "))
	if text == "" {
		fmt.Fprintln(os.Stderr, "Error: the goal text is required")
		return subcommands.ExitUsageError
	}
	goals, err := DecodeGoals()
	if err != nil {
		return fail(err, "cannot load the goals")
	}
	g := journal.Goal{ID: journal.NewGoalID(), Text: text}
	if err := EncodeGoals(append(goals, g)); err != nil {
		return fail(err, "cannot save the goals")
	}
	fmt.Fprintln(out, g.ID)
	return subcommands.ExitSuccess
}

type deleteGoalCmd struct{}

func (*deleteGoalCmd) Name() string     { return "delete-goal" }
func (*deleteGoalCmd) Synopsis() string { return "delete a goal and every link to it" }
func (*deleteGoalCmd) Usage() string {
	return `fj delete-goal <goal-id>

  Deletes a goal and removes every entry contribution to it.

`
}

func (*deleteGoalCmd) SetFlags(f *flag.FlagSet) {}

func (*deleteGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one goal id")
		return subcommands.ExitUsageError
	}
	entries, goals, err := loadAll()
	if err != nil {
		return fail(err, "cannot load the journal")
	}
	g, err := resolveGoal(goals, f.Arg(0))
	if err != nil {
		return fail(err, "cannot delete the goal")
	}
	entries, goals, err = journal.RemoveGoal(entries, goals, g.ID)
	if err != nil {
		return fail(err, "cannot delete the goal")
	}
	if err := saveAll(entries, goals, true); err != nil {
		return fail(err, "cannot save the journal")
	}
	logger.WithField("goal", g.ID).Info("goal deleted")
	return subcommands.ExitSuccess
}

type linkCmd struct{}

func (*linkCmd) Name() string     { return "link" }
func (*linkCmd) Synopsis() string { return "set the contribution of an entry to a goal" }
func (*linkCmd) Usage() string {
	return `fj link <entry-id> <goal-id> <progress>

  Sets the contribution, in percent, of an entry to a goal. A contribution
  of 0 removes the link.

`
}

func (*linkCmd) SetFlags(f *flag.FlagSet) {}

func (*linkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected <entry-id> <goal-id> <progress>")
		return subcommands.ExitUsageError
	}
	progress, err := journal.ParseProgress(f.Arg(2))
	if err != nil {
		return fail(err, "invalid progress")
	}
	entries, goals, err := loadAll()
	if err != nil {
		return fail(err, "cannot load the journal")
	}
	e, err := resolveEntry(entries, f.Arg(0))
	if err != nil {
		return fail(err, "cannot link")
	}
	g, err := resolveGoal(goals, f.Arg(1))
	if err != nil {
		return fail(err, "cannot link")
	}

	links := make([]journal.LinkedGoal, 0, len(e.LinkedGoals)+1)
	for _, l := range e.LinkedGoals {
		if l.GoalID != g.ID {
			links = append(links, l)
		}
	}
	if !progress.IsZero() {
		links = append(links, journal.LinkedGoal{GoalID: g.ID, Progress: progress})
	}
	e.LinkedGoals = links

	if entries, err = journal.ReplaceEntry(entries, e); err != nil {
		return fail(err, "cannot link")
	}
	if err := saveAll(entries, goals, false); err != nil {
		return fail(err, "cannot save the journal")
	}
	logger.WithFields(logrus.Fields{"entry": e.ID, "goal": g.ID, "progress": progress}).Debug("goal linked")
	return subcommands.ExitSuccess
}

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "recompute and display the goals progress" }
func (*goalsCmd) Usage() string {
	return `fj goals

  Recomputes the progress of every goal from the journal, saves the goals
  file when something changed, and displays them.

`
}

func (*goalsCmd) SetFlags(f *flag.FlagSet) {}

func (*goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, goals, err := loadAll()
	if err != nil {
		return fail(err, "cannot load the journal")
	}
	if err := updateGoals(entries, goals, false); err != nil {
		return fail(err, "cannot save the goals")
	}
	printMarkdown(renderer.RenderGoals(journal.RecomputeGoalProgress(entries, goals)))
	return subcommands.ExitSuccess
}
