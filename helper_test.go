package journal

import "testing"

// entry is a helper for test to create an entry from a date and tags.
func entry(id, on string, tags ...string) Entry {
	return Entry{ID: id, Date: MustParse(on), Title: "entry " + id, Tags: tags}
}

// link is a helper for test to create a goal link.
func link(goal string, progress float64) LinkedGoal {
	return LinkedGoal{GoalID: goal, Progress: P(progress)}
}

// assertProgress fails if the goal progress is not want.
func assertProgress(t *testing.T, g Goal, want float64, completed bool) {
	t.Helper()
	if !g.Progress.Equal(P(want)) {
		t.Errorf("goal %q progress = %s, want %v", g.ID, g.Progress, want)
	}
	if g.Completed != completed {
		t.Errorf("goal %q completed = %v, want %v", g.ID, g.Completed, completed)
	}
}
