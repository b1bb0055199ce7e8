package journal

import (
	"slices"
	"strings"
	"testing"
)

func ids(entries []Entry) string {
	var res []string
	for _, e := range entries {
		res = append(res, e.ID)
	}
	return strings.Join(res, ",")
}

func TestList(t *testing.T) {
	entries := []Entry{
		entry("1", "2024-01-05", "juego"),
		entry("2", "2024-03-01", "evaluación"),
		entry("3", "2024-02-10", "juego", "evaluación"),
	}
	entries[0].Reflection = "Los alumnos jugaron al BALÓN prisionero"

	tests := []struct {
		name   string
		filter Filter
		want   string
	}{
		{"all newest first", Filter{}, "2,3,1"},
		{"tag", Filter{Tag: "juego"}, "3,1"},
		{"search reflection", Filter{Search: "balón"}, "1"},
		{"search title", Filter{Search: "ENTRY 2"}, "2"},
		{"search and tag", Filter{Search: "entry", Tag: "evaluación"}, "2,3"},
		{"nothing", Filter{Tag: "nope"}, ""},
	}
	for _, tt := range tests {
		if got := ids(List(entries, tt.filter)); got != tt.want {
			t.Errorf("%s: List() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestChronological(t *testing.T) {
	entries := []Entry{entry("b", "2024-02-01"), entry("a", "2024-01-01"), entry("c", "2024-02-01")}
	if got := ids(Chronological(entries)); got != "a,b,c" {
		t.Errorf("Chronological() = %q", got)
	}
	if ids(entries) != "b,a,c" {
		t.Errorf("Chronological() modified its input")
	}
}

func TestSelect(t *testing.T) {
	entries := []Entry{entry("1", "2024-01-01"), entry("2", "2024-01-02"), entry("3", "2024-01-03")}
	if got := ids(Select(entries, []string{"3", "x", "1"})); got != "1,3" {
		t.Errorf("Select() = %q", got)
	}
}

func TestAllTags(t *testing.T) {
	entries := []Entry{entry("1", "2024-01-01", "b", "a"), entry("2", "2024-01-02", "c", "a")}
	if got := AllTags(entries); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("AllTags() = %v", got)
	}
}

func TestRemoveGoal(t *testing.T) {
	e := entry("1", "2024-01-01")
	e.LinkedGoals = []LinkedGoal{link("G", 50), link("H", 50)}
	entries := []Entry{e}
	goals := []Goal{{ID: "G"}, {ID: "H"}}

	newEntries, newGoals, err := RemoveGoal(entries, goals, "G")
	if err != nil {
		t.Fatal(err)
	}
	if len(newGoals) != 1 || newGoals[0].ID != "H" {
		t.Errorf("goals = %v", newGoals)
	}
	if len(newEntries[0].LinkedGoals) != 1 || newEntries[0].LinkedGoals[0].GoalID != "H" {
		t.Errorf("links = %v", newEntries[0].LinkedGoals)
	}
	// inputs untouched.
	if len(entries[0].LinkedGoals) != 2 || len(goals) != 2 {
		t.Errorf("RemoveGoal() modified its input")
	}
	if _, _, err := RemoveGoal(entries, goals, "X"); err != ErrGoalNotFound {
		t.Errorf("RemoveGoal(X) error = %v, want ErrGoalNotFound", err)
	}
}

func TestRemoveAndReplaceEntry(t *testing.T) {
	entries := []Entry{entry("1", "2024-01-01"), entry("2", "2024-01-02")}
	rest, err := RemoveEntry(entries, "1")
	if err != nil || ids(rest) != "2" {
		t.Errorf("RemoveEntry() = %q, %v", ids(rest), err)
	}
	if _, err := RemoveEntry(entries, "x"); err != ErrEntryNotFound {
		t.Errorf("RemoveEntry(x) error = %v", err)
	}

	e := entries[1]
	e.Title = "nuevo"
	replaced, err := ReplaceEntry(entries, e)
	if err != nil || replaced[1].Title != "nuevo" || entries[1].Title == "nuevo" {
		t.Errorf("ReplaceEntry() = %v, %v", replaced, err)
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" b", "a", "", "b", "a "})
	if !slices.Equal(got, []string{"b", "a"}) {
		t.Errorf("NormalizeTags() = %q", got)
	}
}
