package journal

import (
	"maps"
	"reflect"
	"slices"
	"testing"

	"github.com/etnz/fieldjournal/chart"
)

func TestRecomputeGoalProgressClamps(t *testing.T) {
	goals := []Goal{{ID: "G", Text: "observe"}}
	e1 := entry("1", "2024-01-05")
	e1.LinkedGoals = []LinkedGoal{link("G", 60)}
	e2 := entry("2", "2024-01-06")
	e2.LinkedGoals = []LinkedGoal{link("G", 70)}

	got := RecomputeGoalProgress([]Entry{e1, e2}, goals)
	assertProgress(t, got[0], 100, true)

	// the input is not modified.
	assertProgress(t, goals[0], 0, false)
}

func TestRecomputeGoalProgress(t *testing.T) {
	tests := []struct {
		name      string
		links     [][]LinkedGoal
		want      float64
		completed bool
	}{
		{"no entries", nil, 0, false},
		{"single", [][]LinkedGoal{{link("G", 30)}}, 30, false},
		{"exact", [][]LinkedGoal{{link("G", 33.3)}, {link("G", 33.3)}, {link("G", 33.4)}}, 100, true},
		{"other goals", [][]LinkedGoal{{link("H", 80), link("G", 10)}}, 10, false},
		{"unknown goal", [][]LinkedGoal{{link("X", 80)}}, 0, false},
		{"out of range links", [][]LinkedGoal{{link("G", -20)}, {link("G", 150)}}, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []Entry
			for i, lg := range tt.links {
				e := entry(string(rune('a'+i)), "2024-02-01")
				e.LinkedGoals = lg
				entries = append(entries, e)
			}
			got := RecomputeGoalProgress(entries, []Goal{{ID: "G"}, {ID: "H"}})
			assertProgress(t, got[0], tt.want, tt.completed)
		})
	}
}

func TestRecomputeGoalProgressIgnoresPreviousValue(t *testing.T) {
	e := entry("1", "2024-01-05")
	e.LinkedGoals = []LinkedGoal{link("G", 40)}
	stale := []Goal{{ID: "G", Progress: P(90), Completed: true}}

	once := RecomputeGoalProgress([]Entry{e}, stale)
	assertProgress(t, once[0], 40, false)

	twice := RecomputeGoalProgress([]Entry{e}, once)
	if GoalsChanged(once, twice) {
		t.Errorf("recomputing is not idempotent: %v then %v", once, twice)
	}
	if !GoalsChanged(stale, once) {
		t.Errorf("GoalsChanged(stale, recomputed) = false, want true")
	}
}

func TestRecomputeGoalProgressBounds(t *testing.T) {
	// every permutation of the entries gives the same goals, within [0, 100].
	entries := []Entry{entry("1", "2024-01-01"), entry("2", "2024-01-02"), entry("3", "2024-01-03")}
	entries[0].LinkedGoals = []LinkedGoal{link("A", 50), link("B", 10)}
	entries[1].LinkedGoals = []LinkedGoal{link("A", 50.5)}
	entries[2].LinkedGoals = []LinkedGoal{link("B", 25), link("C", 100)}
	goals := []Goal{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}}

	want := RecomputeGoalProgress(entries, goals)
	for _, p := range permutations(entries) {
		got := RecomputeGoalProgress(p, goals)
		if GoalsChanged(want, got) {
			t.Errorf("order dependent result: %v vs %v", want, got)
		}
		for _, g := range got {
			if g.Progress.LessThan(P(0)) || P(100).LessThan(g.Progress) {
				t.Errorf("goal %s progress %s out of bounds", g.ID, g.Progress)
			}
			if g.Completed != g.Progress.Complete() {
				t.Errorf("goal %s completed = %v with progress %s", g.ID, g.Completed, g.Progress)
			}
		}
	}
	assertProgress(t, want[0], 100, true)
	assertProgress(t, want[1], 35, false)
	assertProgress(t, want[2], 100, true)
	assertProgress(t, want[3], 0, false)
}

func TestGoalsChanged(t *testing.T) {
	a := []Goal{{ID: "G", Progress: P(10)}}
	tests := []struct {
		name string
		b    []Goal
		want bool
	}{
		{"same", []Goal{{ID: "G", Progress: P(10.0)}}, false},
		{"progress", []Goal{{ID: "G", Progress: P(11)}}, true},
		{"completed", []Goal{{ID: "G", Progress: P(10), Completed: true}}, true},
		{"text only", []Goal{{ID: "G", Text: "new", Progress: P(10)}}, false},
		{"length", nil, true},
	}
	for _, tt := range tests {
		if got := GoalsChanged(a, tt.b); got != tt.want {
			t.Errorf("%s: GoalsChanged() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTagFrequency(t *testing.T) {
	entries := []Entry{
		entry("1", "2024-01-01", "A", "B"),
		entry("2", "2024-01-02", "B", "C"),
	}
	want := map[string]int{"A": 1, "B": 2, "C": 1}
	if got := TagFrequency(entries); !maps.Equal(got, want) {
		t.Errorf("TagFrequency() = %v, want %v", got, want)
	}
	for _, p := range permutations(entries) {
		if got := TagFrequency(p); !maps.Equal(got, want) {
			t.Errorf("TagFrequency() depends on order: %v", got)
		}
	}
	if got := TagFrequency(nil); len(got) != 0 {
		t.Errorf("TagFrequency(nil) = %v, want empty", got)
	}
}

func TestSortedTags(t *testing.T) {
	freq := map[string]int{"b": 2, "a": 2, "c": 5, "d": 1}
	got := SortedTags(freq, 0)
	want := []TagCount{{"c", 5}, {"a", 2}, {"b", 2}, {"d", 1}}
	if !slices.Equal(got, want) {
		t.Errorf("SortedTags() = %v, want %v", got, want)
	}
	if got := SortedTags(freq, 2); !slices.Equal(got, want[:2]) {
		t.Errorf("SortedTags(2) = %v, want %v", got, want[:2])
	}
}

func TestCompetencyUsage(t *testing.T) {
	vocabulary := DefaultVocabulary().Codes()
	e1 := entry("1", "2024-01-01")
	e1.Competencies = []string{"C1", "C3"}
	e2 := entry("2", "2024-01-02")
	e2.Competencies = []string{"C1", "C1", "UNKNOWN"}

	got := CompetencyUsage([]Entry{e1, e2}, vocabulary)
	if len(got) != len(vocabulary) {
		t.Fatalf("CompetencyUsage() has %d codes, want %d", len(got), len(vocabulary))
	}
	zeros := 0
	for _, c := range got {
		if c == 0 {
			zeros++
		}
	}
	if zeros != len(vocabulary)-2 {
		t.Errorf("got %d zero counts, want %d", zeros, len(vocabulary)-2)
	}
	if got["C1"] != 2 || got["C3"] != 1 {
		t.Errorf("CompetencyUsage() = %v", got)
	}
	if _, ok := got["UNKNOWN"]; ok {
		t.Errorf("CompetencyUsage() counts a code outside the vocabulary")
	}

	empty := CompetencyUsage(nil, vocabulary)
	if len(empty) != len(vocabulary) {
		t.Errorf("CompetencyUsage(nil) has %d codes, want %d", len(empty), len(vocabulary))
	}
}

func TestUsageData(t *testing.T) {
	vocabulary := []string{"A", "B", "C", "D"}
	usage := map[string]int{"A": 1, "B": 0, "C": 3, "D": 1}

	all := UsageData(usage, vocabulary)
	want := []chart.Datum{{Label: "A", Value: 1}, {Label: "B", Value: 0}, {Label: "C", Value: 3}, {Label: "D", Value: 1}}
	if !slices.Equal(all, want) {
		t.Errorf("UsageData() = %v, want %v", all, want)
	}

	used := UsedData(usage, vocabulary)
	want = []chart.Datum{{Label: "C", Value: 3}, {Label: "A", Value: 1}, {Label: "D", Value: 1}}
	if !slices.Equal(used, want) {
		t.Errorf("UsedData() = %v, want %v", used, want)
	}
}

func TestMonthlyEntryCounts(t *testing.T) {
	entries := []Entry{
		entry("1", "2024-03-01"),
		entry("2", "2024-01-20"),
		entry("3", "2024-01-05"),
	}
	want := []chart.Datum{{Label: "2024-01", Value: 2}, {Label: "2024-03", Value: 1}}
	for _, p := range permutations(entries) {
		if got := MonthlyEntryCounts(p); !slices.Equal(got, want) {
			t.Errorf("MonthlyEntryCounts() = %v, want %v", got, want)
		}
	}

	// chronological, not alphabetical, across years.
	got := MonthlyEntryCounts([]Entry{entry("1", "2024-02-01"), entry("2", "2023-12-01"), entry("3", "2023-11-01")})
	labels := []string{got[0].Label, got[1].Label, got[2].Label}
	if !slices.Equal(labels, []string{"2023-11", "2023-12", "2024-02"}) {
		t.Errorf("MonthlyEntryCounts() labels = %v", labels)
	}

	if got := MonthlyEntryCounts(nil); len(got) != 0 {
		t.Errorf("MonthlyEntryCounts(nil) = %v, want empty", got)
	}
}

func TestRandomHighlight(t *testing.T) {
	if _, ok := RandomHighlight(nil); ok {
		t.Errorf("RandomHighlight(nil) found an entry")
	}

	entries := []Entry{entry("1", "2024-01-01"), entry("2", "2024-01-02"), entry("3", "2024-01-03")}
	got, ok := randomHighlight(entries, func(n int) int { return n - 1 })
	if !ok || got.ID != "3" {
		t.Errorf("randomHighlight() = %v, %v", got.ID, ok)
	}

	seen := make(map[string]bool)
	for range 200 {
		e, ok := RandomHighlight(entries)
		if !ok {
			t.Fatal("RandomHighlight() found nothing")
		}
		seen[e.ID] = true
	}
	if len(seen) != len(entries) {
		t.Errorf("RandomHighlight() only picked %v in 200 draws", slices.Sorted(maps.Keys(seen)))
	}
}

func TestNewStats(t *testing.T) {
	entries := []Entry{entry("1", "2024-01-01", "x"), entry("2", "2024-01-02", "x", "y")}
	goals := []Goal{{ID: "a", Completed: true}, {ID: "b"}}
	got := NewStats(entries, goals)
	want := Stats{TotalEntries: 2, CompletedGoals: 1, TotalGoals: 2, Tags: []TagCount{{"x", 2}, {"y", 1}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NewStats() = %+v, want %+v", got, want)
	}
}

// permutations returns all the orderings of entries.
func permutations(entries []Entry) [][]Entry {
	if len(entries) <= 1 {
		return [][]Entry{slices.Clone(entries)}
	}
	var res [][]Entry
	for i := range entries {
		rest := slices.Concat(entries[:i:i], entries[i+1:])
		for _, p := range permutations(rest) {
			res = append(res, append([]Entry{entries[i]}, p...))
		}
	}
	return res
}
