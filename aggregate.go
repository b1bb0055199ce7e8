package journal

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"github.com/etnz/fieldjournal/chart"
)

// This file contains the aggregations computed from a snapshot of the
// journal. They are all pure functions of their input: calling them twice
// on the same snapshot gives the same result, and they never modify it.

// RecomputeGoalProgress returns a copy of goals where each progress is the
// sum of the contributions of every entry linking to that goal, clamped to
// [0, 100], and completed is set when it reaches 100.
//
// The result depends on the entries only, never on the previous goal
// progress. Links to unknown goals are ignored.
func RecomputeGoalProgress(entries []Entry, goals []Goal) []Goal {
	sums := make(map[string]Progress, len(goals))
	for _, e := range entries {
		for _, lg := range e.LinkedGoals {
			sums[lg.GoalID] = sums[lg.GoalID].Add(lg.Progress.Clamp())
		}
	}

	res := make([]Goal, len(goals))
	for i, g := range goals {
		g.Progress = sums[g.ID].Clamp()
		g.Completed = g.Progress.Complete()
		res[i] = g
	}
	return res
}

// GoalsChanged reports whether the recomputed goals differ from the old ones
// in progress or completion, so that callers only persist real changes.
func GoalsChanged(old, recomputed []Goal) bool {
	return !slices.EqualFunc(old, recomputed, func(a, b Goal) bool {
		return a.ID == b.ID && a.Progress.Equal(b.Progress) && a.Completed == b.Completed
	})
}

// TagFrequency counts the occurrences of each tag across entries.
// Tags that never occur are absent.
func TagFrequency(entries []Entry) map[string]int {
	res := make(map[string]int)
	for _, e := range entries {
		for _, t := range e.Tags {
			res[t]++
		}
	}
	return res
}

// TagCount is the number of entries using a tag.
type TagCount struct {
	Tag   string
	Count int
}

// SortedTags returns the tag frequencies by decreasing count, then
// alphabetically. At most limit tags are returned, all of them if limit <= 0.
func SortedTags(freq map[string]int, limit int) []TagCount {
	res := make([]TagCount, 0, len(freq))
	for t, c := range freq {
		res = append(res, TagCount{t, c})
	}
	slices.SortFunc(res, func(a, b TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Tag, b.Tag)
	})
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res
}

// CompetencyUsage counts, for each competency code of the vocabulary, the
// number of entries referencing it. Every code of the vocabulary is present,
// unused ones with 0. Codes outside the vocabulary are ignored.
func CompetencyUsage(entries []Entry, vocabulary []string) map[string]int {
	res := make(map[string]int, len(vocabulary))
	for _, code := range vocabulary {
		res[code] = 0
	}
	for _, e := range entries {
		seen := make(map[string]bool, len(e.Competencies))
		for _, code := range e.Competencies {
			if _, ok := res[code]; !ok || seen[code] {
				continue
			}
			seen[code] = true
			res[code]++
		}
	}
	return res
}

// UsageData returns the usage as chart data in vocabulary order, including
// zero counts.
func UsageData(usage map[string]int, vocabulary []string) []chart.Datum {
	res := make([]chart.Datum, 0, len(vocabulary))
	for _, code := range vocabulary {
		res = append(res, chart.Datum{Label: code, Value: float64(usage[code])})
	}
	return res
}

// UsedData returns only the nonzero usage as chart data, most used first,
// ties in vocabulary order.
func UsedData(usage map[string]int, vocabulary []string) []chart.Datum {
	res := slices.DeleteFunc(UsageData(usage, vocabulary), func(d chart.Datum) bool { return d.Value == 0 })
	slices.SortStableFunc(res, func(a, b chart.Datum) int { return cmp.Compare(b.Value, a.Value) })
	return res
}

// MonthlyEntryCounts counts the entries of each calendar month, in
// chronological order. Months without entries are absent.
func MonthlyEntryCounts(entries []Entry) []chart.Datum {
	counts := make(map[YearMonth]int)
	for _, e := range entries {
		counts[e.Date.YearMonth()]++
	}
	months := make([]YearMonth, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	slices.SortFunc(months, func(a, b YearMonth) int {
		if a.Before(b) {
			return -1
		}
		if b.Before(a) {
			return 1
		}
		return 0
	})

	res := make([]chart.Datum, len(months))
	for i, m := range months {
		res[i] = chart.Datum{Label: m.String(), Value: float64(counts[m])}
	}
	return res
}

// RandomHighlight returns an entry picked uniformly at random, and false if
// there are no entries.
func RandomHighlight(entries []Entry) (Entry, bool) {
	return randomHighlight(entries, rand.IntN)
}

func randomHighlight(entries []Entry, intN func(int) int) (Entry, bool) {
	if len(entries) == 0 {
		return Entry{}, false
	}
	return entries[intN(len(entries))], true
}

// Stats are the figures of the dashboard.
type Stats struct {
	TotalEntries   int
	CompletedGoals int
	TotalGoals     int
	Tags           []TagCount
}

// TagCloudSize is the number of tags displayed on the dashboard.
const TagCloudSize = 15

// NewStats computes the dashboard figures from a snapshot.
func NewStats(entries []Entry, goals []Goal) Stats {
	s := Stats{
		TotalEntries: len(entries),
		TotalGoals:   len(goals),
		Tags:         SortedTags(TagFrequency(entries), TagCloudSize),
	}
	for _, g := range goals {
		if g.Completed {
			s.CompletedGoals++
		}
	}
	return s
}
