package journal

import (
	"cmp"
	"slices"
	"strings"
)

// Filter selects entries of the journal list.
type Filter struct {
	Search string // case insensitive substring of the title or the reflection
	Tag    string // exact tag, any tag when empty
}

// Match reports whether the entry is selected by the filter.
func (f Filter) Match(e Entry) bool {
	if f.Tag != "" && !slices.Contains(e.Tags, f.Tag) {
		return false
	}
	if f.Search == "" {
		return true
	}
	s := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(e.Title), s) || strings.Contains(strings.ToLower(e.Reflection), s)
}

// List returns the entries selected by f, newest first. Entries of the same
// day keep their relative order.
func List(entries []Entry, f Filter) []Entry {
	res := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Match(e) {
			res = append(res, e)
		}
	}
	slices.SortStableFunc(res, func(a, b Entry) int { return b.Date.Compare(a.Date) })
	return res
}

// Chronological returns a copy of entries, oldest first. Entries of the same
// day keep their relative order.
func Chronological(entries []Entry) []Entry {
	res := slices.Clone(entries)
	slices.SortStableFunc(res, func(a, b Entry) int { return a.Date.Compare(b.Date) })
	return res
}

// Select returns the entries whose id is in ids, in journal order. Unknown
// ids are ignored.
func Select(entries []Entry, ids []string) []Entry {
	var res []Entry
	for _, e := range entries {
		if slices.Contains(ids, e.ID) {
			res = append(res, e)
		}
	}
	return res
}

// AllTags returns the distinct tags used by entries, sorted.
func AllTags(entries []Entry) []string {
	var res []string
	for t := range TagFrequency(entries) {
		res = append(res, t)
	}
	slices.SortFunc(res, cmp.Compare[string])
	return res
}
