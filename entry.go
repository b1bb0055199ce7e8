package journal

import (
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrGoalNotFound  = errors.New("goal not found")
)

// Attachment is a file attached to an entry, inlined as a data URL
// ("data:image/png;base64,...").
type Attachment struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}

// IsImage reports whether the attachment can be displayed as an image.
func (a *Attachment) IsImage() bool {
	return a != nil && strings.HasPrefix(a.Type, "image/") && a.Data != ""
}

// LinkedGoal is the contribution of an entry to a goal, in percent.
type LinkedGoal struct {
	GoalID   string   `json:"goalId"`
	Progress Progress `json:"progress"`
}

// Entry is a single dated reflection of the journal.
//
// Entries are owned by the journal file; the engine only reads them.
type Entry struct {
	ID                 string       `json:"id"`
	Date               Date         `json:"date"`
	Title              string       `json:"title"`
	Reflection         string       `json:"reflection"`
	Skills             string       `json:"skills,omitempty"`
	Deontology         string       `json:"deontology,omitempty"`
	Dimensions         string       `json:"dimensions,omitempty"`
	SupervisorFeedback string       `json:"supervisorFeedback,omitempty"`
	Tags               []string     `json:"tags"`
	Competencies       []string     `json:"competencies"`
	LinkedGoals        []LinkedGoal `json:"linkedGoals"`
	Attachment         *Attachment  `json:"attachment,omitempty"`
	LinkedBibliography []string     `json:"linkedBibliography,omitempty"`
	// Sentiment is the text attached after the fact by the text generation
	// service. It is opaque to the engine.
	Sentiment string `json:"sentimentAnalysis,omitempty"`
}

// Goal is a professional objective. Its progress is derived from the entries
// that link to it, see [RecomputeGoalProgress].
type Goal struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Progress  Progress `json:"progress"`
	Completed bool     `json:"completed"`
}

// NewEntryID returns a fresh unique entry identifier.
func NewEntryID() string { return uuid.NewString() }

// NewGoalID returns a fresh unique goal identifier.
func NewGoalID() string { return uuid.NewString() }

// NormalizeTags trims tags, drops empty ones and duplicates, keeping the
// first occurrence order.
func NormalizeTags(tags []string) []string {
	res := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || slices.Contains(res, t) {
			continue
		}
		res = append(res, t)
	}
	return res
}

// NormalizeCompetencies returns the set of competency codes, sorted.
func NormalizeCompetencies(codes []string) []string {
	res := NormalizeTags(codes)
	slices.Sort(res)
	return res
}

// FindEntry returns the entry with the given id.
func FindEntry(entries []Entry, id string) (Entry, error) {
	i := slices.IndexFunc(entries, func(e Entry) bool { return e.ID == id })
	if i < 0 {
		return Entry{}, ErrEntryNotFound
	}
	return entries[i], nil
}

// FindGoal returns the goal with the given id.
func FindGoal(goals []Goal, id string) (Goal, error) {
	i := slices.IndexFunc(goals, func(g Goal) bool { return g.ID == id })
	if i < 0 {
		return Goal{}, ErrGoalNotFound
	}
	return goals[i], nil
}

// RemoveGoal returns the goals without the goal id, and a copy of the entries
// where every link to that goal has been removed.
func RemoveGoal(entries []Entry, goals []Goal, id string) ([]Entry, []Goal, error) {
	if _, err := FindGoal(goals, id); err != nil {
		return nil, nil, err
	}
	newGoals := slices.DeleteFunc(slices.Clone(goals), func(g Goal) bool { return g.ID == id })
	newEntries := make([]Entry, len(entries))
	for i, e := range entries {
		e.LinkedGoals = slices.DeleteFunc(slices.Clone(e.LinkedGoals), func(lg LinkedGoal) bool { return lg.GoalID == id })
		newEntries[i] = e
	}
	return newEntries, newGoals, nil
}

// RemoveEntry returns a copy of entries without the entry id.
func RemoveEntry(entries []Entry, id string) ([]Entry, error) {
	if _, err := FindEntry(entries, id); err != nil {
		return nil, err
	}
	return slices.DeleteFunc(slices.Clone(entries), func(e Entry) bool { return e.ID == id }), nil
}

// ReplaceEntry returns a copy of entries where the entry with the same id as
// e is replaced by e.
func ReplaceEntry(entries []Entry, e Entry) ([]Entry, error) {
	i := slices.IndexFunc(entries, func(x Entry) bool { return x.ID == e.ID })
	if i < 0 {
		return nil, ErrEntryNotFound
	}
	res := slices.Clone(entries)
	res[i] = e
	return res, nil
}
