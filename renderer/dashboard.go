package renderer

import (
	journal "github.com/etnz/fieldjournal"
	"github.com/etnz/fieldjournal/chart"
)

// CloudTag is a tag of the dashboard tag cloud.
type CloudTag struct {
	Tag   string
	Count int
	Size  float64 // font size in rem
	Color int     // palette slot
}

// Dashboard is the home report of the journal.
type Dashboard struct {
	Owner     string
	Stats     journal.Stats
	Cloud     []CloudTag
	Highlight *journal.Entry // an entry to reflect on again, if any
}

// NewDashboard computes the dashboard of a journal. highlight picks the
// entry to reflect on again, it is usually journal.RandomHighlight.
func NewDashboard(owner string, entries []journal.Entry, goals []journal.Goal, highlight func([]journal.Entry) (journal.Entry, bool)) *Dashboard {
	d := &Dashboard{
		Owner: owner,
		Stats: journal.NewStats(entries, goals),
	}
	if n := len(d.Stats.Tags); n > 0 {
		// tags are sorted by decreasing count.
		maxCount, minCount := d.Stats.Tags[0].Count, d.Stats.Tags[n-1].Count
		for _, t := range d.Stats.Tags {
			d.Cloud = append(d.Cloud, CloudTag{
				Tag:   t.Tag,
				Count: t.Count,
				Size:  chart.FontSizeForCount(t.Count, minCount, maxCount),
				Color: chart.HashColorClass(t.Tag),
			})
		}
	}
	if highlight != nil {
		if e, ok := highlight(entries); ok {
			d.Highlight = &e
		}
	}
	return d
}
