// Package export assembles portfolios: self-contained documents made of a
// selection of journal entries and a summary chart.
//
// Assembling builds a structured [Document]; the document is then encoded
// (HTML or Markdown) into an [Artifact] handed to a [Saver].
package export

import (
	"strings"
	"time"

	journal "github.com/etnz/fieldjournal"
	"github.com/etnz/fieldjournal/chart"
)

// Document titles.
const (
	DocumentTitle    = "Portafolio Profesional"
	DocumentSubtitle = "Diario de Campo de Educación Física"
	ChartTitle       = "Uso de Competencias en este Portafolio"
)

// Owner identifies the person the portfolio belongs to.
type Owner struct {
	Name string `yaml:"name"`
}

// Cover is the title block of a portfolio.
type Cover struct {
	Title      string
	Subtitle   string
	Owner      string
	Generated  time.Time
	EntryCount int
}

// Section is an optional titled text of an entry.
type Section struct {
	Title   string
	Content string
}

// CompetencyRef is a competency code with its label, the code itself when
// unknown.
type CompetencyRef struct {
	Code  string
	Label string
}

// EntryBlock is the rendering of one entry.
type EntryBlock struct {
	ID           string
	Title        string
	Date         journal.Date
	Reflection   string              // markdown
	Image        *journal.Attachment // nil unless the attachment is an image
	Sections     []Section           // non-empty pedagogical fields only
	Tags         []string
	Competencies []CompetencyRef
	Citations    []string
	Feedback     string
}

// ChartBlock is the summary chart of a portfolio.
type ChartBlock struct {
	Title   string
	Data    []chart.Datum
	Drawing chart.Drawing
}

// Document is an assembled portfolio.
type Document struct {
	Cover   Cover
	Entries []EntryBlock // oldest first
	Chart   *ChartBlock  // nil when no competency is used
}

// Assembler builds portfolio documents.
type Assembler struct {
	Owner      Owner
	Vocabulary *journal.Vocabulary // default vocabulary when nil
	Chart      chart.Renderer      // chart.DefaultBar when nil
	Now        func() time.Time    // time.Now when nil
}

// Assemble builds a portfolio from the selected entries with the default
// vocabulary and chart.
func Assemble(selected []journal.Entry, owner Owner) *Document {
	a := Assembler{Owner: owner}
	return a.Assemble(selected)
}

// Assemble builds a portfolio from the selected entries.
//
// Entries are sorted oldest first. The chart counts the competencies of the
// selected entries only, and is omitted when none is used. An empty
// selection gives a document with a cover only.
func (a *Assembler) Assemble(selected []journal.Entry) *Document {
	v := a.Vocabulary
	if v == nil {
		v = journal.DefaultVocabulary()
	}
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	doc := &Document{
		Cover: Cover{
			Title:      DocumentTitle,
			Subtitle:   DocumentSubtitle,
			Owner:      a.Owner.Name,
			Generated:  now(),
			EntryCount: len(selected),
		},
	}

	for _, e := range journal.Chronological(selected) {
		doc.Entries = append(doc.Entries, newEntryBlock(e, v))
	}

	codes := v.Codes()
	usage := journal.CompetencyUsage(selected, codes)
	if data := journal.UsedData(usage, codes); len(data) > 0 {
		r := a.Chart
		if r == nil {
			r = chart.DefaultBar
		}
		doc.Chart = &ChartBlock{Title: ChartTitle, Data: data, Drawing: r.Render(data)}
	}
	return doc
}

func newEntryBlock(e journal.Entry, v *journal.Vocabulary) EntryBlock {
	b := EntryBlock{
		ID:         e.ID,
		Title:      e.Title,
		Date:       e.Date,
		Reflection: e.Reflection,
		Tags:       e.Tags,
		Feedback:   strings.TrimSpace(e.SupervisorFeedback),
	}
	if e.Attachment.IsImage() {
		b.Image = e.Attachment
	}
	for _, s := range []Section{
		{"Habilidades", e.Skills},
		{"Deontología y Ethos", e.Deontology},
		{"Dimensiones (MBE)", e.Dimensions},
	} {
		if strings.TrimSpace(s.Content) != "" {
			b.Sections = append(b.Sections, s)
		}
	}
	for _, code := range e.Competencies {
		b.Competencies = append(b.Competencies, CompetencyRef{Code: code, Label: v.CompetencyLabel(code)})
	}
	for _, id := range e.LinkedBibliography {
		b.Citations = append(b.Citations, v.Citation(id))
	}
	return b
}

// Filename returns the name of the exported file, embedding the generation
// date: "portafolio-diario-de-campo-2024-05-01.html".
func (d *Document) Filename(f Format) string {
	return "portafolio-diario-de-campo-" + d.Cover.Generated.UTC().Format(journal.DateFormat) + "." + f.Ext()
}
