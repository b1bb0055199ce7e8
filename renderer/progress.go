package renderer

import (
	journal "github.com/etnz/fieldjournal"
	"github.com/etnz/fieldjournal/chart"
)

// Figure is a chart of the progress report.
type Figure struct {
	Name    string // file name, without extension
	Title   string
	Data    []chart.Datum
	Drawing chart.Drawing
}

// Progress is the report of the journal evolution.
type Progress struct {
	Entries int
	Figures []Figure
}

// NewProgress computes the progress charts of a journal: entries per month,
// used competencies, the competency radar and the competency heatmap.
func NewProgress(entries []journal.Entry, v *journal.Vocabulary) *Progress {
	codes := v.Codes()
	usage := journal.CompetencyUsage(entries, codes)
	all := journal.UsageData(usage, codes)

	p := &Progress{Entries: len(entries)}
	add := func(name, title string, data []chart.Datum, r chart.Renderer) {
		p.Figures = append(p.Figures, Figure{Name: name, Title: title, Data: data, Drawing: r.Render(data)})
	}
	add("entradas-por-mes", "Entradas por Mes", journal.MonthlyEntryCounts(entries), chart.DefaultBar)
	add("uso-de-competencias", "Uso de Competencias", journal.UsedData(usage, codes), chart.DefaultBar)
	add("radar-de-competencias", "Radar de Competencias", all, chart.DefaultRadar)
	add("mapa-de-competencias", "Mapa de Calor de Competencias", all, chart.DefaultHeatmap)
	return p
}
