package renderer

import (
	"fmt"
	"strings"

	journal "github.com/etnz/fieldjournal"
)

// RenderEntries renders a list of entries as a markdown table, in the given
// order.
func RenderEntries(entries []journal.Entry) string {
	r := &logRenderer{Builder: &strings.Builder{}}
	if len(entries) == 0 {
		r.Printf("No hay entradas.\n")
		return r.String()
	}
	r.Printf("| Fecha | Título | Etiquetas | Metas | ID |\n")
	r.Printf("|:---|:---|:---|---:|:---|\n")
	for _, e := range entries {
		r.Printf("| %s | %s | %s | %d | `%s` |\n", e.Date, cell(e.Title), cell(strings.Join(e.Tags, ", ")), len(e.LinkedGoals), e.ID)
	}
	r.Printf("\n%d entradas\n", len(entries))
	return r.String()
}

// logRenderer accumulates a markdown report.
type logRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *logRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// cell escapes a value for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
