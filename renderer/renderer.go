// Package renderer turns journal reports into markdown for the terminal.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	journal "github.com/etnz/fieldjournal"
)

//go:embed templates/*.md
var templates embed.FS

var funcs = template.FuncMap{
	"percent": journal.Progress.Percent,
	"bar":     progressBar,
	"quote":   quote,
}

// RenderDashboard renders the dashboard to a markdown string.
func RenderDashboard(d *Dashboard) string {
	partials := map[string]string{
		"dashboard_stats":     "dashboard_stats.md",
		"dashboard_cloud":     "dashboard_cloud.md",
		"dashboard_highlight": "dashboard_highlight.md",
	}
	if d.Highlight == nil {
		// An empty file name results in an empty template.
		partials["dashboard_highlight"] = ""
	}
	return renderTemplate("dashboard", "dashboard.md", partials, d)
}

// RenderGoals renders the goal list with their progress.
func RenderGoals(goals []journal.Goal) string {
	return renderTemplate("goals", "goals.md", nil, goals)
}

// RenderProgress renders the progress report.
func RenderProgress(p *Progress) string {
	partials := map[string]string{
		"progress_table": "progress_table.md",
	}
	return renderTemplate("progress", "progress.md", partials, p)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, "templates/"+file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// progressBar draws a 20 cells text gauge of a progress.
func progressBar(p journal.Progress) string {
	const width = 20
	filled := int(p.Clamp().Float64() / 100 * width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// quote formats a text as a markdown block quote.
func quote(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight("> "+l, " ")
	}
	return strings.Join(lines, "\n")
}
