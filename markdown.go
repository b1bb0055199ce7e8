package journal

import (
	"fmt"
	"regexp"
	"strings"
)

// EntryMarkdown renders a single entry as a standalone markdown document.
// Empty optional fields are skipped. Unknown bibliography ids are shown as
// is.
func EntryMarkdown(e Entry, v *Vocabulary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Title)
	fmt.Fprintf(&b, "**Fecha:** %s\n\n", e.Date.Long())
	fmt.Fprintf(&b, "## Reflexión Principal\n%s\n\n", e.Reflection)

	sections := []struct{ title, content string }{
		{"Habilidades", e.Skills},
		{"Deontología y Ethos", e.Deontology},
		{"Dimensiones", e.Dimensions},
		{"Feedback del Supervisor", e.SupervisorFeedback},
	}
	for _, s := range sections {
		if strings.TrimSpace(s.content) == "" {
			continue
		}
		fmt.Fprintf(&b, "## %s\n%s\n\n", s.title, s.content)
	}

	if len(e.Tags) > 0 {
		fmt.Fprintf(&b, "**Etiquetas:** %s\n", strings.Join(e.Tags, ", "))
	}
	if len(e.LinkedBibliography) > 0 {
		authors := make([]string, len(e.LinkedBibliography))
		for i, id := range e.LinkedBibliography {
			authors[i] = v.Author(id)
		}
		fmt.Fprintf(&b, "**Bibliografía Vinculada:** %s\n", strings.Join(authors, "; "))
	}
	return b.String()
}

var blanks = regexp.MustCompile(`\s+`)

// EntryFilename returns the file name of the markdown export of an entry,
// like "2024-01-05-primera-clase.md".
func EntryFilename(e Entry) string {
	slug := blanks.ReplaceAllString(strings.ToLower(strings.TrimSpace(e.Title)), "-")
	slug = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return '-'
		}
		return r
	}, slug)
	return e.Date.String() + "-" + slug + ".md"
}
