package journal

import (
	"strings"
	"testing"
)

func TestEntryMarkdown(t *testing.T) {
	e := entry("1", "2024-01-05", "juego", "inclusión")
	e.Title = "Primera clase"
	e.Reflection = "Todo salió bien."
	e.Skills = "Gestión del grupo"
	e.SupervisorFeedback = "Buen trabajo"
	e.LinkedBibliography = []string{"fullan-2012", "missing-ref"}

	md := EntryMarkdown(e, DefaultVocabulary())
	for _, want := range []string{
		"# Primera clase\n",
		"**Fecha:** 5 de enero de 2024",
		"## Reflexión Principal\nTodo salió bien.",
		"## Habilidades\nGestión del grupo",
		"## Feedback del Supervisor\nBuen trabajo",
		"**Etiquetas:** juego, inclusión",
		"**Bibliografía Vinculada:** Fullan, M. (2012); missing-ref",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown does not contain %q:\n%s", want, md)
		}
	}
	for _, unwanted := range []string{"Deontología", "Dimensiones"} {
		if strings.Contains(md, unwanted) {
			t.Errorf("markdown contains the empty section %q", unwanted)
		}
	}
}

func TestEntryFilename(t *testing.T) {
	e := entry("1", "2024-01-05")
	e.Title = "  Clase de  Voleibol 1/2 "
	if got := EntryFilename(e); got != "2024-01-05-clase-de-voleibol-1-2.md" {
		t.Errorf("EntryFilename() = %q", got)
	}
}
