package journal

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeEntries(t *testing.T) {
	input := `
{"id":"1","date":"2024-01-05T09:00:00.000Z","title":"Primera clase","reflection":"ok","tags":["juego"," juego ","evaluación"],"competencies":["C3","C1"],"linkedGoals":[{"goalId":"G","progress":60}]}

{"id":"2","date":"2024-01-20","title":"Segunda","reflection":"","tags":[],"competencies":[],"linkedGoals":[],"attachment":{"name":"a.png","type":"image/png","data":"data:image/png;base64,AAAA"}}
`
	entries, err := DecodeEntries("journal.jsonl", strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeEntries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	e := entries[0]
	if e.Date != MustParse("2024-01-05") {
		t.Errorf("date = %v", e.Date)
	}
	if strings.Join(e.Tags, ",") != "juego,evaluación" {
		t.Errorf("tags = %q, want duplicates removed", e.Tags)
	}
	if strings.Join(e.Competencies, ",") != "C1,C3" {
		t.Errorf("competencies = %q", e.Competencies)
	}
	if !e.LinkedGoals[0].Progress.Equal(P(60)) {
		t.Errorf("progress = %s", e.LinkedGoals[0].Progress)
	}
	if !entries[1].Attachment.IsImage() {
		t.Errorf("attachment is not an image")
	}
}

func TestDecodeEntriesErrors(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"not json", "{", "journal.jsonl:1"},
		{"no id", `{"title":"x","date":"2024-01-01"}`, "has no id"},
		{"duplicate", "{\"id\":\"1\",\"date\":\"2024-01-01\"}\n{\"id\":\"1\",\"date\":\"2024-01-02\"}", "journal.jsonl:2"},
		{"bad date", `{"id":"1","date":"yesterday"}`, "invalid date"},
	}
	for _, tt := range tests {
		_, err := DecodeEntries("journal.jsonl", strings.NewReader(tt.input))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: DecodeEntries() error = %v, want containing %q", tt.name, err, tt.want)
		}
	}
}

func TestEncodeDecodeJournal(t *testing.T) {
	e := entry("1", "2024-01-05", "a")
	e.LinkedGoals = []LinkedGoal{link("G", 12.5)}
	goals := []Goal{{ID: "G", Text: "observar", Progress: P(12.5)}}

	var eb, gb bytes.Buffer
	if err := EncodeEntries(&eb, []Entry{e}); err != nil {
		t.Fatal(err)
	}
	if err := EncodeGoals(&gb, goals); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(eb.String(), `"progress":12.5`) {
		t.Errorf("progress is not a plain number: %s", eb.String())
	}
	if strings.Count(eb.String(), "\n") != 1 {
		t.Errorf("want one line per entry: %q", eb.String())
	}

	entries, err := DecodeEntries("e", &eb)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeGoals("g", &gb)
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].ID != "1" || entries[0].Date != e.Date || !entries[0].LinkedGoals[0].Progress.Equal(P(12.5)) {
		t.Errorf("entry = %+v", entries[0])
	}
	if decoded[0].Text != "observar" || !decoded[0].Progress.Equal(P(12.5)) {
		t.Errorf("goal = %+v", decoded[0])
	}
}

func TestDecodeLargeAttachment(t *testing.T) {
	data := strings.Repeat("A", 200*1024)
	input := `{"id":"1","date":"2024-01-05","attachment":{"name":"a.jpg","type":"image/jpeg","data":"data:image/jpeg;base64,` + data + `"}}`
	entries, err := DecodeEntries("journal.jsonl", strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeEntries() error = %v", err)
	}
	if len(entries[0].Attachment.Data) < len(data) {
		t.Errorf("attachment truncated")
	}
}
