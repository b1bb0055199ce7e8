package journal

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// This file contains the code to persist the journal in JSONL: one entry, or
// one goal, per line, in a human-readable and git-friendly form.
//
// Entries are written in journal order and goals in their creation order, so
// that decoding then encoding a file does not reorder its lines.

// maxLineSize bounds a single JSONL line. Entries inline their attachment and
// can be much larger than the bufio default.
const maxLineSize = 64 << 20

// decodeJSONL calls fn on each non-blank line of r. filename is for error
// messages only.
func decodeJSONL(filename string, r io.Reader, fn func(line []byte) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	i := 0
	for scanner.Scan() {
		i++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := fn(line); err != nil {
			return fmt.Errorf("parse error %s:%d: %w", filename, i, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read error %s:%d: %w", filename, i, err)
	}
	return nil
}

// DecodeEntries reads entries from a JSONL stream. filename is for error
// messages only.
func DecodeEntries(filename string, r io.Reader) ([]Entry, error) {
	var entries []Entry
	ids := make(map[string]bool)
	err := decodeJSONL(filename, r, func(line []byte) error {
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return fmt.Errorf("not a correct entry: %w", err)
		}
		if e.ID == "" {
			return fmt.Errorf("entry %q has no id", e.Title)
		}
		if ids[e.ID] {
			return fmt.Errorf("entry id %q is already defined", e.ID)
		}
		ids[e.ID] = true
		e.Tags = NormalizeTags(e.Tags)
		e.Competencies = NormalizeCompetencies(e.Competencies)
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DecodeGoals reads goals from a JSONL stream. filename is for error
// messages only.
func DecodeGoals(filename string, r io.Reader) ([]Goal, error) {
	var goals []Goal
	ids := make(map[string]bool)
	err := decodeJSONL(filename, r, func(line []byte) error {
		var g Goal
		if err := json.Unmarshal(line, &g); err != nil {
			return fmt.Errorf("not a correct goal: %w", err)
		}
		if g.ID == "" {
			return fmt.Errorf("goal %q has no id", g.Text)
		}
		if ids[g.ID] {
			return fmt.Errorf("goal id %q is already defined", g.ID)
		}
		ids[g.ID] = true
		goals = append(goals, g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return goals, nil
}

// encodeJSONL writes one JSON object per line.
func encodeJSONL[T any](w io.Writer, items []T) error {
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("persist error: cannot marshal: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("persist error: cannot write: %w", err)
		}
	}
	return nil
}

// EncodeEntries writes entries as JSONL.
func EncodeEntries(w io.Writer, entries []Entry) error { return encodeJSONL(w, entries) }

// EncodeGoals writes goals as JSONL.
func EncodeGoals(w io.Writer, goals []Goal) error { return encodeJSONL(w, goals) }
