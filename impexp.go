package journal

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// Default JSONPath expressions of the collections in a browser storage
// backup, where the journal application kept its data.
const (
	BackupEntriesPath = "$.journalEntries"
	BackupGoalsPath   = "$.professionalGoals"
)

// Backup is the content extracted from a storage backup.
type Backup struct {
	Entries []Entry
	Goals   []Goal
}

// ImportBackup reads a JSON document and extracts the entries and goals found
// at the given JSONPath expressions.
//
// Browser storage keeps values as strings, so a collection may be either a
// JSON array or a string holding a JSON array. A path matching nothing gives
// an empty collection.
func ImportBackup(r io.Reader, entriesPath, goalsPath string) (*Backup, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("import error: not a correct json: %w", err)
	}

	b := new(Backup)
	if err := extract(jobj, entriesPath, &b.Entries); err != nil {
		return nil, err
	}
	if err := extract(jobj, goalsPath, &b.Goals); err != nil {
		return nil, err
	}

	for i, e := range b.Entries {
		if e.ID == "" {
			e.ID = NewEntryID()
		}
		e.Tags = NormalizeTags(e.Tags)
		e.Competencies = NormalizeCompetencies(e.Competencies)
		b.Entries[i] = e
	}
	for i, g := range b.Goals {
		if g.ID == "" {
			b.Goals[i].ID = NewGoalID()
		}
	}
	// progress is derived, whatever the backup says.
	b.Goals = RecomputeGoalProgress(b.Entries, b.Goals)
	return b, nil
}

// extract decodes into v the value found at path in jobj.
func extract[T any](jobj any, path string, v *[]T) error {
	if path == "" {
		return nil
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		// an unknown key is not an error, the collection is just empty.
		return nil
	}
	if s, ok := jval.(string); ok {
		if err := json.Unmarshal([]byte(s), v); err != nil {
			return fmt.Errorf("import error: value at %q is not a correct list: %w", path, err)
		}
		return nil
	}
	if jval == nil {
		return nil
	}
	data, err := json.Marshal(jval)
	if err != nil {
		return fmt.Errorf("import error: cannot read value at %q: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("import error: value at %q is not a correct list: %w", path, err)
	}
	return nil
}
