package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Artifact is an encoded document ready to be saved.
type Artifact struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Encode encodes the document in the given format.
func (d *Document) Encode(f Format) (Artifact, error) {
	partials := map[string]string{
		"cover": "cover." + f.Ext(),
		"chart": "chart." + f.Ext(),
		"entry": "entry." + f.Ext(),
	}
	main := "portfolio." + f.Ext()

	var body []byte
	var err error
	if f == Markdown {
		body, err = renderText(main, partials, d)
	} else {
		body, err = renderHTML(main, partials, d)
	}
	if err != nil {
		return Artifact{}, fmt.Errorf("cannot encode portfolio as %s: %w", f, err)
	}
	return Artifact{Filename: d.Filename(f), ContentType: f.ContentType(), Body: body}, nil
}

// Saver stores artifacts.
type Saver interface {
	Save(a Artifact) (string, error)
}

// DirSaver saves artifacts as files in a directory.
type DirSaver struct {
	Dir string // current directory when empty
}

// Save writes the artifact into the directory and returns its path.
func (s DirSaver) Save(a Artifact) (string, error) {
	name := filepath.Join(s.Dir, filepath.Base(a.Filename))
	if err := os.WriteFile(name, a.Body, 0644); err != nil {
		return "", fmt.Errorf("cannot save %q: %w", name, err)
	}
	return name, nil
}
