package export

import (
	"fmt"
	"strings"
)

// Format is an encoding of a portfolio document.
type Format int

const (
	HTML Format = iota
	Markdown
)

// ParseFormat parses a format name: "html" or "md" (or "markdown").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html":
		return HTML, nil
	case "md", "markdown":
		return Markdown, nil
	}
	return 0, fmt.Errorf("unknown portfolio format %q, want html or md", s)
}

// Ext returns the file extension of the format, without the dot.
func (f Format) Ext() string {
	if f == Markdown {
		return "md"
	}
	return "html"
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == Markdown {
		return "text/markdown; charset=utf-8"
	}
	return "text/html; charset=utf-8"
}

func (f Format) String() string { return f.Ext() }
