package export

import (
	"bytes"
	"embed"
	"encoding/base64"
	htmltemplate "html/template"
	"io/fs"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	journal "github.com/etnz/fieldjournal"
	"github.com/etnz/fieldjournal/chart"
)

//go:embed templates
var templates embed.FS

var (
	md        = goldmark.New(goldmark.WithExtensions(extension.GFM))
	sanitizer = bluemonday.UGCPolicy()
)

// reflectionHTML converts a markdown reflection into sanitized HTML.
func reflectionHTML(src string) (htmltemplate.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return htmltemplate.HTML(sanitizer.SanitizeBytes(buf.Bytes())), nil
}

// imageURL returns the data URL of an image attachment. Anything but an
// inline image is left to the template escaper.
func imageURL(a *journal.Attachment) any {
	if a == nil {
		return ""
	}
	if strings.HasPrefix(a.Data, "data:image/") {
		return htmltemplate.URL(a.Data)
	}
	return a.Data
}

// generated formats the generation time of a document.
func generated(t time.Time) string {
	return journal.NewDate(t.Date()).Long() + ", " + t.Format("15:04")
}

// svgDataURL embeds a drawing as an image data URL for markdown.
func svgDataURL(d chart.Drawing) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(d.SVG()))
}

var funcs = map[string]any{
	"longDate":  journal.Date.Long,
	"generated": generated,
	"join":      strings.Join,
	"trim":      strings.TrimSpace,
}

func readTemplate(file string) (string, error) {
	content, err := fs.ReadFile(templates, "templates/"+file)
	return string(content), err
}

// renderHTML renders a main html template that depends on several partials.
func renderHTML(mainFile string, partials map[string]string, data any) ([]byte, error) {
	main, err := readTemplate(mainFile)
	if err != nil {
		return nil, err
	}
	tmpl := htmltemplate.New(mainFile).Funcs(funcs).Funcs(htmltemplate.FuncMap{
		"reflection": reflectionHTML,
		"image":      imageURL,
		"svg":        func(d chart.Drawing) htmltemplate.HTML { return htmltemplate.HTML(d.SVG()) },
	})
	if _, err := tmpl.Parse(main); err != nil {
		return nil, err
	}
	for name, file := range partials {
		content, err := readTemplate(file)
		if err != nil {
			return nil, err
		}
		if _, err := tmpl.New(name).Parse(content); err != nil {
			return nil, err
		}
	}
	var b bytes.Buffer
	if err := tmpl.ExecuteTemplate(&b, mainFile, data); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// renderText renders a main text template that depends on several partials.
func renderText(mainFile string, partials map[string]string, data any) ([]byte, error) {
	main, err := readTemplate(mainFile)
	if err != nil {
		return nil, err
	}
	tmpl := texttemplate.New(mainFile).Funcs(funcs).Funcs(texttemplate.FuncMap{
		"svgURL": svgDataURL,
	})
	if _, err := tmpl.Parse(main); err != nil {
		return nil, err
	}
	for name, file := range partials {
		content, err := readTemplate(file)
		if err != nil {
			return nil, err
		}
		if _, err := tmpl.New(name).Parse(content); err != nil {
			return nil, err
		}
	}
	var b bytes.Buffer
	if err := tmpl.ExecuteTemplate(&b, mainFile, data); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
