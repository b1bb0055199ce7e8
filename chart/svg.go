package chart

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"
)

// SVG encodes the drawing as a standalone SVG element scaled to the width of
// its container. An empty drawing encodes to the empty string.
func (d Drawing) SVG() string {
	if d.IsEmpty() {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="100%%" preserveAspectRatio="xMidYMid meet" role="img" aria-label="%s">`,
		num(d.Width), num(d.Height), html.EscapeString(d.Label))
	b.WriteString("\n")
	for _, s := range d.Shapes {
		writeShape(&b, s)
		b.WriteString("\n")
	}
	b.WriteString("</svg>")
	return b.String()
}

func writeShape(b *strings.Builder, s Shape) {
	switch s := s.(type) {
	case Rect:
		fmt.Fprintf(b, `<rect class="%s" x="%s" y="%s" width="%s" height="%s" fill="%s">`,
			s.Class, num(s.X), num(s.Y), num(s.Width), num(s.Height), s.Fill)
		if s.Title != "" {
			fmt.Fprintf(b, "<title>%s</title>", html.EscapeString(s.Title))
		}
		b.WriteString("</rect>")
	case Line:
		fmt.Fprintf(b, `<line class="%s" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1"/>`,
			s.Class, num(s.X1), num(s.Y1), num(s.X2), num(s.Y2), s.Stroke)
	case Polygon:
		pts := make([]string, len(s.Points))
		for i, p := range s.Points {
			pts[i] = num(p.X) + "," + num(p.Y)
		}
		fmt.Fprintf(b, `<polygon class="%s" points="%s" stroke="%s" stroke-width="%s" fill="%s"/>`,
			s.Class, strings.Join(pts, " "), s.Stroke, num(s.StrokeWidth), s.Fill)
	case Circle:
		fmt.Fprintf(b, `<circle class="%s" cx="%s" cy="%s" r="%s" fill="%s"/>`,
			s.Class, num(s.Center.X), num(s.Center.Y), num(s.R), s.Fill)
	case Text:
		weight := ""
		if s.Bold {
			weight = ` font-weight="bold"`
		}
		fmt.Fprintf(b, `<text class="%s" x="%s" y="%s" text-anchor="%s" dominant-baseline="middle" font-size="%s" fill="%s"%s>%s</text>`,
			s.Class, num(s.X), num(s.Y), s.Anchor, num(s.Size), s.Fill, weight, html.EscapeString(s.Text))
	}
}

// num formats a coordinate with at most two decimals.
func num(f float64) string {
	f = math.Round(f*100) / 100
	if f == 0 {
		f = 0 // no "-0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
