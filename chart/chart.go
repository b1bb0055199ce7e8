// Package chart turns lists of labelled values into resolution independent
// vector drawings.
//
// Every [Renderer] is stateless: a call to Render computes the whole geometry
// from the given data and nothing else. A drawing can be encoded as a
// self-contained SVG image with [Drawing.SVG].
package chart

import (
	"math"
	"slices"
)

// Datum is a labelled non-negative value.
type Datum struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Renderer computes the geometry of a chart.
//
// An empty data list renders an empty drawing.
type Renderer interface {
	Render(data []Datum) Drawing
}

// Point is a position in the drawing coordinates, y growing downward.
type Point struct {
	X, Y float64
}

// Shape is one drawable element of a Drawing.
type Shape interface {
	shape()
}

// Rect is an axis aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
	Fill                string
	Class               string
	Title               string // tooltip
}

// Line is a straight segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	Class          string
}

// Polygon is a closed path through its points.
type Polygon struct {
	Points      []Point
	Stroke      string
	StrokeWidth float64
	Fill        string
	Class       string
}

// Circle is a disc.
type Circle struct {
	Center Point
	R      float64
	Fill   string
	Class  string
}

// Text is a label anchored at a point.
type Text struct {
	X, Y   float64
	Text   string
	Anchor string // start, middle or end
	Size   float64
	Fill   string
	Bold   bool
	Class  string
}

func (Rect) shape()    {}
func (Line) shape()    {}
func (Polygon) shape() {}
func (Circle) shape()  {}
func (Text) shape()    {}

// Drawing is a set of shapes in a fixed logical viewport.
type Drawing struct {
	Width, Height float64
	Label         string // accessible description
	Shapes        []Shape
}

// IsEmpty reports whether there is nothing to draw.
func (d Drawing) IsEmpty() bool { return len(d.Shapes) == 0 }

// Class returns the shapes of the given class, in drawing order.
func (d Drawing) Class(class string) []Shape {
	var res []Shape
	for _, s := range d.Shapes {
		if classOf(s) == class {
			res = append(res, s)
		}
	}
	return res
}

func classOf(s Shape) string {
	switch s := s.(type) {
	case Rect:
		return s.Class
	case Line:
		return s.Class
	case Polygon:
		return s.Class
	case Circle:
		return s.Class
	case Text:
		return s.Class
	}
	return ""
}

// prepare returns a copy of data where invalid values (negative, NaN or
// infinite) are replaced by 0, along with the largest value.
//
// All renderers go through it so that degenerate inputs are handled the same
// way.
func prepare(data []Datum) ([]Datum, float64) {
	res := slices.Clone(data)
	maxValue := 0.0
	for i, d := range res {
		if d.Value < 0 || math.IsNaN(d.Value) || math.IsInf(d.Value, 0) {
			res[i].Value = 0
		}
		maxValue = max(maxValue, res[i].Value)
	}
	return res, maxValue
}

// ratio returns v/maxValue, or 0 when maxValue is 0.
func ratio(v, maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}
	return v / maxValue
}
