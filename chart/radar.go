package chart

import "math"

// Radar renders a spider chart with one axis per datum, axis 0 at the top and
// the following ones clockwise.
type Radar struct {
	Size    float64 // side of the square viewport, default 300
	Padding float64 // room for the axis labels, default 30
	Levels  int     // number of grid polygons, default 5
}

// DefaultRadar is the radar chart used by reports.
var DefaultRadar = Radar{Size: 300, Padding: 30, Levels: 5}

func (r Radar) withDefaults() Radar {
	if r.Size <= 0 {
		r.Size = DefaultRadar.Size
	}
	if r.Padding <= 0 || r.Padding*2 >= r.Size {
		r.Padding = DefaultRadar.Padding
	}
	if r.Levels <= 0 {
		r.Levels = DefaultRadar.Levels
	}
	return r
}

// Radius returns the distance from the center to the end of an axis.
func (r Radar) Radius() float64 {
	r = r.withDefaults()
	return r.Size/2 - r.Padding
}

// Render implements Renderer.
//
// The largest value reaches the end of its axis; it is floored to 1 so that
// all zero values still draw a (collapsed) polygon at the center.
func (r Radar) Render(data []Datum) Drawing {
	r = r.withDefaults()
	d := Drawing{Width: r.Size, Height: r.Size, Label: "Radar chart"}
	n := len(data)
	if n == 0 {
		return d
	}
	data, maxValue := prepare(data)
	maxValue = max(maxValue, 1)

	center := r.Size / 2
	radius := r.Radius()
	step := 2 * math.Pi / float64(n)
	point := func(dist float64, i int) Point {
		angle := step*float64(i) - math.Pi/2
		return Point{X: center + dist*math.Cos(angle), Y: center + dist*math.Sin(angle)}
	}

	for level := 1; level <= r.Levels; level++ {
		dist := radius * float64(level) / float64(r.Levels)
		grid := Polygon{Stroke: "#e2e8f0", Fill: "none", StrokeWidth: 1, Class: "grid"}
		for i := range n {
			grid.Points = append(grid.Points, point(dist, i))
		}
		d.Shapes = append(d.Shapes, grid)
	}

	for i, v := range data {
		end := point(radius, i)
		label := point(radius*1.15, i)
		anchor := "middle"
		switch {
		case label.X > center+1e-6:
			anchor = "start"
		case label.X < center-1e-6:
			anchor = "end"
		}
		d.Shapes = append(d.Shapes,
			Line{X1: center, Y1: center, X2: end.X, Y2: end.Y, Stroke: "#cbd5e1", Class: "axis"},
			Text{X: label.X, Y: label.Y, Text: v.Label, Anchor: anchor, Size: 10, Fill: "#475569", Class: "label"},
		)
	}

	poly := Polygon{Stroke: "#0284c7", StrokeWidth: 2, Fill: "rgba(2, 132, 199, 0.25)", Class: "data"}
	var dots []Shape
	for i, v := range data {
		p := point(v.Value/maxValue*radius, i)
		poly.Points = append(poly.Points, p)
		dots = append(dots, Circle{Center: p, R: 3, Fill: "#0284c7", Class: "dot"})
	}
	d.Shapes = append(d.Shapes, poly)
	d.Shapes = append(d.Shapes, dots...)
	return d
}
