package chart

import "strconv"

// Bar renders a vertical bar chart, one slot per datum in input order.
// The zero value renders on the default 600x250 viewport.
type Bar struct {
	Width  float64 // default 600
	Height float64 // default 250
	Margin float64 // vertical room for the labels, default 40
	Fill   string  // bar color
}

// DefaultBar is the bar chart used by reports and portfolios.
var DefaultBar = Bar{Width: 600, Height: 250, Margin: 40, Fill: "#0284c7"}

func (b Bar) withDefaults() Bar {
	if b.Width <= 0 {
		b.Width = DefaultBar.Width
	}
	if b.Height <= 0 {
		b.Height = DefaultBar.Height
	}
	if b.Margin <= 0 {
		b.Margin = DefaultBar.Margin
	}
	if b.Fill == "" {
		b.Fill = DefaultBar.Fill
	}
	return b
}

// Render implements Renderer.
//
// Each bar is drawn with its value above it and its label below it. Bars are
// scaled so that the largest value fills the height minus the margin.
func (b Bar) Render(data []Datum) Drawing {
	b = b.withDefaults()
	d := Drawing{Width: b.Width, Height: b.Height, Label: "Bar chart"}
	if len(data) == 0 {
		return d
	}
	data, maxValue := prepare(data)

	slot := b.Width / float64(len(data))
	baseline := b.Height - b.Margin/2
	for i, v := range data {
		h := ratio(v.Value, maxValue) * (b.Height - b.Margin)
		x := float64(i) * slot
		y := baseline - h
		value := strconv.FormatFloat(v.Value, 'f', -1, 64)
		d.Shapes = append(d.Shapes,
			Rect{
				X: x + slot*0.1, Y: y, Width: slot * 0.8, Height: h,
				Fill: b.Fill, Class: "bar", Title: v.Label + ": " + value,
			},
			Text{X: x + slot/2, Y: y - 5, Text: value, Anchor: "middle", Size: 12, Fill: "#0f172a", Class: "value"},
			Text{X: x + slot/2, Y: b.Height - 5, Text: v.Label, Anchor: "middle", Size: 10, Fill: "#475569", Class: "label"},
		)
	}
	return d
}
