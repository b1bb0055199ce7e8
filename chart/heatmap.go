package chart

import (
	"cmp"
	"math"
	"slices"
	"strconv"
)

// HeatmapBuckets is the number of color intensities of a heatmap.
const HeatmapBuckets = 7

// heatmapRamp goes from the lightest to the darkest cell color.
var heatmapRamp = [HeatmapBuckets]Swatch{
	{"#bae6fd", "#0c4a6e"},
	{"#7dd3fc", "#0c4a6e"},
	{"#38bdf8", "#ffffff"},
	{"#0ea5e9", "#ffffff"},
	{"#0284c7", "#ffffff"},
	{"#0369a1", "#ffffff"},
	{"#075985", "#ffffff"},
}

// HeatmapColor returns the cell colors of an intensity bucket.
func HeatmapColor(bucket int) Swatch {
	return heatmapRamp[min(max(bucket, 0), HeatmapBuckets-1)]
}

// Heatmap renders a grid of cells, most used first, whose color darkens with
// the value.
type Heatmap struct {
	Columns    int     // default 4
	CellWidth  float64 // default 140
	CellHeight float64 // default 70
	Gap        float64 // default 10
}

// DefaultHeatmap is the heatmap used by reports.
var DefaultHeatmap = Heatmap{Columns: 4, CellWidth: 140, CellHeight: 70, Gap: 10}

func (h Heatmap) withDefaults() Heatmap {
	if h.Columns <= 0 {
		h.Columns = DefaultHeatmap.Columns
	}
	if h.CellWidth <= 0 {
		h.CellWidth = DefaultHeatmap.CellWidth
	}
	if h.CellHeight <= 0 {
		h.CellHeight = DefaultHeatmap.CellHeight
	}
	if h.Gap <= 0 {
		h.Gap = DefaultHeatmap.Gap
	}
	return h
}

// Render implements Renderer.
//
// Cells are sorted by descending value, ties by label, and laid out row by
// row.
func (h Heatmap) Render(data []Datum) Drawing {
	h = h.withDefaults()
	if len(data) == 0 {
		return Drawing{Label: "Heatmap"}
	}
	data, maxValue := prepare(data)
	slices.SortStableFunc(data, func(a, b Datum) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})

	cols := min(h.Columns, len(data))
	rows := int(math.Ceil(float64(len(data)) / float64(cols)))
	d := Drawing{
		Width:  float64(cols)*h.CellWidth + float64(cols-1)*h.Gap,
		Height: float64(rows)*h.CellHeight + float64(rows-1)*h.Gap,
		Label:  "Heatmap",
	}
	for i, v := range data {
		x := float64(i%cols) * (h.CellWidth + h.Gap)
		y := float64(i/cols) * (h.CellHeight + h.Gap)
		value := strconv.FormatFloat(v.Value, 'f', -1, 64)
		color := HeatmapColor(IntensityBucket(v.Value, maxValue, HeatmapBuckets))
		d.Shapes = append(d.Shapes,
			Rect{X: x, Y: y, Width: h.CellWidth, Height: h.CellHeight, Fill: color.Background, Class: "cell", Title: v.Label + ": " + value},
			Text{X: x + h.CellWidth/2, Y: y + h.CellHeight*0.45, Text: value, Anchor: "middle", Size: 22, Fill: color.Foreground, Bold: true, Class: "value"},
			Text{X: x + h.CellWidth/2, Y: y + h.CellHeight*0.8, Text: v.Label, Anchor: "middle", Size: 12, Fill: color.Foreground, Class: "label"},
		)
	}
	return d
}
