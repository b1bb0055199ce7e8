package chart

import (
	"hash/fnv"
	"math"
)

// Swatch is a pair of background and text colors.
type Swatch struct {
	Background string
	Foreground string
}

// Palette is the fixed set of swatches labels are assigned to.
var Palette = []Swatch{
	{"#e0f2fe", "#075985"}, // sky
	{"#dcfce7", "#166534"}, // green
	{"#fef9c3", "#854d0e"}, // yellow
	{"#fee2e2", "#991b1b"}, // red
	{"#ede9fe", "#5b21b6"}, // violet
	{"#fce7f3", "#9d174d"}, // pink
	{"#ffedd5", "#9a3412"}, // orange
	{"#f1f5f9", "#334155"}, // slate
}

// HashColorClass returns the palette slot of a label.
//
// The slot is the 32-bit FNV-1a hash of the UTF-8 label modulo the palette
// size, so it is the same on every run and every platform.
func HashColorClass(label string) int {
	h := fnv.New32a()
	h.Write([]byte(label))
	return int(h.Sum32() % uint32(len(Palette)))
}

// LabelColor returns the swatch assigned to a label.
func LabelColor(label string) Swatch { return Palette[HashColorClass(label)] }

// Font sizes, in rem, of the least and most frequent labels of a batch.
const (
	MinFontSize = 0.75
	MaxFontSize = 2.0
)

// FontSizeForCount interpolates linearly between MinFontSize and MaxFontSize
// the position of count within [minCount, maxCount].
//
// When all counts are equal the midpoint size is returned.
func FontSizeForCount(count, minCount, maxCount int) float64 {
	if maxCount <= minCount {
		return (MinFontSize + MaxFontSize) / 2
	}
	count = min(max(count, minCount), maxCount)
	t := float64(count-minCount) / float64(maxCount-minCount)
	return MinFontSize + t*(MaxFontSize-MinFontSize)
}

// IntensityBucket maps value in [0, maxValue] to a bucket index in
// [0, bucketCount-1], rounding half away from zero.
//
// A zero maxValue maps everything to the lowest bucket.
func IntensityBucket(value, maxValue float64, bucketCount int) int {
	if bucketCount <= 1 || maxValue <= 0 || math.IsNaN(value) || math.IsNaN(maxValue) || math.IsInf(maxValue, 0) {
		return 0
	}
	r := min(max(value/maxValue, 0), 1)
	return int(math.Round(r * float64(bucketCount-1)))
}
