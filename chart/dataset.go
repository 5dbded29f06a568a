package chart

import "strings"

// CategoryMarker is the label text that marks a series as carrying
// per-point categories in legacy datasets.
const CategoryMarker = "CII attained"

// SeriesKind controls how a series is annotated in tooltips.
type SeriesKind int

const (
	// SeriesStandard series show only the label and value.
	SeriesStandard SeriesKind = iota
	// SeriesCategoryAnnotated series may append the dataset category of the hovered point.
	SeriesCategoryAnnotated
)

func (k SeriesKind) String() string {
	switch k {
	case SeriesCategoryAnnotated:
		return "category"
	default:
		return "standard"
	}
}

// ParseSeriesKind maps "category" to SeriesCategoryAnnotated and anything else
// to SeriesStandard. The second result reports whether s named a known kind.
func ParseSeriesKind(s string) (SeriesKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "category", "category_annotated":
		return SeriesCategoryAnnotated, true
	case "standard":
		return SeriesStandard, true
	default:
		return SeriesStandard, false
	}
}

// Point is one (x, y) pair. X is the category-scale label.
type Point struct {
	X string  `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Series is one named line within a chart.
type Series struct {
	Label  string
	Kind   SeriesKind
	Points []Point
}

// Dataset is the data drawn by a panel.
// Categories, when set, must be index-aligned with the points of every
// category-annotated series.
type Dataset struct {
	Series     []Series
	Categories []string
}

func NewSeries(label string, points ...Point) Series {
	return Series{Label: label, Kind: SeriesStandard, Points: points}
}

func NewCategorySeries(label string, points ...Point) Series {
	return Series{Label: label, Kind: SeriesCategoryAnnotated, Points: points}
}

// ClassifySeries builds a series whose kind is derived from its label:
// labels containing CategoryMarker become category-annotated.
// Use it once when ingesting data that predates explicit kinds.
func ClassifySeries(label string, points ...Point) Series {
	if strings.Contains(label, CategoryMarker) {
		return NewCategorySeries(label, points...)
	}
	return NewSeries(label, points...)
}

// Category returns the category at index i, or false when i is out of range.
func (d Dataset) Category(i int) (string, bool) {
	if i < 0 || i >= len(d.Categories) {
		return "", false
	}
	return d.Categories[i], true
}
