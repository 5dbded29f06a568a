package chart

import "strconv"

// FormatValue renders a tooltip value with exactly three decimals.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// TooltipLabel builds the tooltip text for point index of series s.
//
// The base text is "<label>: <value>", or just the value when the label is
// empty. When useCategory is set and s is category-annotated, the category at
// index is appended as " Category: <name>". Out-of-range indexes leave the
// base text unchanged.
func TooltipLabel(s Series, categories []string, index int, value float64, useCategory bool) string {
	label := FormatValue(value)
	if s.Label != "" {
		label = s.Label + ": " + label
	}

	if !useCategory || s.Kind != SeriesCategoryAnnotated {
		return label
	}
	category, ok := Dataset{Categories: categories}.Category(index)
	if !ok {
		return label
	}
	return label + " Category: " + category
}

// tooltipLabels precomputes the tooltip text for every point of s.
func tooltipLabels(s Series, categories []string, useCategory bool) []string {
	labels := make([]string, len(s.Points))
	for i, p := range s.Points {
		labels[i] = TooltipLabel(s, categories, i, p.Y, useCategory)
	}
	return labels
}
