package chart

const (
	// GridColor is shared by both axes.
	GridColor = "#e2e2e2"
	// LegendBoxWidth is the legend icon width in pixels.
	LegendBoxWidth = 20
	// KindLine is the only chart kind panels draw.
	KindLine = "line"
)

// Options mirrors the subset of the Chart.js options object that panels set.
type Options struct {
	Responsive          bool    `json:"responsive"`
	MaintainAspectRatio bool    `json:"maintainAspectRatio"`
	Hover               Hover   `json:"hover"`
	Plugins             Plugins `json:"plugins"`
	Scales              Scales  `json:"scales"`
}

type Hover struct {
	Intersect bool `json:"intersect"`
}

type Plugins struct {
	Legend  Legend  `json:"legend"`
	Tooltip Tooltip `json:"tooltip"`
	Filler  Filler  `json:"filler"`
}

type Legend struct {
	Display bool         `json:"display"`
	Labels  LegendLabels `json:"labels"`
}

type LegendLabels struct {
	BoxWidth int `json:"boxWidth"`
}

// Tooltip holds tooltip behaviour. Label text comes from the per-dataset
// tooltipLabels precomputed in BuildConfig.
type Tooltip struct {
	Intersect bool `json:"intersect"`
}

type Filler struct {
	Propagate bool `json:"propagate"`
}

type Scales struct {
	X Axis `json:"x"`
	Y Axis `json:"y"`
}

type Axis struct {
	Display bool      `json:"display"`
	Reverse bool      `json:"reverse"`
	Grid    Grid      `json:"grid"`
	Title   AxisTitle `json:"title"`
	Ticks   *Ticks    `json:"ticks,omitempty"`
}

type Grid struct {
	Color string `json:"color"`
}

type AxisTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

type Ticks struct {
	StepSize      float64 `json:"stepSize"`
	MaxTicksLimit int     `json:"maxTicksLimit"`
}

// BuildOptions derives the chart engine options from in. It is pure: the same
// inputs always give the same options.
func BuildOptions(in Inputs) Options {
	in = in.normalized()

	return Options{
		Responsive:          true,
		MaintainAspectRatio: false,
		Hover:               Hover{Intersect: true},
		Plugins: Plugins{
			Legend: Legend{
				Display: true,
				Labels:  LegendLabels{BoxWidth: LegendBoxWidth},
			},
			Tooltip: Tooltip{Intersect: false},
			Filler:  Filler{Propagate: false},
		},
		Scales: Scales{
			X: Axis{
				Display: true,
				Grid:    Grid{Color: GridColor},
				Title:   AxisTitle{Display: true, Text: in.XLabel},
			},
			Y: Axis{
				Display: true,
				Grid:    Grid{Color: GridColor},
				Title:   AxisTitle{Display: true, Text: in.YLabel},
				Ticks: &Ticks{
					StepSize:      in.YStepSize,
					MaxTicksLimit: in.YMaxTicksLimit,
				},
			},
		},
	}
}

// Config is the payload handed to the chart engine in the browser.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

type Data struct {
	Datasets []DatasetConfig `json:"datasets"`
}

// DatasetConfig is one series as the engine sees it.
type DatasetConfig struct {
	Label         string   `json:"label"`
	Kind          string   `json:"kind"`
	Data          []Point  `json:"data"`
	TooltipLabels []string `json:"tooltipLabels"`
}

// BuildConfig derives the full engine payload: chart kind, datasets with
// precomputed tooltip labels, and options.
func BuildConfig(in Inputs) Config {
	in = in.normalized()

	datasets := make([]DatasetConfig, 0, len(in.Dataset.Series))
	for _, s := range in.Dataset.Series {
		points := s.Points
		if points == nil {
			points = []Point{}
		}
		datasets = append(datasets, DatasetConfig{
			Label:         s.Label,
			Kind:          s.Kind.String(),
			Data:          points,
			TooltipLabels: tooltipLabels(s, in.Dataset.Categories, in.CategoryTooltip),
		})
	}

	return Config{
		Type:    KindLine,
		Data:    Data{Datasets: datasets},
		Options: BuildOptions(in),
	}
}
