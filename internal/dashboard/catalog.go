package dashboard

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/seaboard/dashkit/chart"
	"github.com/seaboard/dashkit/pkg/validator"
)

// Catalog is the set of panels the dashboard serves, in display order.
type Catalog struct {
	Panels []PanelDef `yaml:"panels"`
}

// PanelDef is one panel as declared in the catalog file.
type PanelDef struct {
	ID              string      `yaml:"id"`
	Title           string      `yaml:"title"`
	XLabel          string      `yaml:"x_label"`
	YLabel          string      `yaml:"y_label"`
	UpdatedLabel    string      `yaml:"updated"`
	Height          int         `yaml:"height"`
	YMaxTicksLimit  int         `yaml:"y_max_ticks"`
	YStepSize       float64     `yaml:"y_step"`
	CategoryTooltip bool        `yaml:"category_tooltip"`
	Categories      []string    `yaml:"categories"`
	Series          []SeriesDef `yaml:"series"`
}

// SeriesDef declares one line. Kind is "standard" or "category"; when empty
// the kind is derived from the label.
type SeriesDef struct {
	Label  string        `yaml:"label"`
	Kind   string        `yaml:"kind"`
	Points []chart.Point `yaml:"points"`
}

// LoadCatalog reads and validates a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrCatalogRead, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Join(ErrCatalogDecode, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every panel and rejects duplicate ids.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Panels))
	for i, p := range c.Panels {
		if err := p.Validate(); err != nil {
			return errors.Join(ErrInvalidCatalog, fmt.Errorf("panel %d: %w", i, err))
		}
		if seen[p.ID] {
			return errors.Join(ErrInvalidCatalog, fmt.Errorf("panel %d: duplicate id %q", i, p.ID))
		}
		seen[p.ID] = true
	}
	return nil
}

// Get returns the panel with the given id.
func (c *Catalog) Get(id string) (PanelDef, bool) {
	for _, p := range c.Panels {
		if p.ID == id {
			return p, true
		}
	}
	return PanelDef{}, false
}

func (p PanelDef) Validate() error {
	rules := []validator.Rule{
		validator.Required("id", p.ID),
		validator.MaxLen("id", p.ID, 64),
		validator.Required("title", p.Title),
		validator.MinNum("height", p.Height, 0),
		validator.MinNum("y_max_ticks", p.YMaxTicksLimit, 0),
		validator.MinNum("y_step", p.YStepSize, 0),
	}
	for i, s := range p.Series {
		if s.Kind == "" {
			continue
		}
		field := "series." + strconv.Itoa(i) + ".kind"
		_, ok := chart.ParseSeriesKind(s.Kind)
		rules = append(rules, validator.Rule{
			Check: func() bool { return ok },
			Error: validator.ValidationError{
				Field:   field,
				Message: "must be \"standard\" or \"category\"",
			},
		})
	}
	return validator.ApplyFirst(rules...)
}

// Dataset converts the declared series into chart data.
func (p PanelDef) Dataset() chart.Dataset {
	ds := chart.Dataset{
		Series:     make([]chart.Series, 0, len(p.Series)),
		Categories: p.Categories,
	}
	for _, s := range p.Series {
		if kind, ok := chart.ParseSeriesKind(s.Kind); ok {
			ds.Series = append(ds.Series, chart.Series{Label: s.Label, Kind: kind, Points: s.Points})
			continue
		}
		ds.Series = append(ds.Series, chart.ClassifySeries(s.Label, s.Points...))
	}
	return ds
}

// Inputs builds the chart inputs for the panel. opts are applied after the
// catalog values.
func (p PanelDef) Inputs(opts ...chart.Option) chart.Inputs {
	base := []chart.Option{
		chart.WithID(p.ID),
		chart.WithAxisLabels(p.XLabel, p.YLabel),
		chart.WithUpdatedLabel(p.UpdatedLabel),
		chart.WithHeight(p.Height),
		chart.WithYMaxTicksLimit(p.YMaxTicksLimit),
		chart.WithYStepSize(p.YStepSize),
		chart.WithCategoryTooltip(p.CategoryTooltip),
	}
	return chart.New(p.Title, p.Dataset(), append(base, opts...)...)
}
