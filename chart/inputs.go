package chart

import "context"

const (
	DefaultHeight         = 350
	DefaultYMaxTicksLimit = 8
	DefaultYStepSize      = 0.005
)

// Inputs is everything a panel needs to render. Build it with New so the
// defaults are in place; zero values in a literal fall back to the same
// defaults when options are derived.
type Inputs struct {
	// ID identifies the panel in the page; the root element id is "chart-panel-<ID>".
	ID           string
	Title        string
	XLabel       string
	YLabel       string
	UpdatedLabel string
	Dataset      Dataset

	Height          int
	YMaxTicksLimit  int
	YStepSize       float64
	CategoryTooltip bool

	// EventsURL receives click events from the browser. Empty disables posting.
	EventsURL     string
	OnClick       EventHandler
	OnDoubleClick EventHandler
}

// Option configures Inputs.
type Option func(*Inputs)

func WithID(id string) Option {
	return func(in *Inputs) { in.ID = id }
}

func WithAxisLabels(x, y string) Option {
	return func(in *Inputs) {
		in.XLabel = x
		in.YLabel = y
	}
}

// WithUpdatedLabel sets the footer text. It is rendered as given.
func WithUpdatedLabel(label string) Option {
	return func(in *Inputs) { in.UpdatedLabel = label }
}

// WithHeight sets the chart body height in pixels. Non-positive values are ignored.
func WithHeight(px int) Option {
	return func(in *Inputs) {
		if px > 0 {
			in.Height = px
		}
	}
}

// WithYMaxTicksLimit caps the number of y-axis ticks. Non-positive values are ignored.
func WithYMaxTicksLimit(n int) Option {
	return func(in *Inputs) {
		if n > 0 {
			in.YMaxTicksLimit = n
		}
	}
}

// WithYStepSize sets the y-axis tick step. Non-positive values are ignored.
func WithYStepSize(step float64) Option {
	return func(in *Inputs) {
		if step > 0 {
			in.YStepSize = step
		}
	}
}

func WithCategoryTooltip(enabled bool) Option {
	return func(in *Inputs) { in.CategoryTooltip = enabled }
}

func WithEventsURL(url string) Option {
	return func(in *Inputs) { in.EventsURL = url }
}

// WithOnClick ignores nil handlers.
func WithOnClick(h EventHandler) Option {
	return func(in *Inputs) {
		if h != nil {
			in.OnClick = h
		}
	}
}

// WithOnDoubleClick ignores nil handlers.
func WithOnDoubleClick(h EventHandler) Option {
	return func(in *Inputs) {
		if h != nil {
			in.OnDoubleClick = h
		}
	}
}

// New returns Inputs with every default applied, then opts.
func New(title string, data Dataset, opts ...Option) Inputs {
	in := Inputs{
		Title:          title,
		Dataset:        data,
		Height:         DefaultHeight,
		YMaxTicksLimit: DefaultYMaxTicksLimit,
		YStepSize:      DefaultYStepSize,
		OnClick:        noopHandler,
		OnDoubleClick:  noopHandler,
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}

// normalized fills zero-valued fields with their defaults.
func (in Inputs) normalized() Inputs {
	if in.Height <= 0 {
		in.Height = DefaultHeight
	}
	if in.YMaxTicksLimit <= 0 {
		in.YMaxTicksLimit = DefaultYMaxTicksLimit
	}
	if in.YStepSize <= 0 {
		in.YStepSize = DefaultYStepSize
	}
	if in.OnClick == nil {
		in.OnClick = noopHandler
	}
	if in.OnDoubleClick == nil {
		in.OnDoubleClick = noopHandler
	}
	return in
}

func noopHandler(context.Context, Event) {}
