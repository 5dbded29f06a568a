package chart

import (
	"context"
	"fmt"
)

// EventKind names a pointer interaction reported by the browser.
type EventKind string

const (
	EventClick       EventKind = "click"
	EventDoubleClick EventKind = "dblclick"
)

// Event is a click on a chart element, resolved by the engine's own hit-testing.
type Event struct {
	Kind        EventKind `json:"kind"`
	SeriesIndex int       `json:"series"`
	PointIndex  int       `json:"index"`
}

// EventHandler receives dispatched chart events.
type EventHandler func(ctx context.Context, e Event)

// Dispatch routes e to OnClick or OnDoubleClick. Events that do not point at
// an existing series and point are rejected with ErrEventOutOfRange.
func (in Inputs) Dispatch(ctx context.Context, e Event) error {
	in = in.normalized()

	if e.SeriesIndex < 0 || e.SeriesIndex >= len(in.Dataset.Series) {
		return fmt.Errorf("%w: series %d", ErrEventOutOfRange, e.SeriesIndex)
	}
	if e.PointIndex < 0 || e.PointIndex >= len(in.Dataset.Series[e.SeriesIndex].Points) {
		return fmt.Errorf("%w: point %d", ErrEventOutOfRange, e.PointIndex)
	}

	switch e.Kind {
	case EventClick:
		in.OnClick(ctx, e)
	case EventDoubleClick:
		in.OnDoubleClick(ctx, e)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, e.Kind)
	}
	return nil
}
