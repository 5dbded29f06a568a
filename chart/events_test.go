package chart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaboard/dashkit/chart"
)

func TestDispatch(t *testing.T) {
	t.Parallel()
	var clicks, dblclicks []chart.Event
	in := chart.New("t", sampleDataset(),
		chart.WithOnClick(func(_ context.Context, e chart.Event) { clicks = append(clicks, e) }),
		chart.WithOnDoubleClick(func(_ context.Context, e chart.Event) { dblclicks = append(dblclicks, e) }),
	)

	require.NoError(t, in.Dispatch(context.Background(), chart.Event{Kind: chart.EventClick, SeriesIndex: 0, PointIndex: 1}))
	require.NoError(t, in.Dispatch(context.Background(), chart.Event{Kind: chart.EventDoubleClick, SeriesIndex: 1, PointIndex: 0}))

	assert.Equal(t, []chart.Event{{Kind: chart.EventClick, SeriesIndex: 0, PointIndex: 1}}, clicks)
	assert.Equal(t, []chart.Event{{Kind: chart.EventDoubleClick, SeriesIndex: 1, PointIndex: 0}}, dblclicks)
}

func TestDispatch_Errors(t *testing.T) {
	t.Parallel()
	in := chart.New("t", sampleDataset())

	err := in.Dispatch(context.Background(), chart.Event{Kind: "hover"})
	assert.ErrorIs(t, err, chart.ErrUnknownEvent)

	err = in.Dispatch(context.Background(), chart.Event{Kind: chart.EventClick, SeriesIndex: 2})
	assert.ErrorIs(t, err, chart.ErrEventOutOfRange)

	err = in.Dispatch(context.Background(), chart.Event{Kind: chart.EventClick, PointIndex: 5})
	assert.ErrorIs(t, err, chart.ErrEventOutOfRange)
}

func TestDispatch_DefaultHandlersAreNoop(t *testing.T) {
	t.Parallel()
	in := chart.Inputs{Dataset: sampleDataset()}
	assert.NoError(t, in.Dispatch(context.Background(), chart.Event{Kind: chart.EventClick}))
	assert.NoError(t, in.Dispatch(context.Background(), chart.Event{Kind: chart.EventDoubleClick}))
}
