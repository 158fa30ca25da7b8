// =================================
// File: internal/series/controller_test.go
// =================================
package series

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

func newTestController() (*Controller, *[][]Point) {
	published := make([][]Point, 0)
	ctl := NewController(func(pts []Point) {
		published = append(published, pts)
	}, zap.NewNop())
	ctl.SetClock(func() time.Time { return testNow })
	return ctl, &published
}

func TestControllerPublishesOnNewSeries(t *testing.T) {
	ctl, published := newTestController()

	ctl.SetSeries([]RawPoint{
		{Time: "15-03-2024", Value: "100"},
		{Time: "15-01-2024", Value: "90"},
	})

	require.Len(t, *published, 1)
	assert.Equal(t, []Point{
		{Time: "2024-01-15", Value: 90},
		{Time: "2024-03-15", Value: 100},
	}, (*published)[0])
}

func TestControllerPublishesOnIntervalSwitch(t *testing.T) {
	ctl, published := newTestController()

	ctl.SetSeries([]RawPoint{
		{Time: "15-03-2024", Value: "100"},
		{Time: "15-01-2024", Value: "90"},
	})
	require.NoError(t, ctl.SetInterval(Interval1M))

	require.Len(t, *published, 2)
	assert.Equal(t, []Point{{Time: "2024-03-15", Value: 100}}, (*published)[1])
	assert.Equal(t, Interval1M, ctl.Interval())
}

func TestControllerRejectsUnknownInterval(t *testing.T) {
	ctl, published := newTestController()
	ctl.SetSeries([]RawPoint{{Time: "15-03-2024", Value: "100"}})
	before := len(*published)

	err := ctl.SetInterval(Interval("2W"))

	require.Error(t, err)
	// The previous selection stays in effect and nothing is republished.
	assert.Equal(t, IntervalAll, ctl.Interval())
	assert.Len(t, *published, before)
}

func TestControllerLastWriteWins(t *testing.T) {
	ctl, published := newTestController()

	ctl.SetSeries([]RawPoint{{Time: "15-03-2024", Value: "100"}})
	ctl.SetSeries([]RawPoint{{Time: "16-03-2024", Value: "200"}})

	require.Len(t, *published, 2)
	last := (*published)[len(*published)-1]
	require.Len(t, last, 1)
	assert.Equal(t, Point{Time: "2024-03-16", Value: 200}, last[0])
}

func TestControllerRewindowsLatestSeriesOnSwitch(t *testing.T) {
	ctl, published := newTestController()

	ctl.SetSeries([]RawPoint{{Time: "15-01-2024", Value: "90"}})
	ctl.SetSeries([]RawPoint{
		{Time: "15-01-2024", Value: "90"},
		{Time: "15-03-2024", Value: "100"},
	})
	require.NoError(t, ctl.SetInterval(Interval1M))

	// No stale cache: the switch recomputes from the latest raw series.
	last := (*published)[len(*published)-1]
	assert.Equal(t, []Point{{Time: "2024-03-15", Value: 100}}, last)
}

func TestControllerNilPublisher(t *testing.T) {
	ctl := NewController(nil, nil)
	ctl.SetClock(func() time.Time { return testNow })

	// Must tolerate having no rendering surface attached.
	ctl.SetSeries([]RawPoint{{Time: "15-03-2024", Value: "100"}})
	assert.NoError(t, ctl.SetInterval(Interval6M))
}
