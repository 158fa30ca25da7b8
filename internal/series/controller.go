// =================================
// File: internal/series/controller.go
// =================================
package series

import (
	"time"

	"go.uber.org/zap"
)

// Publisher receives every rewindowed series. The push is one-way: the
// controller never reads anything back from the rendering surface.
type Publisher func([]Point)

// Controller owns the selected interval and the latest raw series, and
// republishes the windowed series whenever either changes. Windows are not
// cached across interval switches; every publish reflects the latest raw
// series (last write wins).
type Controller struct {
	interval Interval
	raw      []RawPoint

	publish Publisher
	now     func() time.Time
	logger  *zap.Logger
}

// NewController creates a controller that starts on the ALL interval.
func NewController(publish Publisher, logger *zap.Logger) *Controller {
	if publish == nil {
		publish = func([]Point) {}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		interval: IntervalAll,
		publish:  publish,
		now:      time.Now,
		logger:   logger,
	}
}

// SetClock overrides the time source. Used by tests to pin "now".
func (c *Controller) SetClock(now func() time.Time) {
	if now != nil {
		c.now = now
	}
}

// Interval returns the currently selected interval.
func (c *Controller) Interval() Interval { return c.interval }

// SetInterval switches the trailing window and republishes. An unknown
// interval is rejected and the previous selection stays in effect.
func (c *Controller) SetInterval(iv Interval) error {
	pts, err := Window(c.raw, iv, c.now())
	if err != nil {
		c.logger.Warn("Interval rejected", zap.String("interval", string(iv)), zap.Error(err))
		return err
	}
	c.interval = iv
	c.push(pts)
	return nil
}

// SetSeries replaces the raw series and republishes under the current
// interval.
func (c *Controller) SetSeries(raw []RawPoint) {
	c.raw = raw
	// The current interval is always valid, so Window cannot fail here.
	pts, _ := Window(c.raw, c.interval, c.now())
	c.push(pts)
}

func (c *Controller) push(pts []Point) {
	c.logger.Debug("Series published",
		zap.String("interval", string(c.interval)),
		zap.Int("raw_points", len(c.raw)),
		zap.Int("published_points", len(pts)))
	c.publish(pts)
}
