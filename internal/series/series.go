// =================================
// File: internal/series/series.go
// =================================
package series

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Wire formats for point timestamps. The data layer delivers day-month-year
// dates; charts consume ISO dates so lexicographic order matches
// chronological order.
const (
	RawTimeFormat = "02-01-2006"
	TimeFormat    = "2006-01-02"
)

// RawPoint is a point as delivered by the data layer: a DD-MM-YYYY date and
// a decimal value encoded as text. Raw series carry no ordering guarantee.
type RawPoint struct {
	Time  string `json:"time"`
	Value string `json:"value"`
}

// Point is a normalized chart point: ISO date, parsed value.
type Point struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// Interval is a trailing window bound for a chart.
type Interval string

const (
	Interval1M  Interval = "1M"
	Interval6M  Interval = "6M"
	Interval1Y  Interval = "1Y"
	Interval3Y  Interval = "3Y"
	Interval5Y  Interval = "5Y"
	IntervalAll Interval = "ALL"
)

var intervalDays = map[Interval]int{
	Interval1M: 30,
	Interval6M: 180,
	Interval1Y: 365,
	Interval3Y: 1095,
	Interval5Y: 1825,
}

// Intervals returns the selectable intervals in display order.
func Intervals() []Interval {
	return []Interval{Interval1M, Interval6M, Interval1Y, Interval3Y, Interval5Y, IntervalAll}
}

// ParseInterval validates a user-supplied interval symbol. Unknown symbols
// are rejected rather than silently defaulted, so a mis-filtered chart can
// never look valid.
func ParseInterval(s string) (Interval, error) {
	iv := Interval(strings.ToUpper(strings.TrimSpace(s)))
	if iv == IntervalAll {
		return iv, nil
	}
	if _, ok := intervalDays[iv]; !ok {
		return "", fmt.Errorf("unknown interval %q", s)
	}
	return iv, nil
}

// Days returns the trailing day count of the interval. ok is false for ALL,
// which applies no lower bound.
func (iv Interval) Days() (days int, ok bool) {
	days, ok = intervalDays[iv]
	return days, ok
}

// Window normalizes a raw series and bounds it to the trailing interval
// ending at now (the cutoff is inclusive). Points whose date or value fail
// to parse are skipped. The output is sorted ascending by date with a
// stable sort, so duplicate dates keep their input order. now is an
// explicit parameter; this function never reads the clock.
//
// An empty or nil input returns an empty series. The only error is an
// interval symbol outside the defined vocabulary.
func Window(raw []RawPoint, iv Interval, now time.Time) ([]Point, error) {
	days, bounded := intervalDays[iv]
	if !bounded && iv != IntervalAll {
		return nil, fmt.Errorf("unknown interval %q", iv)
	}

	cutoff := now.AddDate(0, 0, -days)

	type datedPoint struct {
		at time.Time
		p  Point
	}

	kept := make([]datedPoint, 0, len(raw))
	for _, rp := range raw {
		at, err := time.Parse(RawTimeFormat, strings.TrimSpace(rp.Time))
		if err != nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rp.Value), 64)
		if err != nil {
			continue
		}
		if bounded && at.Before(cutoff) {
			continue
		}
		kept = append(kept, datedPoint{at: at, p: Point{Time: at.Format(TimeFormat), Value: v}})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].at.Before(kept[j].at)
	})

	out := make([]Point, len(kept))
	for i, dp := range kept {
		out[i] = dp.p
	}
	return out, nil
}
