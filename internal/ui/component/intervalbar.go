// =================================
// File: internal/ui/component/intervalbar.go
// =================================
package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/niveshak-app/niveshak/internal/series"
	"github.com/niveshak-app/niveshak/internal/ui/style"
)

// IntervalBar renders the chart's interval buttons (1M 6M 1Y 3Y 5Y ALL)
// and tracks the highlighted selection.
type IntervalBar struct {
	intervals []series.Interval
	selected  int

	buttonStyle   lipgloss.Style
	selectedStyle lipgloss.Style
}

// NewIntervalBar creates the bar with the standard interval vocabulary.
func NewIntervalBar() *IntervalBar {
	palette := style.DefaultPalette()

	return &IntervalBar{
		intervals: series.Intervals(),
		selected:  len(series.Intervals()) - 1, // ALL

		buttonStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Padding(0, 1),

		selectedStyle: lipgloss.NewStyle().
			Foreground(palette.Background).
			Background(palette.Primary).
			Bold(true).
			Padding(0, 1),
	}
}

// Selected returns the highlighted interval.
func (b *IntervalBar) Selected() series.Interval {
	return b.intervals[b.selected]
}

// Next highlights the next interval and returns it.
func (b *IntervalBar) Next() series.Interval {
	b.selected = (b.selected + 1) % len(b.intervals)
	return b.Selected()
}

// Prev highlights the previous interval and returns it.
func (b *IntervalBar) Prev() series.Interval {
	b.selected = (b.selected - 1 + len(b.intervals)) % len(b.intervals)
	return b.Selected()
}

// Select highlights a specific interval if it is part of the vocabulary.
func (b *IntervalBar) Select(iv series.Interval) bool {
	for i, candidate := range b.intervals {
		if candidate == iv {
			b.selected = i
			return true
		}
	}
	return false
}

// View renders the button row.
func (b *IntervalBar) View() string {
	parts := make([]string, 0, len(b.intervals))
	for i, iv := range b.intervals {
		if i == b.selected {
			parts = append(parts, b.selectedStyle.Render(string(iv)))
		} else {
			parts = append(parts, b.buttonStyle.Render(string(iv)))
		}
	}
	return strings.Join(parts, " ")
}
