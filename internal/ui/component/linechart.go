// =================================
// File: internal/ui/component/linechart.go
// =================================
package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/niveshak-app/niveshak/internal/series"
	"github.com/niveshak-app/niveshak/internal/ui/style"
)

// LineChart renders a normalized series as a block-character chart with a
// value axis and date range footer. It is a passive rendering surface: the
// chart controller pushes points in, nothing is read back.
type LineChart struct {
	points []series.Point
	width  int
	height int

	chartStyle  lipgloss.Style
	axisStyle   lipgloss.Style
	footerStyle lipgloss.Style
	gainColor   lipgloss.Color
	lossColor   lipgloss.Color
}

// NewLineChart creates a chart with the given plot area.
func NewLineChart(width, height int) *LineChart {
	palette := style.DefaultPalette()

	return &LineChart{
		width:  width,
		height: height,

		chartStyle:  lipgloss.NewStyle(),
		axisStyle:   lipgloss.NewStyle().Foreground(palette.TextMuted),
		footerStyle: lipgloss.NewStyle().Foreground(palette.TextSecondary),
		gainColor:   palette.Gain,
		lossColor:   palette.Loss,
	}
}

// SetPoints replaces the rendered series. Points are assumed sorted
// ascending by time, which is what the windowing operation guarantees.
func (c *LineChart) SetPoints(points []series.Point) *LineChart {
	c.points = make([]series.Point, len(points))
	copy(c.points, points)
	return c
}

// SetSize resizes the plot area.
func (c *LineChart) SetSize(width, height int) *LineChart {
	if width > 0 {
		c.width = width
	}
	if height > 0 {
		c.height = height
	}
	return c
}

// View renders the chart.
func (c *LineChart) View() string {
	if len(c.points) == 0 {
		return c.axisStyle.Render("no data for this interval")
	}

	cols := c.columns()
	min, max := c.minMax()

	color := c.gainColor
	if c.points[len(c.points)-1].Value < c.points[0].Value {
		color = c.lossColor
	}
	plotStyle := c.chartStyle.Foreground(color)

	// Each cell resolves to one of 8 block heights; a column is drawn as a
	// full stack of blocks up to its level.
	levels := make([]int, len(cols))
	span := max - min
	for i, v := range cols {
		if span == 0 {
			levels[i] = c.height * 8 / 2
			continue
		}
		levels[i] = int((v - min) / span * float64(c.height*8))
	}

	var b strings.Builder
	for row := c.height - 1; row >= 0; row-- {
		b.WriteString(c.axisLabel(row, min, max))
		var line strings.Builder
		for _, level := range levels {
			line.WriteRune(blockRune(level - row*8))
		}
		b.WriteString(plotStyle.Render(line.String()))
		b.WriteString("\n")
	}

	b.WriteString(c.footer())
	return b.String()
}

// columns downsamples the series to the chart width, keeping the last
// value of each bucket.
func (c *LineChart) columns() []float64 {
	width := c.width
	if width < 1 {
		width = 1
	}
	if len(c.points) <= width {
		out := make([]float64, len(c.points))
		for i, p := range c.points {
			out[i] = p.Value
		}
		return out
	}

	out := make([]float64, width)
	for i := 0; i < width; i++ {
		idx := (i + 1) * len(c.points) / width
		out[i] = c.points[idx-1].Value
	}
	return out
}

func (c *LineChart) minMax() (float64, float64) {
	min, max := c.points[0].Value, c.points[0].Value
	for _, p := range c.points {
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
	}
	return min, max
}

func (c *LineChart) axisLabel(row int, min, max float64) string {
	switch row {
	case c.height - 1:
		return c.axisStyle.Render(fmt.Sprintf("%10.2f ┤", max))
	case 0:
		return c.axisStyle.Render(fmt.Sprintf("%10.2f ┤", min))
	default:
		return c.axisStyle.Render(strings.Repeat(" ", 11) + "│")
	}
}

func (c *LineChart) footer() string {
	first, last := c.points[0], c.points[len(c.points)-1]
	change := last.Value - first.Value
	pct := 0.0
	if first.Value != 0 {
		pct = change / first.Value * 100
	}
	return c.footerStyle.Render(fmt.Sprintf("%s → %s  (%+.2f, %+.2f%%)",
		first.Time, last.Time, change, pct))
}

// blockRune maps a residual level (in eighths) to a block character.
func blockRune(level int) rune {
	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	if level <= 0 {
		return blocks[0]
	}
	if level >= 8 {
		return blocks[8]
	}
	return blocks[level]
}
