// =================================
// File: internal/ui/component/slider.go
// =================================
package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/niveshak-app/niveshak/internal/ui/style"
)

// Slider represents a horizontal value picker driven by left/right keys.
// It is a view over a numeric value owned elsewhere: the screen writes the
// committed value into its controller and reads it back for rendering, so
// slider and text entry never hold separate state.
type Slider struct {
	min   float64
	max   float64
	step  float64
	value float64
	width int

	trackStyle lipgloss.Style
	thumbStyle lipgloss.Style
	labelStyle lipgloss.Style
}

// NewSlider creates a slider over [min, max] moving by step.
func NewSlider(min, max, step float64) *Slider {
	palette := style.DefaultPalette()

	s := &Slider{
		min:   min,
		max:   max,
		step:  step,
		value: min,
		width: 40,

		trackStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		thumbStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),

		labelStyle: lipgloss.NewStyle().
			Foreground(palette.TextSecondary),
	}
	return s
}

// SetWidth sets the rendered track width.
func (s *Slider) SetWidth(width int) *Slider {
	if width > 0 {
		s.width = width
	}
	return s
}

// SetValue sets the current value, clamped to the slider's range.
func (s *Slider) SetValue(v float64) *Slider {
	s.value = s.clamp(v)
	return s
}

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// Increase moves one step right and returns the new value.
func (s *Slider) Increase() float64 {
	s.value = s.clamp(s.value + s.step)
	return s.value
}

// Decrease moves one step left and returns the new value.
func (s *Slider) Decrease() float64 {
	s.value = s.clamp(s.value - s.step)
	return s.value
}

// View renders the slider track with the thumb position.
func (s *Slider) View() string {
	track := s.width
	if track < 3 {
		track = 3
	}

	pos := 0
	if s.max > s.min {
		pos = int((s.value - s.min) / (s.max - s.min) * float64(track-1))
	}
	if pos < 0 {
		pos = 0
	} else if pos > track-1 {
		pos = track - 1
	}

	var b strings.Builder
	b.WriteString(s.trackStyle.Render(strings.Repeat("─", pos)))
	b.WriteString(s.thumbStyle.Render("●"))
	b.WriteString(s.trackStyle.Render(strings.Repeat("─", track-1-pos)))
	return b.String()
}

func (s *Slider) clamp(v float64) float64 {
	if v < s.min {
		return s.min
	}
	if v > s.max {
		return s.max
	}
	return v
}
