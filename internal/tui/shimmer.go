package tui

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"
)

// ShimmerConfig holds configuration for the label shimmer
type ShimmerConfig struct {
	Enabled        bool    // animations on/off
	SpeedMs        int     // tick interval
	WidthRatio     float64 // highlight width relative to text length
	CycleMs        int     // time for one sweep across the text
	PauseBetweenMs int     // pause between sweeps
}

// DefaultShimmerConfig returns the shimmer used on wizard labels.
// POKERLOG_NO_ANIMATION disables it.
func DefaultShimmerConfig() ShimmerConfig {
	return ShimmerConfig{
		Enabled:        os.Getenv("POKERLOG_NO_ANIMATION") == "",
		SpeedMs:        100,
		WidthRatio:     0.25,
		CycleMs:        1800,
		PauseBetweenMs: 500,
	}
}

// ShimmerState tracks one sweeping highlight
type ShimmerState struct {
	config    ShimmerConfig
	center    float64
	paused    bool
	pauseFrom time.Time
	trueColor bool
}

// NewShimmerState creates a new shimmer state
func NewShimmerState(config ShimmerConfig) *ShimmerState {
	return &ShimmerState{
		config:    config,
		trueColor: os.Getenv("COLORTERM") == "truecolor",
	}
}

// Active reports whether the shimmer animates
func (s *ShimmerState) Active() bool {
	return s.config.Enabled
}

// TickInterval returns the interval for tea.Tick commands
func (s *ShimmerState) TickInterval() time.Duration {
	return time.Duration(s.config.SpeedMs) * time.Millisecond
}

// Reset restarts the sweep (call when the focused field changes)
func (s *ShimmerState) Reset() {
	s.center = 0
	s.paused = false
	s.pauseFrom = time.Time{}
}

// Advance moves the highlight one tick along a text of length n
func (s *ShimmerState) Advance(n int, now time.Time) {
	if !s.config.Enabled || n <= 0 {
		return
	}

	overshoot := float64(n) * s.config.WidthRatio
	if s.paused {
		if now.Sub(s.pauseFrom) >= time.Duration(s.config.PauseBetweenMs)*time.Millisecond {
			s.paused = false
			s.center = -overshoot
		}
		return
	}

	ticksPerCycle := float64(s.config.CycleMs) / float64(s.config.SpeedMs)
	s.center += (float64(n) + 2*overshoot) / ticksPerCycle

	if end := float64(n) + overshoot; s.center >= end {
		s.center = end
		s.paused = true
		s.pauseFrom = now
	}
}

// Render colors text with the highlight at its current position
func (s *ShimmerState) Render(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	if !s.config.Enabled {
		return fmt.Sprintf("\033[38;2;245;197;66m%s\033[0m", text) // ColorAccentBright
	}

	sigma := math.Max(1, s.config.WidthRatio*float64(len(runes))/2)

	var b strings.Builder
	for i, r := range runes {
		dx := float64(i) - s.center
		weight := math.Exp(-(dx * dx) / (2 * sigma * sigma))

		if !s.trueColor {
			// 256-color approximation: gold highlight over light grey
			code := 250
			if weight > 0.5 {
				code = 220
			}
			fmt.Fprintf(&b, "\033[38;5;%dm%c", code, r)
			continue
		}

		// Blend secondary text #A9B8AE toward pale gold #FFF1C1
		red := blend(169, 255, weight)
		green := blend(184, 241, weight)
		blue := blend(174, 193, weight)
		fmt.Fprintf(&b, "\033[38;2;%d;%d;%dm%c", red, green, blue, r)
	}
	b.WriteString("\033[0m")
	return b.String()
}

func blend(base, highlight int, weight float64) int {
	return int(float64(base)*(1-weight) + float64(highlight)*weight)
}
