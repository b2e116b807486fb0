package chart

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// DefaultColor is the line color used when a style leaves it empty.
const DefaultColor = "#60a5fa"

// ErrInvalidColor is returned by ParseColor for strings it cannot read.
var ErrInvalidColor = errors.New("chart: invalid color")

// Style configures a line chart.
type Style struct {
	// Color is a hex color, rgb()/rgba() expression or CSS color name.
	Color string `yaml:"color" json:"color"`
}

// DefaultStyle returns the style used when none is given.
func DefaultStyle() Style {
	return Style{Color: DefaultColor}
}

// Fixed chart colors.
var (
	gridColor      = rgba(148, 163, 184, 0.15)
	lineLabelColor = rgba(148, 163, 184, 1)
	stageTextColor = rgba(229, 231, 235, 1)
	heatColor      = rgba(99, 102, 241, 1)
)

// defaultPalette cycles across funnel stages.
var defaultPalette = []string{"#60a5fa", "#34d399", "#fbbf24", "#f472b6"}

func rgba(r, g, b uint8, a float64) gg.RGBA {
	return gg.RGBA{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: a}
}

// ParseColor reads a color string. Accepted forms are #rgb, #rgba,
// #rrggbb, #rrggbbaa, rgb(r, g, b), rgba(r, g, b, a) with a in [0, 1],
// "transparent" and the CSS named colors.
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return gg.RGBA{}, fmt.Errorf("%w: empty", ErrInvalidColor)
	case s == "transparent":
		return gg.Transparent, nil
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s)
	case strings.HasPrefix(s, "rgb"):
		return parseFuncColor(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return gg.FromColor(c), nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHexColor(s string) (gg.RGBA, error) {
	digits := s[1:]
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q has %d hex digits", ErrInvalidColor, s, len(digits))
	}
	for _, c := range digits {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return gg.Hex(digits), nil
}

func parseFuncColor(s string) (gg.RGBA, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	name := strings.TrimSpace(s[:open])
	args := strings.Split(s[open+1:len(s)-1], ",")

	want := 3
	if name == "rgba" {
		want = 4
	} else if name != "rgb" {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(args) != want {
		return gg.RGBA{}, fmt.Errorf("%w: %s() takes %d arguments", ErrInvalidColor, name, want)
	}

	var ch [4]float64
	ch[3] = 1
	for i, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil || !isFinite(v) {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		if i < 3 {
			v /= 255
		}
		ch[i] = clamp01(v)
	}
	return gg.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// resolveColor parses s, falling back to DefaultColor with a warning.
func resolveColor(s string) gg.RGBA {
	if s == "" {
		s = DefaultColor
	}
	c, err := ParseColor(s)
	if err != nil {
		Logger().Warn("chart: unusable color, using default", "color", s, "error", err)
		c, _ = ParseColor(DefaultColor)
	}
	return c
}

func withAlpha(c gg.RGBA, a float64) gg.RGBA {
	c.A = a
	return c
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
