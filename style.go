package densitygrid

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// Style controls the geometry and look of exported grids. The zero value is
// not usable; start from DefaultStyle.
type Style struct {
	Cell        int     `yaml:"cell"`         // Edge of one grid cell in viewBox units
	LabelDX     int     `yaml:"label_dx"`     // Label anchor, relative to the cell's top left corner
	LabelDY     int     `yaml:"label_dy"`
	Scale       int     `yaml:"scale"`        // Document size over viewBox size
	FontFamily  string  `yaml:"font_family"`
	FontSize    int     `yaml:"font_size"`
	TextAnchor  string  `yaml:"text_anchor"`  // start, middle or end
	StrokeColor string  `yaml:"stroke"`       // SVG color keyword
	StrokeWidth float64 `yaml:"stroke_width"`
}

func DefaultStyle() Style {
	return Style{
		Cell:        30,
		LabelDX:     15,
		LabelDY:     25,
		Scale:       2,
		FontFamily:  "Verdana",
		FontSize:    24,
		TextAnchor:  "middle",
		StrokeColor: "blue",
		StrokeWidth: 1,
	}
}

func (s Style) Validate() error {
	switch {
	case s.Cell <= 0:
		return fmt.Errorf("cell size must be positive, got %d", s.Cell)
	case s.Scale <= 0:
		return fmt.Errorf("scale must be positive, got %d", s.Scale)
	case s.FontSize <= 0:
		return fmt.Errorf("font size must be positive, got %d", s.FontSize)
	case s.StrokeWidth <= 0:
		return fmt.Errorf("stroke width must be positive, got %g", s.StrokeWidth)
	case s.FontFamily == "" || strings.ContainsAny(s.FontFamily, `"<>&`):
		return fmt.Errorf("invalid font family %q", s.FontFamily)
	}
	switch s.TextAnchor {
	case "start", "middle", "end":
	default:
		return fmt.Errorf("text anchor must be start, middle or end, got %q", s.TextAnchor)
	}
	if _, ok := colornames.Map[s.StrokeColor]; !ok {
		return errors.New("unknown stroke color " + s.StrokeColor)
	}
	return nil
}

// Option adjusts the Style used by an exporter.
type Option func(s *Style)

// WithStyle replaces the whole style.
func WithStyle(style Style) Option {
	return func(s *Style) {
		*s = style
	}
}

// WithCellSize sets the cell edge and moves the label anchor to keep the
// default proportions.
func WithCellSize(cell int) Option {
	return func(s *Style) {
		s.Cell = cell
		s.LabelDX = cell / 2
		s.LabelDY = cell * 5 / 6
	}
}

func WithFont(family string, size int) Option {
	return func(s *Style) {
		s.FontFamily = family
		s.FontSize = size
	}
}

func WithStroke(color string, width float64) Option {
	return func(s *Style) {
		s.StrokeColor = color
		s.StrokeWidth = width
	}
}

func newStyle(opts []Option) Style {
	s := DefaultStyle()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
