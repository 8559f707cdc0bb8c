package densitygrid

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
)

// Canvas dimensions. Each row is one uint32 so Width can't grow past 32.
const (
	Width  = 32
	Height = 32
)

// ErrOutOfBounds is returned by CheckString when a layout would place a glyph
// outside the canvas.
var ErrOutOfBounds = errors.New("glyph placement out of bounds")

// Canvas is a fixed 32x32 monochrome bitmap stored as one bit-row per
// scanline. Column 0 is the most significant bit of a row. Pixels are only
// ever added: overlapping glyphs merge.
type Canvas struct {
	rows [Height]uint32
}

func NewCanvas() *Canvas {
	return &Canvas{}
}

func checkPlacement(x, y int) error {
	if x < 0 || x > Width-GlyphWidth || y < 0 || y > Height-GlyphHeight {
		return fmt.Errorf("%w: (%d, %d) outside 0..%d x 0..%d", ErrOutOfBounds, x, y, Width-GlyphWidth, Height-GlyphHeight)
	}
	return nil
}

// PutGlyph ORs the glyph for r into the canvas with its top left corner at
// column x, row y. It panics unless 0 <= x <= Width-4 and 0 <= y <= Height-6.
func (c *Canvas) PutGlyph(r rune, x, y int) {
	if err := checkPlacement(x, y); err != nil {
		panic(fmt.Sprintf("densitygrid: put %q: %v", r, err))
	}
	g := Lookup(r)
	shift := uint(Width - x - GlyphWidth)
	for i := 0; i < GlyphHeight; i++ {
		c.rows[y+i] |= g.Row(i) << shift
	}
}

// PutString lays text out left to right starting at x, y. A '\n' moves the
// cursor back to x and down one line. Nothing wraps on its own; a glyph that
// would leave the canvas panics like PutGlyph. Use CheckString first when the
// text comes from a user.
func (c *Canvas) PutString(text string, x, y int) {
	layout(text, x, y, func(r rune, cx, cy int) bool {
		c.PutGlyph(r, cx, cy)
		return true
	})
}

// CheckString reports whether PutString(text, x, y) would stay on the canvas.
func CheckString(text string, x, y int) error {
	var err error
	layout(text, x, y, func(r rune, cx, cy int) bool {
		if perr := checkPlacement(cx, cy); perr != nil {
			err = fmt.Errorf("%q: %w", string(r), perr)
			return false
		}
		return true
	})
	return err
}

// Extent returns the width and height in pixels covered by the layout of
// text, spacing excluded.
func Extent(text string) (w, h int) {
	maxX, maxY := -1, -1
	layout(text, 0, 0, func(_ rune, cx, cy int) bool {
		if cx+GlyphWidth > maxX {
			maxX = cx + GlyphWidth
		}
		if cy+GlyphHeight > maxY {
			maxY = cy + GlyphHeight
		}
		return true
	})
	if maxX < 0 {
		return 0, 0
	}
	return maxX, maxY
}

// layout calls fn with the origin of every glyph in text until fn returns
// false.
func layout(text string, x, y int, fn func(r rune, cx, cy int) bool) {
	cx, cy := x, y
	for _, r := range text {
		if r == '\n' {
			cx = x
			cy += AdvanceY
			continue
		}
		if !fn(r, cx, cy) {
			return
		}
		cx += AdvanceX
	}
}

// Row returns the bit-row of scanline i.
func (c *Canvas) Row(i int) uint32 {
	if i < 0 || i >= Height {
		panic(fmt.Sprintf("densitygrid: canvas row %d must be in the range 0..%d", i, Height))
	}
	return c.rows[i]
}

// Pixel reports whether the pixel at column x, row y is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= Width {
		panic(fmt.Sprintf("densitygrid: canvas column %d must be in the range 0..%d", x, Width))
	}
	mask := uint32(0x80000000) >> uint(x)
	return c.Row(y)&mask == mask
}

// Dump writes the first n rows as 32 digit binary numbers.
func (c *Canvas) Dump(w io.Writer, n int) error {
	if n > Height {
		n = Height
	}
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(w, "%032b\n", c.rows[i]); err != nil {
			return err
		}
	}
	return nil
}

// ColorModel, Bounds and At let a Canvas be used wherever an image.Image is
// expected. Set pixels are black.
func (c *Canvas) ColorModel() color.Model {
	return color.GrayModel
}

func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

func (c *Canvas) At(x, y int) color.Color {
	if !image.Pt(x, y).In(c.Bounds()) {
		return color.White
	}
	if c.Pixel(x, y) {
		return color.Black
	}
	return color.White
}
