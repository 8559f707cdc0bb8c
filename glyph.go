package densitygrid

import (
	"fmt"
	"strings"
)

const (
	GlyphWidth  = 4
	GlyphHeight = 6

	// Advance between glyph origins, including one blank spacing column/row.
	AdvanceX = GlyphWidth + 1
	AdvanceY = GlyphHeight + 1
)

// Glyph is a 4x6 monochrome character packed into the low 24 bits of a
// uint32. Row 0 occupies bits 23..20 and the most significant bit of each
// row is the leftmost column. Eg, the glyph for '1':
//   0100  .*..
//   1100  **..
//   0100  .*..
//   0100  .*..
//   0100  .*..
//   1110  ***.
type Glyph uint32

// Blank is returned for every rune outside the supported set.
const Blank Glyph = 0

var glyphs = map[rune]Glyph{
	'0': 0b0110_1001_1011_1101_1001_0110,
	'1': 0b0100_1100_0100_0100_0100_1110,
	'2': 0b0110_1001_0001_0110_1000_1111,
	'3': 0b0110_0001_0010_0001_1001_0110,
	'4': 0b0010_0110_1010_1111_0010_0010,
	'5': 0b1111_1000_1110_0001_1001_0110,
	'6': 0b0110_1000_1110_1010_1001_0110,
	'7': 0b1111_0001_0010_0100_0100_0100,
	'8': 0b0110_1001_0110_1001_1001_0110,
	'9': 0b0110_1001_1001_0111_0001_0110,
	'.': 0b0000_0000_0000_0000_0000_0100,
}

// Lookup returns the glyph for r. It never fails: runes without a glyph
// render as Blank.
func Lookup(r rune) Glyph {
	return glyphs[r]
}

// Supported reports whether r has a glyph of its own.
func Supported(r rune) bool {
	_, ok := glyphs[r]
	return ok
}

// Row returns the 4-bit pattern of scanline row. Row must be in [0, 6).
func (g Glyph) Row(row int) uint32 {
	if row < 0 || row >= GlyphHeight {
		panic(fmt.Sprintf("densitygrid: glyph row %d must be in the range 0..%d", row, GlyphHeight))
	}
	return (uint32(g) >> uint((GlyphHeight-1-row)*GlyphWidth)) & 0x0f
}

// Pixel reports whether the cell at row, col is set.
func (g Glyph) Pixel(row, col int) bool {
	if col < 0 || col >= GlyphWidth {
		panic(fmt.Sprintf("densitygrid: glyph col %d must be in the range 0..%d", col, GlyphWidth))
	}
	mask := uint32(1) << uint(GlyphWidth-1-col)
	return g.Row(row)&mask == mask
}

// String draws the glyph with '*' for set pixels, one line per row.
func (g Glyph) String() string {
	var b strings.Builder
	for row := 0; row < GlyphHeight; row++ {
		for col := 0; col < GlyphWidth; col++ {
			if g.Pixel(row, col) {
				b.WriteByte('*')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Binary returns the rows as zero padded binary numbers, one per line.
func (g Glyph) Binary() string {
	var b strings.Builder
	for row := 0; row < GlyphHeight; row++ {
		fmt.Fprintf(&b, "%04b\n", g.Row(row))
	}
	return b.String()
}
