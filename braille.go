package densitygrid

import (
	"image"
	"image/color"
	"io"
)

// BrailleCell is one braille symbol covering a 2x4 pixel block. Bit n is
// Unicode dot n+1.
type BrailleCell uint8

// Unicode numbers the dots down the left column first, then the right
// column, with the bottom row added last as dots 7 and 8.
var brailleDots = [4][2]BrailleCell{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Set raises the dot at column x (0..1) and row y (0..3) of the block.
func (c *BrailleCell) Set(x, y int) {
	*c |= brailleDots[y][x]
}

func (c BrailleCell) Rune() rune {
	return '\u2800' + rune(c)
}

func (c BrailleCell) String() string {
	return string(c.Rune())
}

// bitmap is implemented by images that know exactly which pixels are set,
// like Canvas. Those skip the luminosity threshold.
type bitmap interface {
	Pixel(x, y int) bool
}

type BrailleOpt func(enc *BrailleEncoder)

// WithLuminosity sets the fraction of full brightness at or below which a
// pixel counts as a dot.
func WithLuminosity(lum float32) BrailleOpt {
	return func(enc *BrailleEncoder) {
		enc.luminosity = lum
	}
}

// If used, dots are drawn for unset pixels instead.
func WithInvertedColors() BrailleOpt {
	return func(enc *BrailleEncoder) {
		enc.invert = true
	}
}

type BrailleEncoder struct {
	w          io.Writer
	luminosity float32
	invert     bool
}

func NewBrailleEncoder(w io.Writer, opts ...BrailleOpt) *BrailleEncoder {
	enc := BrailleEncoder{
		w:          w,
		luminosity: 0.5,
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

// Encode writes img as lines of braille symbols. A 32x32 canvas becomes 8
// lines of 16 symbols.
func (enc *BrailleEncoder) Encode(img image.Image) error {
	b := img.Bounds()
	line := make([]byte, 0, 3*(b.Dx()+1)/2+1)
	for py := b.Min.Y; py < b.Max.Y; py += 4 {
		line = line[:0]
		for px := b.Min.X; px < b.Max.X; px += 2 {
			var cell BrailleCell
			for y := 0; y < 4 && py+y < b.Max.Y; y++ {
				for x := 0; x < 2 && px+x < b.Max.X; x++ {
					if enc.dotAt(img, px+x, py+y) {
						cell.Set(x, y)
					}
				}
			}
			line = append(line, cell.String()...)
		}
		line = append(line, '\n')
		if _, err := enc.w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

func (enc *BrailleEncoder) dotAt(img image.Image, x, y int) bool {
	var set bool
	if bm, ok := img.(bitmap); ok {
		set = bm.Pixel(x, y)
	} else {
		gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
		set = float32(gray.Y) <= 0xff*enc.luminosity
	}
	return set != enc.invert
}
