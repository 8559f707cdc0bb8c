package densitygrid

import (
	"bytes"
	"errors"
	"image"
	"image/color"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Canvas", func() {
	var c *Canvas

	BeforeEach(func() {
		c = NewCanvas()
	})

	It("starts out empty", func() {
		for i := 0; i < Height; i++ {
			Expect(c.Row(i)).To(BeZero())
		}
	})

	Describe("PutGlyph", func() {
		It("copies the glyph to its offset and nowhere else", func() {
			const x, y = 5, 3
			g := Lookup('8')
			c.PutGlyph('8', x, y)
			for py := 0; py < Height; py++ {
				for px := 0; px < Width; px++ {
					want := false
					if px >= x && px < x+GlyphWidth && py >= y && py < y+GlyphHeight {
						want = g.Pixel(py-y, px-x)
					}
					Expect(c.Pixel(px, py)).To(Equal(want), "pixel (%d, %d)", px, py)
				}
			}
		})

		It("merges overlapping glyphs", func() {
			one, seven := Lookup('1'), Lookup('7')
			c.PutGlyph('1', 0, 0)
			c.PutGlyph('7', 2, 0)
			Expect(c.Row(0)).To(Equal(uint32(0x7c000000)))
			for py := 0; py < GlyphHeight; py++ {
				for px := 0; px < 6; px++ {
					want := (px < 4 && one.Pixel(py, px)) || (px >= 2 && seven.Pixel(py, px-2))
					Expect(c.Pixel(px, py)).To(Equal(want), "pixel (%d, %d)", px, py)
				}
			}
		})

		It("never clears pixels", func() {
			c.PutGlyph('8', 0, 0)
			before := *c
			c.PutGlyph('.', 0, 0)
			c.PutGlyph('x', 0, 0)
			Expect(*c).To(Equal(before))
		})

		It("accepts the bottom right corner", func() {
			c.PutGlyph('8', Width-GlyphWidth, Height-GlyphHeight)
			Expect(c.Row(Height - 1)).To(Equal(uint32(0b0110)))
		})

		It("panics when the glyph would leave the canvas", func() {
			Expect(func() { c.PutGlyph('1', Width-GlyphWidth+1, 0) }).To(Panic())
			Expect(func() { c.PutGlyph('1', -1, 0) }).To(Panic())
			Expect(func() { c.PutGlyph('1', 0, Height-GlyphHeight+1) }).To(Panic())
			Expect(func() { c.PutGlyph('1', 0, -1) }).To(Panic())
		})
	})

	Describe("PutString", func() {
		It("advances five columns per glyph", func() {
			want := NewCanvas()
			want.PutGlyph('1', 3, 4)
			want.PutGlyph('2', 8, 4)
			c.PutString("12", 3, 4)
			Expect(c).To(Equal(want))
		})

		It("starts a new line seven rows down on \\n", func() {
			want := NewCanvas()
			want.PutGlyph('1', 3, 4)
			want.PutGlyph('2', 3, 11)
			c.PutString("1\n2", 3, 4)
			Expect(c).To(Equal(want))
		})

		It("does not wrap on its own", func() {
			Expect(func() { c.PutString("1234567", 0, 0) }).To(Panic())
		})
	})

	Describe("CheckString", func() {
		It("accepts layouts that fit", func() {
			Expect(CheckString("1234\n5678", 1, 1)).To(Succeed())
			Expect(CheckString("", 40, 40)).To(Succeed())
			Expect(CheckString("123456", 2, 0)).To(Succeed())
		})

		It("reports the first glyph that does not", func() {
			err := CheckString("1234567", 0, 0)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrOutOfBounds)).To(BeTrue())
			Expect(err.Error()).To(MatchRegexp(`^"7": `))

			err = CheckString("1\n2\n3\n4\n5", 0, 0)
			Expect(errors.Is(err, ErrOutOfBounds)).To(BeTrue())
			Expect(err.Error()).To(MatchRegexp(`^"5": `))
		})
	})

	It("measures layouts", func() {
		w, h := Extent("12\n34")
		Expect([]int{w, h}).To(Equal([]int{9, 13}))
		w, h = Extent("1")
		Expect([]int{w, h}).To(Equal([]int{4, 6}))
		w, h = Extent("")
		Expect([]int{w, h}).To(Equal([]int{0, 0}))
	})

	It("panics on rows outside the canvas", func() {
		Expect(func() { c.Row(Height) }).To(Panic())
		Expect(func() { c.Row(-1) }).To(Panic())
		Expect(func() { c.Pixel(Width, 0) }).To(Panic())
	})

	It("dumps rows in binary", func() {
		c.PutGlyph('1', 0, 0)
		var buf bytes.Buffer
		Expect(c.Dump(&buf, 2)).To(Succeed())
		Expect(buf.String()).To(Equal(
			"01000000000000000000000000000000\n" +
				"11000000000000000000000000000000\n"))
	})

	It("is an image with black set pixels", func() {
		c.PutGlyph('1', 0, 0)
		var img image.Image = c
		Expect(img.Bounds()).To(Equal(image.Rect(0, 0, Width, Height)))
		Expect(img.At(1, 0)).To(Equal(color.Black))
		Expect(img.At(0, 0)).To(Equal(color.White))
		Expect(img.At(-1, 40)).To(Equal(color.White))
	})
})
