package densitygrid

import (
	"image"
	"image/color"
	_ "image/png"
	"io/ioutil"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r < 0x4000 && g < 0x4000 && b < 0x4000
}

func isLight(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r > 0xc000 && g > 0xc000 && b > 0xc000
}

func decodeFile(path string) image.Image {
	f, err := os.Open(path)
	Expect(err).NotTo(HaveOccurred())
	defer f.Close()
	img, _, err := image.Decode(f)
	Expect(err).NotTo(HaveOccurred())
	return img
}

var _ = Describe("Raster export", func() {
	var (
		c          *Canvas
		grid       *DensityGrid
		maxX, maxY int
		dir        string
	)

	BeforeEach(func() {
		c = NewCanvas()
		c.PutString("12\n34", 1, 1)
		maxX, maxY = FindMaxUsed(c)
		grid = Aggregate(c, maxX, maxY)

		var err error
		dir, err = ioutil.TempDir("", "densitygrid")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	Describe("RenderPNG", func() {
		It("draws the grid at viewBox size", func() {
			img, err := RenderPNG(grid, maxX, maxY)
			Expect(err).NotTo(HaveOccurred())
			Expect(img.Bounds()).To(Equal(image.Rect(0, 0, 301, 421)))

			r, _, b, _ := img.At(10, 0).RGBA()
			Expect(b).To(BeNumerically(">", r))
			r, _, b, _ = img.At(0, 10).RGBA()
			Expect(b).To(BeNumerically(">", r))
			Expect(isLight(img.At(3, 3))).To(BeTrue())
		})

		It("draws a label in every cell", func() {
			img, err := RenderPNG(grid, maxX, maxY)
			Expect(err).NotTo(HaveOccurred())
			for _, cell := range []image.Point{{0, 0}, {9, 13}, {4, 7}} {
				found := false
				for y := cell.Y*30 + 2; y < cell.Y*30+29 && !found; y++ {
					for x := cell.X*30 + 2; x < cell.X*30+29 && !found; x++ {
						found = isDark(img.At(x, y))
					}
				}
				Expect(found).To(BeTrue(), "label in cell %v", cell)
			}
		})

		It("rejects invalid styles", func() {
			_, err := RenderPNG(grid, maxX, maxY, WithCellSize(0))
			Expect(err).To(HaveOccurred())
		})
	})

	It("saves the PNG grid", func() {
		path := filepath.Join(dir, "grid.png")
		Expect(ExportPNG(grid, maxX, maxY, path)).To(Succeed())
		Expect(decodeFile(path).Bounds().Size()).To(Equal(image.Pt(301, 421)))
	})

	Describe("ScaleBitmap", func() {
		It("blows up every canvas pixel into a square", func() {
			img, err := ScaleBitmap(c, 8, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(img.Bounds().Size()).To(Equal(image.Pt(Width*8, Height*8)))
			for _, p := range []image.Point{{2, 1}, {1, 2}, {9, 6}} {
				Expect(c.Pixel(p.X, p.Y)).To(BeTrue())
				Expect(isDark(img.At(p.X*8+4, p.Y*8+4))).To(BeTrue(), "pixel %v", p)
			}
			Expect(isLight(img.At(4, 4))).To(BeTrue())
		})

		It("inverts", func() {
			img, err := ScaleBitmap(c, 2, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(isLight(img.At(2*2, 1*2))).To(BeTrue())
			Expect(isDark(img.At(0, 0))).To(BeTrue())
		})

		It("needs a positive scale", func() {
			_, err := ScaleBitmap(c, 0, false)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("SaveBitmap", func() {
		It("writes PNG and BMP files", func() {
			for _, name := range []string{"canvas.png", "canvas.bmp"} {
				path := filepath.Join(dir, name)
				Expect(SaveBitmap(c, path, 4, false)).To(Succeed())
				img := decodeFile(path)
				Expect(img.Bounds().Size()).To(Equal(image.Pt(Width*4, Height*4)))
				Expect(isDark(img.At(2*4+1, 1*4+1))).To(BeTrue())
			}
		})

		It("rejects other formats", func() {
			path := filepath.Join(dir, "canvas.gif")
			Expect(SaveBitmap(c, path, 4, false)).NotTo(Succeed())
			Expect(path).NotTo(BeAnExistingFile())
		})
	})
})
