package densitygrid

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Profile describes one rendering job: what to draw, where to draw it and
// which files to produce.
type Profile struct {
	Text   string `yaml:"text"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Output string `yaml:"output"` // SVG, always written
	PNG    string `yaml:"png"`    // Optional raster copy of the SVG
	Bitmap string `yaml:"bitmap"` // Optional .png or .bmp of the raw canvas
	Scale  int    `yaml:"scale"`  // Bitmap magnification
	Invert bool   `yaml:"invert"` // Bitmap only
	Style  Style  `yaml:"style"`
}

// DefaultProfile renders two lines of digits into image.svg.
func DefaultProfile() Profile {
	return Profile{
		Text:   "1234\n5678",
		X:      1,
		Y:      1,
		Output: "image.svg",
		Scale:  8,
		Style:  DefaultStyle(),
	}
}

// ParseProfile reads a YAML profile. Fields missing from data keep their
// DefaultProfile values and unknown fields are an error.
func ParseProfile(data []byte) (Profile, error) {
	p := DefaultProfile()
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func LoadProfile(path string) (Profile, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}
	p, err := ParseProfile(data)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func (p Profile) Validate() error {
	if p.Output == "" {
		return fmt.Errorf("no output file")
	}
	if err := CheckString(p.Text, p.X, p.Y); err != nil {
		return err
	}
	if p.Bitmap != "" && p.Scale < 1 {
		return fmt.Errorf("bitmap scale must be at least 1, got %d", p.Scale)
	}
	return p.Style.Validate()
}
