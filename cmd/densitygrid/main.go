package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/densitygrid"
	"golang.org/x/crypto/ssh/terminal"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "densitygrid"
	app.Usage = "Renders digits with a 4x6 pixel font and exports their 3x3 pixel density as an SVG grid."
	app.UsageText = "1) densitygrid [options]\n" +
		/*      */ "   2) densitygrid --config profile.yml [options]"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config,c",
			Usage: "Read the job from a YAML `PROFILE`. Other flags override it.",
		},
		cli.StringFlag{
			Name:  "text,t",
			Usage: "`TEXT` to draw. Digits and '.' only, \\n starts a new line.",
			Value: "1234\\n5678",
		},
		cli.IntFlag{
			Name:  "x",
			Usage: "`COLUMN` of the first glyph.",
			Value: 1,
		},
		cli.IntFlag{
			Name:  "y",
			Usage: "`ROW` of the first glyph.",
			Value: 1,
		},
		cli.StringFlag{
			Name:  "out,o",
			Usage: "SVG `FILE` to write.",
			Value: "image.svg",
		},
		cli.StringFlag{
			Name:  "png",
			Usage: "Also write the grid as a PNG `FILE`.",
		},
		cli.StringFlag{
			Name:  "bitmap",
			Usage: "Also write the raw canvas to `FILE` (.png or .bmp).",
		},
		cli.IntFlag{
			Name:  "scale,s",
			Usage: "`SCALE` = 8 draws each canvas pixel of --bitmap as an 8x8 square.",
			Value: 8,
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Inverts the --bitmap output.",
		},
		cli.BoolFlag{
			Name:  "braille,b",
			Usage: "Prints the canvas as unicode braille.",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Prints canvas rows and the density grid even when stdout is not a terminal.",
		},
		cli.BoolFlag{
			Name:  "quiet,q",
			Usage: "Prints nothing but errors.",
		},
	}
	app.Action = func(c *cli.Context) error {
		profile, err := loadProfile(c)
		if err != nil {
			exit(err.Error(), 1)
		}

		var diag io.Writer
		if !c.Bool("quiet") && (c.Bool("verbose") || terminal.IsTerminal(int(os.Stdout.Fd()))) {
			diag = os.Stdout
		}

		res, err := densitygrid.Render(profile, diag)
		if err != nil {
			exit(err.Error(), 1)
		}

		if c.Bool("braille") && !c.Bool("quiet") {
			if err := densitygrid.NewBrailleEncoder(os.Stdout).Encode(res.Canvas); err != nil {
				exit(err.Error(), 1)
			}
		}
		return nil
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadProfile starts from the --config file, if any, and applies every flag
// the user set explicitly. Without --config the flag defaults apply.
func loadProfile(c *cli.Context) (densitygrid.Profile, error) {
	profile := densitygrid.DefaultProfile()
	if path := c.String("config"); path != "" {
		var err error
		if profile, err = densitygrid.LoadProfile(path); err != nil {
			return profile, err
		}
	}
	fromFlags := c.String("config") == ""
	if fromFlags || c.IsSet("text") {
		profile.Text = unescape(c.String("text"))
	}
	if fromFlags || c.IsSet("x") {
		profile.X = c.Int("x")
	}
	if fromFlags || c.IsSet("y") {
		profile.Y = c.Int("y")
	}
	if fromFlags || c.IsSet("out") {
		profile.Output = c.String("out")
	}
	if c.IsSet("png") {
		profile.PNG = c.String("png")
	}
	if c.IsSet("bitmap") {
		profile.Bitmap = c.String("bitmap")
	}
	if fromFlags || c.IsSet("scale") {
		profile.Scale = c.Int("scale")
	}
	if c.Bool("invert") {
		profile.Invert = true
	}
	return profile, nil
}

// Shells make literal newlines awkward, so "\n" in --text is a line break.
func unescape(text string) string {
	return strings.Replace(text, `\n`, "\n", -1)
}

func exit(msg string, code int) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}
