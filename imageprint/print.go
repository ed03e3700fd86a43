// Package imageprint draws sprite pictures on a terminal. UNSUPPORTED debug
// package.
//
// This package has an API with no stability guarantees.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	gcolor "github.com/gookit/color"
)

// Mode selects how pixels are drawn.
type Mode int

const (
	TrueColor Mode = iota // 24bit background color escapes
	Color256              // closest 256 color, via gookit/color
	NoColor               // plain ascii art; only sensible with Blanks=false
	ITerm                 // iTerm2 inline image escape
	RasTerm               // kitty, iTerm2/WezTerm or sixel, whichever the terminal supports
)

// Printer draws images to W (os.Stdout if nil).
type Printer struct {
	W      io.Writer
	Mode   Mode
	Blanks bool // use colored blanks instead of some bad ascii art
}

func (p *Printer) out() io.Writer {
	if p.W == nil {
		return os.Stdout
	}
	return p.W
}

// Print draws i. The name is only used by inline image protocols.
func (p *Printer) Print(i image.Image, name string) error {
	switch p.Mode {
	case ITerm:
		return p.printITerm(i, name)
	case RasTerm:
		return printRasTerm(p.out(), i)
	}
	w := p.out()
	b := i.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, err := io.WriteString(w, p.shade(i.At(x, y))); err != nil {
				return err
			}
		}
		eol := "\n"
		if p.Mode != NoColor {
			eol = "\x1b[0m\n"
		}
		if _, err := io.WriteString(w, eol); err != nil {
			return err
		}
	}
	return nil
}

// shade returns the two characters drawing a single pixel.
func (p *Printer) shade(col color.Color) string {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		if p.Mode == NoColor {
			return "  "
		}
		return "\x1b[0m  "
	}

	s := "  "
	if !p.Blanks {
		switch a := ((cR + cG + cB) / 3) >> 8; {
		case a < 32:
			s = ".."
		case a < 64:
			s = "--"
		case a < 128:
			s = "=="
		default:
			s = "##"
		}
	}

	r, g, b := uint8(cR>>8), uint8(cG>>8), uint8(cB>>8)
	switch p.Mode {
	case NoColor:
		return s
	case Color256:
		return gcolor.RGB(r, g, b, true).Sprintf("%s", s)
	default:
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
	}
}

// printITerm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func (p *Printer) printITerm(i image.Image, fn string) error {
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	if err := png.Encode(bEnc, i); err != nil {
		return err
	}
	bEnc.Close()
	_, err := fmt.Fprintf(p.out(), "\n\033]1337;File=name=%s;inline=1;size=%d,width=%dpx;height=%dpx:%s\a\n", name, b.Len(), i.Bounds().Size().X, i.Bounds().Size().Y, b.String())
	return err
}
