package main

import (
	"flag"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/nfnt/resize"

	"badc0de.net/pkg/go-spritetable/imageprint"
	"badc0de.net/pkg/go-spritetable/table"
)

var (
	col256   = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	col      = flag.Bool("col", true, "whether to use color at all")
	iterm    = flag.Bool("iterm", false, "whether to print with iterm escape code instead of 24 bit")
	rasterm  = flag.Bool("rasterm", false, "whether to print with kitty, iterm or sixel, whichever the terminal supports")
	blanks   = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize = flag.Bool("downsize", true, "whether to shrink sprites larger than the terminal")
)

func printer() *imageprint.Printer {
	p := &imageprint.Printer{Blanks: *blanks}
	switch {
	case *rasterm:
		p.Mode = imageprint.RasTerm
	case !*col:
		p.Mode = imageprint.NoColor
	case *iterm:
		p.Mode = imageprint.ITerm
	case *col256:
		p.Mode = imageprint.Color256
	default:
		p.Mode = imageprint.TrueColor
	}
	return p
}

// printSprites draws the picture of each image, read from dir. Missing or
// broken pictures are logged and skipped.
func printSprites(p *imageprint.Printer, dir string, images []table.Image, downsize bool) {
	for _, rec := range images {
		fn := filepath.Join(dir, rec.FileName())
		img, err := readSprite(fn)
		if err != nil {
			glog.Errorf("sprite %d: %v", rec.ID, err)
			continue
		}
		if err := p.Print(fit(img, downsize), rec.FileName()); err != nil {
			glog.Errorf("sprite %d: printing: %v", rec.ID, err)
		}
	}
}

func readSprite(fn string) (image.Image, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

// fit shrinks img to the terminal, if requested and needed.
func fit(img image.Image, downsize bool) image.Image {
	if !downsize {
		return img
	}
	termSize, err := GetTermSize()
	if err != nil {
		glog.V(2).Infof("not downsizing, no terminal size: %v", err)
		return img
	}
	if termSize.WSXPixel != 0 && termSize.WSYPixel != 0 && (*rasterm || *iterm) {
		// Prefer native size if there's a chance we print out an image rather than pixels.
		return resize.Thumbnail(termSize.WSXPixel/2, termSize.WSYPixel/2, img, resize.Lanczos3)
	}
	// Each pixel takes two columns.
	return resize.Thumbnail(termSize.WSCol/2, termSize.WSRow, img, resize.Lanczos3)
}
