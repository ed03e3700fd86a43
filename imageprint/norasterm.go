//go:build windows

package imageprint

import (
	"fmt"
	"image"
	"io"
)

func printRasTerm(w io.Writer, i image.Image) error {
	return fmt.Errorf("imageprint: rasterm not supported on windows")
}
