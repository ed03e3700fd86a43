// Command tableprint lists the contents of sprite image tables, and can draw
// the sprites they reference on the terminal.
//
//	tableprint [flags] sprites.e2gt [more.e2gt...]
//
// Tables not found at the passed path are looked up with paths.Find.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-spritetable/paths"
	"badc0de.net/pkg/go-spritetable/table"
)

var (
	jsonOut    = flag.Bool("json", false, "whether to print tables as json instead of one line per image")
	imageID    = flag.Int("id", -1, "ID of the only image to list; all images are listed if negative")
	spritesDir = flag.String("sprites_dir", "", "directory holding the sprite pictures named by the tables")
	printImgs  = flag.Bool("print", false, "whether to draw each listed sprite from -sprites_dir")

	tablePath string
)

func setupFilePathFlags() {
	paths.SetupFilePathFlag("sprites.e2gt", "table_path", &tablePath)
}

func main() {
	setupFilePathFlags()
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	names := flag.Args()
	if len(names) == 0 {
		if tablePath == "" {
			glog.Exit("no table passed, and sprites.e2gt was not found")
		}
		names = []string{tablePath}
	}

	tables, err := loadAll(context.Background(), names)
	if err != nil {
		glog.Exitf("loading tables: %v", err)
	}

	for i, t := range tables {
		if !t.IsDefaultFormat() {
			glog.Warningf("%s: unexpected format %s v%d, want %s v%d", names[i], t.Magic, t.Version, table.DefaultMagic, table.DefaultVersion)
		}

		idxs, err := selectImages(t, *imageID)
		if err != nil {
			glog.Errorf("%s: %v", names[i], err)
			continue
		}

		if *jsonOut {
			err = printJSON(os.Stdout, names[i], t, idxs)
		} else {
			err = printList(os.Stdout, names[i], t, idxs)
		}
		if err != nil {
			glog.Exitf("writing output: %v", err)
		}

		if *printImgs {
			printSprites(printer(), *spritesDir, imagesAt(t, idxs), *downsize)
		}
	}
}

// selectImages returns the positions of either all images in the table, or
// only of the one with the passed id if it is not negative.
func selectImages(t *table.Table, id int) ([]int, error) {
	if id < 0 {
		idxs := make([]int, t.Len())
		for i := range idxs {
			idxs[i] = i
		}
		return idxs, nil
	}
	if id > table.MaxImageCount {
		return nil, fmt.Errorf("image id %d out of range", id)
	}
	i, err := t.IndexByID(uint16(id))
	if err != nil {
		return nil, err
	}
	return []int{i}, nil
}

func imagesAt(t *table.Table, idxs []int) []table.Image {
	images := make([]table.Image, 0, len(idxs))
	for _, i := range idxs {
		images = append(images, t.Images[i])
	}
	return images
}

func printList(w io.Writer, name string, t *table.Table, idxs []int) error {
	if _, err := fmt.Fprintf(w, "%s: %s v%d, %d images\n", name, t.Magic, t.Version, t.Len()); err != nil {
		return err
	}
	for _, i := range idxs {
		img := t.Images[i]
		if _, err := fmt.Fprintf(w, "%d: id=%d x=%d %dx%d %s\n", i, img.ID, img.XOffset, img.Width, img.Height, img.FileName()); err != nil {
			return err
		}
	}
	return nil
}

func printJSON(w io.Writer, name string, t *table.Table, idxs []int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		File string `json:"file"`
		table.Table
	}{
		File:  name,
		Table: table.Table{Magic: t.Magic, Version: t.Version, Images: imagesAt(t, idxs)},
	})
}
