package main

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"badc0de.net/pkg/go-spritetable/imageprint"
	"badc0de.net/pkg/go-spritetable/table"
	"badc0de.net/pkg/go-spritetable/ttesting"
)

func writeTable(t *testing.T, dir, name string, tbl *table.Table) string {
	t.Helper()
	b, err := tbl.MarshalBinary()
	if err != nil {
		t.Fatalf("failed to encode table: %s", err)
	}
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, b, 0644); err != nil {
		t.Fatalf("failed to write table: %s", err)
	}
	return fn
}

var (
	imgA = table.Image{Hash: table.Hash{0xD4, 0x05, 0x9D, 0xA8, 0xA8, 0xFB, 0x54, 0x63}, ID: 2, XOffset: 5, Width: 100, Height: 200}
	imgB = table.Image{Hash: table.Hash{0, 0, 0, 0, 0, 0, 0, 1}, ID: 3, XOffset: 105, Width: 32, Height: 32}
)

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		writeTable(t, dir, "a.e2gt", table.New(imgA, imgB)),
		writeTable(t, dir, "b.e2gt", table.New()),
		writeTable(t, dir, "c.e2gt", &table.Table{Magic: table.Magic{'X', 'X', 'X', 'X'}, Version: 9, Images: []table.Image{imgB}}),
	}

	tables, err := loadAll(context.Background(), names)
	if err != nil {
		t.Fatalf("failed to load tables: %s", err)
	}
	ttesting.AssertEqualInt(t, "table count", len(tables), 3)
	ttesting.AssertEqualInt(t, "first table images", tables[0].Len(), 2)
	ttesting.AssertEqualInt(t, "second table images", tables[1].Len(), 0)
	ttesting.AssertEqualInt(t, "third table images", tables[2].Len(), 1)
	ttesting.AssertEqualUint16(t, "third table version", tables[2].Version, 9)
}

func TestLoadAllFailsOnBadTable(t *testing.T) {
	dir := t.TempDir()
	good := writeTable(t, dir, "good.e2gt", table.New(imgA))
	bad := filepath.Join(dir, "bad.e2gt")
	if err := os.WriteFile(bad, []byte("E2GT\x00\x01\x00\x05"), 0644); err != nil {
		t.Fatalf("failed to write table: %s", err)
	}

	if _, err := loadAll(context.Background(), []string{good, bad}); err == nil {
		t.Error("loaded a table claiming 5 images but holding none; want error")
	}
	if _, err := loadAll(context.Background(), []string{filepath.Join(dir, "missing.e2gt")}); err == nil {
		t.Error("loaded a missing table; want error")
	}
}

func TestSelectImages(t *testing.T) {
	tbl := table.New(imgA, imgB)

	all, err := selectImages(tbl, -1)
	if err != nil {
		t.Fatalf("failed to select images: %s", err)
	}
	if len(all) != 2 || all[0] != 0 || all[1] != 1 {
		t.Errorf("got %v; want [0 1]", all)
	}

	one, err := selectImages(tbl, 3)
	if err != nil {
		t.Fatalf("failed to select image: %s", err)
	}
	if len(one) != 1 || one[0] != 1 {
		t.Errorf("got %v; want only [1]", one)
	}
	if images := imagesAt(tbl, one); len(images) != 1 || images[0] != imgB {
		t.Errorf("got %+v; want only %+v", images, imgB)
	}

	for _, id := range []int{4, 0x10000} {
		if _, err := selectImages(tbl, id); err == nil {
			t.Errorf("selected id %d; want error", id)
		}
	}
}

func TestPrintList(t *testing.T) {
	b := &bytes.Buffer{}
	tbl := table.New(imgA, imgB)
	if err := printList(b, "a.e2gt", tbl, []int{0, 1}); err != nil {
		t.Fatalf("failed to print: %s", err)
	}
	ttesting.AssertEqualString(t, "listing", b.String(),
		"a.e2gt: E2GT v1, 2 images\n"+
			"0: id=2 x=5 100x200 d4059da8a8fb5463.png\n"+
			"1: id=3 x=105 32x32 0000000000000001.png\n")

	b.Reset()
	if err := printList(b, "a.e2gt", tbl, []int{1}); err != nil {
		t.Fatalf("failed to print: %s", err)
	}
	ttesting.AssertEqualString(t, "single image keeps its table index", b.String(),
		"a.e2gt: E2GT v1, 2 images\n"+
			"1: id=3 x=105 32x32 0000000000000001.png\n")
}

func TestPrintJSON(t *testing.T) {
	b := &bytes.Buffer{}
	tbl := table.New(imgA, imgB)
	if err := printJSON(b, "a.e2gt", tbl, []int{1}); err != nil {
		t.Fatalf("failed to print: %s", err)
	}

	var got struct {
		File string `json:"file"`
		table.Table
	}
	if err := json.Unmarshal(b.Bytes(), &got); err != nil {
		t.Fatalf("failed to parse output %q: %s", b.String(), err)
	}
	ttesting.AssertEqualString(t, "file", got.File, "a.e2gt")
	ttesting.AssertEqualString(t, "magic", got.Magic.String(), "E2GT")
	ttesting.AssertEqualInt(t, "images", got.Len(), 1)
	if got.Len() == 1 && got.Images[0] != imgB {
		t.Errorf("got %+v; want %+v", got.Images[0], imgB)
	}
}

func TestPrintSprites(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{0xFF, 0x00, 0x00, 0xFF})
	// (1, 0) stays transparent
	f, err := os.Create(filepath.Join(dir, imgA.FileName()))
	if err != nil {
		t.Fatalf("failed to create sprite: %s", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode sprite: %s", err)
	}
	f.Close()

	b := &bytes.Buffer{}
	p := &imageprint.Printer{W: b, Mode: imageprint.NoColor}
	// imgB has no picture in dir; it is skipped.
	printSprites(p, dir, []table.Image{imgB, imgA}, false)
	ttesting.AssertEqualString(t, "drawn sprite", b.String(), "==  \n")
}
