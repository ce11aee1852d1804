package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/LoadPack/internal/model"
)

func TestExportPNG_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.png")

	if err := ExportPNG(path, buildTestResult(), 10); err != nil {
		t.Fatalf("ExportPNG returned error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 140 || b.Dy() != 160 {
		t.Errorf("expected 140x160 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestWritePNG_BottomLeftOrigin(t *testing.T) {
	// A single 10x4 item at the origin must be drawn along the bottom edge.
	result := model.PackResult{
		Container: model.NewContainer(10, 10),
		Placements: []model.Placement{
			{Item: model.Item{ID: "a1", Label: "A", Width: 10, Height: 4}, Position: &model.Position{}},
		},
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, result, 10); err != nil {
		t.Fatalf("WritePNG returned error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}

	near := func(got uint32, want uint8) bool {
		v := int(got>>8) - int(want)
		return v >= -3 && v <= 3
	}

	// Inside the item, close to the container's bottom-left corner
	r, g, bl, _ := img.At(25, 125).RGBA()
	if !near(r, 144) || !near(g, 238) || !near(bl, 144) {
		t.Errorf("expected light green near the bottom, got (%d,%d,%d)", r>>8, g>>8, bl>>8)
	}

	// Upper part of the container stays empty
	r, g, bl, _ = img.At(25, 40).RGBA()
	if !near(r, 255) || !near(g, 255) || !near(bl, 255) {
		t.Errorf("expected white near the top, got (%d,%d,%d)", r>>8, g>>8, bl>>8)
	}
}

func TestExportPNG_InvalidContainer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := ExportPNG(path, model.PackResult{}, 1); err == nil {
		t.Fatal("expected error for zero-size container")
	}
}
