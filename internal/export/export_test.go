package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/LoadPack/internal/model"
)

// buildTestResult creates a small packed result with a rotated and an
// unplaced item.
func buildTestResult() model.PackResult {
	return model.PackResult{
		Container: model.NewContainer(10, 10),
		Placements: []model.Placement{
			{Item: model.Item{ID: "a1", Label: "A", Width: 10, Height: 4}, Position: &model.Position{X: 0, Y: 0}},
			{Item: model.Item{ID: "b1", Label: "B", Width: 4, Height: 10}, Position: &model.Position{X: 0, Y: 4, Orientation: model.Rotated}},
			{Item: model.Item{ID: "c1", Label: "C", Width: 20, Height: 20}},
		},
	}
}

func assertFileNotEmpty(t *testing.T, path string, minSize int64) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file was not created: %v", err)
	}
	if info.Size() < minSize {
		t.Errorf("file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")

	if err := ExportPDF(path, buildTestResult(), model.DefaultPackSettings()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	assertFileNotEmpty(t, path, 500)
}

func TestExportPDF_NothingPlaced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	result := model.PackResult{
		Container:  model.NewContainer(200, 100),
		Placements: []model.Placement{{Item: model.NewItem("Huge", 500, 500)}},
	}

	if err := ExportPDF(path, result, model.PackSettings{}); err != nil {
		t.Fatalf("ExportPDF should render an all-unplaced result: %v", err)
	}
	assertFileNotEmpty(t, path, 500)
}

func TestExportPDF_InvalidContainer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdf")
	if err := ExportPDF(path, model.PackResult{}, model.DefaultPackSettings()); err == nil {
		t.Fatal("expected error for zero-size container")
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, buildTestResult()); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	assertFileNotEmpty(t, path, 500)
}

func TestExportLabels_NoPlacements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.pdf")
	result := model.PackResult{
		Container:  model.NewContainer(10, 10),
		Placements: []model.Placement{{Item: model.NewItem("X", 50, 50)}},
	}
	if err := ExportLabels(path, result); err == nil {
		t.Fatal("expected error for result with no placements, got nil")
	}
}

func TestExportLabels_MultiplePages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many.pdf")

	result := model.PackResult{Container: model.NewContainer(100, 100)}
	for i := 0; i < labelsPerPage+5; i++ {
		it := model.NewItem("L", 1, 1)
		result.Placements = append(result.Placements, model.Placement{
			Item:     it,
			Position: &model.Position{X: float64(i % 100), Y: float64(i / 100)},
		})
	}

	if err := ExportLabels(path, result); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	assertFileNotEmpty(t, path, 1000)
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestResult())

	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}
	if labels[0].ItemLabel != "A" || labels[0].Rotated {
		t.Errorf("unexpected first label %+v", labels[0])
	}
	if !labels[1].Rotated || labels[1].Y != 4 {
		t.Errorf("expected B rotated at y=4, got %+v", labels[1])
	}
	if labels[1].Width != 4 || labels[1].Height != 10 {
		t.Errorf("labels carry original dimensions, got %gx%g", labels[1].Width, labels[1].Height)
	}
	if labels[0].Container != "10x10" {
		t.Errorf("expected container label 10x10, got %q", labels[0].Container)
	}
}

func TestTopLeftRectFlipsY(t *testing.T) {
	r := buildTestResult()

	x, y, w, h := topLeftRect(r.Container, r.Placements[0])
	if x != 0 || y != 6 || w != 10 || h != 4 {
		t.Errorf("A: expected (0,6,10,4), got (%g,%g,%g,%g)", x, y, w, h)
	}

	x, y, w, h = topLeftRect(r.Container, r.Placements[1])
	if x != 0 || y != 2 || w != 10 || h != 4 {
		t.Errorf("B: expected (0,2,10,4), got (%g,%g,%g,%g)", x, y, w, h)
	}
}
