package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/LoadPack/internal/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadLoadListFormats(t *testing.T) {
	files := map[string]string{
		"loads.yaml": "loads:\n  - prefix: A\n    width: 30\n    height: 20\n    count: 20\n  - prefix: B\n    width: 15\n    height: 25\n    count: 20\n    fixed: true\n",
		"loads.toml": "[[loads]]\nprefix = \"A\"\nwidth = 30.0\nheight = 20.0\ncount = 20\n\n[[loads]]\nprefix = \"B\"\nwidth = 15.0\nheight = 25.0\ncount = 20\nfixed = true\n",
		"loads.json": `{"loads":[{"prefix":"A","width":30,"height":20,"count":20},{"prefix":"B","width":15,"height":25,"count":20,"fixed":true}]}`,
		"loads.csv":  "Prefix,Width,Height,Count,Fixed\nA,30,20,20,no\nB,15,25,20,yes\n",
	}

	for name, content := range files {
		path := writeFile(t, name, content)

		loads, _, err := LoadLoadList(path)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if len(loads) != 2 {
			t.Errorf("%s: expected 2 loads, got %d", name, len(loads))
			continue
		}
		if loads[0].Prefix != "A" || loads[0].Width != 30 || loads[0].Count != 20 {
			t.Errorf("%s: unexpected first load %+v", name, loads[0])
		}
		if !loads[1].Fixed {
			t.Errorf("%s: expected second load fixed", name)
		}
		if loads.TotalCount() != 40 {
			t.Errorf("%s: expected 40 items, got %d", name, loads.TotalCount())
		}
	}
}

func TestLoadLoadListRejectsInvalidLine(t *testing.T) {
	path := writeFile(t, "bad.yaml", "loads:\n  - prefix: A\n    width: 0\n    height: 20\n    count: 1\n")

	_, _, err := LoadLoadList(path)
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLoadLoadListCSVRowError(t *testing.T) {
	path := writeFile(t, "bad.csv", "Prefix,Width,Height,Count\nA,abc,20,1\n")

	_, _, err := LoadLoadList(path)
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLoadLoadListUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "loads.txt", "A 30 20")

	_, _, err := LoadLoadList(path)
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLoadLoadListMalformed(t *testing.T) {
	path := writeFile(t, "loads.json", "{not json")

	if _, _, err := LoadLoadList(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveLoadListRoundTrip(t *testing.T) {
	for _, name := range []string{"out.yaml", "out.toml", "out.json"} {
		path := filepath.Join(t.TempDir(), name)
		if err := SaveLoadList(path, model.DefaultLoads()); err != nil {
			t.Fatalf("%s: SaveLoadList failed: %v", name, err)
		}

		loads, _, err := LoadLoadList(path)
		if err != nil {
			t.Fatalf("%s: LoadLoadList failed: %v", name, err)
		}
		if loads.TotalArea() != model.DefaultLoads().TotalArea() {
			t.Errorf("%s: expected area %g, got %g", name, model.DefaultLoads().TotalArea(), loads.TotalArea())
		}
	}
}

func TestSaveLoadListUnsupportedExtension(t *testing.T) {
	err := SaveLoadList(filepath.Join(t.TempDir(), "out.csv"), model.DefaultLoads())
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
