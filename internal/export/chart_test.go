package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/LoadPack/internal/engine"
	"github.com/piwi3910/LoadPack/internal/model"
)

func TestExportComparisonChart(t *testing.T) {
	items := []model.Item{model.NewItem("A", 4, 10), model.NewItem("B", 3, 3)}
	scenarios := engine.BuildDefaultScenarios(model.NewContainer(10, 4), model.DefaultPackSettings())
	results, err := engine.CompareScenarios(scenarios, items)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ExportComparisonChart(&buf, results); err != nil {
		t.Fatalf("ExportComparisonChart returned error: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "Scenario Comparison") {
		t.Error("expected chart title in output")
	}
	if !strings.Contains(html, "Rotation Disabled") {
		t.Error("expected scenario names in output")
	}

	path := filepath.Join(t.TempDir(), "chart.html")
	if err := ExportComparisonChartFile(path, results); err != nil {
		t.Fatalf("ExportComparisonChartFile returned error: %v", err)
	}
	assertFileNotEmpty(t, path, 100)
}

func TestExportComparisonChart_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportComparisonChart(&buf, nil); err == nil {
		t.Error("expected error for no results")
	}
}
