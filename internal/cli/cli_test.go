package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/LoadPack/internal/model"
)

// execute runs the CLI with a config file in dir and returns stdout.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", filepath.Join(dir, "config.json")}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeLoads(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "loads.yaml")
	content := `loads:
  - prefix: A
    width: 10
    height: 4
    count: 1
  - prefix: B
    width: 4
    height: 10
    count: 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	defer SetVersion("dev", "", "")

	assert.Equal(t, "1.0.0", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2024-01-01", date)
}

func TestLoggerFromContext_Default(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	l := newLogger(io.Discard, log.DebugLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestPack_DefaultLoads(t *testing.T) {
	out, err := execute(t, t.TempDir(), "pack", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "Total wasted area:")
	assert.Contains(t, out, "200x100")
}

func TestPack_LoadListWithJSONOutput(t *testing.T) {
	dir := t.TempDir()
	loads := writeLoads(t, dir)
	jsonPath := filepath.Join(dir, "result.json")

	out, err := execute(t, dir, "pack", "--loads", loads, "--width", "10", "--height", "10", "--json", jsonPath)
	require.NoError(t, err)
	assert.Contains(t, out, "rotated")
	assert.Contains(t, out, jsonPath)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var result model.PackResult
	require.NoError(t, json.Unmarshal(data, &result))

	b, ok := result.Find("B2")
	require.True(t, ok)
	require.True(t, b.Placed())
	assert.True(t, b.Rotated())
	assert.Equal(t, 4.0, b.Position.Y)
	assert.Equal(t, 20.0, result.WastedArea())
}

func TestPack_NoRotate(t *testing.T) {
	dir := t.TempDir()
	loads := writeLoads(t, dir)

	out, err := execute(t, dir, "pack", "--loads", loads, "--width", "10", "--height", "10", "--no-rotate")
	require.NoError(t, err)
	assert.Contains(t, out, "1 items did not fit: B2")
	assert.Contains(t, out, "unplaced")
}

func TestPack_JSONToStdout(t *testing.T) {
	dir := t.TempDir()
	loads := writeLoads(t, dir)

	out, err := execute(t, dir, "pack", "--loads", loads, "--width", "10", "--height", "10", "--json", "-")
	require.NoError(t, err)

	var result model.PackResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Placements, 2)
}

func TestPack_ContainerPreset(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "pack", "--random", "5", "--container", "Euro pallet (EUR1)", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "1200x800")
	assert.FileExists(t, filepath.Join(dir, "containers.json"))

	_, err = execute(t, dir, "pack", "--container", "No such pallet")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestPack_InvalidRandomRange(t *testing.T) {
	_, err := execute(t, t.TempDir(), "pack", "--random", "3", "--min-side", "20", "--max-side", "5")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestPack_RejectsNonFiniteContainer(t *testing.T) {
	for _, args := range [][]string{
		{"--width", "NaN"},
		{"--height", "Inf"},
	} {
		_, err := execute(t, t.TempDir(), append([]string{"pack", "--json", "-"}, args...)...)
		assert.ErrorIs(t, err, model.ErrInvalidInput, "%v", args)
	}
}

func TestPack_WritesOutputs(t *testing.T) {
	dir := t.TempDir()
	paths := map[string]string{
		"--png":    filepath.Join(dir, "layout.png"),
		"--pdf":    filepath.Join(dir, "plan.pdf"),
		"--xlsx":   filepath.Join(dir, "plan.xlsx"),
		"--labels": filepath.Join(dir, "labels.pdf"),
		"--save":   filepath.Join(dir, "run.loadpack"),
	}

	args := []string{"pack", "--random", "8", "--seed", "3", "--quiet"}
	for flag, p := range paths {
		args = append(args, flag, p)
	}
	_, err := execute(t, dir, args...)
	require.NoError(t, err)

	for flag, p := range paths {
		assert.FileExists(t, p, flag)
	}
}

func TestCompare(t *testing.T) {
	dir := t.TempDir()
	chart := filepath.Join(dir, "chart.html")

	out, err := execute(t, dir, "compare", "--width", "10", "--height", "4", "--random", "3", "--chart", chart)
	require.NoError(t, err)
	assert.Contains(t, out, "Rotation Disabled")
	assert.Contains(t, out, "Transposed")
	assert.Contains(t, out, "Best:")
	assert.FileExists(t, chart)
}

func TestConfigInitAndShow(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, dir, "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "config.json"))

	_, err = execute(t, dir, "config", "init")
	assert.Error(t, err, "init must not overwrite without --force")

	_, err = execute(t, dir, "config", "init", "--force")
	require.NoError(t, err)

	out, err := execute(t, dir, "config", "show")
	require.NoError(t, err)
	var cfg model.AppConfig
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, model.DefaultAppConfig().DefaultContainerWidth, cfg.DefaultContainerWidth)
}

func TestConfigExportImport(t *testing.T) {
	src := t.TempDir()
	backup := filepath.Join(src, "backup.json")

	_, err := execute(t, src, "containers", "add", "Trailer", "--width", "1360", "--height", "245")
	require.NoError(t, err)
	_, err = execute(t, src, "config", "export", backup)
	require.NoError(t, err)

	dst := t.TempDir()
	_, err = execute(t, dst, "config", "import", backup)
	require.NoError(t, err)

	out, err := execute(t, dst, "containers")
	require.NoError(t, err)
	assert.Contains(t, out, "Trailer")
}

func TestContainersAdd_Duplicate(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, dir, "containers", "add", "Box", "--width", "5", "--height", "5")
	require.NoError(t, err)
	_, err = execute(t, dir, "containers", "add", "Box", "--width", "5", "--height", "5")
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = execute(t, dir, "containers", "add", "Flat", "--width", "0", "--height", "5")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	result := model.PackResult{
		Container: model.NewContainer(10, 10),
		Placements: []model.Placement{
			{Item: model.NewItem("A", 8, 8), Position: &model.Position{}},
			{Item: model.NewItem("B", 8, 8)},
		},
	}
	printSummary(&buf, result, model.DefaultPackSettings())

	out := buf.String()
	assert.Contains(t, out, "1 / 2")
	assert.Contains(t, out, "did not fit: B")
	assert.True(t, strings.Contains(out, "Total wasted area:") && strings.Contains(out, "36"))
}
