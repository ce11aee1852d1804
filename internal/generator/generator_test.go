package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/LoadPack/internal/model"
)

func TestRandom_LabelsAndBounds(t *testing.T) {
	cfg := model.DefaultRandomConfig()
	items, err := Random(nil, cfg)
	require.NoError(t, err)
	require.Len(t, items, cfg.Count)

	assert.Equal(t, "R1", items[0].Label)
	assert.Equal(t, "R100", items[99].Label)
	for _, it := range items {
		assert.GreaterOrEqual(t, it.Width, float64(cfg.MinSide))
		assert.LessOrEqual(t, it.Width, float64(cfg.MaxSide))
		assert.GreaterOrEqual(t, it.Height, float64(cfg.MinSide))
		assert.LessOrEqual(t, it.Height, float64(cfg.MaxSide))
	}
}

func TestRandom_SameSeedSameDimensions(t *testing.T) {
	cfg := model.RandomConfig{Count: 20, MinSide: 1, MaxSide: 50, Seed: 7}

	a, err := Random(nil, cfg)
	require.NoError(t, err)
	b, err := Random(rand.New(rand.NewSource(7)), cfg)
	require.NoError(t, err)

	for i := range a {
		assert.Equal(t, a[i].Width, b[i].Width)
		assert.Equal(t, a[i].Height, b[i].Height)
		assert.NotEqual(t, a[i].ID, b[i].ID)
	}
}

func TestRandom_FixedSide(t *testing.T) {
	items, err := Random(nil, model.RandomConfig{Count: 3, MinSide: 5, MaxSide: 5})
	require.NoError(t, err)
	for _, it := range items {
		assert.Equal(t, 5.0, it.Width)
		assert.Equal(t, 5.0, it.Height)
	}
}

func TestRandom_InvalidConfig(t *testing.T) {
	_, err := Random(nil, model.RandomConfig{Count: 3, MinSide: 30, MaxSide: 10})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestFromLoads_RunningIndex(t *testing.T) {
	loads := model.LoadList{
		{Prefix: "A", Width: 30, Height: 20, Count: 2},
		{Width: 15, Height: 25, Count: 1, Fixed: true},
		{Prefix: "C", Width: 20, Height: 10, Count: 2},
	}

	items, err := FromLoads(loads)
	require.NoError(t, err)
	require.Len(t, items, 5)

	var got []string
	for _, it := range items {
		got = append(got, it.Label)
	}
	assert.Equal(t, []string{"A1", "A2", "L3", "C4", "C5"}, got)
	assert.True(t, items[2].Fixed)
	assert.False(t, items[0].Fixed)
	assert.Equal(t, 15.0, items[2].Width)
}

func TestFromLoads_RejectsBadLine(t *testing.T) {
	_, err := FromLoads(model.LoadList{{Prefix: "X", Width: 1, Height: 1, Count: 0}})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestFromLoads_RejectsOversizedList(t *testing.T) {
	_, err := FromLoads(model.LoadList{
		{Prefix: "X", Width: 1, Height: 1, Count: model.MaxItems},
		{Prefix: "Y", Width: 1, Height: 1, Count: 1},
	})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestRandom_RejectsCountAboveLimit(t *testing.T) {
	cfg := model.DefaultRandomConfig()
	cfg.Count = model.MaxItems + 1
	_, err := Random(nil, cfg)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestDefaultLoads(t *testing.T) {
	items := DefaultLoads()
	require.Len(t, items, 60)
	assert.Equal(t, "A1", items[0].Label)
	assert.Equal(t, "B21", items[20].Label)
	assert.Equal(t, "C60", items[59].Label)
}
