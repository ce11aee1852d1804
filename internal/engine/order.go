package engine

import (
	"cmp"
	"slices"

	"github.com/piwi3910/LoadPack/internal/model"
)

// byAreaDesc compares two items by area, largest first.
func byAreaDesc(a, b model.Item) int {
	return cmp.Compare(b.Area(), a.Area())
}

// Order returns the placement sequence for items: largest area first, with
// equal areas kept in input order. The input slice is not modified.
func Order(items []model.Item) []model.Item {
	ordered := slices.Clone(items)
	slices.SortStableFunc(ordered, byAreaDesc)
	return ordered
}
