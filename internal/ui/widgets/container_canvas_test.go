package widgets

import (
	"testing"

	"github.com/piwi3910/LoadPack/internal/model"
)

func TestFitScale(t *testing.T) {
	c := model.NewContainer(200, 100)

	if got := fitScale(c, 400, 400); got != 2 {
		t.Errorf("width-bound scale: expected 2, got %v", got)
	}
	if got := fitScale(c, 1000, 50); got != 0.5 {
		t.Errorf("height-bound scale: expected 0.5, got %v", got)
	}
	if got := fitScale(model.Container{}, 100, 100); got != 0 {
		t.Errorf("empty container: expected 0, got %v", got)
	}
}

func TestScreenRect_FlipsY(t *testing.T) {
	c := model.NewContainer(10, 10)
	a := model.Placement{Item: model.NewItem("A", 10, 4), Position: &model.Position{}}
	b := model.Placement{Item: model.NewItem("B", 4, 10), Position: &model.Position{Y: 4, Orientation: model.Rotated}}

	x, y, w, h := screenRect(c, a, 10)
	if x != 0 || y != 60 || w != 100 || h != 40 {
		t.Errorf("A: expected (0,60,100,40), got (%v,%v,%v,%v)", x, y, w, h)
	}

	x, y, w, h = screenRect(c, b, 10)
	if x != 0 || y != 20 || w != 100 || h != 40 {
		t.Errorf("B: expected (0,20,100,40), got (%v,%v,%v,%v)", x, y, w, h)
	}
}
