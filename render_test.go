package puzzlesim

import (
	"testing"
)

func TestApplyLabels(t *testing.T) {
	classified := mustGrid(t, "VVAAAA"+"AARAAA"+"AARAAA"+"AARAAA"+"AAAAAV"+"RAAAAA")

	a := NewOrderedMap[int, Label]()
	a.Set(1, Label{Letter: 'Q', Cells: []Coord{{0, 0}, {0, 1}}})
	a.Set(2, Label{Letter: 'Z', Cells: []Coord{{1, 2}, {2, 2}, {3, 2}}})

	got := ApplyLabels(classified, a)
	want := "QQAAAA" + "AAZAAA" + "AAZAAA" + "AAZAAA" + "AAAAAV" + "RAAAAA"
	if got.Flatten() != want {
		t.Errorf("ApplyLabels() =\n%s\nwant\n%s", got, mustGrid(t, want))
	}

	if classified.At(Coord{0, 0}) != SymbolGreen {
		t.Error("ApplyLabels modified its input grid")
	}
}

func TestApplyLabelsNil(t *testing.T) {
	g := mustGrid(t, "oooooooooooooooooooooooooooooooooooo")
	if got := ApplyLabels(g, nil); got != g {
		t.Errorf("ApplyLabels(nil) changed the grid: %s", got.Flatten())
	}
}
