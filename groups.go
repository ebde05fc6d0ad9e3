package puzzlesim

// Group is a run of same-symbol cells detected as one piece. Green ('V')
// groups are horizontal pairs, red ('R') groups are vertical runs of two or
// three cells.
type Group struct {
	ID     int
	Symbol byte
	Cells  []Coord
}

// Horizontal reports whether the group's cells lie in one row.
func (g Group) Horizontal() bool {
	return len(g.Cells) > 1 && g.Cells[0].Row == g.Cells[1].Row
}

// FindGroups scans the grid in row-major order and returns the detected
// groups with IDs 1, 2, 3... in detection order. Once a cell belongs to a
// group it is never scanned again, so groups never overlap. Only the symbol
// of a partner cell is checked, not whether it was already claimed.
func FindGroups(g Grid) []Group {
	groups := []Group{}
	claimed := make(map[Coord]bool)

	for i := 0; i < GridSize; i++ {
		for j := 0; j < GridSize; j++ {
			c := Coord{Row: i, Col: j}
			if claimed[c] {
				continue
			}

			var cells []Coord
			switch g.At(c) {
			case SymbolGreen:
				cells = horizontalRun(g, c)
			case SymbolRed:
				cells = verticalRun(g, c)
			}
			if cells == nil {
				continue
			}

			for _, member := range cells {
				claimed[member] = true
			}
			groups = append(groups, Group{
				ID:     len(groups) + 1,
				Symbol: g.At(c),
				Cells:  cells,
			})
		}
	}
	return groups
}

// horizontalRun matches exactly two green cells; a third is never checked.
func horizontalRun(g Grid, c Coord) []Coord {
	right := Coord{Row: c.Row, Col: c.Col + 1}
	if right.inBounds() && g.At(right) == SymbolGreen {
		return []Coord{c, right}
	}
	return nil
}

// verticalRun matches two red cells, extended to three when the cell below
// the pair is red as well.
func verticalRun(g Grid, c Coord) []Coord {
	below := Coord{Row: c.Row + 1, Col: c.Col}
	if !below.inBounds() || g.At(below) != SymbolRed {
		return nil
	}
	third := Coord{Row: c.Row + 2, Col: c.Col}
	if third.inBounds() && g.At(third) == SymbolRed {
		return []Coord{c, below, third}
	}
	return []Coord{c, below}
}
