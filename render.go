package puzzlesim

// ApplyLabels returns a copy of g with the cells of every assigned group replaced
// by the group's letter. Cells outside any group keep their symbol, so a
// lone 'V' or 'R' stays as it was classified.
func ApplyLabels(g Grid, a *Assignment) Grid {
	labeled := g
	if a == nil {
		return labeled
	}
	a.Iterate(func(_ int, l Label) {
		for _, c := range l.Cells {
			labeled.Set(c, l.Letter)
		}
	})
	return labeled
}
