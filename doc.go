// Package puzzlesim converts screenshots of a 6x6 sliding-block puzzle into
// board descriptions.
//
// A board image is split into a 6x6 grid and the center pixel of each cell
// is classified against a Palette: 'A' for the yellow primary piece (and
// anything unrecognised), 'R' for red, 'V' for green and 'o' for an empty
// cell. FindGroups then joins horizontal green pairs and vertical red runs
// of two or three cells into pieces, a LetterAssigner gives each piece a
// distinct random letter, and ApplyLabels writes the letters back into the
// grid. The flattened grid is a board description that ParseBoard can
// decode into pieces and moves.
//
// Converter runs the whole pipeline:
//
//	c := puzzlesim.NewConverter(puzzlesim.WithSeed(42))
//	res, err := c.Convert("image.png")
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Labeled)
//	fmt.Println(res.Labeled.Flatten())
package puzzlesim
