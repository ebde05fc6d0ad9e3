package puzzlesim

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Board description symbols besides piece letters.
const (
	BoardEmpty    byte = SymbolEmpty
	BoardEmptyAlt byte = '.'
	BoardWall     byte = 'x'
)

var (
	ErrEmptyBoard    = errors.New("board cannot be empty")
	ErrNotSquare     = errors.New("boards must be square")
	ErrPieceTooSmall = errors.New("piece size must be >= 2")
	ErrInvalidShape  = errors.New("invalid piece shape")
)

// Piece is a block on a board: Size cells starting at Position (a row-major
// index) and spaced Stride apart. Stride is 1 for horizontal pieces and the
// board size for vertical ones. Walls are fixed single-cell pieces.
type Piece struct {
	Label    byte
	Position int
	Size     int
	Stride   int
	Fixed    bool
}

// Cells returns the row-major indices covered by the piece.
func (p Piece) Cells() []int {
	cells := make([]int, p.Size)
	for i := range cells {
		cells[i] = p.Position + i*p.Stride
	}
	return cells
}

// Move slides piece number Piece by Steps cells along its axis; negative
// steps move left or up.
type Move struct {
	Piece int
	Steps int
}

// Board is a decoded board description. Pieces are ordered by label, with
// walls after every movable piece.
type Board struct {
	Size       int
	Pieces     []Piece
	PrimaryRow int
}

// ParseBoard decodes a square board description such as the flattened
// output of a labeled Grid. 'o' and '.' are empty cells, 'x' is a wall and
// every other byte labels the cells of one straight piece.
func ParseBoard(desc string) (*Board, error) {
	size := int(math.Sqrt(float64(len(desc))))
	if size == 0 {
		return nil, ErrEmptyBoard
	}
	if size*size != len(desc) {
		return nil, fmt.Errorf("%w: %d cells", ErrNotSquare, len(desc))
	}

	positions := NewOrderedMap[byte, []int]()
	for i := 0; i < len(desc); i++ {
		ps, _ := positions.Get(desc[i])
		positions.Set(desc[i], append(ps, i))
	}

	labels := positions.Keys()
	slices.Sort(labels)

	b := &Board{Size: size}
	for _, label := range labels {
		if label == BoardEmpty || label == BoardEmptyAlt || label == BoardWall {
			continue
		}
		ps, _ := positions.Get(label)
		if len(ps) < 2 {
			return nil, fmt.Errorf("%w: %q", ErrPieceTooSmall, label)
		}
		stride := ps[1] - ps[0]
		if stride != 1 && stride != size {
			return nil, fmt.Errorf("%w: %q", ErrInvalidShape, label)
		}
		for i := 2; i < len(ps); i++ {
			if ps[i]-ps[i-1] != stride {
				return nil, fmt.Errorf("%w: %q", ErrInvalidShape, label)
			}
		}
		// a horizontal piece must not wrap onto the next row
		if stride == 1 && ps[0]/size != ps[len(ps)-1]/size {
			return nil, fmt.Errorf("%w: %q wraps rows", ErrInvalidShape, label)
		}
		b.Pieces = append(b.Pieces, Piece{
			Label:    label,
			Position: ps[0],
			Size:     len(ps),
			Stride:   stride,
		})
	}

	if walls, ok := positions.Get(BoardWall); ok {
		for _, p := range walls {
			b.Pieces = append(b.Pieces, Piece{
				Label:    BoardWall,
				Position: p,
				Size:     1,
				Stride:   1,
				Fixed:    true,
			})
		}
	}

	if len(b.Pieces) != 0 {
		b.PrimaryRow = b.Pieces[0].Position / size
	}
	return b, nil
}

// PieceAt returns the number of the piece covering index, or -1.
func (b *Board) PieceAt(index int) int {
	for i, piece := range b.Pieces {
		if slices.Contains(piece.Cells(), index) {
			return i
		}
	}
	return -1
}

func (b *Board) occupied(index int) bool {
	return b.PieceAt(index) >= 0
}

// Moves lists every legal slide of every movable piece. For each piece the
// backward moves come first, nearest first, then the forward moves.
func (b *Board) Moves() []Move {
	var moves []Move
	for i, piece := range b.Pieces {
		if piece.Fixed {
			continue
		}

		var reverseSteps, forwardSteps int
		if piece.Stride == 1 {
			x := piece.Position % b.Size
			reverseSteps = -x
			forwardSteps = b.Size - piece.Size - x
		} else {
			y := piece.Position / b.Size
			reverseSteps = -y
			forwardSteps = b.Size - piece.Size - y
		}

		idx := piece.Position - piece.Stride
		for steps := -1; steps >= reverseSteps; steps-- {
			if b.occupied(idx) {
				break
			}
			moves = append(moves, Move{Piece: i, Steps: steps})
			idx -= piece.Stride
		}
		idx = piece.Position + piece.Size*piece.Stride
		for steps := 1; steps <= forwardSteps; steps++ {
			if b.occupied(idx) {
				break
			}
			moves = append(moves, Move{Piece: i, Steps: steps})
			idx += piece.Stride
		}
	}
	return moves
}

// Solved reports whether the primary piece (the first one) touches the
// right edge of the board.
func (b *Board) Solved() bool {
	if len(b.Pieces) == 0 {
		return false
	}
	piece := b.Pieces[0]
	return piece.Position%b.Size+piece.Size == b.Size
}
