package puzzlesim

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// ReservedLetters are never assigned to groups: 'A' is the yellow/fallback
// cell symbol and 'O' would read as the empty cell symbol 'o'.
const ReservedLetters = "AO"

// AssignableLetters is the alphabet group letters are drawn from.
var AssignableLetters = assignableLetters()

// ErrInsufficientAlphabet is returned when there are more groups than
// assignable letters.
var ErrInsufficientAlphabet = errors.New("not enough unique letters for the number of groups")

func assignableLetters() string {
	var sb strings.Builder
	for ch := byte('a'); ch <= 'z'; ch++ {
		if strings.IndexByte(strings.ToLower(ReservedLetters), ch) >= 0 {
			continue
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}

// Label is the letter given to one group together with the cells it
// covers.
type Label struct {
	Letter byte
	Cells  []Coord
}

// Assignment maps group IDs to their labels, iterated in group order.
type Assignment = OrderedMap[int, Label]

// LetterAssigner gives every group a distinct random letter.
type LetterAssigner struct {
	rng *rand.Rand
}

// NewLetterAssigner creates an assigner drawing from rng. A nil rng uses a
// randomly seeded source.
func NewLetterAssigner(rng *rand.Rand) *LetterAssigner {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &LetterAssigner{rng: rng}
}

// Assign shuffles the alphabet and hands out its letters, upper-cased, to
// the groups in the order given.
func (la *LetterAssigner) Assign(groups []Group) (*Assignment, error) {
	if len(groups) > len(AssignableLetters) {
		return nil, fmt.Errorf("%w: %d groups, %d letters",
			ErrInsufficientAlphabet, len(groups), len(AssignableLetters))
	}

	letters := []byte(AssignableLetters)
	la.rng.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})

	assignment := NewOrderedMap[int, Label]()
	for k, g := range groups {
		assignment.Set(g.ID, Label{
			Letter: letters[k] - 'a' + 'A',
			Cells:  g.Cells,
		})
	}
	return assignment, nil
}
