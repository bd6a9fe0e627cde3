package fengen

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	Chess960Count = 960
	// StandardIndex is the Scharnagl number of the classical setup.
	StandardIndex = 518
)

// knightSlots places two knights among the five squares left after the
// bishops and the queen, in Scharnagl order.
var knightSlots = [10][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {1, 3}, {1, 4},
	{2, 3}, {2, 4},
	{3, 4},
}

// FromIndex returns the back rank with Scharnagl number n.
func FromIndex(n int) (string, error) {
	if n < 0 || n >= Chess960Count {
		return "", fmt.Errorf("chess960 index %d out of range [0, %d)", n, Chess960Count)
	}

	var row [RowLength]byte
	row[n%4*2+1] = 'b'
	n /= 4
	row[n%4*2] = 'b'
	n /= 4

	placeNth(&row, n%6, 'q')
	n /= 6

	slots := knightSlots[n]
	// second knight first, so the first one does not shift its slot
	placeNth(&row, slots[1], 'n')
	placeNth(&row, slots[0], 'n')

	placeNth(&row, 0, 'r')
	placeNth(&row, 0, 'k')
	placeNth(&row, 0, 'r')
	return string(row[:]), nil
}

// placeNth puts piece on the k-th empty square of row.
func placeNth(row *[RowLength]byte, k int, piece byte) {
	for i := range row {
		if row[i] != 0 {
			continue
		}
		if k == 0 {
			row[i] = piece
			return
		}
		k--
	}
}

// Index returns the Scharnagl number of pieces, if it is a Chess960 row.
func Index(pieces string) (int, bool) {
	s := strings.ToLower(pieces)
	if !IsChess960(s) {
		return 0, false
	}
	for n := 0; n < Chess960Count; n++ {
		if row, _ := FromIndex(n); row == s {
			return n, true
		}
	}
	return 0, false
}

// IsChess960 reports whether pieces is a legal Chess960 start row: a valid
// piece set with bishops on opposite colors and the king between the rooks.
func IsChess960(pieces string) bool {
	if Validate(pieces) != nil {
		return false
	}
	s := strings.ToLower(pieces)

	bishops := make([]int, 0, 2)
	rooks := make([]int, 0, 2)
	king := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'b':
			bishops = append(bishops, i)
		case 'r':
			rooks = append(rooks, i)
		case 'k':
			king = i
		}
	}
	return bishops[0]%2 != bishops[1]%2 && rooks[0] < king && king < rooks[1]
}

// Random returns a uniformly chosen Chess960 row.
func Random(r *rand.Rand) string {
	row, _ := FromIndex(r.IntN(Chess960Count))
	return row
}

// Chess960Rows lists every Chess960 row in Scharnagl order.
func Chess960Rows() []string {
	rows := make([]string, 0, Chess960Count)
	for n := 0; n < Chess960Count; n++ {
		row, _ := FromIndex(n)
		rows = append(rows, row)
	}
	return rows
}
