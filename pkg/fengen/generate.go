package fengen

import (
	"strconv"
	"strings"
)

const (
	files = "ABCDEFGH"

	noCastling = "-"
	blackPawns = "pppppppp"
	whitePawns = "PPPPPPPP"
	emptyRank  = "8"
)

// Position holds the six FEN fields of a generated start position.
type Position struct {
	Placement  string
	SideToMove string
	Castling   string
	EnPassant  string
	Halfmove   int
	Fullmove   int
}

func (p Position) String() string {
	var sb strings.Builder
	sb.WriteString(p.Placement)
	sb.WriteByte(' ')
	sb.WriteString(p.SideToMove)
	sb.WriteByte(' ')
	sb.WriteString(p.Castling)
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant)
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.Halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.Fullmove))
	return sb.String()
}

// BaseRow returns the lower-case row that is placed on rank 8. Black reads
// the row from the other side of the board, so it is reversed.
func BaseRow(pieces string, color Color) string {
	s := []rune(strings.ToLower(pieces))
	if color == Black {
		for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
			s[i], s[j] = s[j], s[i]
		}
	}
	return string(s)
}

// CastlingRights lists the rook files of row in Shredder notation, white
// then black. It is "-" when the row has no rook.
func CastlingRights(row string) string {
	var rooks strings.Builder
	for i, c := range []rune(row) {
		if i >= len(files) {
			break
		}
		if c == 'r' {
			rooks.WriteByte(files[i])
		}
	}
	if rooks.Len() == 0 {
		return noCastling
	}
	white := rooks.String()
	return white + strings.ToLower(white)
}

// NewPosition builds the start position for an already validated piece
// string. White is always to move.
func NewPosition(pieces string, color Color) Position {
	base := BaseRow(pieces, color)
	blackRow := strings.ToLower(base)
	whiteRow := strings.ToUpper(base)

	placement := strings.Join([]string{
		blackRow, blackPawns,
		emptyRank, emptyRank, emptyRank, emptyRank,
		whitePawns, whiteRow,
	}, "/")

	return Position{
		Placement:  placement,
		SideToMove: "w",
		Castling:   CastlingRights(base),
		EnPassant:  "-",
		Halfmove:   0,
		Fullmove:   1,
	}
}

// Generate returns the FEN for pieces. Callers must Validate first.
func Generate(pieces string, color Color) string {
	return NewPosition(pieces, color).String()
}

// ValidateAndGenerate re-checks pieces before generating.
func ValidateAndGenerate(pieces string, color Color) (string, error) {
	if err := Validate(pieces); err != nil {
		return "", err
	}
	return Generate(pieces, color), nil
}
