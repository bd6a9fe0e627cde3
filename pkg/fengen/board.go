package fengen

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// Board decodes the piece placement of fen. The castling field is dropped
// since chess only understands KQkq rights, not rook files.
func Board(fen string) (*chess.Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("fen %q: expected 6 fields, got %d", fen, len(fields))
	}
	fields[2] = noCastling

	fenFunc, err := chess.FEN(strings.Join(fields, " "))
	if err != nil {
		return nil, fmt.Errorf("decode fen %q: %w", fen, err)
	}
	return chess.NewGame(fenFunc).Position().Board(), nil
}

// Draw renders the start position of pieces as a text diagram.
func Draw(pieces string, color Color) (string, error) {
	board, err := Board(Generate(pieces, color))
	if err != nil {
		return "", err
	}
	return board.Draw(), nil
}
