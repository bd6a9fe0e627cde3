package fengen

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason Reason
	}{
		{name: "standard", input: "rnbqkbnr"},
		{name: "upper case", input: "RNBQKBNR"},
		{name: "mixed case", input: "rNbQkBnR"},
		{name: "chess960", input: "bbqnnrkr"},
		{name: "not chess960 but valid set", input: "rrkqnnbb"},
		{name: "empty", input: "", reason: ReasonWrongLength},
		{name: "seven", input: "rnbqkbn", reason: ReasonWrongLength},
		{name: "nine", input: "rnbqkbnrr", reason: ReasonWrongLength},
		{name: "pawn instead of knight", input: "rnbqkbnp", reason: ReasonInvalidPieceSet},
		{name: "two kings", input: "rnbkkbnr", reason: ReasonInvalidPieceSet},
		{name: "space", input: "rnbq bnr", reason: ReasonInvalidPieceSet},
		{name: "digit", input: "rnbq1bnr", reason: ReasonInvalidPieceSet},
		{name: "multibyte", input: "rnbqkbnё", reason: ReasonInvalidPieceSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)
			if tt.reason == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.reason, verr.Reason)
			assert.Equal(t, tt.input, verr.Input)
		})
	}
}

func TestValidateSentinels(t *testing.T) {
	err := Validate("rnbqkbn")
	assert.True(t, errors.Is(err, ErrWrongLength))
	assert.False(t, errors.Is(err, ErrInvalidPieceSet))
	assert.Equal(t, "Input must be 8 characters long.", err.(*ValidationError).Message())

	err = Validate("rnbqkbnp")
	assert.True(t, errors.Is(err, ErrInvalidPieceSet))
	assert.Equal(t, "Invalid set of pieces.", err.(*ValidationError).Message())
	assert.Contains(t, err.Error(), "invalid piece set")
}

func TestValidateOtherLengths(t *testing.T) {
	for n := 0; n <= 32; n++ {
		if n == RowLength {
			continue
		}
		for _, c := range "kqrnbpx" {
			input := strings.Repeat(string(c), n)
			assert.ErrorIs(t, Validate(input), ErrWrongLength, "input %q", input)
		}
		// a valid row padded or cut must fail on length, never on the set
		input := strings.Repeat("rnbqkbnr", 5)[:n]
		assert.ErrorIs(t, Validate(input), ErrWrongLength, "input %q", input)
	}
}

// Every 8-letter word over the five pieces plus a pawn and a foreign letter
// is valid exactly when it holds k, q and two each of r, n, b.
func TestValidateExhaustive(t *testing.T) {
	const alphabet = "kqrnbpx"
	want := [len(alphabet)]int{1, 1, 2, 2, 2, 0, 0}

	word := make([]byte, RowLength)
	valid := 0
	var walk func(pos int)
	walk = func(pos int) {
		if pos == RowLength {
			var counts [len(alphabet)]int
			for _, c := range word {
				counts[strings.IndexByte(alphabet, c)]++
			}
			expectValid := counts == want

			err := Validate(string(word))
			if expectValid {
				valid++
				if err != nil {
					t.Fatalf("Validate(%q) = %v, want valid", word, err)
				}
			} else if !errors.Is(err, ErrInvalidPieceSet) {
				t.Fatalf("Validate(%q) = %v, want invalid piece set", word, err)
			}
			return
		}
		for i := 0; i < len(alphabet); i++ {
			word[pos] = alphabet[i]
			walk(pos + 1)
		}
	}
	walk(0)

	// 8! / (2! 2! 2!) distinct arrangements of the multiset
	assert.Equal(t, 5040, valid)
}

func TestClean(t *testing.T) {
	assert.Equal(t, "rnbqkbnr", Clean(" R-N-B-Q k b n r!1"))
	assert.Equal(t, "", Clean("12345"))
	assert.NoError(t, Validate(Clean("RNBQ KBNR")))
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("White")
	require.NoError(t, err)
	assert.Equal(t, White, c)

	c, err = ParseColor(" black ")
	require.NoError(t, err)
	assert.Equal(t, Black, c)
	assert.Equal(t, "black", c.String())

	_, err = ParseColor("red")
	assert.Error(t, err)
}
