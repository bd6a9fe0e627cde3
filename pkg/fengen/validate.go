// Package fengen turns an 8-piece back rank into a FEN start position.
package fengen

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const RowLength = 8

type Reason string

const (
	ReasonWrongLength     Reason = "wrong length"
	ReasonInvalidPieceSet Reason = "invalid piece set"
)

var (
	ErrWrongLength     = errors.New(string(ReasonWrongLength))
	ErrInvalidPieceSet = errors.New(string(ReasonInvalidPieceSet))
)

// requiredPieces is the exact multiset of one back rank.
var requiredPieces = map[rune]int{'k': 1, 'q': 1, 'r': 2, 'n': 2, 'b': 2}

// ValidationError reports why a piece string was rejected.
type ValidationError struct {
	Input  string
	Reason Reason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid back rank %q: %s", e.Input, e.Reason)
}

// Message is the text shown to a person filling in the form.
func (e *ValidationError) Message() string {
	if e.Reason == ReasonWrongLength {
		return "Input must be 8 characters long."
	}
	return "Invalid set of pieces."
}

func (e *ValidationError) Unwrap() error {
	if e.Reason == ReasonWrongLength {
		return ErrWrongLength
	}
	return ErrInvalidPieceSet
}

// Validate checks that input is one king, one queen and two each of rooks,
// knights and bishops, in any order and any case.
func Validate(input string) error {
	s := strings.ToLower(input)
	if utf8.RuneCountInString(s) != RowLength {
		return &ValidationError{Input: input, Reason: ReasonWrongLength}
	}

	counts := make(map[rune]int, len(requiredPieces))
	for _, c := range s {
		if _, ok := requiredPieces[c]; !ok {
			return &ValidationError{Input: input, Reason: ReasonInvalidPieceSet}
		}
		counts[c]++
	}
	for piece, want := range requiredPieces {
		if counts[piece] != want {
			return &ValidationError{Input: input, Reason: ReasonInvalidPieceSet}
		}
	}
	return nil
}

// Clean lower-cases input and drops everything outside a-z, the same
// normalization the form applies while the user types.
func Clean(input string) string {
	var sb strings.Builder
	for _, c := range strings.ToLower(input) {
		if c >= 'a' && c <= 'z' {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
