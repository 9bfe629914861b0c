package secondarystructure

import (
	"errors"
	"fmt"
	"strings"
)

// Bracket symbols by class. A pair written with class k opens with
// LeftBrackets[k] and closes with RightBrackets[k]. Classes beyond the first
// are only needed when base pairs cross.
const (
	LeftBrackets  = "(<{[ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	RightBrackets = ")>}]abcdefghijklmnopqrstuvwxyz"
)

// numBracketClasses is the number of bracket pair families available for
// disambiguating crossing pairs.
const numBracketClasses = len(LeftBrackets)

// ErrInsufficientBracketClasses is returned by DotBracket when a structure
// contains more mutually crossing pairs than there are bracket classes.
var ErrInsufficientBracketClasses = errors.New("not enough bracket classes to write the structure unambiguously")

// An UnrecognizedSymbolError reports a character that is neither a bracket
// symbol nor the '.' unpaired marker.
type UnrecognizedSymbolError struct {
	Symbol rune
}

func (e *UnrecognizedSymbolError) Error() string {
	return fmt.Sprintf("bracket symbol not recognized: %q", e.Symbol)
}

// An UnmatchedClosingBracketError reports a right bracket with no pending
// left bracket of the same class to its left.
type UnmatchedClosingBracketError struct {
	Class    int  // bracket class index
	Symbol   rune // the right bracket that could not be matched
	Position int  // 1-based position in the input string
}

func (e *UnmatchedClosingBracketError) Error() string {
	return fmt.Sprintf("missing left bracket %q for %q at position %d",
		rune(LeftBrackets[e.Class]), e.Symbol, e.Position)
}

// An UnmatchedOpeningBracketError reports a left bracket that was never
// closed before the end of the input.
type UnmatchedOpeningBracketError struct {
	Class    int  // bracket class index
	Symbol   rune // the left bracket that was never closed
	Position int  // 1-based position in the input string
}

func (e *UnmatchedOpeningBracketError) Error() string {
	return fmt.Sprintf("missing right bracket %q for %q at position %d",
		rune(RightBrackets[e.Class]), e.Symbol, e.Position)
}

// Matching returns the bracket symbol that closes (for a left bracket) or
// opens (for a right bracket) the class of the given symbol.
func Matching(bracket rune) (rune, error) {
	if i := strings.IndexRune(LeftBrackets, bracket); i >= 0 {
		return rune(RightBrackets[i]), nil
	}
	if i := strings.IndexRune(RightBrackets, bracket); i >= 0 {
		return rune(LeftBrackets[i]), nil
	}
	return 0, &UnrecognizedSymbolError{Symbol: bracket}
}

// ParseDotBracket decodes a dot-bracket string into a Pairing. Brackets of
// each class match independently of the other classes, which is what lets a
// single string express crossing pairs. Characters outside the bracket
// alphabet and the '.' unpaired marker are rejected with an
// UnrecognizedSymbolError.
func ParseDotBracket(dbn string) (Pairing, error) {
	paired := make(Pairing, len(dbn))
	var stacks [numBracketClasses][]int

	for i, c := range dbn {
		if class := strings.IndexRune(LeftBrackets, c); class >= 0 {
			stacks[class] = append(stacks[class], i)
			continue
		}
		if class := strings.IndexRune(RightBrackets, c); class >= 0 {
			stack := stacks[class]
			if len(stack) == 0 {
				return nil, &UnmatchedClosingBracketError{Class: class, Symbol: c, Position: i + 1}
			}
			j := stack[len(stack)-1]
			stacks[class] = stack[:len(stack)-1]
			paired[i] = int64(j) + 1
			paired[j] = int64(i) + 1
			continue
		}
		if c != '.' {
			return nil, &UnrecognizedSymbolError{Symbol: c}
		}
	}

	// Any bracket still on a stack was never closed. Report the earliest one.
	open, openClass := -1, 0
	for class, stack := range stacks {
		if len(stack) == 0 {
			continue
		}
		if top := stack[len(stack)-1]; open < 0 || top < open {
			open, openClass = top, class
		}
	}
	if open >= 0 {
		return nil, &UnmatchedOpeningBracketError{
			Class:    openClass,
			Symbol:   rune(LeftBrackets[openClass]),
			Position: open + 1,
		}
	}
	return paired, nil
}

// DotBracket encodes a structure as a dot-bracket string. Crossing pairs are
// written with distinct bracket classes: each pair takes the lowest class
// whose still-open pairs it does not cross, so the output is deterministic
// and decoding it recovers the same Pairing. Structures with more mutually
// crossing pairs than bracket classes return ErrInsufficientBracketClasses,
// and a Pairing that is not symmetric can be rejected with
// ErrPrematureClosure when a closing site does not point back at an open
// bracket.
func DotBracket(s PairedSites) (string, error) {
	paired := s.Pairing()

	dbn := make([]byte, 0, len(paired))
	var stacks [numBracketClasses][]int64
	for i, j := range paired {
		switch {
		case j == 0:
			dbn = append(dbn, '.')
		case int64(i) < j:
			class := -1
			for k := 0; k < numBracketClasses; k++ {
				if stack := stacks[k]; len(stack) == 0 || j < stack[len(stack)-1] {
					class = k
					break
				}
			}
			if class < 0 {
				return "", ErrInsufficientBracketClasses
			}
			stacks[class] = append(stacks[class], j)
			dbn = append(dbn, LeftBrackets[class])
		default:
			class := -1
			if j >= 1 {
				class = strings.IndexByte(LeftBrackets, dbn[j-1])
			}
			if class < 0 || len(stacks[class]) == 0 {
				return "", ErrPrematureClosure
			}
			stacks[class] = stacks[class][:len(stacks[class])-1]
			dbn = append(dbn, RightBrackets[class])
		}
	}
	return string(dbn), nil
}
