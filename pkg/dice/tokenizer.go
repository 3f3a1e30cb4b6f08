// Package dice parses and evaluates tabletop dice notation such as "3D6",
// "1D20+5" or "(2D6+6)*5". Expressions are tokenized in a single pass,
// parsed into an immutable tree and evaluated against a pluggable random
// source; Roller adds memoization on top for repeated rolls.
package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Normalize returns the canonical form of a dice expression: whitespace
// stripped and the die marker upper-cased. Cache keys are built from this
// form so textually equivalent expressions share entries.
func Normalize(expr string) string {
	var b strings.Builder
	b.Grow(len(expr))
	for i := 0; i < len(expr); i++ {
		switch ch := expr[i]; {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
		case ch == 'd':
			b.WriteByte('D')
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// tokenizer walks the input with a single byte cursor, never backtracking.
type tokenizer struct {
	src string
	cur int
}

// Tokenize converts a dice expression into tokens. The returned slice always
// ends with a KindEOF sentinel. Unrecognized characters and die groups with
// missing sides fail with *SyntaxError.
func Tokenize(input string) ([]Token, error) {
	t := &tokenizer{src: input}
	var tokens []Token
	for {
		tok, err := t.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			return tokens, nil
		}
	}
}

func (t *tokenizer) next() (Token, error) {
	t.skipWhitespace()

	if t.cur >= len(t.src) {
		return Token{Kind: KindEOF, Pos: t.cur}, nil
	}

	start := t.cur
	ch := t.src[t.cur]

	if isDigit(ch) {
		count, err := t.scanNumber()
		if err != nil {
			return Token{}, err
		}
		if t.cur < len(t.src) && isDieMarker(t.src[t.cur]) {
			t.cur++
			return t.finishDie(start, count)
		}
		return Token{Kind: KindNumber, Value: count, Pos: start}, nil
	}

	// A bare die marker implies a count of 1: D20 reads as 1D20.
	if isDieMarker(ch) {
		t.cur++
		return t.finishDie(start, 1)
	}

	t.cur++
	switch ch {
	case '+':
		return Token{Kind: KindPlus, Pos: start}, nil
	case '-':
		return Token{Kind: KindMinus, Pos: start}, nil
	case '*':
		return Token{Kind: KindMult, Pos: start}, nil
	case '/':
		return Token{Kind: KindDiv, Pos: start}, nil
	case '(':
		return Token{Kind: KindLParen, Pos: start}, nil
	case ')':
		return Token{Kind: KindRParen, Pos: start}, nil
	}
	return Token{}, &SyntaxError{Pos: start, Msg: fmt.Sprintf("unexpected character %q", ch)}
}

// finishDie is called with the cursor just past the die marker.
func (t *tokenizer) finishDie(start, count int) (Token, error) {
	if t.cur >= len(t.src) || !isDigit(t.src[t.cur]) {
		return Token{}, &SyntaxError{Pos: start, Msg: "die is missing its sides"}
	}
	sides, err := t.scanNumber()
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: KindDie, Count: count, Sides: sides, Pos: start}, nil
}

func (t *tokenizer) scanNumber() (int, error) {
	start := t.cur
	for t.cur < len(t.src) && isDigit(t.src[t.cur]) {
		t.cur++
	}
	n, err := strconv.Atoi(t.src[start:t.cur])
	if err != nil {
		return 0, &SyntaxError{Pos: start, Msg: fmt.Sprintf("number %q out of range", t.src[start:t.cur])}
	}
	return n, nil
}

func (t *tokenizer) skipWhitespace() {
	for t.cur < len(t.src) {
		switch t.src[t.cur] {
		case ' ', '\t', '\n', '\r':
			t.cur++
		default:
			return
		}
	}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isDieMarker(ch byte) bool { return ch == 'D' || ch == 'd' }
