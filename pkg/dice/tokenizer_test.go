package dice

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3d6", "3D6"},
		{" 1D20 + 5 ", "1D20+5"},
		{"(2d6+6)*5", "(2D6+6)*5"},
		{"3D6", "3D6"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTokenizeBasic(t *testing.T) {
	tests := []struct {
		in   string
		want []Token
	}{
		{"3D6", []Token{
			{Kind: KindDie, Count: 3, Sides: 6},
			{Kind: KindEOF},
		}},
		{"3d6", []Token{
			{Kind: KindDie, Count: 3, Sides: 6},
			{Kind: KindEOF},
		}},
		{"D20", []Token{
			{Kind: KindDie, Count: 1, Sides: 20},
			{Kind: KindEOF},
		}},
		{"1D20+5", []Token{
			{Kind: KindDie, Count: 1, Sides: 20},
			{Kind: KindPlus},
			{Kind: KindNumber, Value: 5},
			{Kind: KindEOF},
		}},
		{"(2D6+6)*5", []Token{
			{Kind: KindLParen},
			{Kind: KindDie, Count: 2, Sides: 6},
			{Kind: KindPlus},
			{Kind: KindNumber, Value: 6},
			{Kind: KindRParen},
			{Kind: KindMult},
			{Kind: KindNumber, Value: 5},
			{Kind: KindEOF},
		}},
		{"10 - 4 / 2", []Token{
			{Kind: KindNumber, Value: 10},
			{Kind: KindMinus},
			{Kind: KindNumber, Value: 4},
			{Kind: KindDiv},
			{Kind: KindNumber, Value: 2},
			{Kind: KindEOF},
		}},
		{"", []Token{
			{Kind: KindEOF},
		}},
	}

	for _, tt := range tests {
		got, err := Tokenize(tt.in)
		if err != nil {
			t.Errorf("Tokenize(%q): %v", tt.in, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("Tokenize(%q) = %d tokens, want %d", tt.in, len(got), len(tt.want))
			continue
		}
		for i, tok := range got {
			w := tt.want[i]
			if tok.Kind != w.Kind || tok.Value != w.Value || tok.Count != w.Count || tok.Sides != w.Sides {
				t.Errorf("Tokenize(%q)[%d] = %+v, want kind=%v value=%d count=%d sides=%d",
					tt.in, i, tok, w.Kind, w.Value, w.Count, w.Sides)
			}
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in      string
		wantPos int
	}{
		{"2D", 0},      // die missing its sides
		{"3D6+x", 4},   // unrecognized character
		{"1D20 # 5", 5},
		{"d", 0},
	}
	for _, tt := range tests {
		_, err := Tokenize(tt.in)
		var synErr *SyntaxError
		if !errors.As(err, &synErr) {
			t.Errorf("Tokenize(%q) = %v, want *SyntaxError", tt.in, err)
			continue
		}
		if synErr.Pos != tt.wantPos {
			t.Errorf("Tokenize(%q) error at offset %d, want %d", tt.in, synErr.Pos, tt.wantPos)
		}
	}
}

func TestTokenizeNormalizedRoundTrip(t *testing.T) {
	// Tokenizing the normalized form yields the same token sequence.
	exprs := []string{"3d6", " 1D20 + 5", "(2d6+6)*5", "d100 / 2"}
	for _, expr := range exprs {
		orig, err := Tokenize(expr)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", expr, err)
		}
		norm, err := Tokenize(Normalize(expr))
		if err != nil {
			t.Fatalf("Tokenize(Normalize(%q)): %v", expr, err)
		}
		if len(orig) != len(norm) {
			t.Errorf("%q: %d tokens vs %d normalized", expr, len(orig), len(norm))
			continue
		}
		for i := range orig {
			a, b := orig[i], norm[i]
			if a.Kind != b.Kind || a.Value != b.Value || a.Count != b.Count || a.Sides != b.Sides {
				t.Errorf("%q token %d: %+v vs normalized %+v", expr, i, a, b)
			}
		}
	}
}
