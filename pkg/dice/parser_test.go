package dice

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, expr string) Node {
	t.Helper()
	node, err := ParseString(expr)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", expr, err)
	}
	return node
}

func TestParseDie(t *testing.T) {
	node := mustParse(t, "3D6")
	die, ok := node.(*DieRoll)
	if !ok {
		t.Fatalf("got %T, want *DieRoll", node)
	}
	if die.Count != 3 || die.Sides != 6 {
		t.Errorf("got %dD%d, want 3D6", die.Count, die.Sides)
	}
}

func TestParseDieWithModifier(t *testing.T) {
	node := mustParse(t, "1D20+5")
	op, ok := node.(*BinaryOp)
	if !ok {
		t.Fatalf("got %T, want *BinaryOp", node)
	}
	if op.Op != OpAdd {
		t.Errorf("op = %q, want '+'", byte(op.Op))
	}
	if die, ok := op.Left.(*DieRoll); !ok || die.Count != 1 || die.Sides != 20 {
		t.Errorf("left = %#v, want 1D20", op.Left)
	}
	if lit, ok := op.Right.(*Literal); !ok || lit.Value != 5 {
		t.Errorf("right = %#v, want literal 5", op.Right)
	}
}

func TestParseParenthesized(t *testing.T) {
	// (2D6+6)*5 becomes a multiply whose left side is the grouped sum.
	node := mustParse(t, "(2D6+6)*5")
	mul, ok := node.(*BinaryOp)
	if !ok || mul.Op != OpMul {
		t.Fatalf("got %#v, want multiply at root", node)
	}
	sum, ok := mul.Left.(*BinaryOp)
	if !ok || sum.Op != OpAdd {
		t.Fatalf("left = %#v, want grouped addition", mul.Left)
	}
	if die, ok := sum.Left.(*DieRoll); !ok || die.Count != 2 || die.Sides != 6 {
		t.Errorf("group left = %#v, want 2D6", sum.Left)
	}
	if lit, ok := mul.Right.(*Literal); !ok || lit.Value != 5 {
		t.Errorf("right = %#v, want literal 5", mul.Right)
	}
}

func TestParsePrecedence(t *testing.T) {
	// 1+2*3 parses as 1+(2*3), not (1+2)*3.
	node := mustParse(t, "1+2*3")
	add, ok := node.(*BinaryOp)
	if !ok || add.Op != OpAdd {
		t.Fatalf("got %#v, want addition at root", node)
	}
	if _, ok := add.Left.(*Literal); !ok {
		t.Errorf("left = %#v, want literal", add.Left)
	}
	if mul, ok := add.Right.(*BinaryOp); !ok || mul.Op != OpMul {
		t.Errorf("right = %#v, want multiplication", add.Right)
	}
}

func TestParseLeftAssociative(t *testing.T) {
	// 10-4-3 parses as (10-4)-3.
	node := mustParse(t, "10-4-3")
	outer, ok := node.(*BinaryOp)
	if !ok || outer.Op != OpSub {
		t.Fatalf("got %#v, want subtraction at root", node)
	}
	inner, ok := outer.Left.(*BinaryOp)
	if !ok || inner.Op != OpSub {
		t.Fatalf("left = %#v, want nested subtraction", outer.Left)
	}
	if lit, ok := outer.Right.(*Literal); !ok || lit.Value != 3 {
		t.Errorf("right = %#v, want literal 3", outer.Right)
	}
	if lit, ok := inner.Left.(*Literal); !ok || lit.Value != 10 {
		t.Errorf("inner left = %#v, want literal 10", inner.Left)
	}
}

func TestParseNestedParens(t *testing.T) {
	node := mustParse(t, "((1D4+1)*2)+(3D6/2)")
	if _, ok := node.(*BinaryOp); !ok {
		t.Fatalf("got %T, want *BinaryOp", node)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"unclosed paren", "(2D6+6"},
		{"extra closing paren", "2D6)"},
		{"missing right operand", "3D6+"},
		{"missing left operand", "*5"},
		{"trailing value", "3D6 5"},
		{"double operator", "3D6++5"},
		{"empty parens", "()"},
		{"missing divisor", "10/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.expr)
			var synErr *SyntaxError
			if !errors.As(err, &synErr) {
				t.Errorf("ParseString(%q) = %v, want *SyntaxError", tt.expr, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("3D6+2"); err != nil {
		t.Errorf("Validate(3D6+2): %v", err)
	}
	if err := Validate("3D6+"); err == nil {
		t.Error("Validate(3D6+) should fail")
	}
}
