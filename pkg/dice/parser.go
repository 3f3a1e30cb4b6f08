package dice

import "fmt"

// Grammar, lowest to highest precedence, all operators left-associative:
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/') factor)*
//	factor     := NUMBER | DIE | '(' expression ')'

// parser consumes the token slice with a single forward cursor and one token
// of lookahead.
type parser struct {
	tokens []Token
	cur    int
}

// Parse builds an expression tree from tokens. Unbalanced parentheses,
// missing operands, empty input and trailing tokens fail with *SyntaxError.
func Parse(tokens []Token) (Node, error) {
	p := &parser{tokens: tokens}
	if p.peek().Kind == KindEOF {
		return nil, &SyntaxError{Pos: p.peek().Pos, Msg: "empty expression"}
	}
	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != KindEOF {
		return nil, &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("unexpected %s after expression", tok.Kind)}
	}
	return node, nil
}

// ParseString tokenizes and parses expr in one step.
func ParseString(expr string) (Node, error) {
	tokens, err := Tokenize(expr)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Validate reports whether expr is well-formed dice notation.
func Validate(expr string) error {
	_, err := ParseString(expr)
	return err
}

func (p *parser) peek() Token {
	if p.cur >= len(p.tokens) {
		return Token{Kind: KindEOF}
	}
	return p.tokens[p.cur]
}

func (p *parser) advance() Token {
	tok := p.peek()
	if p.cur < len(p.tokens) {
		p.cur++
	}
	return tok
}

func (p *parser) parseExpression() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op Op
		switch p.peek().Kind {
		case KindPlus:
			op = OpAdd
		case KindMinus:
			op = OpSub
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		var op Op
		switch p.peek().Kind {
		case KindMult:
			op = OpMul
		case KindDiv:
			op = OpDiv
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseFactor() (Node, error) {
	tok := p.advance()
	switch tok.Kind {
	case KindNumber:
		return &Literal{Value: tok.Value}, nil
	case KindDie:
		return &DieRoll{Count: tok.Count, Sides: tok.Sides}, nil
	case KindLParen:
		node, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if closing := p.advance(); closing.Kind != KindRParen {
			return nil, &SyntaxError{Pos: closing.Pos, Msg: "missing closing parenthesis"}
		}
		return node, nil
	case KindEOF:
		return nil, &SyntaxError{Pos: tok.Pos, Msg: "expression ends where a value was expected"}
	default:
		return nil, &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("expected a number, die or '(', got %s", tok.Kind)}
	}
}
