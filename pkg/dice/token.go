package dice

// Kind identifies the type of a token produced by Tokenize.
type Kind uint8

const (
	KindEOF Kind = iota
	KindNumber
	KindDie
	KindPlus
	KindMinus
	KindMult
	KindDiv
	KindLParen
	KindRParen
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "end of expression"
	case KindNumber:
		return "number"
	case KindDie:
		return "die"
	case KindPlus:
		return "'+'"
	case KindMinus:
		return "'-'"
	case KindMult:
		return "'*'"
	case KindDiv:
		return "'/'"
	case KindLParen:
		return "'('"
	case KindRParen:
		return "')'"
	}
	return "unknown token"
}

// Token is one lexical unit of a dice expression. Pos is the byte offset of
// the token in the input. Tokens are immutable once produced.
type Token struct {
	Kind  Kind
	Value int // KindNumber only
	Count int // KindDie only
	Sides int // KindDie only
	Pos   int
}
