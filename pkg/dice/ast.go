package dice

// Node is a parsed dice expression. The three variants are Literal, DieRoll
// and BinaryOp. Trees are immutable after construction and each child is
// owned exclusively by its parent, so a cached tree can be re-evaluated
// freely.
type Node interface {
	node()
}

// Literal is a constant operand.
type Literal struct {
	Value int
}

// DieRoll is an NdS die group: roll Count dice of Sides sides and sum them.
type DieRoll struct {
	Count int
	Sides int
}

// Op is a binary arithmetic operator.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
)

// BinaryOp combines two subexpressions with an arithmetic operator.
type BinaryOp struct {
	Op    Op
	Left  Node
	Right Node
}

func (*Literal) node()  {}
func (*DieRoll) node()  {}
func (*BinaryOp) node() {}
