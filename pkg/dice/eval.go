package dice

import "fmt"

// Result is the outcome of evaluating a dice expression. It is returned to
// the caller and never mutated afterwards.
type Result struct {
	Expression string      `json:"expression"`
	Total      int         `json:"total"`
	Groups     []RollGroup `json:"groups,omitempty"`
}

// RollGroup records the individual outcomes of one die group, in the order
// they were drawn.
type RollGroup struct {
	Sides int   `json:"sides"`
	Rolls []int `json:"rolls"`
}

// Rolls flattens the breakdown into every individual die outcome in draw
// order.
func (r *Result) Rolls() []int {
	var out []int
	for _, g := range r.Groups {
		out = append(out, g.Rolls...)
	}
	return out
}

// Evaluate walks the tree and computes its value, resolving die groups
// through src. Operands evaluate strictly left before right, so the sequence
// of draws is reproducible under a deterministic Source.
//
// Integer division floors toward negative infinity, matching tabletop
// convention for derived stats like (2D6+6)/2. The policy is uniform so
// cached deterministic results reproduce exactly.
func Evaluate(node Node, src Source) (*Result, error) {
	e := &evaluator{src: src}
	total, err := e.eval(node)
	if err != nil {
		return nil, err
	}
	return &Result{Total: total, Groups: e.groups}, nil
}

// Roll tokenizes, parses and evaluates expr in one shot.
func Roll(expr string, src Source) (*Result, error) {
	node, err := ParseString(expr)
	if err != nil {
		return nil, err
	}
	res, err := Evaluate(node, src)
	if err != nil {
		return nil, err
	}
	res.Expression = expr
	return res, nil
}

type evaluator struct {
	src    Source
	groups []RollGroup
}

func (e *evaluator) eval(node Node) (int, error) {
	switch n := node.(type) {
	case *Literal:
		return n.Value, nil

	case *DieRoll:
		if n.Count < 1 || n.Sides < 1 {
			return 0, &InvalidDiceError{Count: n.Count, Sides: n.Sides}
		}
		group := RollGroup{Sides: n.Sides, Rolls: make([]int, n.Count)}
		total := 0
		for i := range group.Rolls {
			v := e.src.Roll(n.Sides)
			group.Rolls[i] = v
			total += v
		}
		e.groups = append(e.groups, group)
		return total, nil

	case *BinaryOp:
		left, err := e.eval(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := e.eval(n.Right)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case OpAdd:
			return left + right, nil
		case OpSub:
			return left - right, nil
		case OpMul:
			return left * right, nil
		case OpDiv:
			if right == 0 {
				return 0, ErrDivisionByZero
			}
			return floorDiv(left, right), nil
		}
		return 0, fmt.Errorf("dice: unknown operator %q", byte(n.Op))
	}
	return 0, fmt.Errorf("dice: unknown node type %T", node)
}

// floorDiv rounds the quotient toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
