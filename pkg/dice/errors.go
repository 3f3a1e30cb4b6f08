package dice

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when the right side of a division evaluates
// to zero. The divisor may itself be a die roll, so this is only detectable
// during evaluation.
var ErrDivisionByZero = errors.New("dice: division by zero")

// SyntaxError reports malformed dice notation. Pos is the byte offset of the
// offending character or token in the input.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("dice: syntax error at offset %d: %s", e.Pos, e.Msg)
}

// InvalidDiceError reports a structurally valid die group whose count or
// sides is below 1.
type InvalidDiceError struct {
	Count int
	Sides int
}

func (e *InvalidDiceError) Error() string {
	return fmt.Sprintf("dice: invalid die %dD%d: count and sides must be at least 1", e.Count, e.Sides)
}
