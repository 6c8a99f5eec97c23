package schwift

import "fmt"

// Operator is a binary operator.
type Operator int

// Binary operators.
const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
	Modulus
	Equality
	GreaterThan
	LessThan
	GreaterThanEqual
	LessThanEqual
	ShiftLeft
	ShiftRight
	And
	Or
)

// opInfo describes an operator's spelling and implementation.
type opInfo struct {
	// Text is the operator's source spelling.
	Text string
	// Verb names the operation in error messages.
	Verb string
	// Do applies the operator.
	Do func(l, r Value) (Value, error)
}

// ops is the operator table, indexed by Operator.
var ops = [...]opInfo{
	Add:              {"+", "add", add},
	Subtract:         {"-", "subtract", subtract},
	Multiply:         {"*", "multiply", multiply},
	Divide:           {"/", "divide", divide},
	Modulus:          {"%", "take the modulus of", modulus},
	Equality:         {"==", "compare", func(l, r Value) (Value, error) { return Bool(Equal(l, r)), nil }},
	GreaterThan:      {"more", "compare", greaterThan},
	LessThan:         {"less", "compare", lessThan},
	GreaterThanEqual: {"moresquanch", "compare", greaterThanEqual},
	LessThanEqual:    {"lesssquanch", "compare", lessThanEqual},
	ShiftLeft:        {"<schwift", "shift", shiftLeft},
	ShiftRight:       {"schwift>", "shift", shiftRight},
	And:              {"and", "and", and},
	Or:               {"or", "or", or},
}

// opWords maps operator spellings to operators for the parser.
var opWords map[string]Operator

func init() {
	opWords = make(map[string]Operator, len(ops))
	for op, info := range ops {
		opWords[info.Text] = Operator(op)
	}
}

// String returns the verb naming the operation, e.g. "add".
func (op Operator) String() string {
	if op < 0 || int(op) >= len(ops) {
		return fmt.Sprintf("Operator(%d)", int(op))
	}
	return ops[op].Verb
}

// Text returns the operator's source spelling.
func (op Operator) Text() string {
	if op < 0 || int(op) >= len(ops) {
		return fmt.Sprintf("Operator(%d)", int(op))
	}
	return ops[op].Text
}

// Apply applies the operator to two values. Both operands must already be
// evaluated; no operator short-circuits.
func (op Operator) Apply(l, r Value) (Value, error) {
	if op < 0 || int(op) >= len(ops) {
		panic(fmt.Sprintf("schwift: invalid Operator: %d", int(op)))
	}
	return ops[op].Do(l, r)
}
