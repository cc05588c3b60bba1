package nada

// Node is an expression-graph node. The set of implementations is closed:
// Input, Literal, Unary, Binary, IfElse, and Cast. Code that walks a graph
// can type-switch over these six shapes and treat anything else (including a
// nil child) as an opaque leaf.
type Node interface {
	isNode()
}

// BinaryOp identifies a two-operand arithmetic or comparison operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpLt
	OpGt
)

// String returns the operator symbol.
func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	default:
		return "?"
	}
}

// UnaryOp identifies a single-operand operation.
type UnaryOp int

const (
	OpNot UnaryOp = iota
	OpReveal
)

// String returns the operator name.
func (op UnaryOp) String() string {
	switch op {
	case OpNot:
		return "not"
	case OpReveal:
		return "reveal"
	default:
		return "?"
	}
}

// Input is a named private input, optionally owned by a Party. Inputs without
// an owner carry no provenance.
type Input struct {
	Name  string
	Party *Party
}

func (*Input) isNode() {}

// NewInput returns an Input node named name and owned by party. party may be
// nil for ownerless inputs.
func NewInput(name string, party *Party) *Input {
	return &Input{Name: name, Party: party}
}

// Literal is a public compile-time constant. Literals never contribute
// provenance.
type Literal struct {
	Value int64
}

func (*Literal) isNode() {}

// Unary applies a single-operand operation to Inner.
type Unary struct {
	Op    UnaryOp
	Inner Node
}

func (*Unary) isNode() {}

// Binary applies a two-operand operation to Left and Right.
type Binary struct {
	Op    BinaryOp
	Left  Node
	Right Node
}

func (*Binary) isNode() {}

// IfElse selects Then or Else depending on Cond. All three operands
// contribute to the result, so all three contribute provenance.
type IfElse struct {
	Cond Node
	Then Node
	Else Node
}

func (*IfElse) isNode() {}

// Cast wraps a single sub-expression, e.g. a type coercion. It is
// provenance-transparent.
type Cast struct {
	Inner Node
}

func (*Cast) isNode() {}
