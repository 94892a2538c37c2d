package circuit

// Operation is a bitwise operation on 16-bit registers.
type Operation int

//go:generate go tool stringer -linecomment -type=Operation
const (
	OP_AND    = Operation(0) // AND
	OP_OR     = Operation(1) // OR
	OP_LSHIFT = Operation(2) // LSHIFT
	OP_RSHIFT = Operation(3) // RSHIFT
	OP_NOT    = Operation(4) // NOT
)

// Binary returns true if the operation takes two operands.
func (op Operation) Binary() bool {
	return op >= OP_AND && op <= OP_RSHIFT
}

// opMap maps the binary operation keywords.
var opMap = map[string]Operation{
	"AND":    OP_AND,
	"OR":     OP_OR,
	"LSHIFT": OP_LSHIFT,
	"RSHIFT": OP_RSHIFT,
}

// Kind is the shape of a statement.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_ASSIGN = Kind(0) // assign
	KIND_BINARY = Kind(1) // binary
	KIND_NOT    = Kind(2) // not
)

// Mode selects how the parser treats lines it does not recognize.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_STRICT  = Mode(0) // strict
	MODE_LENIENT = Mode(1) // lenient
)
