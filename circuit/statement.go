package circuit

import (
	"fmt"
	"slices"

	"github.com/ezrec/wirenet/internal"
)

// Statement drives a single target register. Statements are only made by
// MakeAssign, MakeBinary and MakeNot, and never change afterwards.
type Statement struct {
	lineNo int
	kind   Kind
	target string
	op     Operation
	left   Value
	right  Value
	deps   []string
}

// MakeAssign creates 'value -> target'.
func MakeAssign(target string, value Value) Statement {
	stmt := Statement{kind: KIND_ASSIGN, target: target, left: value}
	stmt.deps = internal.IterSeqUnique(value.References())
	return stmt
}

// MakeBinary creates 'left op right -> target'.
func MakeBinary(target string, left Value, op Operation, right Value) Statement {
	stmt := Statement{kind: KIND_BINARY, target: target, op: op, left: left, right: right}
	stmt.deps = internal.IterSeqUnique(internal.IterSeqConcat(left.References(), right.References()))
	return stmt
}

// MakeNot creates 'NOT value -> target'.
func MakeNot(target string, value Value) Statement {
	stmt := Statement{kind: KIND_NOT, target: target, op: OP_NOT, left: value}
	stmt.deps = internal.IterSeqUnique(value.References())
	return stmt
}

// LineNo returns the source line number, or 0 if not parsed.
func (stmt Statement) LineNo() int {
	return stmt.lineNo
}

// Kind returns the shape of the statement.
func (stmt Statement) Kind() Kind {
	return stmt.kind
}

// Target returns the register driven by the statement.
func (stmt Statement) Target() string {
	return stmt.target
}

// Operation returns the operation of KIND_BINARY and KIND_NOT statements.
func (stmt Statement) Operation() Operation {
	return stmt.op
}

// Left returns the assigned value, the left operand, or the NOT operand.
func (stmt Statement) Left() Value {
	return stmt.left
}

// Right returns the right operand of KIND_BINARY statements.
func (stmt Statement) Right() Value {
	return stmt.right
}

// Dependencies returns the sorted set of registers the statement reads.
func (stmt Statement) Dependencies() []string {
	return slices.Clone(stmt.deps)
}

// String returns the program text of the statement.
func (stmt Statement) String() string {
	switch stmt.kind {
	case KIND_ASSIGN:
		return fmt.Sprintf("%v -> %v", stmt.left, stmt.target)
	case KIND_BINARY:
		return fmt.Sprintf("%v %v %v -> %v", stmt.left, stmt.op, stmt.right, stmt.target)
	case KIND_NOT:
		return fmt.Sprintf("NOT %v -> %v", stmt.left, stmt.target)
	}
	return fmt.Sprintf("%v(%v)", stmt.kind, stmt.target)
}
