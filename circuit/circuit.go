// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package circuit

import (
	"errors"
	"io"
	"slices"
)

// Circuit is a program in evaluation order. It is never modified after
// creation, and may be run any number of times, concurrently.
type Circuit struct {
	statements []Statement
	inputs     []string
}

// Build parses program text and orders it for evaluation.
func Build(input io.Reader, mode Mode) (circuit *Circuit, err error) {
	prog, err := NewParser(mode).Parse(input)
	if err != nil {
		return
	}

	return Compile(prog)
}

// Compile orders a parsed program for evaluation. The inputs are registers
// that no statement drives, and which must be seeded on every run. Inputs
// that a statement drives are ignored.
func Compile(prog *Program, inputs ...string) (circuit *Circuit, err error) {
	sorted, err := Resolve(prog.Statements, inputs...)
	if err != nil {
		return
	}

	driven := make(map[string]bool, len(sorted))
	for _, stmt := range sorted {
		driven[stmt.target] = true
	}

	var undriven []string
	for _, name := range inputs {
		if !driven[name] && !slices.Contains(undriven, name) {
			undriven = append(undriven, name)
		}
	}

	circuit = &Circuit{
		statements: sorted,
		inputs:     undriven,
	}

	return
}

// Statements returns the statements in evaluation order.
func (circuit *Circuit) Statements() []Statement {
	return slices.Clone(circuit.statements)
}

// Inputs returns the registers that must be seeded on every run.
func (circuit *Circuit) Inputs() []string {
	return slices.Clone(circuit.inputs)
}

// Targets returns the driven registers, in evaluation order.
func (circuit *Circuit) Targets() (targets []string) {
	for _, stmt := range circuit.statements {
		targets = append(targets, stmt.target)
	}
	return
}

// Run evaluates every register.
func (circuit *Circuit) Run() (regs Registers, err error) {
	return circuit.RunSeeded(nil)
}

// RunSeeded evaluates every register, starting from a copy of the seed.
// A seeded register keeps its seeded value, and its statement is skipped.
// On error, no registers are returned.
func (circuit *Circuit) RunSeeded(seed Registers) (regs Registers, err error) {
	regs = seed.Clone()

	for _, stmt := range circuit.statements {
		err = execute(regs, stmt)
		if err != nil {
			regs = nil
			return
		}
	}

	return
}

// resolve returns the current value of an operand.
func resolve(regs Registers, val Value) (value uint16, err error) {
	if val.IsLiteral {
		value = val.Literal
		return
	}

	value, err = regs.Lookup(val.Name)
	if err != nil {
		err = errors.Join(ErrReferenceUnresolved, err)
	}
	return
}

// execute drives the target of a statement, unless it already has a value.
func execute(regs Registers, stmt Statement) (err error) {
	_, ok := regs[stmt.target]
	if ok {
		return
	}

	var value uint16

	switch stmt.kind {
	case KIND_ASSIGN:
		value, err = resolve(regs, stmt.left)
	case KIND_NOT:
		value, err = resolve(regs, stmt.left)
		value = ^value
	case KIND_BINARY:
		var left, right uint16
		left, err = resolve(regs, stmt.left)
		if err != nil {
			break
		}
		right, err = resolve(regs, stmt.right)
		if err != nil {
			break
		}
		value, err = doOp(stmt.op, left, right)
	default:
		err = ErrStatementInvalid
	}

	if err != nil {
		err = &ErrEvaluate{LineNo: stmt.lineNo, Statement: stmt.String(), Err: err}
		return
	}

	regs[stmt.target] = value

	return
}

// doOp performs a binary operation, and returns the output value.
func doOp(op Operation, left uint16, right uint16) (output uint16, err error) {
	switch op {
	case OP_AND:
		output = left & right
	case OP_OR:
		output = left | right
	case OP_LSHIFT: // bits past 16 are dropped
		output = left << right
	case OP_RSHIFT:
		output = left >> right
	default:
		err = ErrOperationInvalid
	}

	return
}
