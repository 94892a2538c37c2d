// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package circuit

import (
	"errors"
	"strings"

	"github.com/ezrec/wirenet/translate"
)

var f = translate.From

var (
	// Parse errors
	ErrLineMalformed     = errors.New(f("line malformed"))
	ErrOperationInvalid  = errors.New(f("operation invalid"))
	ErrOperationMissing  = errors.New(f("operation missing"))
	ErrTargetMissing     = errors.New(f("target missing"))
	ErrTargetInvalid     = errors.New(f("target invalid"))
	ErrExtraArgs         = errors.New(f("excessive arguments"))
	ErrDefineInvalid     = errors.New(f("define invalid"))
	ErrReferenceNotValue = errors.New(f("not a literal or register"))

	// Evaluation errors
	ErrReferenceUnresolved = errors.New(f("reference unresolved"))
	ErrStatementInvalid    = errors.New(f("statement invalid"))
)

// ErrSyntax is a line that could not be parsed as a statement.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrEvaluate is a statement that could not be evaluated.
type ErrEvaluate struct {
	LineNo    int
	Statement string
	Err       error
}

func (err *ErrEvaluate) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Statement, err.Err)
}

func (err *ErrEvaluate) Unwrap() error {
	return err.Err
}

// ErrTargetDuplicate is a register driven by more than one statement.
type ErrTargetDuplicate struct {
	Target      string
	LineNo      int
	FirstLineNo int
}

func (err *ErrTargetDuplicate) Error() string {
	return f("line %d register %v already driven at line %d", err.LineNo, err.Target, err.FirstLineNo)
}

// ErrUnresolved lists the statements that could not be ordered, either
// because they form a cycle or because they read a register that nothing
// drives.
type ErrUnresolved struct {
	Targets   []string // Targets of the stuck statements.
	Undefined []string // Registers read but never driven.
}

func (err *ErrUnresolved) Error() string {
	msg := f("cycle or undefined reference: %v", strings.Join(err.Targets, ", "))
	if len(err.Undefined) > 0 {
		msg += f(" (undefined: %v)", strings.Join(err.Undefined, ", "))
	}
	return msg
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a 16-bit number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrRegisterUndefined is a lookup of a register that has no value.
type ErrRegisterUndefined string

func (err ErrRegisterUndefined) Error() string {
	return f("register %v undefined", string(err))
}
