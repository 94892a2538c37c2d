// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package circuit

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"slices"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Program is the unordered list of statements read from program text.
type Program struct {
	Statements []Statement
}

// Targets returns the registers driven by the program, in statement order.
func (prog *Program) Targets() (targets []string) {
	for _, stmt := range prog.Statements {
		targets = append(targets, stmt.target)
	}
	return
}

// Parser reads program text into statements.
type Parser struct {
	Mode    Mode // MODE_STRICT fails on unrecognized lines, MODE_LENIENT skips them.
	Verbose bool // If set, verbosely logs the parser actions.

	define map[string]uint16 // Constants visible to $(...) expressions.
}

// NewParser creates a parser with the given line handling mode.
func NewParser(mode Mode) *Parser {
	return &Parser{Mode: mode}
}

// Define defines a new constant, or redefines an existing one, for use in
// $(...) expressions.
func (p *Parser) Define(name string, value uint16) (err error) {
	if !defineRegexp.MatchString(name) {
		err = ErrDefineInvalid
		return
	}

	if p.define == nil {
		p.define = map[string]uint16{name: value}
	} else {
		p.define[name] = value
	}

	return
}

// parenEval does $(...) evaluations.
func (p *Parser) parenEval(expr string) (value uint16, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, val := range p.define {
		pred[key] = starlark.MakeInt(int(val))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_uint64, ok := st_int.Uint64()
	if !ok || st_uint64 > 0xffff {
		err = ErrParseExpression(expr)
		return
	}
	value = uint16(st_uint64)
	return
}

var parenRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// stripComment removes a ';' comment. A ';' inside $(...) is not a comment.
func stripComment(text string) string {
	depth := 0
	for n := 0; n < len(text); n++ {
		switch {
		case strings.HasPrefix(text[n:], "$("):
			depth++
			n++
		case text[n] == '(' && depth > 0:
			depth++
		case text[n] == ')' && depth > 0:
			depth--
		case text[n] == ';' && depth == 0:
			return text[:n]
		}
	}
	return text
}

// expand strips comments, and replaces $(...) expressions with their values.
func (p *Parser) expand(text string) (line string, err error) {
	line = strings.TrimSpace(stripComment(text))

	line = parenRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := p.parenEval(str[2 : len(str)-1])
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return fmt.Sprintf("%d", value)
	})

	return
}

// ParseStatement parses a single line of program text. The shapes are tried
// in order:
//
//	NOT <value> -> <target>
//	<value> <OP> <value> -> <target>
//	<value> -> <target>
func ParseStatement(line string) (stmt Statement, err error) {
	words := strings.Fields(line)

	arrow := slices.Index(words, "->")
	switch {
	case arrow < 1:
		err = ErrLineMalformed
		return
	case arrow == len(words)-1:
		err = ErrTargetMissing
		return
	case arrow < len(words)-2:
		err = ErrExtraArgs
		return
	}

	target := words[len(words)-1]
	if !ValidName(target) {
		err = ErrTargetInvalid
		return
	}

	lhs := words[:arrow]

	switch {
	case len(lhs) == 2 && lhs[0] == "NOT":
		var val Value
		val, err = ParseValue(lhs[1])
		if err != nil {
			return
		}
		stmt = MakeNot(target, val)
	case len(lhs) == 3:
		op, ok := opMap[lhs[1]]
		if !ok {
			err = ErrOperationInvalid
			return
		}
		var left, right Value
		left, err = ParseValue(lhs[0])
		if err != nil {
			return
		}
		right, err = ParseValue(lhs[2])
		if err != nil {
			return
		}
		stmt = MakeBinary(target, left, op, right)
	case len(lhs) == 1:
		var val Value
		val, err = ParseValue(lhs[0])
		if err != nil {
			return
		}
		stmt = MakeAssign(target, val)
	case len(lhs) == 2:
		err = ErrOperationMissing
	default:
		err = ErrExtraArgs
	}

	return
}

// Parse parses an input stream into an unordered Program.
func (p *Parser) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var text string
	var lineno int

	statements := []Statement{}
	driven := map[string]int{}

	for scanner.Scan() {
		text = scanner.Text()
		lineno += 1

		if p.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		var line string
		var stmt Statement
		line, err = p.expand(text)
		if err == nil {
			if len(line) == 0 {
				continue
			}
			stmt, err = ParseStatement(line)
		}
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: err}
			if p.Mode == MODE_LENIENT {
				if p.Verbose {
					log.Printf("skipped: %v", err)
				}
				err = nil
				continue
			}
			return
		}

		first, ok := driven[stmt.target]
		if ok {
			err = &ErrTargetDuplicate{Target: stmt.target, LineNo: lineno, FirstLineNo: first}
			return
		}
		driven[stmt.target] = lineno

		stmt.lineNo = lineno
		statements = append(statements, stmt)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Statements: statements,
	}

	return
}
