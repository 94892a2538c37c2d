package circuit

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var sampleProgram = []string{
	"123 -> x",
	"456 -> y",
	"x AND y -> d",
	"x OR y -> e",
	"x LSHIFT 2 -> f",
	"y RSHIFT 2 -> g",
	"NOT x -> h",
	"NOT y -> i",
}

func parse(mode Mode, program ...string) (*Program, error) {
	return NewParser(mode).Parse(strings.NewReader(strings.Join(program, "\n")))
}

func TestParser(t *testing.T) {
	assert := assert.New(t)

	prog, err := parse(MODE_STRICT)
	assert.NoError(err)
	assert.Equal(0, len(prog.Statements))

	prog, err = parse(MODE_STRICT, sampleProgram...)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Statement{
		MakeAssign("x", Literal(123)),
		MakeAssign("y", Literal(456)),
		MakeBinary("d", Reference("x"), OP_AND, Reference("y")),
		MakeBinary("e", Reference("x"), OP_OR, Reference("y")),
		MakeBinary("f", Reference("x"), OP_LSHIFT, Literal(2)),
		MakeBinary("g", Reference("y"), OP_RSHIFT, Literal(2)),
		MakeNot("h", Reference("x")),
		MakeNot("i", Reference("y")),
	}
	for n := range expected {
		expected[n].lineNo = n + 1
	}

	assert.Equal(expected, prog.Statements)
	assert.Equal([]string{"x", "y", "d", "e", "f", "g", "h", "i"}, prog.Targets())
}

func TestParserWhitespace(t *testing.T) {
	assert := assert.New(t)

	prog, err := parse(MODE_STRICT,
		"",
		"   123    ->   x  ; comment",
		"; whole line comment",
		"\tx\tAND 7 -> y",
	)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal(2, len(prog.Statements))
	assert.Equal(2, prog.Statements[0].LineNo())
	assert.Equal("123 -> x", prog.Statements[0].String())
	assert.Equal(4, prog.Statements[1].LineNo())
	assert.Equal("x AND 7 -> y", prog.Statements[1].String())
}

func TestParseStatementErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Line string
		Err  error
	}){
		{"foo bar baz", ErrLineMalformed},
		{"-> x", ErrLineMalformed},
		{"x ->", ErrTargetMissing},
		{"x -> y z", ErrExtraArgs},
		{"x -> 12", ErrTargetInvalid},
		{"x y -> z", ErrOperationMissing},
		{"x XOR y -> z", ErrOperationInvalid},
		{"x NOT y -> z", ErrOperationInvalid},
		{"x and y -> z", ErrOperationInvalid},
		{"NOT x y -> z", ErrOperationInvalid},
		{"a AND b OR c -> z", ErrExtraArgs},
		{"NOT 70000 -> z", ErrParseNumber("70000")},
		{"70000 -> z", ErrParseNumber("70000")},
		{"x AND y! -> z", ErrReferenceNotValue},
		{"NOT -> x", ErrReferenceNotValue},
		{"x AND AND -> y", ErrReferenceNotValue},
		{"AND OR x -> y", ErrReferenceNotValue},
		{"x -> Y", ErrTargetInvalid},
		{"x -> NOT", ErrTargetInvalid},
	}

	for _, entry := range table {
		_, err := ParseStatement(entry.Line)
		assert.True(errors.Is(err, entry.Err), "%v: %v", entry.Line, err)
	}
}

func TestParserStrict(t *testing.T) {
	assert := assert.New(t)

	program := append([]string{"foo bar baz"}, sampleProgram...)

	_, err := parse(MODE_STRICT, program...)
	assert.Error(err)

	var syntax *ErrSyntax
	assert.True(errors.As(err, &syntax))
	if syntax != nil {
		assert.Equal(1, syntax.LineNo)
		assert.Equal("foo bar baz", syntax.Line)
	}
	assert.True(errors.Is(err, ErrLineMalformed))
}

func TestParserLenient(t *testing.T) {
	assert := assert.New(t)

	program := append([]string{"foo bar baz"}, sampleProgram...)
	program = append(program, "x XOR y -> z")

	prog, err := parse(MODE_LENIENT, program...)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal(len(sampleProgram), len(prog.Statements))
	assert.NotContains(prog.Targets(), "z")

	expected, err := parse(MODE_STRICT, sampleProgram...)
	assert.NoError(err)

	for n, stmt := range prog.Statements {
		assert.Equal(expected.Statements[n].String(), stmt.String())
		assert.Equal(expected.Statements[n].LineNo()+1, stmt.LineNo())
	}
}

func TestParserDuplicate(t *testing.T) {
	assert := assert.New(t)

	for _, mode := range []Mode{MODE_STRICT, MODE_LENIENT} {
		_, err := parse(mode, "1 -> x", "2 -> y", "y -> x")
		var dup *ErrTargetDuplicate
		assert.True(errors.As(err, &dup), mode.String())
		if dup != nil {
			assert.Equal("x", dup.Target)
			assert.Equal(3, dup.LineNo)
			assert.Equal(1, dup.FirstLineNo)
		}
	}
}

func TestParserExpression(t *testing.T) {
	assert := assert.New(t)

	parser := NewParser(MODE_STRICT)
	assert.NoError(parser.Define("WIDTH", 16))
	assert.ErrorIs(parser.Define("2x", 1), ErrDefineInvalid)

	program := []string{
		"$(1 << 4) -> x",
		"x LSHIFT $(WIDTH - 1) -> y",
		"$(0xffff) -> z",
	}

	prog, err := parser.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal("16 -> x", prog.Statements[0].String())
	assert.Equal("x LSHIFT 15 -> y", prog.Statements[1].String())
	assert.Equal("65535 -> z", prog.Statements[2].String())

	prog, err = parser.Parse(strings.NewReader(`$(len("a;b")) -> x ; note (c)`))
	assert.NoError(err)
	if err == nil {
		assert.Equal("3 -> x", prog.Statements[0].String())
	}

	for _, bad := range []string{"$(1 +) -> x", "$(0x10000) -> x", "$(-1) -> x", "$(\"a\") -> x", "$(UNKNOWN) -> x"} {
		_, err = parser.Parse(strings.NewReader(bad))
		var expr ErrParseExpression
		assert.True(errors.As(err, &expr), bad)
	}
}

func TestStripComment(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Text string
		Line string
	}){
		{"1 -> x", "1 -> x"},
		{"1 -> x ; comment", "1 -> x "},
		{"; comment", ""},
		{"$(1;2) -> x", "$(1;2) -> x"},
		{"$(len(\"a;b\")) -> x ; (c)", "$(len(\"a;b\")) -> x "},
		{"(a;b)", "(a"},
		{"$(1) -> x; $(2)", "$(1) -> x"},
	}

	for _, entry := range table {
		assert.Equal(entry.Line, stripComment(entry.Text), entry.Text)
	}
}
