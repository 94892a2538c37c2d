package circuit

import (
	"iter"
	"regexp"
	"strconv"
)

// nameRegexp matches a register name. Upper case words are reserved for
// operation keywords and $(...) defines.
var nameRegexp = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// defineRegexp matches a $(...) define name.
var defineRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidName returns true if the word can name a register.
func ValidName(word string) bool {
	return nameRegexp.MatchString(word)
}

// Value is an operand: either an inline literal, or a read of a register.
type Value struct {
	IsLiteral bool   // If set, the value is Literal, otherwise Name.
	Literal   uint16 // Literal value.
	Name      string // Referenced register name.
}

// Literal makes a literal value.
func Literal(value uint16) Value {
	return Value{IsLiteral: true, Literal: value}
}

// Reference makes a register reference.
func Reference(name string) Value {
	return Value{Name: name}
}

// ParseValue classifies a word as a literal, if it parses as an unsigned
// 16-bit base-10 number, or otherwise as a register reference.
func ParseValue(word string) (value Value, err error) {
	if len(word) == 0 {
		err = ErrReferenceNotValue
		return
	}

	if word[0] >= '0' && word[0] <= '9' {
		var v64 uint64
		v64, err = strconv.ParseUint(word, 10, 16)
		if err != nil {
			err = ErrParseNumber(word)
			return
		}
		value = Literal(uint16(v64))
		return
	}

	if !ValidName(word) {
		err = ErrReferenceNotValue
		return
	}

	value = Reference(word)
	return
}

// References yields the register read by the value, if any.
func (val Value) References() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !val.IsLiteral {
			yield(val.Name)
		}
	}
}

// String returns the program text of the value.
func (val Value) String() string {
	if val.IsLiteral {
		return strconv.FormatUint(uint64(val.Literal), 10)
	}
	return val.Name
}
