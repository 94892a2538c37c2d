// Package circuit implements the parser, dependency resolver and evaluator
// for wire networks of 16-bit registers.
//
// A program is a list of assignments, one per line, in any order:
//
//	123 -> x
//	x AND y -> d
//	NOT x -> h
//
// Build parses the program and orders the statements so that every register
// is produced before it is read. The resulting Circuit can be run any number
// of times, optionally with some registers seeded to fixed values, which
// override the statements that would otherwise drive them.
package circuit
