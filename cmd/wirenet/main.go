// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/wirenet/circuit"
	"github.com/ezrec/wirenet/emulator"
	"github.com/ezrec/wirenet/translate"
)

var errUsage = errors.New(translate.From("usage"))

// parseAssign splits 'name=value' into its parts.
func parseAssign(text string) (name string, value uint16, err error) {
	name, str, ok := strings.Cut(text, "=")
	if !ok || len(name) == 0 {
		err = fmt.Errorf("%v: expected name=value", text)
		return
	}
	v64, err := strconv.ParseUint(str, 0, 16)
	if err != nil {
		return
	}
	value = uint16(v64)
	return
}

// run executes the command line in args, reading the circuit from stdin
// when no file is given, and printing registers to stdout.
func run(args []string, stdin io.Reader, stdout io.Writer) (err error) {
	var compile string
	var lenient bool
	var registers string
	var inputs string
	var feedback string
	var lang string
	var verbose bool

	seed := circuit.Registers{}
	parser := circuit.NewParser(circuit.MODE_STRICT)

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.StringVar(&compile, "c", "-", "Circuit file to evaluate")
	flags.BoolVar(&lenient, "l", false, "Lenient mode, skip unrecognized lines")
	flags.StringVar(&registers, "r", "", "Comma separated registers to print (default all)")
	flags.StringVar(&inputs, "i", "", "Comma separated input registers, driven only by -s")
	flags.StringVar(&feedback, "f", "", "Feedback output=input: run, seed input with output, run again")
	flags.StringVar(&lang, "lang", "", "Message language")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.Func("D", "Define name=value for $(...) expressions", func(text string) (err error) {
		name, value, err := parseAssign(text)
		if err != nil {
			return
		}
		return parser.Define(name, value)
	})
	flags.Func("s", "Seed register name=value", func(text string) (err error) {
		name, value, err := parseAssign(text)
		if err != nil {
			return
		}
		if !circuit.ValidName(name) {
			return fmt.Errorf("%v: invalid register name", name)
		}
		seed[name] = value
		return
	})

	err = flags.Parse(args[1:])
	if err != nil {
		return
	}

	if flags.NArg() != 0 {
		err = fmt.Errorf("%w: unknown arguments: %v", errUsage, flags.Args())
		return
	}

	if len(lang) != 0 {
		translate.SetLanguage(lang)
	}

	parser.Verbose = verbose
	if lenient {
		parser.Mode = circuit.MODE_LENIENT
	}

	inf := stdin
	if compile != "-" {
		var file *os.File
		file, err = os.Open(compile)
		if err != nil {
			return
		}
		defer file.Close()
		inf = file
	}

	defer func() {
		if err != nil {
			err = fmt.Errorf("%v: %w", compile, err)
		}
	}()

	prog, err := parser.Parse(inf)
	if err != nil {
		return
	}

	var names []string
	if len(inputs) != 0 {
		names = strings.Split(inputs, ",")
	}

	ckt, err := circuit.Compile(prog, names...)
	if err != nil {
		return
	}

	emu := emulator.NewEmulator(ckt)
	emu.Verbose = verbose

	if len(feedback) != 0 {
		output, input, ok := strings.Cut(feedback, "=")
		if !ok {
			err = fmt.Errorf("%w: %v: expected output=input", errUsage, feedback)
			return
		}
		var first, second uint16
		first, second, err = emu.Feedback(seed, output, input)
		if err != nil {
			return
		}
		fmt.Fprintf(stdout, "%v: %d\n", output, first)
		fmt.Fprintf(stdout, "%v: %d\n", output, second)
		return
	}

	regs, err := emu.Run(seed)
	if err != nil {
		return
	}

	if len(registers) == 0 {
		fmt.Fprint(stdout, regs.String())
		return
	}

	for _, name := range strings.Split(registers, ",") {
		var value uint16
		value, err = regs.Lookup(name)
		if err != nil {
			return
		}
		fmt.Fprintf(stdout, "%v: %d\n", name, value)
	}

	return
}

func main() {
	err := run(os.Args, os.Stdin, os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
