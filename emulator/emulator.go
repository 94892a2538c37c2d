// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/wirenet/circuit"
)

// Emulator runs evaluation passes over a single circuit.
type Emulator struct {
	Verbose bool             // If set, enables verbose logging.
	Circuit *circuit.Circuit // Reference to the circuit being evaluated.

	passes int
}

// NewEmulator creates a new emulator for a circuit.
func NewEmulator(ckt *circuit.Circuit) (emu *Emulator) {
	emu = &Emulator{
		Circuit: ckt,
	}

	return
}

// Passes returns the number of evaluation passes since a reset.
func (emu *Emulator) Passes() int {
	return emu.passes
}

// Reset the pass counter.
func (emu *Emulator) Reset() {
	emu.passes = 0
}

// Run performs a single evaluation pass, with the registers in seed
// overriding their statements.
func (emu *Emulator) Run(seed circuit.Registers) (regs circuit.Registers, err error) {
	emu.passes++

	pass := emu.passes
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pass: pass, Err: err}
		}
	}()

	if emu.Circuit == nil {
		err = ErrCircuitMissing
		return
	}

	if emu.Verbose {
		for name, value := range seed.All() {
			log.Printf("pass %v: seed %v = %v", pass, name, value)
		}
	}

	regs, err = emu.Circuit.RunSeeded(seed)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("pass %v: %v registers", pass, len(regs))
	}

	return
}

// Feedback runs the circuit from seed, feeds the value of the output
// register back into the input register, and runs it again. The second pass
// keeps every other seeded register.
func (emu *Emulator) Feedback(seed circuit.Registers, output, input string) (first, second uint16, err error) {
	regs, err := emu.Run(seed)
	if err != nil {
		return
	}

	first, err = regs.Lookup(output)
	if err != nil {
		return
	}

	feedback := seed.Clone()
	feedback[input] = first

	regs, err = emu.Run(feedback)
	if err != nil {
		return
	}

	second, err = regs.Lookup(output)

	return
}
