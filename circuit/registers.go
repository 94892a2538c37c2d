package circuit

import (
	"fmt"
	"iter"
	"maps"
	"strings"

	"github.com/ezrec/wirenet/internal"
)

// Registers maps register names to their 16-bit values.
type Registers map[string]uint16

// Lookup returns the value of a register.
func (regs Registers) Lookup(name string) (value uint16, err error) {
	value, ok := regs[name]
	if !ok {
		err = ErrRegisterUndefined(name)
	}
	return
}

// Clone returns an independent copy of the registers.
func (regs Registers) Clone() Registers {
	if regs == nil {
		return Registers{}
	}
	return maps.Clone(regs)
}

// All iterates over the registers in name order.
func (regs Registers) All() iter.Seq2[string, uint16] {
	return internal.IterMapSorted(regs)
}

// String returns the registers as 'name: value' lines, in name order.
func (regs Registers) String() string {
	var text strings.Builder
	for name, value := range regs.All() {
		fmt.Fprintf(&text, "%v: %d\n", name, value)
	}
	return text.String()
}
