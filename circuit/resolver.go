package circuit

import (
	"slices"
)

// Resolve orders statements so that every register a statement reads is
// driven by an earlier statement, or is one of the named inputs.
//
// Statements that are ready at the start keep their input order; after that,
// each statement is emitted as soon as the last of its dependencies is.
// A target driven by more than one statement is an ErrTargetDuplicate.
func Resolve(statements []Statement, inputs ...string) (sorted []Statement, err error) {
	available := make(map[string]bool, len(inputs))
	for _, name := range inputs {
		available[name] = true
	}

	driver := make(map[string]int, len(statements))
	for n, stmt := range statements {
		if !ValidName(stmt.target) {
			err = &ErrEvaluate{LineNo: stmt.lineNo, Statement: stmt.String(), Err: ErrStatementInvalid}
			return
		}
		prev, ok := driver[stmt.target]
		if ok {
			err = &ErrTargetDuplicate{Target: stmt.target, LineNo: stmt.lineNo, FirstLineNo: statements[prev].lineNo}
			return
		}
		driver[stmt.target] = n
	}

	// An input that is also driven is ordered like any other register.
	for name := range driver {
		delete(available, name)
	}

	// Live in-degree per statement, and the statements waiting on each register.
	pending := make([]int, len(statements))
	readers := map[string][]int{}
	var queue []int

	for n, stmt := range statements {
		for _, dep := range stmt.deps {
			if available[dep] {
				continue
			}
			pending[n]++
			readers[dep] = append(readers[dep], n)
		}
		if pending[n] == 0 {
			queue = append(queue, n)
		}
	}

	sorted = make([]Statement, 0, len(statements))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		stmt := statements[n]
		sorted = append(sorted, stmt)

		for _, reader := range readers[stmt.target] {
			pending[reader]--
			if pending[reader] == 0 {
				queue = append(queue, reader)
			}
		}
	}

	if len(sorted) == len(statements) {
		return
	}

	stuck := &ErrUnresolved{}
	for n, stmt := range statements {
		if pending[n] == 0 {
			continue
		}
		stuck.Targets = append(stuck.Targets, stmt.target)
		for _, dep := range stmt.deps {
			_, ok := driver[dep]
			if !ok && !available[dep] {
				stuck.Undefined = append(stuck.Undefined, dep)
			}
		}
	}
	slices.Sort(stuck.Targets)
	slices.Sort(stuck.Undefined)
	stuck.Undefined = slices.Compact(stuck.Undefined)

	sorted = nil
	err = stuck
	return
}
