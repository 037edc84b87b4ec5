package upgrade

import "fmt"

// Stage is a 1-based tier index. A resolver over n gates yields 1..n+1.
type Stage int

// Gate reports whether one milestone has been reached.
type Gate func() bool

// ResolveStage returns the 1-based index of the first unmet gate, or n+1 when
// every gate is met. Gates are evaluated in order and evaluation stops at the
// first unmet one.
func ResolveStage(gates ...Gate) Stage {
	for i, gate := range gates {
		if !gate() {
			return Stage(i + 1)
		}
	}
	return Stage(len(gates) + 1)
}

// UnlockGates builds gates that test the given unlock ids in order.
func UnlockGates(g *UnlockGroup, ids ...int) []Gate {
	gates := make([]Gate, len(ids))
	for i, id := range ids {
		gates[i] = func() bool { return g.IsUnlocked(id) }
	}
	return gates
}

// StageTable maps every stage of a resolver to a value.
type StageTable[T any] struct {
	values []T
}

// NewStageTable builds a table whose first value belongs to stage 1.
func NewStageTable[T any](values ...T) StageTable[T] {
	return StageTable[T]{values: values}
}

// At returns the value for s. It panics for stages outside the table.
func (t StageTable[T]) At(s Stage) T {
	if s < 1 || int(s) > len(t.values) {
		panic(fmt.Sprintf("stage %d outside table of %d", s, len(t.values)))
	}
	return t.values[s-1]
}

// Len returns the number of stages covered.
func (t StageTable[T]) Len() int { return len(t.values) }
