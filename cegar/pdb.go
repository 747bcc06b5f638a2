package cegar

import "math"

// Infinity is the PDB value of an abstract state from which the goal is
// unreachable.
const Infinity = int(math.MaxInt32)

// PDB is a perfect-heuristic lookup table over the abstract state space of
// a projected task: ValueOf(s) is the exact goal distance from s, or
// Infinity if the goal is unreachable from s. Construction of a PDB from a
// projected task is external to this package (spec §1); the core only
// reads one.
type PDB interface {
	Pattern() Pattern
	Size() int
	ValueOf(abstractState State) int
}

// ProjectedTask is the projection of a concrete Task onto a Pattern: its
// variables, domains, goal facts and operators are all restricted to the
// pattern (operators whose effects become empty after restriction are
// dropped), and every surviving operator remembers which concrete operator
// it descends from.
type ProjectedTask interface {
	Task
	AncestorOperator(abstractOp OperatorID) OperatorID
}

// ProjectedTaskBuilder builds the projection of task onto pattern.
// External to this package; see package bruteforce for a reference
// implementation.
type ProjectedTaskBuilder interface {
	Build(task Task, pattern Pattern) ProjectedTask
}

// PDBBuilder builds a PDB over a projected task. External to this
// package; see package bruteforce for a reference implementation.
type PDBBuilder interface {
	Build(projectedTask ProjectedTask, pattern Pattern) PDB
}
