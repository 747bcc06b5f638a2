package cegar

// PlanStep is a non-empty set of operator ids that are equivalent in the
// abstract task: applying any one of them to a given abstract state
// yields the same successor at the same cost, so the executor is free to
// pick whichever happens to be applicable in the concrete state.
type PlanStep []OperatorID

// WildcardPlan is an ordered sequence of steps from an abstract initial
// state to an abstract goal state.
type WildcardPlan []PlanStep

// AbstractPlanner extracts a wildcard plan from a projected task's PDB,
// starting at the projected initial state. It may return an empty plan if
// that state already satisfies the projected task's goals. External to
// this package (spec §1, "steepest-ascent enforced hill climbing planner
// ... given"); see package bruteforce for a reference implementation.
type AbstractPlanner interface {
	Plan(projectedTask ProjectedTask, pdb PDB, rng RNG, wildcard bool) WildcardPlan
}
