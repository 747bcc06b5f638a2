// Package bruteforce provides exhaustive reference implementations of the
// two collaborators the cegar package treats as external: building a
// projected task from a pattern, and building a perfect-heuristic PDB and
// a wildcard plan over it. Both are small and quadratic-or-worse in state
// space size; they exist to exercise package cegar on toy tasks, not to
// stand in for Fast Downward's real A*-based PDB construction or its
// steepest-ascent enforced hill-climbing planner.
package bruteforce

import "github.com/vulder/downward/cegar"

// projectedTask is a Task restricted to a Pattern's variables, reindexed
// to 0..len(pattern)-1. Operators whose effects become empty after the
// restriction are dropped; every surviving operator remembers the
// concrete OperatorID it was built from.
type projectedTask struct {
	domainSizes []int
	initial     cegar.State
	goals       []cegar.FactPair
	operators   []cegar.Operator
	ancestors   []cegar.OperatorID
}

func (t *projectedTask) NumVariables() int             { return len(t.domainSizes) }
func (t *projectedTask) DomainSize(v cegar.Variable) int { return t.domainSizes[v] }
func (t *projectedTask) InitialState() cegar.State     { return t.initial }
func (t *projectedTask) Goals() []cegar.FactPair       { return t.goals }
func (t *projectedTask) Operators() []cegar.Operator   { return t.operators }

func (t *projectedTask) AncestorOperator(abstractOp cegar.OperatorID) cegar.OperatorID {
	return t.ancestors[abstractOp]
}

// TaskBuilder builds projectedTask values by reindexing a concrete Task
// onto a Pattern.
type TaskBuilder struct{}

// Build implements cegar.ProjectedTaskBuilder.
func (TaskBuilder) Build(task cegar.Task, pattern cegar.Pattern) cegar.ProjectedTask {
	index := make(map[cegar.Variable]int, len(pattern))
	for i, v := range pattern {
		index[v] = i
	}

	domainSizes := make([]int, len(pattern))
	for i, v := range pattern {
		domainSizes[i] = task.DomainSize(v)
	}

	initial := task.InitialState()
	projectedInitial := make(cegar.State, len(pattern))
	for i, v := range pattern {
		projectedInitial[i] = initial.Value(v)
	}

	var goals []cegar.FactPair
	for _, g := range task.Goals() {
		if i, ok := index[g.Var]; ok {
			goals = append(goals, cegar.FactPair{Var: cegar.Variable(i), Value: g.Value})
		}
	}

	var operators []cegar.Operator
	var ancestors []cegar.OperatorID
	for _, op := range task.Operators() {
		var effects []cegar.Effect
		for _, eff := range op.Effects {
			targetIdx, ok := index[eff.Target.Var]
			if !ok {
				continue
			}
			var conditions []cegar.FactPair
			for _, cond := range eff.Conditions {
				if i, ok := index[cond.Var]; ok {
					conditions = append(conditions, cegar.FactPair{Var: cegar.Variable(i), Value: cond.Value})
				}
			}
			effects = append(effects, cegar.Effect{
				Conditions: conditions,
				Target:     cegar.FactPair{Var: cegar.Variable(targetIdx), Value: eff.Target.Value},
			})
		}
		if len(effects) == 0 {
			continue
		}

		var preconditions []cegar.FactPair
		for _, pre := range op.Preconditions {
			if i, ok := index[pre.Var]; ok {
				preconditions = append(preconditions, cegar.FactPair{Var: cegar.Variable(i), Value: pre.Value})
			}
		}

		newID := cegar.OperatorID(len(operators))
		operators = append(operators, cegar.Operator{
			ID:            newID,
			Preconditions: preconditions,
			Effects:       effects,
		})
		ancestors = append(ancestors, op.ID)
	}

	return &projectedTask{
		domainSizes: domainSizes,
		initial:     projectedInitial,
		goals:       goals,
		operators:   operators,
		ancestors:   ancestors,
	}
}

func applicable(s cegar.State, op cegar.Operator) bool {
	for _, pre := range op.Preconditions {
		if !s.SatisfiesFact(pre) {
			return false
		}
	}
	return true
}

func satisfiesAll(s cegar.State, goals []cegar.FactPair) bool {
	for _, g := range goals {
		if !s.SatisfiesFact(g) {
			return false
		}
	}
	return true
}
