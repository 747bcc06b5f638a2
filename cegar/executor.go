package cegar

// Flaw is a variable whose absence from the pattern at CollectionIndex
// caused that pattern's cached plan to fail in the concrete task.
type Flaw struct {
	CollectionIndex int
	Variable        Variable
}

// FlawList is the result of trying to execute a projection's plan in the
// concrete task.
type FlawList []Flaw

// executeWildcardPlan implements C3 (spec §4.2): simulate projection's
// plan against the concrete task starting from init, ignoring blacklisted
// variables. It returns any flaws that caused the plan to fail, and
// reports whether this projection's plan is now known to be a valid
// concrete solution (in which case the caller should set
// concreteSolutionIndex and the returned flaws are always empty).
//
// The scan order matters: within a step, every operator is tried in
// order, and an inapplicable operator's violated precondition variables
// are added to the flaw list before moving on to the next operator in the
// same step — flaws are only discarded once an applicable operator is
// found. This spec preserves that behavior; it is not an early-exit scan.
func executeWildcardPlan(
	task Task,
	goals []FactPair,
	blacklisted map[Variable]struct{},
	collectionIndex int,
	projection *Projection,
	init State,
	log *Logger,
) (flaws FlawList, reachedConcreteSolution bool) {
	current := make(State, len(init))
	copy(current, init)

	operators := task.Operators()

stepLoop:
	for _, step := range projection.plan {
		var stepFlaws FlawList
		for _, opID := range step {
			op := operators[opID]

			violated := false
			for _, pre := range op.Preconditions {
				if _, isBlacklisted := blacklisted[pre.Var]; isBlacklisted {
					continue
				}
				if !current.SatisfiesFact(pre) {
					violated = true
					stepFlaws = append(stepFlaws, Flaw{collectionIndex, pre.Var})
				}
			}

			if !violated {
				current = ApplyEffects(current, op)
				stepFlaws = nil
				continue stepLoop
			}
		}
		// No operator of this step was applicable: stop plan execution.
		flaws = stepFlaws
		break
	}

	if len(flaws) > 0 {
		log.Verbosef("plan of pattern %v failed", projection.Pattern())
		return flaws, false
	}

	if satisfiesAllGoals(current, goals) {
		log.Verbosef("plan of pattern %v succeeded and reached a concrete goal state", projection.Pattern())
		if len(blacklisted) == 0 {
			return nil, true
		}
		log.Verbosef("blacklisted variables are non-empty; marking pattern %v solved without a concrete solution", projection.Pattern())
		projection.markSolved()
		return nil, false
	}

	log.Verbosef("plan of pattern %v succeeded but did not reach a concrete goal state", projection.Pattern())
	for _, goal := range goals {
		if _, isBlacklisted := blacklisted[goal.Var]; isBlacklisted {
			continue
		}
		if !current.SatisfiesFact(goal) {
			flaws = append(flaws, Flaw{collectionIndex, goal.Var})
		}
	}
	if len(flaws) == 0 {
		log.Verbosef("no non-blacklisted goal variables left; marking pattern %v solved", projection.Pattern())
		projection.markSolved()
	}
	return flaws, false
}

func satisfiesAllGoals(s State, goals []FactPair) bool {
	for _, g := range goals {
		if !s.SatisfiesFact(g) {
			return false
		}
	}
	return true
}
