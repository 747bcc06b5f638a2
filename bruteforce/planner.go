package bruteforce

import "github.com/vulder/downward/cegar"

// Planner extracts a wildcard plan by steepest-descent: from the current
// abstract state, it finds every applicable operator whose successor's
// PDB value is exactly one less than the current state's, picks one of
// them at random, and continues from its successor. In wildcard mode the
// step holds every such operator that leads to that same successor, so
// all operators of a step are interchangeable for the rest of the plan.
type Planner struct{}

// Plan implements cegar.AbstractPlanner.
func (Planner) Plan(projectedTask cegar.ProjectedTask, pdb cegar.PDB, rng cegar.RNG, wildcard bool) cegar.WildcardPlan {
	current := projectedTask.InitialState()
	operators := projectedTask.Operators()

	var plan cegar.WildcardPlan
	for {
		d := pdb.ValueOf(current)
		if d == 0 {
			break
		}

		type candidate struct {
			op   cegar.OperatorID
			next cegar.State
		}
		var candidates []candidate
		for _, op := range operators {
			if !applicable(current, op) {
				continue
			}
			next := cegar.ApplyEffects(current, op)
			if pdb.ValueOf(next) == d-1 {
				candidates = append(candidates, candidate{op.ID, next})
			}
		}
		if len(candidates) == 0 {
			// The PDB is a perfect heuristic; a finite, nonzero distance
			// always has a strictly decreasing successor. Reaching here
			// would mean the PDB and the task disagree, so stop rather
			// than loop forever.
			break
		}

		chosen := candidates[rng.Intn(len(candidates))]

		var step cegar.PlanStep
		if wildcard {
			for _, c := range candidates {
				same := true
				for i := range c.next {
					if c.next[i] != chosen.next[i] {
						same = false
						break
					}
				}
				if same {
					step = append(step, c.op)
				}
			}
		} else {
			step = cegar.PlanStep{chosen.op}
		}

		plan = append(plan, step)
		current = chosen.next
	}
	return plan
}
