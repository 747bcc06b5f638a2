package cegar

// Projection bundles a pattern's PDB, its cached abstract plan translated
// to concrete operator ids, and its solved/unsolvable flags (spec §3).
// The pattern itself is never stored separately; it is always read off
// the PDB, which is built for exactly one pattern.
type Projection struct {
	pdb        PDB
	plan       WildcardPlan // already rewritten to concrete operator ids
	unsolvable bool
	solved     bool
}

// Pattern returns the projection's pattern.
func (p *Projection) Pattern() Pattern { return p.pdb.Pattern() }

// PDB returns the projection's pattern database.
func (p *Projection) PDB() PDB { return p.pdb }

// Plan returns the projection's cached plan, in concrete operator ids.
func (p *Projection) Plan() WildcardPlan { return p.plan }

// Unsolvable reports whether the projected initial state has no path to
// the projected goal.
func (p *Projection) Unsolvable() bool { return p.unsolvable }

// Solved reports whether the projection has been marked solved. This is a
// monotonic latch: once true it stays true.
func (p *Projection) Solved() bool { return p.solved }

func (p *Projection) markSolved() { p.solved = true }

// buildProjection implements C2 (spec §4.1): build the projected task and
// its PDB, check solvability, and if solvable ask planner for a wildcard
// plan, rewriting every step's operator ids back to the concrete task's
// ids via projectedTask.AncestorOperator.
func buildProjection(
	task Task,
	pattern Pattern,
	taskBuilder ProjectedTaskBuilder,
	pdbBuilder PDBBuilder,
	planner AbstractPlanner,
	rng RNG,
	wildcard bool,
	log *Logger,
) *Projection {
	projectedTask := taskBuilder.Build(task, pattern)
	pdb := pdbBuilder.Build(projectedTask, pattern)

	if pdb.ValueOf(projectedTask.InitialState()) == Infinity {
		log.Verbosef("PDB with pattern %v is unsolvable", pattern)
		return &Projection{pdb: pdb, unsolvable: true}
	}

	log.Verbosef("computing plan for PDB with pattern %v", pattern)
	abstractPlan := planner.Plan(projectedTask, pdb, rng, wildcard)

	concretePlan := make(WildcardPlan, len(abstractPlan))
	for i, step := range abstractPlan {
		concreteStep := make(PlanStep, len(step))
		for j, abstractOpID := range step {
			concreteStep[j] = projectedTask.AncestorOperator(abstractOpID)
		}
		concretePlan[i] = concreteStep
	}

	return &Projection{pdb: pdb, plan: concretePlan}
}
