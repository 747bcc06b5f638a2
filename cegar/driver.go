package cegar

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Dependencies bundles the external collaborators spec §6 says the core
// consumes but does not implement: the projected-task constructor, the
// PDB builder, the abstract planner, and the RNG.
type Dependencies struct {
	TaskBuilder ProjectedTaskBuilder
	PDBBuilder  PDBBuilder
	Planner     AbstractPlanner
	RNG         RNG
}

// RunResult is the pattern collection a CEGAR run produced: every
// surviving pattern paired with its PDB (spec §3, "Emission"), plus
// bookkeeping about the run itself.
type RunResult struct {
	Patterns    []Pattern
	PDBs        []PDB
	Refinements int
	Elapsed     time.Duration
}

// String renders the patterns in the result, e.g. "[[0], [1 2]]".
func (r RunResult) String() string {
	parts := make([]string, len(r.Patterns))
	for i, p := range r.Patterns {
		parts[i] = fmt.Sprintf("%v", p)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Cegar owns the mutable pattern collection and its refinement budgets;
// it implements the driver loop of spec §4.6 (C5).
type Cegar struct {
	task    Task
	goals   []FactPair
	options Options

	taskBuilder ProjectedTaskBuilder
	pdbBuilder  PDBBuilder
	planner     AbstractPlanner
	rng         RNG
	timer       CountdownTimer
	log         *Logger

	collection            *projectionCollection
	blacklisted           map[Variable]struct{}
	concreteSolutionIndex int // -1 = none

	refinementCounter int
}

// Run validates goals against task, then builds and executes a CEGAR
// driver to completion (spec §4.6, §6, §7). blacklistedVariables seeds
// the initial blacklist; pass nil for none.
func Run(
	task Task,
	goals []FactPair,
	blacklistedVariables []Variable,
	deps Dependencies,
	options Options,
	log *Logger,
) (RunResult, error) {
	if log == nil {
		log = NewNopLogger()
	}
	if err := options.Validate(); err != nil {
		return RunResult{}, err
	}
	if err := validateGoals(task, goals); err != nil {
		return RunResult{}, err
	}

	log = log.WithField("run_id", uuid.New().String())

	log.Normalf("options of the CEGAR algorithm for computing a pattern collection:")
	log.Normalf("max refinements: %d", options.MaxRefinements)
	log.Normalf("max pdb size: %d", options.MaxPDBSize)
	log.Normalf("max collection size: %d", options.MaxCollectionSize)
	log.Normalf("wildcard plans: %v", options.WildcardPlans)
	log.Normalf("max time: %v", options.MaxTime)
	if len(blacklistedVariables) == 0 {
		log.Normalf("blacklisted variables: none")
	} else {
		log.Normalf("blacklisted variables: %v", blacklistedVariables)
	}

	blacklisted := make(map[Variable]struct{}, len(blacklistedVariables))
	for _, v := range blacklistedVariables {
		blacklisted[v] = struct{}{}
	}

	c := &Cegar{
		task:                  task,
		goals:                 goals,
		options:               options,
		taskBuilder:           deps.TaskBuilder,
		pdbBuilder:            deps.PDBBuilder,
		planner:               deps.Planner,
		rng:                   deps.RNG,
		timer:                 NewCountdownTimer(options.MaxTime),
		log:                   log,
		collection:            newProjectionCollection(),
		blacklisted:           blacklisted,
		concreteSolutionIndex: -1,
	}
	return c.run()
}

func validateGoals(task Task, goals []FactPair) error {
	taskGoals := task.Goals()
	for _, g := range goals {
		found := false
		for _, tg := range taskGoals {
			if g == tg {
				found = true
				break
			}
		}
		if !found {
			return errors.Wrapf(ErrInputGoalMismatch, "fact %v is not a goal of the task", g)
		}
	}
	return nil
}

func (c *Cegar) run() (RunResult, error) {
	c.buildInitialCollection()

	for !c.terminationConditionsMet() {
		c.log.Verbosef("iteration #%d", c.refinementCounter+1)

		flaws, err := c.collectFlaws()
		if err != nil {
			return RunResult{}, err
		}

		if len(flaws) == 0 {
			if c.concreteSolutionIndex != -1 {
				c.log.Normalf("task solved during computation of abstract projection collection")
			} else {
				c.log.Normalf("flaw list empty, no further refinements possible")
			}
			break
		}

		if c.timer.IsExpired() {
			c.log.Normalf("time limit reached")
			break
		}

		c.refine(flaws)
		c.refinementCounter++

		c.log.Verbosef("current collection size: %d", c.collection.size)
		c.log.Verbosef("current collection: %s", c.collection.String())
	}

	result := c.emit()
	c.log.Normalf("computation time: %s", result.Elapsed)
	c.log.Normalf("number of iterations: %d", result.Refinements)
	c.log.Normalf("final collection: %s", result.String())
	c.log.Normalf("final collection number of patterns: %d", len(result.Patterns))
	c.log.Normalf("final collection summed PDB sizes: %d", c.collection.size)

	return result, nil
}

// terminationConditionsMet checks the two termination conditions that can
// be evaluated before a flaw-collection pass even runs: the wall-clock
// budget and the refinement cap. The other two conditions of spec §4.6
// (concrete_solution_index set, flaw list empty) can only be known after
// collectFlaws runs, so the loop body checks those itself.
func (c *Cegar) terminationConditionsMet() bool {
	if c.timer.IsExpired() {
		c.log.Normalf("time limit reached")
		return true
	}
	if c.refinementCounter == c.options.MaxRefinements {
		c.log.Normalf("maximum allowed number of refinements reached")
		return true
	}
	return false
}

func (c *Cegar) buildInitialCollection() {
	for _, g := range c.goals {
		c.addPatternForVar(g.Var)
	}
	c.log.Verbosef("initial collection: %s", c.collection.String())
}

// collectFlaws implements 4.3/C5's flaw collection: scan live,
// not-yet-solved slots in ascending order, aborting the whole run if any
// is unsolvable, and otherwise accumulating every flaw any of their plans
// raises against the concrete task. If a plan turns out to be a valid
// concrete solution, collectFlaws records it and returns no flaws,
// signaling the driver to stop.
func (c *Cegar) collectFlaws() (FlawList, error) {
	var flaws FlawList
	init := c.task.InitialState()

	for i := 0; i < c.collection.numSlots(); i++ {
		if !c.collection.isLive(i) {
			continue
		}
		projection := c.collection.at(i)
		if projection.Solved() {
			continue
		}
		if projection.Unsolvable() {
			c.log.Normalf("problem unsolvable")
			return nil, errors.Wrapf(ErrUnsolvableTask, "pattern %v has no solution", projection.Pattern())
		}

		newFlaws, reachedSolution := executeWildcardPlan(c.task, c.goals, c.blacklisted, i, projection, init, c.log)
		if reachedSolution {
			c.concreteSolutionIndex = i
			return nil, nil
		}
		flaws = append(flaws, newFlaws...)
	}
	return flaws, nil
}

// refine implements 4.5: pick one flaw uniformly at random and hand it to
// the refinement policy.
func (c *Cegar) refine(flaws FlawList) {
	flaw := flaws[c.rng.Intn(len(flaws))]
	c.log.Verbosef("chosen flaw: pattern %v with a flaw on variable %d",
		c.collection.at(flaw.CollectionIndex).Pattern(), flaw.Variable)
	c.handleFlaw(flaw)
}

// emit implements the Emission rule of spec §4.6: if a concrete solution
// was found, the output is that single PDB; otherwise it's every live
// projection's PDB in slot order.
func (c *Cegar) emit() RunResult {
	result := RunResult{Refinements: c.refinementCounter, Elapsed: c.timer.Elapsed()}

	if c.concreteSolutionIndex != -1 {
		p := c.collection.at(c.concreteSolutionIndex)
		result.Patterns = []Pattern{p.Pattern()}
		result.PDBs = []PDB{p.PDB()}
		return result
	}

	for i := 0; i < c.collection.numSlots(); i++ {
		if c.collection.isLive(i) {
			p := c.collection.at(i)
			result.Patterns = append(result.Patterns, p.Pattern())
			result.PDBs = append(result.PDBs, p.PDB())
		}
	}
	return result
}
