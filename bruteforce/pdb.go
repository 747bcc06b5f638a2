package bruteforce

import "github.com/vulder/downward/cegar"

// rank encodes state as a single integer under the mixed-radix system
// given by domainSizes, most significant digit first.
func rank(state cegar.State, domainSizes []int) int {
	r := 0
	for i, d := range domainSizes {
		r = r*d + state[i]
	}
	return r
}

// unrank is rank's inverse.
func unrank(r int, domainSizes []int) cegar.State {
	s := make(cegar.State, len(domainSizes))
	for i := len(domainSizes) - 1; i >= 0; i-- {
		s[i] = r % domainSizes[i]
		r /= domainSizes[i]
	}
	return s
}

// pdb is a dense array-backed perfect-heuristic lookup table.
type pdb struct {
	pattern     cegar.Pattern
	domainSizes []int
	distances   []int
}

func (p *pdb) Pattern() cegar.Pattern { return p.pattern }
func (p *pdb) Size() int              { return len(p.distances) }

func (p *pdb) ValueOf(abstractState cegar.State) int {
	return p.distances[rank(abstractState, p.domainSizes)]
}

// Builder computes a PDB by enumerating the entire abstract state space,
// then running a multi-source breadth-first search backward from every
// goal-satisfying state over the reversed transition graph. Every
// transition has unit cost, so BFS distance equals exact goal distance.
type Builder struct{}

// Build implements cegar.PDBBuilder.
func (Builder) Build(projectedTask cegar.ProjectedTask, pattern cegar.Pattern) cegar.PDB {
	domainSizes := make([]int, projectedTask.NumVariables())
	for i := range domainSizes {
		domainSizes[i] = projectedTask.DomainSize(cegar.Variable(i))
	}

	size := 1
	for _, d := range domainSizes {
		size *= d
	}

	operators := projectedTask.Operators()
	goals := projectedTask.Goals()

	predecessors := make([][]int, size)
	var goalStates []int
	for r := 0; r < size; r++ {
		state := unrank(r, domainSizes)
		if satisfiesAll(state, goals) {
			goalStates = append(goalStates, r)
		}
		for _, op := range operators {
			if !applicable(state, op) {
				continue
			}
			next := cegar.ApplyEffects(state, op)
			nr := rank(next, domainSizes)
			predecessors[nr] = append(predecessors[nr], r)
		}
	}

	distances := make([]int, size)
	for i := range distances {
		distances[i] = cegar.Infinity
	}

	queue := make([]int, 0, len(goalStates))
	for _, r := range goalStates {
		distances[r] = 0
		queue = append(queue, r)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := distances[cur]
		for _, p := range predecessors[cur] {
			if distances[p] == cegar.Infinity {
				distances[p] = d + 1
				queue = append(queue, p)
			}
		}
	}

	return &pdb{pattern: pattern, domainSizes: domainSizes, distances: distances}
}
