package cegar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductWithinLimit(t *testing.T) {
	cases := []struct {
		a, b, limit int
		want        bool
	}{
		{0, 5, 1, true},
		{5, 0, 1, true},
		{3, 4, 12, true},
		{3, 4, 11, false},
		{math.MaxInt / 2, 3, math.MaxInt, false},
		{1, 1, 1, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, productWithinLimit(c.a, c.b, c.limit))
	}
}

// fakeTask is a minimal Task used only to answer DomainSize queries the
// policy needs when sizing a would-be pattern extension.
type fakeTask struct {
	domainSizes map[Variable]int
}

func (f *fakeTask) NumVariables() int             { return len(f.domainSizes) }
func (f *fakeTask) DomainSize(v Variable) int     { return f.domainSizes[v] }
func (f *fakeTask) InitialState() State           { return State{} }
func (f *fakeTask) Goals() []FactPair             { return nil }
func (f *fakeTask) Operators() []Operator         { return nil }

type stubProjectedTask struct {
	Task
}

func (s *stubProjectedTask) AncestorOperator(op OperatorID) OperatorID { return op }

type stubTaskBuilder struct{}

func (stubTaskBuilder) Build(task Task, pattern Pattern) ProjectedTask {
	return &stubProjectedTask{task}
}

// sizedPDB reports whatever size a test wants, independent of the
// pattern's actual domain sizes, so tests can drive canMergePatterns and
// canAddVariableToPattern to exact boundary values.
type sizedPDB struct {
	pattern Pattern
	size    int
}

func (p *sizedPDB) Pattern() Pattern         { return p.pattern }
func (p *sizedPDB) Size() int                { return p.size }
func (p *sizedPDB) ValueOf(s State) int      { return 0 }

type stubPDBBuilder struct {
	sizeFor func(Pattern) int
}

func (b stubPDBBuilder) Build(projectedTask ProjectedTask, pattern Pattern) PDB {
	return &sizedPDB{pattern: pattern, size: b.sizeFor(pattern)}
}

type stubPlanner struct{}

func (stubPlanner) Plan(projectedTask ProjectedTask, pdb PDB, rng RNG, wildcard bool) WildcardPlan {
	return nil
}

type zeroRNG struct{}

func (zeroRNG) Intn(n int) int { return 0 }

func newTestCegar(task Task, options Options, sizeFor func(Pattern) int) *Cegar {
	return &Cegar{
		task:                  task,
		options:               options,
		taskBuilder:           stubTaskBuilder{},
		pdbBuilder:            stubPDBBuilder{sizeFor: sizeFor},
		planner:               stubPlanner{},
		rng:                   zeroRNG{},
		timer:                 NewCountdownTimer(math.Inf(1)),
		log:                   NewNopLogger(),
		collection:            newProjectionCollection(),
		blacklisted:           make(map[Variable]struct{}),
		concreteSolutionIndex: -1,
	}
}

func sizeByLength(p Pattern) int {
	size := 1
	for range p {
		size *= 2
	}
	return size
}

func TestAddPatternForVarIgnoresSizeLimits(t *testing.T) {
	task := &fakeTask{domainSizes: map[Variable]int{0: 2}}
	options := DefaultOptions()
	options.MaxPDBSize = 1 // smaller than any real pattern could ever be
	c := newTestCegar(task, options, func(Pattern) int { return 100 })

	c.addPatternForVar(0)

	assert.Equal(t, 1, c.collection.numSlots())
	assert.True(t, c.collection.isLive(0))
	assert.Equal(t, Pattern{0}, c.collection.at(0).Pattern())
	assert.Equal(t, 100, c.collection.size)
}

func TestHandleFlawMergesWhenWithinBudget(t *testing.T) {
	task := &fakeTask{domainSizes: map[Variable]int{0: 2, 1: 2}}
	options := DefaultOptions()
	options.MaxPDBSize = 10
	options.MaxCollectionSize = 10
	c := newTestCegar(task, options, sizeByLength)

	c.addPatternForVar(0)
	c.addPatternForVar(1)

	c.handleFlaw(Flaw{CollectionIndex: 0, Variable: 1})

	assert.True(t, c.collection.isLive(0))
	assert.False(t, c.collection.isLive(1))
	assert.Equal(t, Pattern{0, 1}, c.collection.at(0).Pattern())
	assert.Empty(t, c.blacklisted)
}

func TestHandleFlawBlacklistsWhenMergeExceedsBudget(t *testing.T) {
	task := &fakeTask{domainSizes: map[Variable]int{0: 2, 1: 2}}
	options := DefaultOptions()
	options.MaxPDBSize = 3 // 2*2 = 4 > 3, so the merge cannot fit
	options.MaxCollectionSize = 10
	c := newTestCegar(task, options, sizeByLength)

	c.addPatternForVar(0)
	c.addPatternForVar(1)

	c.handleFlaw(Flaw{CollectionIndex: 0, Variable: 1})

	assert.True(t, c.collection.isLive(0))
	assert.True(t, c.collection.isLive(1))
	assert.Equal(t, Pattern{0}, c.collection.at(0).Pattern())
	assert.Contains(t, c.blacklisted, Variable(1))
}

func TestHandleFlawExtendsPatternForNewVariable(t *testing.T) {
	task := &fakeTask{domainSizes: map[Variable]int{0: 2, 1: 2}}
	options := DefaultOptions()
	options.MaxPDBSize = 10
	options.MaxCollectionSize = 10
	c := newTestCegar(task, options, sizeByLength)

	c.addPatternForVar(0)

	c.handleFlaw(Flaw{CollectionIndex: 0, Variable: 1})

	assert.Equal(t, Pattern{0, 1}, c.collection.at(0).Pattern())
	slot, ok := c.collection.slotOf(1)
	assert.True(t, ok)
	assert.Equal(t, 0, slot)
	assert.Empty(t, c.blacklisted)
}

func TestHandleFlawBlacklistsWhenExtendExceedsBudget(t *testing.T) {
	task := &fakeTask{domainSizes: map[Variable]int{0: 2, 1: 2}}
	options := DefaultOptions()
	options.MaxPDBSize = 3 // 2*2 = 4 > 3
	options.MaxCollectionSize = 10
	c := newTestCegar(task, options, sizeByLength)

	c.addPatternForVar(0)

	c.handleFlaw(Flaw{CollectionIndex: 0, Variable: 1})

	assert.Equal(t, Pattern{0}, c.collection.at(0).Pattern())
	assert.Contains(t, c.blacklisted, Variable(1))
	_, ok := c.collection.slotOf(1)
	assert.False(t, ok)
}
