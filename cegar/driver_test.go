package cegar_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulder/downward/bruteforce"
	"github.com/vulder/downward/cegar"
	"github.com/vulder/downward/taskfile"
)

type zeroRNG struct{}

func (zeroRNG) Intn(int) int { return 0 }

func demoDeps() cegar.Dependencies {
	return cegar.Dependencies{
		TaskBuilder: bruteforce.TaskBuilder{},
		PDBBuilder:  bruteforce.Builder{},
		Planner:     bruteforce.Planner{},
		RNG:         zeroRNG{},
	}
}

func TestRunMergesDisjointGoalVariablesIntoAConcreteSolution(t *testing.T) {
	task := taskfile.Demo()
	options := cegar.DefaultOptions()

	result, err := cegar.Run(task, task.Goals(), nil, demoDeps(), options, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Refinements)
	require.Len(t, result.Patterns, 1)
	assert.Equal(t, cegar.Pattern{0, 1}, result.Patterns[0])
	require.Len(t, result.PDBs, 1)
}

func TestRunRejectsGoalNotInTask(t *testing.T) {
	task := taskfile.Demo()
	options := cegar.DefaultOptions()

	_, err := cegar.Run(task, []cegar.FactPair{{Var: 5, Value: 1}}, nil, demoDeps(), options, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, cegar.ErrInputGoalMismatch)
}

func TestRunReportsUnsolvableTask(t *testing.T) {
	task, err := unsolvableDemo()
	require.NoError(t, err)
	options := cegar.DefaultOptions()

	_, err = cegar.Run(task, task.Goals(), nil, demoDeps(), options, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, cegar.ErrUnsolvableTask)
}

// unsolvableDemo builds a one-variable task whose goal value is never
// produced by any operator, so its seed pattern's PDB rates the initial
// state unreachable.
func unsolvableDemo() (*taskfile.Task, error) {
	const demoJSON = `{
		"variables": [2],
		"initial": [0],
		"goals": [{"Var": 0, "Value": 1}],
		"operators": [
			{"preconditions": [], "effects": [{"target": {"Var": 0, "Value": 0}}]}
		]
	}`
	return taskfile.Decode(strings.NewReader(demoJSON))
}

func TestRunRespectsMaxRefinementsBudget(t *testing.T) {
	task := taskfile.Demo()
	options := cegar.DefaultOptions()
	options.MaxRefinements = 0

	result, err := cegar.Run(task, task.Goals(), nil, demoDeps(), options, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Refinements)
	assert.Len(t, result.Patterns, 2)
}
