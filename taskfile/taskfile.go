// Package taskfile decodes a classical planning task from JSON and
// exposes a small built-in demo task for the downward CLI.
package taskfile

import (
	"encoding/json"
	"io"

	"github.com/vulder/downward/cegar"
)

// Operator is the JSON-decodable form of cegar.Operator.
type Operator struct {
	Preconditions []cegar.FactPair `json:"preconditions"`
	Effects       []Effect         `json:"effects"`
}

// Effect is the JSON-decodable form of cegar.Effect.
type Effect struct {
	Conditions []cegar.FactPair `json:"conditions"`
	Target     cegar.FactPair   `json:"target"`
}

// Task is a JSON-decodable, in-memory implementation of cegar.Task.
type Task struct {
	DomainSizes []int            `json:"variables"`
	Initial     []int            `json:"initial"`
	GoalFacts   []cegar.FactPair `json:"goals"`
	Ops         []Operator       `json:"operators"`

	operators []cegar.Operator
}

// Decode reads a Task from r and assigns stable operator ids in file
// order.
func Decode(r io.Reader) (*Task, error) {
	var t Task
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, err
	}
	t.assignOperatorIDs()
	return &t, nil
}

func (t *Task) assignOperatorIDs() {
	t.operators = make([]cegar.Operator, len(t.Ops))
	for i, op := range t.Ops {
		effects := make([]cegar.Effect, len(op.Effects))
		for j, e := range op.Effects {
			effects[j] = cegar.Effect{Conditions: e.Conditions, Target: e.Target}
		}
		t.operators[i] = cegar.Operator{
			ID:            cegar.OperatorID(i),
			Preconditions: op.Preconditions,
			Effects:       effects,
		}
	}
}

func (t *Task) NumVariables() int { return len(t.DomainSizes) }

func (t *Task) DomainSize(v cegar.Variable) int { return t.DomainSizes[v] }

func (t *Task) InitialState() cegar.State {
	s := make(cegar.State, len(t.Initial))
	copy(s, t.Initial)
	return s
}

func (t *Task) Goals() []cegar.FactPair { return t.GoalFacts }

func (t *Task) Operators() []cegar.Operator { return t.operators }

// Demo returns the two-variable toy task used in the walkthrough
// scenarios: two binary variables x and y, both goals. x can only be
// raised while y already holds; y can be raised either while x holds or
// unconditionally. A collection with x and y in separate patterns cannot
// find a concrete plan without merging them.
func Demo() *Task {
	t := &Task{
		DomainSizes: []int{2, 2},
		Initial:     []int{0, 0},
		GoalFacts: []cegar.FactPair{
			{Var: 0, Value: 1},
			{Var: 1, Value: 1},
		},
		Ops: []Operator{
			{
				Preconditions: []cegar.FactPair{{Var: 1, Value: 1}},
				Effects:       []Effect{{Target: cegar.FactPair{Var: 0, Value: 1}}},
			},
			{
				Preconditions: []cegar.FactPair{{Var: 0, Value: 1}},
				Effects:       []Effect{{Target: cegar.FactPair{Var: 1, Value: 1}}},
			},
			{
				Preconditions: nil,
				Effects:       []Effect{{Target: cegar.FactPair{Var: 1, Value: 1}}},
			},
		},
	}
	t.assignOperatorIDs()
	return t
}
