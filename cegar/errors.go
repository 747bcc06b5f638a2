package cegar

import "github.com/pkg/errors"

// ErrInputGoalMismatch is returned when a configured goal fact is not
// actually a goal of the task (spec §7, "Input error").
var ErrInputGoalMismatch = errors.New("goal is not a goal of the task")

// ErrUnsolvableTask is returned when a live projection's PDB rates the
// projected initial state unreachable from the goal, which is a sound
// lower bound on the concrete task's solvability (spec §7,
// "Unsolvable task").
var ErrUnsolvableTask = errors.New("task is unsolvable")
