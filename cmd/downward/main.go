// Command downward runs the CEGAR pattern collection generator over a
// classical planning task, either the built-in toy demo or a task loaded
// from a JSON file.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vulder/downward/bruteforce"
	"github.com/vulder/downward/cegar"
	"github.com/vulder/downward/taskfile"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		maxRefinements    int
		maxPDBSize        int
		maxCollectionSize int
		wildcardPlans     bool
		maxTime           float64
		verbosity         int
		seed              int64
		taskPath          string
	)

	cmd := &cobra.Command{
		Use:   "downward",
		Short: "Compute a pattern collection for a classical planning task via CEGAR",
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := loadTask(taskPath)
			if err != nil {
				return err
			}

			base := logrus.New()
			log := cegar.NewLogger(cegar.Verbosity(verbosity), base)

			options := cegar.Options{
				MaxRefinements:    maxRefinements,
				MaxPDBSize:        maxPDBSize,
				MaxCollectionSize: maxCollectionSize,
				WildcardPlans:     wildcardPlans,
				MaxTime:           maxTime,
				Verbosity:         cegar.Verbosity(verbosity),
			}

			deps := cegar.Dependencies{
				TaskBuilder: bruteforce.TaskBuilder{},
				PDBBuilder:  bruteforce.Builder{},
				Planner:     bruteforce.Planner{},
				RNG:         cegar.NewRNG(seed),
			}

			result, err := cegar.Run(task, task.Goals(), nil, deps, options, log)
			if err != nil {
				return err
			}

			fmt.Println(result.String())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&maxRefinements, "max-refinements", cegarDefaults.MaxRefinements, "maximum number of refinement iterations")
	flags.IntVar(&maxPDBSize, "max-pdb-size", cegarDefaults.MaxPDBSize, "maximum number of abstract states in a single PDB")
	flags.IntVar(&maxCollectionSize, "max-collection-size", cegarDefaults.MaxCollectionSize, "maximum summed PDB size across the collection")
	flags.BoolVar(&wildcardPlans, "wildcard-plans", cegarDefaults.WildcardPlans, "extract wildcard plans instead of single-operator plans")
	flags.Float64Var(&maxTime, "max-time", cegarDefaults.MaxTime, "wall-clock budget in seconds")
	flags.IntVar(&verbosity, "verbosity", int(cegarDefaults.Verbosity), "log verbosity: 0=silent 1=normal 2=verbose 3=debug")
	flags.Int64Var(&seed, "seed", 0, "seed for the random number generator used to break refinement ties")
	flags.StringVar(&taskPath, "task-file", "", "path to a JSON task file; if empty, runs the built-in demo task")

	return cmd
}

var cegarDefaults = cegar.DefaultOptions()

func loadTask(path string) (cegar.Task, error) {
	if path == "" {
		return taskfile.Demo(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return taskfile.Decode(f)
}
