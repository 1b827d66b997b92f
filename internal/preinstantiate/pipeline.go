package preinstantiate

import (
	"fmt"

	"pddlcore/internal/pddlerrors"
)

// Stage is a single preinstantiation transformation over a Problem.
type Stage interface {
	Name() string
	Description() string
	Apply(p *Problem) (bool, error)
}

// Pipeline runs an ordered sequence of stages over one Problem, grounded on
// the teacher's optimization-pass pipeline: report each stage's name and
// description before running it, and whether it changed anything after.
type Pipeline struct {
	stages []Stage
}

// NewPipeline builds the standard four-stage preinstantiation pipeline
// (spec §4): inertia extraction, unary-inertia type inference, predicate
// occurrence tables, then parameter type splitting. Order matters — each
// later stage reads a table the previous one populates.
func NewPipeline(opts Options) *Pipeline {
	p := &Pipeline{}
	p.AddStage(ExtractInertia{})
	p.AddStage(InferTypesFromInertia{})
	p.AddStage(CreatePredicateTables{})
	p.AddStage(SimplifyWithInferredTypes{Options: opts})
	return p
}

// AddStage appends a stage to the pipeline.
func (p *Pipeline) AddStage(s Stage) {
	p.stages = append(p.stages, s)
}

// Run executes every stage over problem in order, stopping at the first
// error (spec §7: a Structural error is fatal and immediate).
func (p *Pipeline) Run(problem *Problem) error {
	fmt.Printf("Running %d preinstantiation stages...\n", len(p.stages))

	for _, stage := range p.stages {
		fmt.Printf("  - %s: %s\n", stage.Name(), stage.Description())
		changed, err := stage.Apply(problem)
		if err != nil {
			return err
		}
		if changed {
			fmt.Printf("    changed\n")
		} else {
			fmt.Printf("    no change\n")
		}
	}

	if problems := problem.Context.Validate(); len(problems) > 0 {
		return pddlerrors.MismatchedTablef("preinstantiate.Pipeline", "context failed validation after pipeline run: %v", problems)
	}
	return nil
}
