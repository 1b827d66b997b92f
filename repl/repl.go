// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"pddlcore/fixture"
	"pddlcore/internal/ir"
	"pddlcore/internal/pddlerrors"
	"pddlcore/internal/preinstantiate"
)

var reporter = pddlerrors.NewReporter()

const PROMPT = ">> "

// session holds the REPL's working state: the currently loaded problem and
// how far through the preinstantiation pipeline it has been stepped.
type session struct {
	problem *preinstantiate.Problem
	stages  []preinstantiate.Stage
	next    int
}

// Start runs the interactive fixture-loading/pipeline-stepping REPL, reading
// commands from in until EOF.
func Start(in io.Reader) {
	s := &session{}
	scanner := bufio.NewScanner(in)

	for {
		fmt.Print(PROMPT)
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "load":
			if len(fields) != 2 {
				color.Red("usage: load <fixture-file>")
				continue
			}
			s.load(fields[1])

		case "step":
			s.step()

		case "run":
			s.run()

		case "show":
			if len(fields) != 2 {
				color.Red("usage: show actions|methods|context")
				continue
			}
			s.show(fields[1])

		case "quit", "exit":
			return

		default:
			color.Yellow("unknown command %q (load|step|run|show|quit)", fields[0])
		}
	}
}

func (s *session) load(path string) {
	f, err := fixture.ParseFile(path)
	if err != nil {
		color.Red("parse error: %s", err)
		return
	}
	problem, err := fixture.NewBuilder(f).Build()
	if err != nil {
		color.Red("build error: %s", err)
		return
	}
	s.problem = problem
	s.stages = []preinstantiate.Stage{
		preinstantiate.ExtractInertia{},
		preinstantiate.InferTypesFromInertia{},
		preinstantiate.CreatePredicateTables{},
		preinstantiate.SimplifyWithInferredTypes{Options: preinstantiate.DefaultOptions()},
	}
	s.next = 0
	color.Green("loaded %s: %d action(s), %d method(s)", path, len(problem.Actions), len(problem.Methods))
}

func (s *session) step() {
	if s.problem == nil {
		color.Red("no fixture loaded; use 'load <file>' first")
		return
	}
	if s.next >= len(s.stages) {
		color.Yellow("pipeline already complete")
		return
	}
	stage := s.stages[s.next]
	fmt.Printf("  - %s: %s\n", stage.Name(), stage.Description())
	before := len(s.problem.Skips)
	changed, err := stage.Apply(s.problem)
	if err != nil {
		reportStageError(err)
		return
	}
	if changed {
		fmt.Println("    changed")
	} else {
		fmt.Println("    no change")
	}
	for _, sk := range s.problem.Skips[before:] {
		fmt.Print(reporter.FormatSkip(sk.Component, sk.Reason))
	}
	s.next++
}

// reportStageError prints a stage failure through the shared Reporter when it
// carries a structural kind, falling back to a plain line for anything else
// a Stage might return.
func reportStageError(err error) {
	if se, ok := err.(*pddlerrors.StructuralError); ok {
		fmt.Print(reporter.FormatError(se))
		return
	}
	color.Red("%s", err)
}

func (s *session) run() {
	if s.problem == nil {
		color.Red("no fixture loaded; use 'load <file>' first")
		return
	}
	for s.next < len(s.stages) {
		s.step()
	}
	color.Green("pipeline complete")
}

func (s *session) show(what string) {
	if s.problem == nil {
		color.Red("no fixture loaded; use 'load <file>' first")
		return
	}
	switch what {
	case "actions":
		for _, a := range s.problem.Actions {
			fmt.Printf("action %s(%v)\n", a.Name, a.Parameters)
		}
	case "methods":
		for _, m := range s.problem.Methods {
			fmt.Printf("method %s(%v)\n", m.Name, m.Parameters)
		}
	case "context":
		ctx := s.problem.Context
		for p := 0; p < ctx.PredicateCount(); p++ {
			pid := ir.PredicateId(p)
			fmt.Printf("predicate %s/%d inertia=%s\n", ctx.PredicateName(pid), ctx.Arity(pid), ctx.Inertia(pid))
		}
	default:
		color.Yellow("unknown target %q (actions|methods|context)", what)
	}
}
