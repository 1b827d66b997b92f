// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"pddlcore/fixture"
	"pddlcore/internal/pddlerrors"
	"pddlcore/internal/preinstantiate"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: pddlcore <fixture-file>")
		os.Exit(1)
	}

	path := os.Args[1]
	f, err := fixture.ParseFile(path)
	if err != nil {
		os.Exit(1) // fixture.ParseFile already reported the syntax error
	}

	problem, err := fixture.NewBuilder(f).Build()
	if err != nil {
		color.Red("build error: %s", err)
		os.Exit(1)
	}

	pipeline := preinstantiate.NewPipeline(preinstantiate.DefaultOptions())
	if err := pipeline.Run(problem); err != nil {
		reporter := pddlerrors.NewReporter()
		if se, ok := err.(*pddlerrors.StructuralError); ok {
			fmt.Print(reporter.FormatError(se))
		} else {
			color.Red("pipeline error: %s", err)
		}
		os.Exit(1)
	}

	reporter := pddlerrors.NewReporter()
	for _, sk := range problem.Skips {
		fmt.Print(reporter.FormatSkip(sk.Component, sk.Reason))
	}

	fmt.Printf("%d action(s), %d method(s) after preinstantiation\n", len(problem.Actions), len(problem.Methods))
	color.Green("Successfully preinstantiated %s", path)
}
