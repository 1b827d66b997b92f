package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OrderingScenario is one golden ordering-constraint-network case (spec §8
// S2/S3/S4): a task count, the ordering constraints to add, and the
// expected acyclicity/total-order verdicts after transitive closure.
type OrderingScenario struct {
	Name               string  `yaml:"name"`
	Tasks              int     `yaml:"tasks"`
	Constraints        [][]int `yaml:"constraints"`
	WantAcyclic        bool    `yaml:"want_acyclic"`
	WantTotallyOrdered bool    `yaml:"want_totally_ordered"`
}

// LoadOrderingScenarios reads a golden YAML file of OrderingScenarios.
func LoadOrderingScenarios(path string) ([]OrderingScenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading golden file %s: %w", path, err)
	}
	var scenarios []OrderingScenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("fixture: parsing golden file %s: %w", path, err)
	}
	return scenarios, nil
}

// PredicateTableScenario is one golden predicate-occurrence-table case
// (spec §8 S6): a predicate's arity, the ground facts asserted over it, and
// the expected count for each (mask, tuple) pair.
type PredicateTableScenario struct {
	Name   string   `yaml:"name"`
	Arity  int      `yaml:"arity"`
	Facts  [][]int  `yaml:"facts"`
	Counts []struct {
		Mask  int   `yaml:"mask"`
		Tuple []int `yaml:"tuple"`
		Want  int   `yaml:"want"`
	} `yaml:"counts"`
}

// LoadPredicateTableScenarios reads a golden YAML file of
// PredicateTableScenarios.
func LoadPredicateTableScenarios(path string) ([]PredicateTableScenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading golden file %s: %w", path, err)
	}
	var scenarios []PredicateTableScenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("fixture: parsing golden file %s: %w", path, err)
	}
	return scenarios, nil
}
