package fixture

import (
	"fmt"

	"pddlcore/internal/ir"
	"pddlcore/internal/preinstantiate"
)

// Builder turns a parsed Fixture into the ir.Context plus actions/methods/
// init facts that the preinstantiation pipeline consumes (spec §6 input
// contract), mirroring the teacher's ast.Contract -> ir.Program Builder
// shape but without SSA construction: a planning problem has no control
// flow to lower.
type Builder struct {
	fixture *Fixture
}

// NewBuilder wraps a parsed Fixture for building.
func NewBuilder(f *Fixture) *Builder {
	return &Builder{fixture: f}
}

// Build assembles a preinstantiate.Problem from the fixture.
func (b *Builder) Build() (*preinstantiate.Problem, error) {
	ctx, predicateByName, err := b.buildContext()
	if err != nil {
		return nil, err
	}

	var actions []*ir.Action
	var methods []*ir.Method
	for _, item := range b.fixture.Items {
		switch {
		case item.Action != nil:
			a, err := b.buildAction(ctx, predicateByName, item.Action)
			if err != nil {
				return nil, err
			}
			actions = append(actions, a)
		case item.Method != nil:
			m, err := b.buildMethod(ctx, predicateByName, item.Method)
			if err != nil {
				return nil, err
			}
			methods = append(methods, m)
		}
	}

	init, err := b.buildInit(ctx, predicateByName)
	if err != nil {
		return nil, err
	}

	return &preinstantiate.Problem{Context: ctx, Actions: actions, Methods: methods, Init: init}, nil
}

// buildContext assembles the type, constant and predicate tables and
// constructs the owning Context, plus a predicate-name lookup the rest of
// the builder needs (Context itself only looks predicates up by id).
func (b *Builder) buildContext() (*ir.Context, map[string]ir.PredicateId, error) {
	typeNames := []string{"object"}
	typeIndex := map[string]int{"object": 0}
	addType := func(name string) {
		if _, ok := typeIndex[name]; ok {
			return
		}
		typeIndex[name] = len(typeNames)
		typeNames = append(typeNames, name)
	}
	for _, td := range b.fixture.Types {
		for _, name := range td.Names {
			addType(name)
		}
		addType(td.Super)
	}

	types := make([]ir.TypeInfo, len(typeNames))
	for i, n := range typeNames {
		types[i] = ir.TypeInfo{Name: n}
	}
	domainSets := make([]map[ir.ConstantId]bool, len(typeNames))
	for i := range domainSets {
		domainSets[i] = map[ir.ConstantId]bool{}
	}

	var constants []string
	constantIndex := map[string]int{}
	for _, cd := range b.fixture.Constants {
		typeIdx, ok := typeIndex[cd.Type]
		if !ok {
			return nil, nil, fmt.Errorf("fixture: constants declare unknown type %q", cd.Type)
		}
		for _, name := range cd.Names {
			if _, exists := constantIndex[name]; exists {
				continue
			}
			cid := len(constants)
			constantIndex[name] = cid
			constants = append(constants, name)
			domainSets[typeIdx][ir.ConstantId(cid)] = true
			domainSets[0][ir.ConstantId(cid)] = true // every constant is an object
		}
	}

	var predicates []ir.PredicateInfo
	var typedPredicates [][]ir.TypeId
	predicateByName := map[string]ir.PredicateId{}
	for _, pd := range b.fixture.Predicates {
		if _, exists := predicateByName[pd.Name]; exists {
			return nil, nil, fmt.Errorf("fixture: predicate %q declared twice", pd.Name)
		}
		argTypes := make([]ir.TypeId, len(pd.ArgTypes))
		for i, tn := range pd.ArgTypes {
			tidx, ok := typeIndex[tn]
			if !ok {
				return nil, nil, fmt.Errorf("fixture: predicate %q argument %d has unknown type %q", pd.Name, i, tn)
			}
			argTypes[i] = ir.TypeId(tidx)
		}
		predicateByName[pd.Name] = ir.PredicateId(len(predicates))
		predicates = append(predicates, ir.PredicateInfo{Name: pd.Name, Arity: len(argTypes)})
		typedPredicates = append(typedPredicates, argTypes)
	}

	ctx := ir.NewContext(predicates, typedPredicates, types, domainSets, constants)
	return ctx, predicateByName, nil
}

func (b *Builder) buildAction(ctx *ir.Context, predicateByName map[string]ir.PredicateId, a *ActionDecl) (*ir.Action, error) {
	params, err := resolveParamTypes(ctx, a.Params)
	if err != nil {
		return nil, fmt.Errorf("fixture: action %q: %w", a.Name, err)
	}
	eb := newExprBuilder(ctx, predicateByName, a.Params)

	pre, err := eb.build(a.Precondition)
	if err != nil {
		return nil, fmt.Errorf("fixture: action %q precondition: %w", a.Name, err)
	}
	eff, err := eb.build(a.Effect)
	if err != nil {
		return nil, fmt.Errorf("fixture: action %q effect: %w", a.Name, err)
	}
	return &ir.Action{Name: a.Name, Parameters: params, Preconditions: pre, Effects: eff}, nil
}

func (b *Builder) buildMethod(ctx *ir.Context, predicateByName map[string]ir.PredicateId, m *MethodDecl) (*ir.Method, error) {
	params, err := resolveParamTypes(ctx, m.Params)
	if err != nil {
		return nil, fmt.Errorf("fixture: method %q: %w", m.Name, err)
	}
	eb := newExprBuilder(ctx, predicateByName, m.Params)

	pre, err := eb.build(m.Precondition)
	if err != nil {
		return nil, fmt.Errorf("fixture: method %q precondition: %w", m.Name, err)
	}

	network := &ir.TaskNetwork{}
	labelIndex := make(map[string]int, len(m.Subtasks))
	for _, sd := range m.Subtasks {
		if _, exists := labelIndex[sd.Label]; exists {
			return nil, fmt.Errorf("fixture: method %q: subtask label %q declared twice", m.Name, sd.Label)
		}
		args := make([]int, len(sd.Args))
		for i, name := range sd.Args {
			arg, err := eb.resolveTerm(name)
			if err != nil {
				return nil, fmt.Errorf("fixture: method %q subtask %q: %w", m.Name, sd.Label, err)
			}
			args[i] = arg
		}
		labelIndex[sd.Label] = len(network.Subtasks)
		network.Subtasks = append(network.Subtasks, &ir.Subtask{Name: sd.Task, Arguments: args})
	}
	for _, od := range m.Orderings {
		before, ok := labelIndex[od.Before]
		if !ok {
			return nil, fmt.Errorf("fixture: method %q: ordering references unknown subtask %q", m.Name, od.Before)
		}
		after, ok := labelIndex[od.After]
		if !ok {
			return nil, fmt.Errorf("fixture: method %q: ordering references unknown subtask %q", m.Name, od.After)
		}
		network.Orderings = append(network.Orderings, [2]int{before, after})
	}

	return &ir.Method{Name: m.Name, Parameters: params, Preconditions: pre, Network: network}, nil
}

func (b *Builder) buildInit(ctx *ir.Context, predicateByName map[string]ir.PredicateId) ([]*ir.ExprNode, error) {
	if b.fixture.Init == nil {
		return nil, nil
	}
	facts := make([]*ir.ExprNode, 0, len(b.fixture.Init.Facts))
	for _, f := range b.fixture.Init.Facts {
		pid, ok := predicateByName[f.Name]
		if !ok {
			return nil, fmt.Errorf("fixture: init fact references unknown predicate %q", f.Name)
		}
		args := make([]int, len(f.Args))
		for i, name := range f.Args {
			cid, ok := ctx.FindConstant(name)
			if !ok {
				return nil, fmt.Errorf("fixture: init fact references unknown constant %q", name)
			}
			args[i] = int(cid)
		}
		atom := ir.NewAtom(pid, args...)
		if f.Negated {
			atom = ir.NewNot(atom)
		}
		facts = append(facts, atom)
	}
	return facts, nil
}

func resolveParamTypes(ctx *ir.Context, params []*Param) ([]ir.TypeId, error) {
	out := make([]ir.TypeId, len(params))
	for i, p := range params {
		tid, ok := ctx.FindType(p.Type)
		if !ok {
			return nil, fmt.Errorf("parameter %q has unknown type %q", p.Name, p.Type)
		}
		out[i] = tid
	}
	return out, nil
}
