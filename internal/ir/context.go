package ir

import "fmt"

// PredicateInfo is one row of tableOfPredicates.
type PredicateInfo struct {
	Name  string
	Arity int
}

// TypeInfo is one row of tableOfTypes. It records only the type's name; a
// split type is known by its composed name (e.g. "object^P"), and its parent
// type and inertia predicate are not stored as separate fields.
type TypeInfo struct {
	Name string
}

// Context is the single owning value for every global side table the
// preinstantiation pipeline reads and mutates (spec §9: "rearchitect as an
// owning context value threaded through the pipeline ... never ambient").
// A caller running several planning problems concurrently gives each its
// own Context; nothing here is a package-level singleton (spec §5).
type Context struct {
	predicates       []PredicateInfo
	typedPredicates  [][]TypeId
	types            []TypeInfo
	typeByName       map[string]TypeId
	domains          []map[ConstantId]bool
	constants        []string
	constantByName   map[string]ConstantId
	inertia          []Inertia
	inferredDomains  []map[ConstantId]bool // nil entry == not applicable
	predicateTables  []*PredicateTable
}

// NewContext builds a Context from the parser's input contract (spec §6):
// the predicate table, the per-predicate argument-type table, the type
// table and per-type domains, and the constant table. tableOfInertia,
// tableOfInferredDomains and predicatesTables start empty/nil and are
// populated by the pipeline.
func NewContext(predicates []PredicateInfo, typedPredicates [][]TypeId, types []TypeInfo, domains []map[ConstantId]bool, constants []string) *Context {
	c := &Context{
		predicates:      append([]PredicateInfo(nil), predicates...),
		typedPredicates: make([][]TypeId, len(typedPredicates)),
		types:           append([]TypeInfo(nil), types...),
		typeByName:      make(map[string]TypeId, len(types)),
		domains:         make([]map[ConstantId]bool, len(domains)),
		constants:       append([]string(nil), constants...),
		constantByName:  make(map[string]ConstantId, len(constants)),
		inertia:         make([]Inertia, len(predicates)),
		inferredDomains: make([]map[ConstantId]bool, len(predicates)),
		predicateTables: make([]*PredicateTable, len(predicates)),
	}
	for i, tp := range typedPredicates {
		c.typedPredicates[i] = append([]TypeId(nil), tp...)
	}
	for i, d := range domains {
		set := make(map[ConstantId]bool, len(d))
		for k, v := range d {
			if v {
				set[k] = true
			}
		}
		c.domains[i] = set
	}
	for i, t := range types {
		c.typeByName[t.Name] = TypeId(i)
	}
	for i, name := range constants {
		c.constantByName[name] = ConstantId(i)
	}
	return c
}

// Predicate accessors.

func (c *Context) PredicateCount() int { return len(c.predicates) }
func (c *Context) PredicateName(p PredicateId) string {
	if int(p) < 0 || int(p) >= len(c.predicates) {
		return ""
	}
	return c.predicates[p].Name
}
func (c *Context) Arity(p PredicateId) int { return len(c.typedPredicates[p]) }
func (c *Context) ArgumentTypes(p PredicateId) []TypeId { return c.typedPredicates[p] }

// Type accessors.

func (c *Context) TypeCount() int { return len(c.types) }
func (c *Context) TypeName(t TypeId) string {
	if int(t) < 0 || int(t) >= len(c.types) {
		return ""
	}
	return c.types[t].Name
}

// FindType returns the TypeId already registered under name, if any.
func (c *Context) FindType(name string) (TypeId, bool) {
	id, ok := c.typeByName[name]
	return id, ok
}

// AddType registers a new named type (or returns the existing one — spec
// §3 invariant: each split-type name appears exactly once in tableOfTypes)
// with the given domain.
func (c *Context) AddType(name string, domain map[ConstantId]bool) TypeId {
	if id, ok := c.typeByName[name]; ok {
		return id
	}
	id := TypeId(len(c.types))
	c.types = append(c.types, TypeInfo{Name: name})
	c.domains = append(c.domains, cloneDomain(domain))
	c.typeByName[name] = id
	return id
}

func (c *Context) Domain(t TypeId) map[ConstantId]bool {
	if int(t) < 0 || int(t) >= len(c.domains) {
		return nil
	}
	return c.domains[t]
}

func cloneDomain(d map[ConstantId]bool) map[ConstantId]bool {
	out := make(map[ConstantId]bool, len(d))
	for k, v := range d {
		if v {
			out[k] = true
		}
	}
	return out
}

// Constant accessors.

func (c *Context) ConstantCount() int        { return len(c.constants) }
func (c *Context) ConstantName(id ConstantId) string {
	if int(id) < 0 || int(id) >= len(c.constants) {
		return ""
	}
	return c.constants[id]
}
func (c *Context) FindConstant(name string) (ConstantId, bool) {
	id, ok := c.constantByName[name]
	return id, ok
}
func (c *Context) AddConstant(name string) ConstantId {
	if id, ok := c.constantByName[name]; ok {
		return id
	}
	id := ConstantId(len(c.constants))
	c.constants = append(c.constants, name)
	c.constantByName[name] = id
	return id
}

// Inertia accessors.

func (c *Context) Inertia(p PredicateId) Inertia { return c.inertia[p] }
func (c *Context) SetInertia(p PredicateId, i Inertia) { c.inertia[p] = i }

// InferredDomain returns the unary-inertia inferred domain of p, and
// whether one was ever computed (spec §3 invariant: non-nil iff arity 1
// and inertia == INERTIA at classification time).
func (c *Context) InferredDomain(p PredicateId) (map[ConstantId]bool, bool) {
	d := c.inferredDomains[p]
	return d, d != nil
}

func (c *Context) SetInferredDomain(p PredicateId, domain map[ConstantId]bool) {
	c.inferredDomains[p] = domain
}

// PredicateTable returns the occurrence table for p, creating an empty one
// sized for its arity on first access.
func (c *Context) PredicateTable(p PredicateId) *PredicateTable {
	if c.predicateTables[p] == nil {
		c.predicateTables[p] = newPredicateTable(c.Arity(p))
	}
	return c.predicateTables[p]
}

// SplitType materializes the two types a unary-inertia literal splits a
// declared parameter type into (spec §4.6):
//
//	ti = declaredType ^ inertiaType, domain = domains[declared] ∩ inferredDomains[inertiaPredicate]
//	ts = declaredType \ inertiaType, domain = domains[declared] \ inferredDomains[inertiaPredicate]
//
// Types are deduplicated by name (spec §3 invariant): calling SplitType
// twice for the same (declared, inertia predicate) pair returns the same
// ids both times.
func (c *Context) SplitType(declared TypeId, inertiaPredicate PredicateId) (ti, ts TypeId, err error) {
	inertiaName := c.PredicateName(inertiaPredicate)
	declaredName := c.TypeName(declared)
	inferred, ok := c.InferredDomain(inertiaPredicate)
	if !ok {
		return 0, 0, fmt.Errorf("ir: predicate %q has no inferred domain, cannot split on it", inertiaName)
	}
	declaredDomain := c.Domain(declared)

	tiName := fmt.Sprintf("%s^%s", declaredName, inertiaName)
	tsName := fmt.Sprintf("%s\\%s", declaredName, inertiaName)

	tiDomain := intersect(declaredDomain, inferred)
	tsDomain := subtract(declaredDomain, inferred)

	ti = c.AddType(tiName, tiDomain)
	ts = c.AddType(tsName, tsDomain)
	return ti, ts, nil
}

func intersect(a, b map[ConstantId]bool) map[ConstantId]bool {
	out := make(map[ConstantId]bool)
	for k := range a {
		if b[k] {
			out[k] = true
		}
	}
	return out
}

func subtract(a, b map[ConstantId]bool) map[ConstantId]bool {
	out := make(map[ConstantId]bool)
	for k := range a {
		if !b[k] {
			out[k] = true
		}
	}
	return out
}

// Validate checks the global invariants of spec §3. It never mutates the
// context; callers decide what a non-empty report means for them (the
// pipeline itself treats a mismatch as the MismatchedTable structural error,
// spec §7).
func (c *Context) Validate() []string {
	var problems []string
	if len(c.inertia) != len(c.predicates) {
		problems = append(problems, fmt.Sprintf("len(tableOfInertia)=%d != len(tableOfPredicates)=%d", len(c.inertia), len(c.predicates)))
	}
	if len(c.typedPredicates) != len(c.predicates) {
		problems = append(problems, fmt.Sprintf("len(tableOfTypedPredicates)=%d != len(tableOfPredicates)=%d", len(c.typedPredicates), len(c.predicates)))
	}
	for p := range c.predicates {
		pid := PredicateId(p)
		_, hasInferred := c.InferredDomain(pid)
		wantInferred := c.Arity(pid) == 1 && c.Inertia(pid) == INERTIA
		if hasInferred != wantInferred {
			problems = append(problems, fmt.Sprintf("predicate %q: inferredDomain presence=%v, want %v (arity=%d, inertia=%s)",
				c.PredicateName(pid), hasInferred, wantInferred, c.Arity(pid), c.Inertia(pid)))
		}
	}
	seen := make(map[string]int, len(c.types))
	for _, t := range c.types {
		seen[t.Name]++
	}
	for name, n := range seen {
		if n > 1 {
			problems = append(problems, fmt.Sprintf("type %q appears %d times in tableOfTypes, want exactly once", name, n))
		}
	}
	return problems
}
