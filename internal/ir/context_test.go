package ir

import "testing"

func newTestContext() *Context {
	predicates := []PredicateInfo{{Name: "P", Arity: 1}}
	typedPredicates := [][]TypeId{{0}}
	types := []TypeInfo{{Name: "object"}}
	domains := []map[ConstantId]bool{{0: true, 1: true, 2: true}}
	constants := []string{"a", "b", "c"}
	return NewContext(predicates, typedPredicates, types, domains, constants)
}

func TestAddTypeDeduplicatesByName(t *testing.T) {
	c := newTestContext()
	id1 := c.AddType("object^P", map[ConstantId]bool{0: true})
	id2 := c.AddType("object^P", map[ConstantId]bool{0: true, 1: true})
	if id1 != id2 {
		t.Fatalf("AddType should return the same id for a repeated name, got %d and %d", id1, id2)
	}
	if c.TypeCount() != 2 {
		t.Fatalf("TypeCount() = %d, want 2 (object + object^P)", c.TypeCount())
	}
}

func TestFindConstantAndAddConstant(t *testing.T) {
	c := newTestContext()
	if id, ok := c.FindConstant("b"); !ok || id != 1 {
		t.Fatalf("FindConstant(b) = (%d, %v), want (1, true)", id, ok)
	}
	id := c.AddConstant("d")
	if id != 3 {
		t.Fatalf("AddConstant(d) = %d, want 3", id)
	}
	if again := c.AddConstant("d"); again != id {
		t.Fatal("AddConstant should be idempotent for an existing name")
	}
}

// TestSplitType exercises spec §8 S5: declared type "object" = {a,b,c},
// inertia predicate P with inferred domain {a,b}; the split must produce
// ti = object^P = {a,b} and ts = object\P = {c}.
func TestSplitType(t *testing.T) {
	c := newTestContext()
	c.SetInferredDomain(0, map[ConstantId]bool{0: true, 1: true})

	object, _ := c.FindType("object")
	ti, ts, err := c.SplitType(object, 0)
	if err != nil {
		t.Fatalf("SplitType returned error: %v", err)
	}

	tiDomain := c.Domain(ti)
	if len(tiDomain) != 2 || !tiDomain[0] || !tiDomain[1] {
		t.Fatalf("ti domain = %v, want {a,b}", tiDomain)
	}
	tsDomain := c.Domain(ts)
	if len(tsDomain) != 1 || !tsDomain[2] {
		t.Fatalf("ts domain = %v, want {c}", tsDomain)
	}
	if c.TypeName(ti) != "object^P" || c.TypeName(ts) != "object\\P" {
		t.Fatalf("split type names = %q, %q", c.TypeName(ti), c.TypeName(ts))
	}
}

func TestSplitTypeIsIdempotent(t *testing.T) {
	c := newTestContext()
	c.SetInferredDomain(0, map[ConstantId]bool{0: true})
	object, _ := c.FindType("object")

	ti1, ts1, err := c.SplitType(object, 0)
	if err != nil {
		t.Fatalf("first SplitType: %v", err)
	}
	ti2, ts2, err := c.SplitType(object, 0)
	if err != nil {
		t.Fatalf("second SplitType: %v", err)
	}
	if ti1 != ti2 || ts1 != ts2 {
		t.Fatal("SplitType called twice for the same pair should return the same ids")
	}
	if n := c.TypeCount(); n != 3 {
		t.Fatalf("TypeCount() = %d, want 3 (object, object^P, object\\P)", n)
	}
}

func TestSplitTypeWithoutInferredDomainErrors(t *testing.T) {
	c := newTestContext()
	object, _ := c.FindType("object")
	if _, _, err := c.SplitType(object, 0); err == nil {
		t.Fatal("SplitType should error when the predicate has no inferred domain")
	}
}

func TestValidateReportsInferredDomainMismatch(t *testing.T) {
	c := newTestContext()
	c.SetInertia(0, INERTIA)
	// Arity-1 INERTIA predicate with no inferred domain set: Validate should
	// flag this (spec §3 invariant: inferredDomains non-nil iff arity==1 &&
	// inertia==INERTIA at classification time).
	problems := c.Validate()
	if len(problems) == 0 {
		t.Fatal("Validate should report the missing inferred domain")
	}
}

func TestValidateCleanContext(t *testing.T) {
	c := newTestContext()
	c.SetInertia(0, FLUENT)
	if problems := c.Validate(); len(problems) != 0 {
		t.Fatalf("Validate() = %v, want no problems", problems)
	}
}

func TestValidateDetectsDuplicateTypeName(t *testing.T) {
	c := newTestContext()
	c.types = append(c.types, TypeInfo{Name: "object"})
	c.domains = append(c.domains, map[ConstantId]bool{})
	problems := c.Validate()
	if len(problems) == 0 {
		t.Fatal("Validate should report the duplicate type name")
	}
}
