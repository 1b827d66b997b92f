package ir

// Inertia classifies a predicate with respect to the actions that affect it
// (spec §3/§6). The tags form a join-semilattice:
//
//	INERTIA  --sees positive effect-->  NEGATIVE
//	INERTIA  --sees negative effect-->  POSITIVE
//	POSITIVE --sees positive effect-->  FLUENT
//	NEGATIVE --sees negative effect-->  FLUENT
//
// Join is monotone: it never downgrades a tag once it has reached FLUENT,
// and POSITIVE/NEGATIVE never return to INERTIA.
type Inertia int

const (
	// INERTIA is the initial tag: no action has yet asserted or retracted
	// the predicate.
	INERTIA Inertia = iota
	// POSITIVE means no action ever adds the predicate (it is only ever
	// removed, or never touched at all after a negative-effect sighting).
	POSITIVE
	// NEGATIVE means no action ever removes the predicate.
	NEGATIVE
	// FLUENT means both polarities of effect have been observed.
	FLUENT
)

func (i Inertia) String() string {
	switch i {
	case INERTIA:
		return "INERTIA"
	case POSITIVE:
		return "POSITIVE"
	case NEGATIVE:
		return "NEGATIVE"
	case FLUENT:
		return "FLUENT"
	default:
		return "UNKNOWN"
	}
}

// JoinPositiveEffect folds in the observation of a positive literal effect
// (the predicate is asserted by some action), per the lattice table in
// spec §4.3/§6.
func (i Inertia) JoinPositiveEffect() Inertia {
	switch i {
	case INERTIA:
		return NEGATIVE
	case POSITIVE:
		return FLUENT
	default:
		return i
	}
}

// JoinNegativeEffect folds in the observation of a negative literal effect
// (the predicate is retracted by some action).
func (i Inertia) JoinNegativeEffect() Inertia {
	switch i {
	case INERTIA:
		return POSITIVE
	case NEGATIVE:
		return FLUENT
	default:
		return i
	}
}
