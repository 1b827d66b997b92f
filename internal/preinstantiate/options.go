package preinstantiate

// Options configures bug-for-bug-compatible behavior at points the
// specification leaves as open questions (spec §9).
type Options struct {
	// BugCompatibleConstantBreak reproduces the documented source
	// behavior: when a unary-inertia literal's sole argument is a constant
	// rather than a parameter reference, the *entire remaining split
	// chain for that action* is abandoned. When false, only that one
	// literal is skipped and splitting continues with the next
	// unary-inertia literal (spec §4.6/§9, the "cleaner reading").
	BugCompatibleConstantBreak bool
}

// DefaultOptions matches the documented source behavior.
func DefaultOptions() Options {
	return Options{BugCompatibleConstantBreak: true}
}
