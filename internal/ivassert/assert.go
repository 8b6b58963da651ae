// Package ivassert provides debug-only invariant checks.
//
// It mirrors realpaver's AssertDebug.hpp: a check that only runs when
// the caller opts into debug mode by setting Enabled, so with the flag
// off the hot path pays a single boolean test per check.
package ivassert

import "fmt"

// Enabled gates whether Check panics. It defaults to false; tests and
// debug tooling can flip it on for a session. It is intentionally a
// package variable rather than a build tag so library users can toggle
// it at runtime without a recompile.
var Enabled = false

// Check panics with a formatted message if cond is false and debug
// assertions are enabled. It must never be used to validate caller input
// (that belongs in a returned error) — only to defend internal invariants
// that a bug, not a bad argument, would violate.
func Check(cond bool, format string, args ...any) {
	if !Enabled || cond {
		return
	}
	panic(fmt.Sprintf("ivsolve: invariant violated: "+format, args...))
}
