// Package conditional provides a table-driven alternative to multi-branch switch statements.
//
// A switch over a string is, at its heart, a lookup:
//
//	→ "Which branch owns this value?"
//	→ "What happens when no branch owns it?"
//
// This package makes both questions explicit. Branches are zero-argument producers held
// in a Conditionals table, and the fallback is an optional DefaultCase that receives the
// value nobody claimed. When no fallback is given, the miss surfaces as an error wrapping
// ErrInvalidConditionalValue instead of silently returning a zero value.
//
// Features:
//   - Reduce / ReduceFrom: one lookup, one invocation, no hidden state.
//   - Curry / CurryFrom: a Resolver with the table and fallback bound ahead of time.
//   - Source: any string-keyed producer store can stand in for a Go map.
//   - Table: a sharded, concurrency-safe Source for tables mutated at runtime.
//   - FromValues / DecodeValuesYAML: constant tables, optionally loaded from YAML.
//
// Producers are invoked afresh on every call. Nothing is cached, so results of
// impure producers (time, I/O, counters) are never stale.
//
// Example:
//
//	status := conditional.Curry(conditional.Conditionals[int]{
//	    "ok":        func() int { return 200 },
//	    "not_found": func() int { return 404 },
//	}, func(string) int { return 500 })
//
//	code, _ := status.Reduce("ok") // 200
package conditional
