// Package melee owns game-semantics lookups for replay validation.
//
// Ownership boundary:
//   - character, stage, action state, attack, and item ID tables
//   - external/internal character ID mapping
//   - small value types shared by frame records (ports, coordinates)
//
// Every lookup degrades to an "unknown" result instead of failing so
// callers can decide whether an out-of-table ID is worth a diagnostic.
package melee
