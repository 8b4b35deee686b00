// Package domain provides pure coordinate-to-coordinate transforms — the
// building blocks of domain warping. A Domain carries no value semantics:
// it only remaps the query coordinate before some module is evaluated
// there (see modifier.Warped for the bridge into the value graph).
//
// Transforms compose by chaining: Compound(a, b) feeds a's output into b.
// All implementations are immutable and safe for concurrent use.
package domain
