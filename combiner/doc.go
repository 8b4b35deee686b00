// Package combiner provides n-ary associative merges over sibling noise
// modules: Add, Multiply, Min and Max.
//
// A combiner evaluates every child at the query coordinate (children are
// pure, so nothing is skipped or short-circuited) and folds the values
// with its reduction. Output bounds are folded from the children's
// analytic bounds once, at construction:
//
//	Add      — sum of child mins / sum of child maxes
//	Multiply — sign-aware corner products of the running and child bounds
//	Min      — elementwise min of child mins and of child maxes
//	Max      — elementwise max of child mins and of child maxes
//
// Construction is fail-loud: zero children or a nil child return sentinel
// errors (ErrNoModules, ErrNilModule); nothing substitutes a default.
//
// ⚙️ Usage:
//
//	sum, err := combiner.Add(elevation, detail)
//	if err != nil { ... }
//	v := sum.Value(x, y) // within [sum.MinValue(), sum.MaxValue()]
package combiner
