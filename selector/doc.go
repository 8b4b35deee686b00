// Package selector provides control-driven choice and blending among
// sibling noise modules.
//
// Every selector evaluates its control module at the query coordinate and
// normalizes the result into [0,1] across the control's own declared
// bounds (clamped). The normalized value then drives the selection:
//
//   - Select     — two sources, hard switch at a threshold, optionally
//     softened across a symmetric falloff band
//   - Blend      — two sources, linear blend by the normalized control
//   - MultiBlend — N sources partitioned into N equal cells with centers
//     at i/N + 1/(2N); a blend margin around each cell boundary, sized by
//     a blend-radius fraction, linearly mixes the adjacent cell's source.
//     A zero margin degenerates to a hard select.
//
// Blend alphas pass through a field.Interpolation kernel before mixing.
// A selector's bounds are the elementwise min/max union of its sources'
// bounds (the control contributes no value, only the choice).
//
// Construction is fail-loud: nil control, nil sources or fewer than two
// sources return sentinel errors.
package selector
