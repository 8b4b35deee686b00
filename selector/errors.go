// Package selector: sentinel errors. Branch with errors.Is.
package selector

import "errors"

// ErrNilControl indicates a nil control module.
var ErrNilControl = errors.New("selector: nil control module")

// ErrNilModule indicates a nil source module.
var ErrNilModule = errors.New("selector: nil source module")

// ErrTooFewSources indicates fewer than two source modules.
var ErrTooFewSources = errors.New("selector: at least two sources are required")

// ErrBadThreshold indicates a selection threshold outside [0,1].
var ErrBadThreshold = errors.New("selector: threshold out of range")

// ErrBadFalloff indicates a negative falloff width.
var ErrBadFalloff = errors.New("selector: falloff must be >= 0")

// ErrBadBlendRadius indicates a blend-radius fraction outside [0,1].
var ErrBadBlendRadius = errors.New("selector: blend radius out of range")
