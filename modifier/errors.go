// Package modifier: sentinel errors. Branch with errors.Is.
package modifier

import "errors"

// ErrNilSource indicates a nil wrapped module.
var ErrNilSource = errors.New("modifier: nil source module")

// ErrNilDomain indicates a nil coordinate transform.
var ErrNilDomain = errors.New("modifier: nil domain transform")

// ErrBadRange indicates an inverted range (lo > hi).
var ErrBadRange = errors.New("modifier: lo must be <= hi")

// ErrBadSteps indicates a step count below 2.
var ErrBadSteps = errors.New("modifier: steps must be >= 2")
