// Package combiner: sentinel errors. Branch with errors.Is.
package combiner

import "errors"

// ErrNoModules indicates a combiner was constructed with zero children.
var ErrNoModules = errors.New("combiner: at least one module is required")

// ErrNilModule indicates a nil child module.
var ErrNilModule = errors.New("combiner: nil module")
