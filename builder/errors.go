// Package builder: sentinel errors. Branch with errors.Is.
//
// Parameter violations surface the noise package's sentinels
// (noise.ErrBadOctaves and friends) wrapped with the requested kind.
package builder

import "errors"

// ErrUnknownKind indicates a Build call with an out-of-enum Kind.
// Construction fails instead of substituting a default generator.
var ErrUnknownKind = errors.New("builder: unknown generator kind")
