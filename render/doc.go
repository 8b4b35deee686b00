// Package render is a preview consumer for noise modules: it rasterizes
// a module's output over a coordinate window into a grayscale pixel
// buffer, normalizing with the module's declared MinValue/MaxValue. It
// consumes only the public Module surface — evaluate plus the range
// queries — and is not part of the evaluation core.
package render
