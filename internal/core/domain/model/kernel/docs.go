// Package kernel contains shared domain primitives used across aggregates:
// the UUID value object wrapping github.com/google/uuid, and the actor Role
// consumed from the external identity collaborator.
//
// Types in this package are immutable value objects. Invalid zero values are
// caught by Validate methods rather than by construction panics, so callers
// reconstructing objects from persistence or external input always get an
// explicit error path.
package kernel
