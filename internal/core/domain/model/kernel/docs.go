// Package kernel provides the shared primitives of the inventory domain.
//
// UUID wraps github.com/google/uuid so that every aggregate identifier (business,
// user, order, product) is validated on construction; the zero value is rejected
// by Validate and therefore cannot leak into persistence or authorization checks.
package kernel
