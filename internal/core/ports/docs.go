// Package ports defines the contracts between the inventory domain and its
// infrastructure: repositories, the unit of work, and the password and session
// collaborators used by the credential verifier.
package ports
