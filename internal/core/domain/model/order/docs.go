// Package order provides the Order aggregate and its lifecycle state machine.
//
// An order is created by an Admin in PENDING status, optionally already assigned to
// a worker. Workers move it forward through a monotonic lifecycle:
//
//	           claim (workerId: nil -> self)
//	PENDING ─────────────────────────────────┐
//	   │  start                   complete   │
//	   └──────> IN_PROGRESS ──────────> COMPLETED
//	   └───────────────── complete ───────────┘
//
// Key business rules:
//   - A claim succeeds only while the order is unassigned; it never changes status
//   - Only the assigned worker may start or complete the order
//   - Workers can never move the status backwards or re-enter the current status
//   - Admins bypass the transition guard (OverrideStatus, AssignWorker, Revise)
//
// The worker's display name is not part of the aggregate; read models derive it
// from the referenced user.
package order
