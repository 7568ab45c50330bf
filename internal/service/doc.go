// Package service implements the domain rules of the campus records system
// on top of the repository layer.
//
// Architecture:
//
//	handlers / cmd
//	      |
//	   Services ---- one shared gate mutex (invariants)
//	      |
//	  repo.Registry
//	      |
//	  store.Store ---- single JSON data file
//
// Each service owns one entity family and the invariants that span it:
// uniqueness (usernames, student numbers, course names, parent
// relationships), referential cascades on delete, course capacity, the
// schedule conflict rule, and the projection of approved leave into
// attendance. Compound check-then-act sequences take the shared gate so a
// whole call is one critical section.
//
// Failures surface as *Error values with a Kind (validation, duplicate,
// not found, conflict, state, persistence) that callers branch on with
// IsKind or KindOf. Input structs validate declaratively via struct tags.
//
// Services mutate only in memory. The caller decides the unit of work and
// flushes the store when it completes.
package service
