// Package repo provides the per-entity repositories of the campus records
// system: thin typed views over the shared store, one per table, each with
// the lookup and cascade helpers its domain service needs.
//
// Repositories never enforce business rules. Uniqueness, capacity, role and
// state checks all live in the service layer; what lives here is plain data
// access: find by field, bulk delete by foreign key, and the schedule
// overlap scan, which is a pure read.
//
// The Registry bundles every repository over one Store instance. It is
// constructed once at startup and handed to the services; there are no
// package-level singletons.
package repo
