// Package reference holds the static tables the planner sizes against: user-type
// profiles, the cloud desktop service catalog, the migration phase template and
// the project role rates.
//
// Every accessor returns a copy, so callers can never mutate the shared tables.
package reference
