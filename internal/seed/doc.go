// Package seed loads the embedded fixture sets into the database. Each set
// replaces the contents of every table, so seeding is repeatable.
package seed
