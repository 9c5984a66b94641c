// Package postgres implements the store interfaces on PostgreSQL through the
// pgx stdlib driver. It owns the SQL text, the schema migrations (embedded
// and applied with goose) and the mapping from PostgreSQL error codes onto
// store errors.
package postgres
