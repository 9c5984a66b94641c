// Package store defines the persistence interfaces for topics, users,
// articles and comments, together with the transaction helper and the
// sentinel errors every implementation returns. Business rules live in the
// service package; implementations live under platform.
package store
