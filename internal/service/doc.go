// Package service contains the application operations of the news API. It
// validates raw request values, performs the existence checks that give each
// failure its client-facing message, and applies transactional boundaries
// around multi-step writes.
//
// Error handling principles:
//  1. Contractual failures are returned as *domain.Failure values unchanged
//  2. Store not-found errors are translated into the matching domain failure
//  3. Unexpected errors are wrapped in *NewsServiceError
//  4. The API layer maps the result onto HTTP status codes
//
// The service depends on the store interfaces only, never on a specific
// database implementation.
package service
