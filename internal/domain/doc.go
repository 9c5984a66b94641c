// Package domain contains the core business entities of the news API
// (topics, users, articles and comments), the parsing rules applied to raw
// request values before they reach the store, and the typed failures that
// carry a client-facing message up to the HTTP layer.
package domain
