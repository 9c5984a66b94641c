// Package mocks provides hand-written test doubles for service interfaces,
// shared by handler and router tests.
package mocks
