// Package store defines the project store port. Projects live in an external
// service; this package only names the operations and the errors callers can
// match on, keeping session and CLI code independent of the transport.
package store
