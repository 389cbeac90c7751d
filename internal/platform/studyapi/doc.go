// Package studyapi talks to the study service over HTTP. Client implements
// generation.Gateway for the three review modes and store.ProjectStore for
// the project list, and exposes the service's health probe.
//
// Every call is a single request/response exchange bounded by the caller's
// context and the configured timeout. Nothing is retried here; retry is a
// user decision surfaced by the sessions.
package studyapi
