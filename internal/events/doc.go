// Package events carries session state changes to interested parties.
//
// Sessions emit a StateChange whenever they move between states. They do
// not know who listens: the CLI registers a handler that logs transitions at
// debug level, and tests register recording handlers to assert on the exact
// sequence a session went through.
//
// The primary components are:
//   - StateChange: one transition of one session
//   - Handler: receives state changes
//   - Emitter: publishes state changes to handlers
package events
