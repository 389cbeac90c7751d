// Package session implements the review modes as state machines bound to a
// single project: BlurtSession scores a recalled answer, FlashcardSession
// drills a generated deck, and MnemonicSession shows annotated content.
//
// Sessions are safe for concurrent use. Each holds at most one generation
// call in flight; a second request while one is pending fails with
// ErrSessionBusy rather than queueing. The gateway call runs without the
// session lock held and carries a token; if the session is reset before the
// call returns, the result is discarded and the call reports ErrStale.
package session
