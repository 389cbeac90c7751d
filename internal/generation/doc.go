// Package generation defines the boundary between study sessions and the
// external generation service that turns study material into mnemonic
// content, flashcards and Blurt analyses.
//
// The Gateway interface is the port; internal/platform/studyapi provides the
// HTTP adapter. Every failure crossing the port is either a local input
// error (ErrEmptyAnswer) or a *Error carrying one of three kinds:
// Unreachable, RejectedByService or MalformedResponse.
package generation
