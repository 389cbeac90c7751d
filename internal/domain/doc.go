// Package domain contains the study-aid content model: projects, the
// mnemonic-annotated content tree (sections, points and typed chunks), Blurt
// self-test analyses and flashcard decks. It also owns the validation rules
// that every generated structure must pass before it reaches a session or a
// renderer. The package performs no I/O.
package domain
