package domain

import "encoding/json"

// Flashcard is a single question/answer pair.
type Flashcard struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// FlashcardDeck is an ordered, non-empty sequence of flashcards.
type FlashcardDeck struct {
	Cards []Flashcard `json:"flashcards" validate:"min=1,dive"`
}

// Len returns the number of cards in the deck.
func (d *FlashcardDeck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Cards)
}

// Validate checks that the deck is non-empty and that every card has both
// sides. An empty deck yields an error matching ErrEmptyDeck.
func (d *FlashcardDeck) Validate() error {
	if d == nil {
		return &ContentValidationError{Path: "flashcards", Reason: "must not be empty", Err: ErrEmptyDeck}
	}
	return validateWire(d)
}

// DecodeFlashcardDeck parses `{"flashcards": [...]}` and validates it.
func DecodeFlashcardDeck(data []byte) (*FlashcardDeck, error) {
	var d FlashcardDeck
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &ContentValidationError{Reason: "invalid JSON", Err: err}
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
