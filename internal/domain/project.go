package domain

import (
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"
)

// MaxTitleLength is the longest project title the project store accepts.
const MaxTitleLength = 100

// DefaultPreviewLength is the number of characters Preview keeps when
// listing projects.
const DefaultPreviewLength = 120

// lastProjectID holds the most recently issued project ID.
var lastProjectID atomic.Int64

// Project is a unit of study material. Projects are immutable once created
// and are shared by value between sessions.
type Project struct {
	// ID is a creation-time token: Unix milliseconds, strictly increasing
	// within a process.
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	StudyMaterial string `json:"studyMaterial"`
}

// NewProject builds a Project from user input. Title and material are
// trimmed; either being empty afterwards yields ErrEmptyTitleOrMaterial.
func NewProject(title, studyMaterial string) (*Project, error) {
	p := &Project{
		Title:         strings.TrimSpace(title),
		StudyMaterial: strings.TrimSpace(studyMaterial),
	}
	if err := p.validateFields(); err != nil {
		return nil, err
	}

	p.ID = nextProjectID(time.Now())
	return p, nil
}

// Validate checks that the project has an ID, a title and study material.
func (p Project) Validate() error {
	if p.ID <= 0 {
		return ErrValidation
	}
	return p.validateFields()
}

func (p Project) validateFields() error {
	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.StudyMaterial) == "" {
		return ErrEmptyTitleOrMaterial
	}
	if utf8.RuneCountInString(p.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// CreatedAt recovers the creation time encoded in the project ID.
func (p Project) CreatedAt() time.Time {
	return time.UnixMilli(p.ID)
}

// Preview returns the study material cut to at most n runes, with an
// ellipsis appended when it was shortened.
func (p Project) Preview(n int) string {
	if n <= 0 {
		n = DefaultPreviewLength
	}
	runes := []rune(p.StudyMaterial)
	if len(runes) <= n {
		return p.StudyMaterial
	}
	return string(runes[:n]) + "..."
}

// nextProjectID returns now in Unix milliseconds, or last+1 when another ID
// was already issued for the same or a later millisecond.
func nextProjectID(now time.Time) int64 {
	for {
		last := lastProjectID.Load()
		id := now.UnixMilli()
		if id <= last {
			id = last + 1
		}
		if lastProjectID.CompareAndSwap(last, id) {
			return id
		}
	}
}
