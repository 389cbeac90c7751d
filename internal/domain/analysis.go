package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BlurtAnalysis is the scored comparison of a user's recalled answer with
// the project's study material.
type BlurtAnalysis struct {
	// Accuracy is a percentage in [0, 100].
	Accuracy int `json:"accuracy"`
	// CorrectWords and WrongWords are sets kept in first-seen order.
	CorrectWords []string `json:"correct_words"`
	WrongWords   []string `json:"wrong_words"`
	MissedPoints []string `json:"missed_points"`
	ReviseAgain  []string `json:"revise_again"`
}

// Tier classifies the analysis accuracy for presentation.
func (a BlurtAnalysis) Tier() AccuracyTier {
	return TierFor(a.Accuracy)
}

// Validate checks the accuracy range.
func (a BlurtAnalysis) Validate() error {
	return validateWire(&analysisWire{Accuracy: accuracyValue(a.Accuracy)})
}

// AccuracyTier is a presentation band derived from an accuracy percentage.
type AccuracyTier int

// Accuracy tiers, lowest first.
const (
	TierNeedsPractice AccuracyTier = iota
	TierGood
	TierExcellent
)

var (
	tierNames  = [...]string{TierNeedsPractice: "needs practice", TierGood: "good", TierExcellent: "excellent"}
	tierLabels = [...]string{
		TierNeedsPractice: "Keep Practicing!",
		TierGood:          "Good Effort - Room to Improve",
		TierExcellent:     "Excellent Recall!",
	}
)

// TierFor maps an accuracy to its tier: >= 80 excellent, >= 50 good,
// anything lower needs practice.
func TierFor(accuracy int) AccuracyTier {
	switch {
	case accuracy >= 80:
		return TierExcellent
	case accuracy >= 50:
		return TierGood
	default:
		return TierNeedsPractice
	}
}

// String returns the tier name ("excellent", "good", "needs practice").
func (t AccuracyTier) String() string {
	if t < TierNeedsPractice || t > TierExcellent {
		return fmt.Sprintf("AccuracyTier(%d)", int(t))
	}
	return tierNames[t]
}

// Label returns the encouragement shown next to the score.
func (t AccuracyTier) Label() string {
	if t < TierNeedsPractice || t > TierExcellent {
		return ""
	}
	return tierLabels[t]
}

// DecodeBlurtAnalysis parses the wire JSON of an analysis. Absent
// collections decode as empty; accuracy may be a number or a string such
// as "85%".
func DecodeBlurtAnalysis(data []byte) (*BlurtAnalysis, error) {
	var w analysisWire
	if err := json.Unmarshal(data, &w); err != nil {
		if errors.Is(err, ErrInvalidAccuracy) {
			return nil, &ContentValidationError{Path: "accuracy", Reason: "not a percentage", Err: err}
		}
		return nil, &ContentValidationError{Reason: "invalid JSON", Err: err}
	}
	if err := validateWire(&w); err != nil {
		return nil, err
	}

	return &BlurtAnalysis{
		Accuracy:     int(w.Accuracy),
		CorrectWords: uniqueStrings(w.CorrectWords),
		WrongWords:   uniqueStrings(w.WrongWords),
		MissedPoints: nonNil(w.MissedPoints),
		ReviseAgain:  nonNil(w.ReviseAgain),
	}, nil
}

type analysisWire struct {
	Accuracy     accuracyValue `json:"accuracy" validate:"gte=0,lte=100"`
	CorrectWords []string      `json:"correct_words"`
	WrongWords   []string      `json:"wrong_words"`
	MissedPoints []string      `json:"missed_points"`
	ReviseAgain  []string      `json:"revise_again"`
}

// accuracyValue accepts 85, 85.4, "85" and "85%". Fractions are truncated.
type accuracyValue int

func (a *accuracyValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAccuracy, err)
		}
		raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("%w: %q", ErrInvalidAccuracy, string(data))
	}
	*a = accuracyValue(math.Trunc(f))
	return nil
}

func uniqueStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
