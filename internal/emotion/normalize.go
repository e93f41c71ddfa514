package emotion

import (
	"errors"
	"strings"
)

// ErrNoClassification is returned when the classifier produced no result.
var ErrNoClassification = errors.New("no classification result")

// Classification is the raw label/score pair returned by the external
// text-classification model, before normalization.
type Classification struct {
	Label string
	Score float64
}

// Detection is a normalized classification: a category from the closed
// taxonomy together with a confidence score.
type Detection struct {
	Category Category
	Score    float64
}

// loveScore is the fixed confidence assigned when a love trigger word
// overrides the classifier result.
const loveScore = 0.95

// loveTriggers are matched as substrings, not whole words, so "loved" and
// "lovely" also trigger the override.
var loveTriggers = []string{
	"love", "propose", "married", "engaged",
	"relationship", "crush", "girlfriend", "boyfriend",
}

// labelCategories maps the classifier's raw label vocabulary to the
// supported taxonomy. Labels not listed here fall back to Neutral.
var labelCategories = map[string]Category{
	"anger":    Anger,
	"disgust":  Anger,
	"fear":     Fear,
	"joy":      Joy,
	"neutral":  Neutral,
	"sadness":  Sadness,
	"surprise": Surprise,
}

// Normalize converts a raw classifier result into a Detection.
//
// A love trigger word anywhere in the input text wins unconditionally over
// the model's own label and yields a fixed 0.95 score. Otherwise the raw
// label is mapped through the label table, keeping the model's score; labels
// outside the table map to Neutral.
//
// Returns ErrNoClassification when raw is nil.
func Normalize(text string, raw *Classification) (Detection, error) {
	if raw == nil {
		return Detection{}, ErrNoClassification
	}

	lowered := strings.ToLower(text)
	for _, trigger := range loveTriggers {
		if strings.Contains(lowered, trigger) {
			return Detection{Category: Love, Score: loveScore}, nil
		}
	}

	category, ok := labelCategories[strings.ToLower(raw.Label)]
	if !ok {
		category = Neutral
	}

	return Detection{Category: category, Score: raw.Score}, nil
}
