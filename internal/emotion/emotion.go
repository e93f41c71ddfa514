// Package emotion defines the closed emotion taxonomy, the normalizer that
// maps raw classifier labels into it, and the themed presentation table.
package emotion

import (
	"fmt"
	"strings"
)

// Category is one of the seven supported emotion categories.
// The normalizer only ever produces values from this closed set.
type Category string

const (
	Joy      Category = "joy"
	Sadness  Category = "sadness"
	Anger    Category = "anger"
	Fear     Category = "fear"
	Love     Category = "love"
	Surprise Category = "surprise"
	Neutral  Category = "neutral"
)

// Categories lists every valid category.
var Categories = []Category{Joy, Sadness, Anger, Fear, Love, Surprise, Neutral}

// Valid reports whether c is one of the seven supported categories.
func (c Category) Valid() bool {
	switch c {
	case Joy, Sadness, Anger, Fear, Love, Surprise, Neutral:
		return true
	}
	return false
}

// Title returns the category name with a capitalized first letter for display.
func (c Category) Title() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Presentation is the themed display configuration for a category.
type Presentation struct {
	Color   string
	Emoji   string
	Message string
	Tip     string
}

var presentations = map[Category]Presentation{
	Joy: {
		Color:   "#FFE066",
		Emoji:   "😊",
		Message: "Keep shining with joy 🌞",
		Tip:     "Share your happiness!",
	},
	Sadness: {
		Color:   "#A9CCE3",
		Emoji:   "😢",
		Message: "Every storm passes 🌈",
		Tip:     "Talk to someone you trust.",
	},
	Anger: {
		Color:   "#F1948A",
		Emoji:   "😠",
		Message: "Take a deep breath 🕊️",
		Tip:     "Pause before reacting.",
	},
	Fear: {
		Color:   "#C39BD3",
		Emoji:   "😨",
		Message: "You are stronger than your fears 💪",
		Tip:     "Face small fears daily.",
	},
	Love: {
		Color:   "#F5B7B1",
		Emoji:   "❤️",
		Message: "Keep spreading love ❤️",
		Tip:     "Cherish your relationships.",
	},
	Surprise: {
		Color:   "#F9E79F",
		Emoji:   "😮",
		Message: "Life is full of surprises ✨",
		Tip:     "Embrace change.",
	},
	Neutral: {
		Color:   "#D5DBDB",
		Emoji:   "🙂",
		Message: "Stay balanced 🌿",
		Tip:     "Maintain good routines.",
	},
}

// Present returns the themed presentation for a category.
// The normalizer's output range is closed, so an unknown category here is a
// programmer error and panics rather than degrading silently.
func Present(c Category) Presentation {
	p, ok := presentations[c]
	if !ok {
		panic(fmt.Sprintf("emotion: no presentation for category %q", c))
	}
	return p
}
