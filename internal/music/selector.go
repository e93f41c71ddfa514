package music

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/justestif/go-mindful-moments/internal/emotion"
)

// searchLimit caps how many candidates one search may return.
const searchLimit = 10

// defaultQuery is used for categories missing from the query table.
// The taxonomy is closed, so this is only reachable through misuse.
const defaultQuery = "relaxing background music"

// queries maps each emotion category to its catalog search phrase.
var queries = map[emotion.Category]string{
	emotion.Joy:      "happy upbeat energetic songs",
	emotion.Sadness:  "sad emotional songs",
	emotion.Anger:    "calm anger management music",
	emotion.Fear:     "peaceful meditation background",
	emotion.Love:     "romantic acoustic love songs",
	emotion.Surprise: "uplifting pop songs",
	emotion.Neutral:  "chill lofi focus music",
}

// QueryFor returns the search phrase for a category.
func QueryFor(c emotion.Category) string {
	if q, ok := queries[c]; ok {
		return q
	}
	return defaultQuery
}

// TrackSearcher is the subset of the catalog client the selector needs.
type TrackSearcher interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]Track, error)
}

// Selector picks a random track matching an emotion category.
type Selector struct {
	searcher TrackSearcher
	rng      *rand.Rand
}

// NewSelector creates a Selector. A nil rng gets a time-seeded source;
// tests inject a fixed seed for deterministic picks.
func NewSelector(searcher TrackSearcher, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{searcher: searcher, rng: rng}
}

// Pick searches the catalog for the category's query phrase and selects one
// result uniformly at random. Returns (nil, nil) when the search comes back
// empty: no track is an absence, not an error.
func (s *Selector) Pick(ctx context.Context, category emotion.Category) (*Track, error) {
	tracks, err := s.searcher.SearchTracks(ctx, QueryFor(category), searchLimit)
	if err != nil {
		return nil, fmt.Errorf("picking %s track: %w", category, err)
	}
	if len(tracks) == 0 {
		return nil, nil
	}

	track := tracks[s.rng.Intn(len(tracks))]
	return &track, nil
}
