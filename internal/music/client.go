// Package music finds mood-matched tracks through the Spotify Web API.
package music

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

// Track is one playable search result.
type Track struct {
	ID     string
	Name   string
	Artist string
}

// EmbedURL returns the locator for the inline Spotify player.
func (t Track) EmbedURL() string {
	return "https://open.spotify.com/embed/track/" + t.ID
}

// Client wraps the Spotify API client with convenience methods.
type Client struct {
	api *spotify.Client
}

// New creates a new Spotify client wrapper.
// The underlying client should already be authenticated.
func New(api *spotify.Client) *Client {
	return &Client{api: api}
}

// Authenticate builds an authenticated client using the client-credentials
// flow. No user login is involved; the app token grants search access only.
func Authenticate(ctx context.Context, clientID, clientSecret string) (*Client, error) {
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	token, err := config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("requesting spotify token: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	return New(spotify.New(httpClient, spotify.WithRetry(true))), nil
}

// SearchTracks searches the catalog for tracks matching the query and
// returns up to limit results. Returns an empty slice (not nil) when
// nothing matches.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]Track, error) {
	results, err := c.api.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("searching tracks: %w", err)
	}

	if results.Tracks == nil {
		return []Track{}, nil
	}

	tracks := make([]Track, 0, len(results.Tracks.Tracks))
	for _, full := range results.Tracks.Tracks {
		tracks = append(tracks, convertTrack(full))
	}
	return tracks, nil
}

// convertTrack converts a Spotify FullTrack to a Track, keeping the
// primary artist only.
func convertTrack(full spotify.FullTrack) Track {
	artist := ""
	if len(full.Artists) > 0 {
		artist = full.Artists[0].Name
	}
	return Track{
		ID:     full.ID.String(),
		Name:   full.Name,
		Artist: artist,
	}
}
