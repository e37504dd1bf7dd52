// Package catalog wraps the Spotify Web API behind the narrow surface the
// gateway needs: a fallible one-time initialization using the
// client-credentials flow, and a track search returning reduced entries.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"songsearch/model"

	spotify "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

// Config holds the credentials and endpoint overrides for the catalog client.
// TokenURL and APIURL default to the public Spotify endpoints and only need
// to be set in tests.
type Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	APIURL       string
}

// Client is a Spotify catalog client. It is safe for concurrent use; token
// refresh is handled by the underlying oauth2 token source.
type Client struct {
	sp *spotify.Client
}

// NewClient validates the credentials, performs the client-credentials token
// exchange, and returns a client bound to an auto-refreshing HTTP client.
// The exchange happens eagerly so that bad credentials surface here rather
// than on the first search.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, ErrMissingCredentials
	}

	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = spotifyauth.TokenURL
	}

	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     tokenURL,
	}

	if _, err := cc.Token(ctx); err != nil {
		return nil, fmt.Errorf("client credentials exchange failed: %w", err)
	}

	var opts []spotify.ClientOption
	if cfg.APIURL != "" {
		apiURL := cfg.APIURL
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		opts = append(opts, spotify.WithBaseURL(apiURL))
	}

	return &Client{sp: spotify.New(cc.Client(ctx), opts...)}, nil
}

// SearchTracks runs a track search and maps the first page of results into
// the reduced Track shape, preserving upstream order. The result is never
// longer than limit. Spotify-side failures are returned as *UpstreamError.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]model.Track, error) {
	result, err := c.sp.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(limit))
	if err != nil {
		var spErr spotify.Error
		if errors.As(err, &spErr) {
			return nil, &UpstreamError{Status: spErr.Status, Message: spErr.Message}
		}
		return nil, err
	}

	if result.Tracks == nil {
		return nil, nil
	}

	items := result.Tracks.Tracks
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	tracks := make([]model.Track, 0, len(items))
	for _, item := range items {
		tracks = append(tracks, mapTrack(item))
	}
	return tracks, nil
}

func mapTrack(ft spotify.FullTrack) model.Track {
	track := model.Track{
		Name:    ft.Name,
		Artists: make([]string, 0, len(ft.Artists)),
	}

	for _, artist := range ft.Artists {
		track.Artists = append(track.Artists, artist.Name)
	}

	if ft.Album.Name != "" {
		track.Album = strPtr(ft.Album.Name)
	}
	if ft.URI != "" {
		track.URI = strPtr(string(ft.URI))
	}
	if url, ok := ft.ExternalURLs["spotify"]; ok && url != "" {
		track.ExternalURL = strPtr(url)
	}
	// Spotify orders album images largest first.
	if len(ft.Album.Images) > 0 && ft.Album.Images[0].URL != "" {
		track.CoverImage = strPtr(ft.Album.Images[0].URL)
	}

	return track
}

func strPtr(s string) *string {
	return &s
}
