// Command mindful-moments runs the Mindful Moments web application.
package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/justestif/go-mindful-moments/internal/classifier"
	"github.com/justestif/go-mindful-moments/internal/music"
	"github.com/justestif/go-mindful-moments/internal/web"
	webfs "github.com/justestif/go-mindful-moments/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Validate environment variables
	clientID := os.Getenv("SPOTIFY_ID")
	clientSecret := os.Getenv("SPOTIFY_SECRET")

	if clientID == "" || clientSecret == "" {
		return fmt.Errorf("please set SPOTIFY_ID and SPOTIFY_SECRET environment variables")
	}

	classifierCfg, err := classifier.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading classifier config: %w", err)
	}

	// Obtain a Spotify app token up front; a bad credential pair fails here
	// instead of on the first search.
	musicClient, err := music.Authenticate(context.Background(), clientID, clientSecret)
	if err != nil {
		return fmt.Errorf("authenticating with spotify: %w", err)
	}

	// Create sub-filesystems for templates and static files
	templates, err := fs.Sub(webfs.TemplatesFS, "templates")
	if err != nil {
		return fmt.Errorf("creating templates filesystem: %w", err)
	}

	static, err := fs.Sub(webfs.StaticFS, "static")
	if err != nil {
		return fmt.Errorf("creating static filesystem: %w", err)
	}

	// Create and start server
	server, err := web.NewServer(web.ServerConfig{
		Addr:        web.DefaultAddr,
		Classifier:  classifier.NewClient(classifierCfg),
		Picker:      music.NewSelector(musicClient, nil),
		TemplatesFS: templates,
		StaticFS:    static,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.Run()
}
