package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"songsearch/config"
	"songsearch/core/catalog"

	"github.com/spf13/cobra"
)

var (
	searchQuery string
	searchLimit int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the Spotify catalog from the terminal",
	Long:  `Run a one-off track search against the Spotify catalog and print the results, without starting the HTTP server.`,
	Run: func(cmd *cobra.Command, args []string) {
		if searchQuery == "" {
			fmt.Println("Please provide a song name with --query")
			os.Exit(1)
		}

		cfg := config.Load()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client, err := catalog.NewClient(ctx, catalog.Config{
			ClientID:     cfg.SpotifyClientID,
			ClientSecret: cfg.SpotifyClientSecret,
		})
		if err != nil {
			log.Fatalf("Failed to initialize catalog client: %v", err)
		}

		tracks, err := client.SearchTracks(ctx, searchQuery, searchLimit)
		if err != nil {
			log.Fatalf("Search failed: %v", err)
		}

		if len(tracks) == 0 {
			fmt.Printf("No tracks found matching '%s'.\n", searchQuery)
			return
		}

		fmt.Printf("Found %d track(s):\n", len(tracks))
		for i, t := range tracks {
			album := "-"
			if t.Album != nil {
				album = *t.Album
			}
			fmt.Printf("%d. %s - %s [%s]\n", i+1, t.Name, strings.Join(t.Artists, ", "), album)
			if t.ExternalURL != nil {
				fmt.Printf("   %s\n", *t.ExternalURL)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "song name to search for")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 10, "maximum number of results")
}
