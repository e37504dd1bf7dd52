package cmd

import (
	"fmt"
	"os"

	"songsearch/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "songsearch",
	Short: "Songsearch proxies song-name queries to the Spotify catalog.",
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
