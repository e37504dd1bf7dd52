package cmd

import (
	"songsearch/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the search gateway HTTP server",
	Long:  `Start the HTTP server exposing the health check and the Spotify track search endpoint.`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
