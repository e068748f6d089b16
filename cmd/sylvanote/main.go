// Package main provides the sylvanote CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sylvanote/sylvanote/internal/sqlite"
	"github.com/sylvanote/sylvanote/internal/web"
)

// configFile is set by the --config flag.
var configFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sylvanote",
	Short: "SylvaNote is a genealogy record-keeping API server",
	Long: `SylvaNote stores people, life events, and typed relationships between
them, and exposes them over HTTP as CRUD resources, a whole-graph aggregate,
and a zip export of markdown documents.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: sylvanote.yaml in the working directory)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sylvanote v0.1.0")
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the SylvaNote API server",
	Long:  `Attach the SQLite backend and serve the HTTP API until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		backend := sqlite.NewBackend()
		if err := backend.Attach(cfg); err != nil {
			return fmt.Errorf("attach store: %w", err)
		}
		defer backend.Detach()

		server := web.NewServer(backend, cfg)
		return server.Start()
	},
}
