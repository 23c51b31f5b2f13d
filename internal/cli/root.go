package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "garden",
	Short: "Portfolio gallery of places, notes, sketches, and builds",
	Long: `garden renders the portfolio's project collection as a responsive gallery page.

Serve it over HTTP, export it as static files, or validate the collection.`,
	SilenceUsage: true,
}

// projectsPath overrides GARDEN_PROJECTS_PATH for every command.
var projectsPath string

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectsPath, "projects", "", "Path to a projects JSON file (default: embedded collection)")
}
