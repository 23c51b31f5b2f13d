package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dennisxing/garden/internal/adapters/catalog"
	"github.com/dennisxing/garden/internal/domain"
	"github.com/dennisxing/garden/internal/infrastructure/config"
	"github.com/dennisxing/garden/internal/pkg/theme"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the project collection",
	Long: `Load the project collection, check required fields and unique ids, and print
a summary of every entry with the visual its card will show.

Examples:
  garden validate
  garden validate --projects ./projects.json`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path := cfg.ProjectsPath
	if projectsPath != "" {
		path = projectsPath
	}

	repo, err := catalog.Load(path)
	out := cmd.OutOrStdout()
	if err != nil {
		printValidationErrors(out, err)
		return errors.New("collection is invalid")
	}

	projects, err := repo.List(cmd.Context())
	if err != nil {
		return err
	}
	printSummary(out, projects)
	return nil
}

func printSummary(w io.Writer, projects []domain.Project) {
	styles := theme.Default()
	fmt.Fprintln(w, styles.Header.Render(fmt.Sprintf("%-20s %-28s %-8s %-6s", "ID", "TITLE", "DATE", "VISUAL")))
	for _, p := range projects {
		line := fmt.Sprintf("%-20s %-28s %-8s %-6s", truncate(p.ID, 20), truncate(p.Title, 28), truncate(p.Date, 8), p.Visual())
		if p.Featured {
			fmt.Fprintln(w, styles.Featured.Render(line+" featured"))
			continue
		}
		fmt.Fprintln(w, styles.Body.Render(line))
	}
	fmt.Fprintln(w, styles.Success.Render(fmt.Sprintf("✓ %d projects valid", len(projects))))
}

func printValidationErrors(w io.Writer, err error) {
	styles := theme.Default()
	fmt.Fprintln(w, styles.Error.Render("✗ collection is invalid"))
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintln(w, styles.Muted.Render("  "+line))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
