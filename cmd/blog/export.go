package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/blog"
	"github.com/3-lines-studio/blog/internal/adapters/cli"
)

func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the static pages to a directory",
		Long: `Export renders the index, the about page and every post to HTML files,
copies the public files and writes manifest.json for "blog serve --from".

Examples:
  blog export
  blog export --out dist --concurrency 8 --clean`,
		Args: cobra.NoArgs,
		RunE: runExportCmd,
	}

	cmd.Flags().StringP("out", "o", "", "Output directory (default $BLOG_EXPORT_DIR or out)")
	cmd.Flags().IntP("concurrency", "c", 0, "Pages rendered in parallel (default $BLOG_EXPORT_CONCURRENCY or 4)")
	cmd.Flags().Bool("clean", false, "Remove the output directory first")

	return cmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg, cmd.ErrOrStderr())
	slog.SetDefault(logger)

	app, err := newApp(cfg, logger, nil)
	if err != nil {
		return err
	}

	clean, _ := cmd.Flags().GetBool("clean")

	output := cli.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	output.PrintHeader("Blog Export")
	output.PrintStep("", "Exporting to %s", cfg.ExportDir)
	report := cli.NewExportReport(output, cfg.ExportDir)

	result := app.Export(cmd.Context(), blog.ExportOptions{
		OutDir:      cfg.ExportDir,
		Concurrency: cfg.ExportConcurrency,
		Clean:       clean,
	})
	report.Render(result)

	return result.Error
}
