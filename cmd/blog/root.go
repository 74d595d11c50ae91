package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blog",
		Short: "Serve and export the blog",
		Long: `blog renders the site's pages on request or writes them out as static HTML.

Configuration comes from the environment (BLOG_ADDR, BLOG_DEV, BLOG_POSTS,
BLOG_SITE_TITLE, BLOG_EXPORT_DIR, BLOG_EXPORT_CONCURRENCY, BLOG_SERVE_FROM),
optionally loaded from a .env file, and is overridden by flags.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("dev", false, "Enable development mode (text logs, error details)")
	cmd.PersistentFlags().String("posts", "", "YAML file with the posts to publish")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
