package blog

import (
	"context"
	"time"

	"github.com/3-lines-studio/blog/internal/adapters/fs"
	"github.com/3-lines-studio/blog/internal/usecase"
)

type ExportOptions struct {
	OutDir      string
	Concurrency int
	Clean       bool
}

// Export writes every static page, the 404 page, the public files and
// manifest.json into opts.OutDir.
func (a *App) Export(ctx context.Context, opts ExportOptions) usecase.ExportOutput {
	start := time.Now()
	service := usecase.NewExportService(a.service, fs.NewOSFileSystem())

	output := service.Export(ctx, usecase.ExportInput{
		Pages:       a.configs,
		OutDir:      opts.OutDir,
		Concurrency: opts.Concurrency,
		Clean:       opts.Clean,
		Public:      a.public,
	})
	if output.Error != nil {
		a.logger.Error("export failed", "dir", opts.OutDir, "error", output.Error)
		return output
	}

	if a.metrics != nil {
		a.metrics.AddExportedPages(len(output.Pages))
	}
	a.logger.Info("export finished",
		"dir", opts.OutDir,
		"pages", len(output.Pages),
		"assets", len(output.Assets),
		"duration", time.Since(start),
	)
	return output
}
