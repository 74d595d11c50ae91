package cli

import (
	"fmt"
	"time"

	"github.com/3-lines-studio/blog/internal/usecase"
)

// ExportReport summarises a static export on the terminal.
type ExportReport struct {
	output    *Output
	startTime time.Time
	outputDir string
}

func NewExportReport(output *Output, outputDir string) *ExportReport {
	return &ExportReport{
		output:    output,
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *ExportReport) Render(result usecase.ExportOutput) {
	duration := time.Since(r.startTime)

	if result.Error != nil {
		r.output.PrintError("%v", result.Error)
		r.output.PrintError("Export failed after %s", formatDuration(duration))
		return
	}

	if len(result.Pages) == 0 {
		r.output.PrintWarning("No static pages to export")
	}
	r.output.PrintSuccess("%d pages exported", len(result.Pages))
	for _, page := range result.Pages {
		r.output.PrintFile(fmt.Sprintf("%-24s %s %s", page.Path, page.File, r.output.Gray(formatBytes(page.Bytes))))
	}

	if len(result.Assets) > 0 {
		r.output.PrintSuccess("%d public files copied", len(result.Assets))
		for _, asset := range result.Assets {
			r.output.PrintFile(asset)
		}
	}

	r.output.PrintSuccess("Export complete in %s", formatDuration(duration))

	if r.outputDir != "" {
		r.output.PrintDone("\n  " + r.output.Gray("Output: "+r.outputDir))
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

func formatBytes(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f kB", float64(n)/1024)
}
