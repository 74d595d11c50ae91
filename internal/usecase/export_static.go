package usecase

import (
	"context"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/3-lines-studio/blog/internal/core"
)

const notFoundFile = "404.html"

type ExportInput struct {
	Pages       []core.PageConfig
	OutDir      string
	Concurrency int
	// Clean removes OutDir before writing.
	Clean bool
	// Public files are copied verbatim into OutDir.
	Public iofs.FS
}

type ExportOutput struct {
	Pages    []ExportedPage
	Assets   []string
	Manifest *core.Manifest
	Error    error
}

type ExportedPage struct {
	Path      string
	Component string
	File      string
	Bytes     int
}

type exportTarget struct {
	path      string
	component string
	props     map[string]any
}

type ExportService struct {
	pages *PageService
	fs    FileSystem
}

func NewExportService(pages *PageService, fs FileSystem) *ExportService {
	return &ExportService{
		pages: pages,
		fs:    fs,
	}
}

// Export renders every static page into input.OutDir and writes the manifest
// that lets a server answer from the exported files. Pages are rendered
// concurrently; the returned pages keep route order.
func (s *ExportService) Export(ctx context.Context, input ExportInput) ExportOutput {
	if input.OutDir == "" {
		return ExportOutput{Error: fmt.Errorf("export directory is required")}
	}

	targets, err := collectTargets(ctx, input.Pages)
	if err != nil {
		return ExportOutput{Error: err}
	}

	concurrency := input.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	if input.Clean {
		if err := s.fs.RemoveAll(input.OutDir); err != nil {
			return ExportOutput{Error: fmt.Errorf("failed to clean export directory: %w", err)}
		}
	}

	if err := s.fs.MkdirAll(input.OutDir, 0o755); err != nil {
		return ExportOutput{Error: fmt.Errorf("failed to create export directory: %w", err)}
	}

	results := make([]ExportedPage, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, target := range targets {
		g.Go(func() error {
			page, err := s.exportPage(gctx, input.OutDir, target)
			if err != nil {
				return fmt.Errorf("failed to export %s: %w", target.path, err)
			}
			results[i] = page
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return ExportOutput{Error: err}
	}

	manifest := core.NewManifest()
	for _, page := range results {
		manifest.Routes[core.NormalizePath(page.Path)] = core.ExportHTMLPath(page.Path)
	}

	notFound := s.pages.RenderNotFound(ctx)
	if notFound.Error != nil {
		return ExportOutput{Error: fmt.Errorf("failed to render not found page: %w", notFound.Error)}
	}
	if err := s.writeFile(input.OutDir, notFoundFile, []byte(notFound.HTML)); err != nil {
		return ExportOutput{Error: err}
	}
	manifest.NotFound = "/" + notFoundFile

	var assets []string
	if input.Public != nil {
		assets, err = s.copyPublic(input.Public, input.OutDir, manifest)
		if err != nil {
			return ExportOutput{Error: err}
		}
	}

	data, err := manifest.Encode()
	if err != nil {
		return ExportOutput{Error: fmt.Errorf("failed to encode manifest: %w", err)}
	}
	if err := s.writeFile(input.OutDir, core.ManifestFile, data); err != nil {
		return ExportOutput{Error: err}
	}

	return ExportOutput{
		Pages:    results,
		Assets:   assets,
		Manifest: manifest,
	}
}

func collectTargets(ctx context.Context, configs []core.PageConfig) ([]exportTarget, error) {
	var targets []exportTarget
	seen := make(map[string]string)

	for _, config := range configs {
		if config.Mode != core.ModeStaticPrerender {
			continue
		}

		var entries []core.StaticPathData
		if config.StaticDataLoader != nil {
			loaded, err := config.StaticDataLoader(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to load static data for %s: %w", config.Pattern, err)
			}
			entries = loaded
		} else {
			if params := core.TemplateParams(config.Pattern); len(params) > 0 {
				return nil, fmt.Errorf("route %s has parameters %v but no static data loader", config.Pattern, params)
			}
			entries = []core.StaticPathData{{Path: config.Pattern, Props: map[string]any{}}}
		}

		for _, entry := range entries {
			if err := core.ValidateRoutePath(entry.Path); err != nil {
				return nil, fmt.Errorf("invalid static path %q for %s: %w", entry.Path, config.Pattern, err)
			}
			if _, ok := core.MatchTemplate(config.Pattern, entry.Path); !ok {
				return nil, fmt.Errorf("static path %s does not match route %s", entry.Path, config.Pattern)
			}

			normalized := core.NormalizePath(entry.Path)
			if owner, dup := seen[normalized]; dup {
				return nil, fmt.Errorf("static path %s produced by both %s and %s", normalized, owner, config.Pattern)
			}
			seen[normalized] = config.Pattern

			targets = append(targets, exportTarget{
				path:      normalized,
				component: config.Component,
				props:     entry.Props,
			})
		}
	}

	return targets, nil
}

func (s *ExportService) exportPage(ctx context.Context, outDir string, target exportTarget) (ExportedPage, error) {
	html, _, err := s.pages.RenderPage(ctx, target.component, target.props)
	if err != nil {
		return ExportedPage{}, err
	}

	file := core.ExportFilePath(target.path)
	if err := s.writeFile(outDir, file, []byte(html)); err != nil {
		return ExportedPage{}, err
	}

	return ExportedPage{
		Path:      target.path,
		Component: target.component,
		File:      file,
		Bytes:     len(html),
	}, nil
}

func (s *ExportService) copyPublic(public iofs.FS, outDir string, manifest *core.Manifest) ([]string, error) {
	reserved := map[string]bool{notFoundFile: true, core.ManifestFile: true}
	for _, htmlPath := range manifest.Routes {
		reserved[htmlPath[1:]] = true
	}

	var copied []string
	err := iofs.WalkDir(public, ".", func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if reserved[path] {
			return fmt.Errorf("public file %s collides with an exported page", path)
		}

		data, err := iofs.ReadFile(public, path)
		if err != nil {
			return err
		}
		if err := s.writeFile(outDir, path, data); err != nil {
			return err
		}
		copied = append(copied, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to copy public files: %w", err)
	}

	sort.Strings(copied)
	return copied, nil
}

func (s *ExportService) writeFile(outDir, rel string, data []byte) error {
	dest := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := s.fs.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", rel, err)
	}
	if err := s.fs.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return nil
}
