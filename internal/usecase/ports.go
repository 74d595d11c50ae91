package usecase

import (
	"github.com/3-lines-studio/blog/internal/adapters/fs"
	"github.com/3-lines-studio/blog/internal/core"
)

type Renderer = core.Renderer

type FileSystem = fs.FileSystem

type FileReader interface {
	ReadFile(path string) ([]byte, error)
}
