package fs

import (
	iofs "io/fs"
	"strings"
)

// ReadOnlyFileSystem reads files from an io/fs.FS, such as os.DirFS over an
// export directory. Leading slashes are ignored.
type ReadOnlyFileSystem struct {
	fs iofs.FS
}

func NewReadOnlyFileSystem(fsys iofs.FS) *ReadOnlyFileSystem {
	return &ReadOnlyFileSystem{fs: fsys}
}

func (fs *ReadOnlyFileSystem) ReadFile(path string) ([]byte, error) {
	return iofs.ReadFile(fs.fs, clean(path))
}

func (fs *ReadOnlyFileSystem) FileExists(path string) bool {
	info, err := iofs.Stat(fs.fs, clean(path))
	return err == nil && !info.IsDir()
}

func clean(path string) string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return "."
	}
	return path
}
