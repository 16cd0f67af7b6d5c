package datasource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// FSSource reads documents from a build output directory
type FSSource struct {
	fs        afero.Fs
	root      string
	indexPath string
}

// NewFSSource creates a source rooted at dir on the given filesystem. A nil
// filesystem means the OS filesystem.
func NewFSSource(fsys afero.Fs, dir, indexPath string) *FSSource {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if indexPath == "" {
		indexPath = DefaultIndexPath
	}
	return &FSSource{fs: fsys, root: dir, indexPath: indexPath}
}

// Root returns the data root directory
func (s *FSSource) Root() string { return s.root }

// IndexFile returns the path of the index document
func (s *FSSource) IndexFile() string {
	return filepath.Join(s.root, filepath.FromSlash(s.indexPath))
}

// Index implements Source
func (s *FSSource) Index(ctx context.Context) ([]byte, error) {
	return s.read(ctx, s.IndexFile())
}

// Contributor implements Source
func (s *FSSource) Contributor(ctx context.Context, login string) ([]byte, error) {
	if !validLogin(login) {
		return nil, ErrNotFound
	}
	return s.read(ctx, filepath.Join(s.root, filepath.FromSlash(ContributorPath(login))))
}

func (s *FSSource) read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}
