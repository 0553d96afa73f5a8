package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileGateway keeps one <name>.json file per collection under a directory.
type FileGateway struct {
	dir string
}

// NewFileGateway creates dir if needed.
func NewFileGateway(dir string) (*FileGateway, error) {
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileGateway{dir: dir}, nil
}

func (g *FileGateway) Dir() string { return g.dir }

func (g *FileGateway) path(name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	return filepath.Join(g.dir, name+".json"), nil
}

func (g *FileGateway) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := g.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

// Save writes to a temp file in the same directory and renames it over the
// target, so readers never observe a half-written document.
func (g *FileGateway) Save(ctx context.Context, name string, doc []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := g.path(name)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(g.dir, ".tmp-"+name+"-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(doc); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p)
}
