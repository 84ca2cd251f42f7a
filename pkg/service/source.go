package service

import (
	"context"
	"io/fs"
	"strings"

	"github.com/panekit/panekit/internal/errors"
)

// FSSource reads payloads from a file system, typically an embed.FS.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource creates a Source over fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// Open reads the file at location. A leading slash is ignored.
func (s *FSSource) Open(_ context.Context, location string) ([]byte, error) {
	name := strings.TrimPrefix(location, "/")
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, errors.New("E104").WithDetailf("read %s", name).Wrap(err)
	}
	return data, nil
}
