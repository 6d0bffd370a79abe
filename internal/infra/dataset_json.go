package infra

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/Vovarama1992/museo/data"
	"github.com/Vovarama1992/museo/internal/models"
	"github.com/Vovarama1992/museo/internal/ports"
	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

const (
	roomsFile    = "rooms.json"
	exhibitsFile = "exhibits.json"
	contentFile  = "content.json"
)

type JSONDataset struct {
	fsys fs.FS
}

// NewJSONDataset reads the three collections from dir, or from the embedded
// dataset when dir is empty.
func NewJSONDataset(dir string) ports.DatasetSource {
	if dir == "" {
		return &JSONDataset{fsys: data.FS}
	}
	return &JSONDataset{fsys: os.DirFS(dir)}
}

func NewJSONDatasetFS(fsys fs.FS) ports.DatasetSource {
	return &JSONDataset{fsys: fsys}
}

func (d *JSONDataset) Load(ctx context.Context) (*models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var snap models.Snapshot

	var g errgroup.Group
	g.Go(func() error { return readArray(d.fsys, roomsFile, &snap.Rooms) })
	g.Go(func() error { return readArray(d.fsys, exhibitsFile, &snap.Exhibits) })
	g.Go(func() error { return readArray(d.fsys, contentFile, &snap.Content) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &snap, nil
}

func readArray[T any](fsys fs.FS, name string, out *[]T) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	*out = items
	return nil
}
