package infra

import (
	"context"
	"fmt"

	"github.com/Vovarama1992/museo/internal/models"
	"github.com/Vovarama1992/museo/internal/ports"
	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// PostgresDataset reads each collection from a table of jsonb documents:
//
//	CREATE TABLE museum_rooms (position int PRIMARY KEY, doc jsonb NOT NULL);
//
// (same layout for museum_exhibits and museum_content). Rows are read once,
// in position order.
type PostgresDataset struct {
	pool *pgxpool.Pool
}

func NewPostgresDataset(pool *pgxpool.Pool) ports.DatasetSource {
	return &PostgresDataset{pool: pool}
}

func (d *PostgresDataset) Load(ctx context.Context) (*models.Snapshot, error) {
	var snap models.Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return queryDocs(gctx, d.pool, "museum_rooms", &snap.Rooms) })
	g.Go(func() error { return queryDocs(gctx, d.pool, "museum_exhibits", &snap.Exhibits) })
	g.Go(func() error { return queryDocs(gctx, d.pool, "museum_content", &snap.Content) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &snap, nil
}

func queryDocs[T any](ctx context.Context, pool *pgxpool.Pool, table string, out *[]T) error {
	// table names are package constants, never user input
	rows, err := pool.Query(ctx, `SELECT doc FROM `+table+` ORDER BY position ASC`)
	if err != nil {
		return fmt.Errorf("query %s: %w", table, err)
	}

	docs, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return fmt.Errorf("scan %s: %w", table, err)
	}

	items, err := decodeDocs[T](docs)
	if err != nil {
		return fmt.Errorf("decode %s: %w", table, err)
	}
	*out = items
	return nil
}

func decodeDocs[T any](docs [][]byte) ([]T, error) {
	items := make([]T, 0, len(docs))
	for i, doc := range docs {
		var it T
		if err := json.Unmarshal(doc, &it); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		items = append(items, it)
	}
	return items, nil
}
