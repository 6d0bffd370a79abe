package ports

import (
	"context"

	"github.com/Vovarama1992/museo/internal/models"
)

// DatasetSource loads the Static Dataset once at startup.
type DatasetSource interface {
	Load(ctx context.Context) (*models.Snapshot, error)
}
