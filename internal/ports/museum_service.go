package ports

import (
	"context"

	"github.com/Vovarama1992/museo/internal/models"
)

type MuseumQueries interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
	GetRoom(ctx context.Context, id string) (models.Room, error)

	ListExhibits(ctx context.Context) ([]models.Exhibit, error)
	ExhibitsByRoom(ctx context.Context, roomID string) ([]models.Exhibit, error)

	ListContent(ctx context.Context) ([]models.ContentItem, error)
	ContentByType(ctx context.Context, contentType string) ([]models.ContentItem, error)
}
