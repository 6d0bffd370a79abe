package domain

import (
	"context"

	"github.com/Vovarama1992/museo/internal/models"
	"github.com/Vovarama1992/museo/internal/ports"
)

type museumService struct {
	rooms    *Collection[models.Room]
	exhibits *Collection[models.Exhibit]
	content  *Collection[models.ContentItem]
}

// NewMuseumService builds the query service over a loaded snapshot. A nil
// collection in the snapshot is normalized to empty so only a nil snapshot
// makes queries fail.
func NewMuseumService(snap *models.Snapshot) ports.MuseumQueries {
	if snap == nil {
		return &museumService{}
	}
	return &museumService{
		rooms:    NewCollection("room", orEmpty(snap.Rooms)),
		exhibits: NewCollection("exhibit", orEmpty(snap.Exhibits)),
		content:  NewCollection("content", orEmpty(snap.Content)),
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (s *museumService) ListRooms(_ context.Context) ([]models.Room, error) {
	return s.rooms.ListAll()
}

func (s *museumService) GetRoom(_ context.Context, id string) (models.Room, error) {
	return s.rooms.FindByID(id)
}

func (s *museumService) ListExhibits(_ context.Context) ([]models.Exhibit, error) {
	return s.exhibits.ListAll()
}

func (s *museumService) ExhibitsByRoom(_ context.Context, roomID string) ([]models.Exhibit, error) {
	return s.exhibits.FilterByField("roomId", roomID)
}

func (s *museumService) ListContent(_ context.Context) ([]models.ContentItem, error) {
	return s.content.ListAll()
}

func (s *museumService) ContentByType(_ context.Context, contentType string) ([]models.ContentItem, error) {
	return s.content.FilterByField("type", contentType)
}
