package domain

import (
	"context"
	"testing"

	"github.com/Vovarama1992/museo/internal/models"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(t *testing.T) *models.Snapshot {
	t.Helper()

	var content []models.ContentItem
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":"c1","type":"text","body":"hola"},
		{"id":"c2","type":"image","url":"/a.png"},
		{"id":"c3","type":"text","body":"adiós"}
	]`), &content))

	return &models.Snapshot{
		Rooms: []models.Room{
			{ID: "room-1", Name: "Ciclo del Agua", Order: 1},
			{ID: "room-2", Name: "Humedales", Order: 2},
		},
		Exhibits: []models.Exhibit{
			{ID: "e1", RoomID: "room-1", Title: "Maqueta"},
			{ID: "e2", RoomID: "room-2", Title: "Axolote"},
			{ID: "e3", RoomID: "room-1", Title: "Nubes"},
			{ID: "e4", RoomID: "room-9", Title: "Huérfano"},
		},
		Content: content,
	}
}

func TestMuseumService_GetRoom(t *testing.T) {
	svc := NewMuseumService(testSnapshot(t))
	ctx := context.Background()

	tests := []struct {
		name     string
		id       string
		want     string
		notFound bool
	}{
		{"exact match", "room-1", "Ciclo del Agua", false},
		{"second room", "room-2", "Humedales", false},
		{"absent", "room-3", "", true},
		{"case sensitive", "ROOM-1", "", true},
		{"no trimming", " room-1", "", true},
		{"empty id", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room, err := svc.GetRoom(ctx, tt.id)
			if tt.notFound {
				require.ErrorIs(t, err, ErrNotFound)
				assert.NotErrorIs(t, err, ErrQueryFailure)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, room.Name)
		})
	}
}

func TestMuseumService_ListAllIsStable(t *testing.T) {
	svc := NewMuseumService(testSnapshot(t))
	ctx := context.Background()

	first, err := svc.ListExhibits(ctx)
	require.NoError(t, err)
	second, err := svc.ListExhibits(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"e1", "e2", "e3", "e4"}, exhibitIDs(first))

	// callers cannot mutate the dataset through a returned slice
	first[0].Title = "changed"
	third, err := svc.ListExhibits(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Maqueta", third[0].Title)
}

func TestMuseumService_ExhibitsByRoom(t *testing.T) {
	svc := NewMuseumService(testSnapshot(t))
	ctx := context.Background()

	got, err := svc.ExhibitsByRoom(ctx, "room-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e3"}, exhibitIDs(got))

	// dangling room reference: empty success, not an error
	got, err = svc.ExhibitsByRoom(ctx, "room-3")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMuseumService_ContentByType(t *testing.T) {
	svc := NewMuseumService(testSnapshot(t))
	ctx := context.Background()

	got, err := svc.ContentByType(ctx, "text")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "c3", got[1].ID)

	got, err = svc.ContentByType(ctx, "video")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMuseumService_NilSnapshotFails(t *testing.T) {
	svc := NewMuseumService(nil)
	ctx := context.Background()

	_, err := svc.ListRooms(ctx)
	require.ErrorIs(t, err, ErrQueryFailure)

	_, err = svc.GetRoom(ctx, "room-1")
	require.ErrorIs(t, err, ErrQueryFailure)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = svc.ContentByType(ctx, "text")
	require.ErrorIs(t, err, ErrQueryFailure)
}

func TestMuseumService_EmptyCollections(t *testing.T) {
	svc := NewMuseumService(&models.Snapshot{})

	rooms, err := svc.ListRooms(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)
}

func TestCollection_UnknownFieldIsQueryFailure(t *testing.T) {
	c := NewCollection("room", []models.Room{{ID: "room-1"}})

	_, err := c.FilterByField("colour", "blue")
	require.ErrorIs(t, err, ErrQueryFailure)
	require.ErrorIs(t, err, ErrUnknownField)
}

func exhibitIDs(ex []models.Exhibit) []string {
	ids := make([]string, 0, len(ex))
	for _, e := range ex {
		ids = append(ids, e.ID)
	}
	return ids
}
