package client

import (
	"context"
	"sync"

	"github.com/Vovarama1992/museo/internal/models"
	"golang.org/x/sync/errgroup"
)

type Status int

const (
	StatusEmpty Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

type Collection int

const (
	Rooms Collection = iota
	Exhibits
	Content
)

// MuseumAPI is what the store needs from the server.
type MuseumAPI interface {
	Rooms(ctx context.Context) ([]models.Room, error)
	Exhibits(ctx context.Context) ([]models.Exhibit, error)
	Content(ctx context.Context) ([]models.ContentItem, error)
}

type slot[T any] struct {
	status Status
	data   []T
	err    string
}

// Store caches the museum collections on the client side. Each collection
// moves Empty -> Loading -> Loaded|Failed independently. A failed refresh
// keeps the previous data. Concurrent fetches of one collection are not
// deduplicated: the last response to land wins.
type Store struct {
	api MuseumAPI

	mu          sync.RWMutex
	rooms       slot[models.Room]
	exhibits    slot[models.Exhibit]
	content     slot[models.ContentItem]
	currentRoom *models.Room
}

func NewStore(api MuseumAPI) *Store {
	return &Store{api: api}
}

func (s *Store) FetchRooms(ctx context.Context) error {
	return fetch(ctx, s, &s.rooms, s.api.Rooms, "Error al cargar las salas del museo")
}

func (s *Store) FetchExhibits(ctx context.Context) error {
	return fetch(ctx, s, &s.exhibits, s.api.Exhibits, "Error al cargar las exhibiciones")
}

func (s *Store) FetchContent(ctx context.Context) error {
	return fetch(ctx, s, &s.content, s.api.Content, "Error al cargar el contenido")
}

// FetchAll loads the three collections concurrently and returns the first
// failure. A failing collection does not cancel the others: each one runs
// to completion on the caller's ctx.
func (s *Store) FetchAll(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return s.FetchRooms(ctx) })
	g.Go(func() error { return s.FetchExhibits(ctx) })
	g.Go(func() error { return s.FetchContent(ctx) })
	return g.Wait()
}

func fetch[T any](
	ctx context.Context,
	s *Store,
	sl *slot[T],
	load func(context.Context) ([]T, error),
	failMsg string,
) error {
	s.mu.Lock()
	sl.status = StatusLoading
	sl.err = ""
	s.mu.Unlock()

	data, err := load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		sl.status = StatusFailed
		sl.err = failMsg
		return err
	}
	if data == nil {
		data = []T{}
	}
	sl.data = data
	sl.status = StatusLoaded
	sl.err = ""
	return nil
}

func (s *Store) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Room(nil), s.rooms.data...)
}

func (s *Store) Exhibits() []models.Exhibit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Exhibit(nil), s.exhibits.data...)
}

func (s *Store) Content() []models.ContentItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ContentItem(nil), s.content.data...)
}

func (s *Store) RoomCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms.data)
}

func (s *Store) ExhibitCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.exhibits.data)
}

func (s *Store) RoomByID(id string) (models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rooms.data {
		if r.ID == id {
			return r, true
		}
	}
	return models.Room{}, false
}

func (s *Store) ExhibitsByRoom(roomID string) []models.Exhibit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Exhibit{}
	for _, e := range s.exhibits.data {
		if e.RoomID == roomID {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) SetCurrentRoom(room *models.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if room == nil {
		s.currentRoom = nil
		return
	}
	r := *room
	s.currentRoom = &r
}

func (s *Store) CurrentRoom() (models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentRoom == nil {
		return models.Room{}, false
	}
	return *s.currentRoom, true
}

func (s *Store) Status(c Collection) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch c {
	case Rooms:
		return s.rooms.status
	case Exhibits:
		return s.exhibits.status
	case Content:
		return s.content.status
	}
	return StatusEmpty
}

// Loading reports whether any collection has a fetch in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rooms.status == StatusLoading ||
		s.exhibits.status == StatusLoading ||
		s.content.status == StatusLoading
}

// Err is the human-readable error of the last failed fetch, or "".
func (s *Store) Err(c Collection) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch c {
	case Rooms:
		return s.rooms.err
	case Exhibits:
		return s.exhibits.err
	case Content:
		return s.content.err
	}
	return ""
}

// ClearError drops the error message; the status stays as it is.
func (s *Store) ClearError(c Collection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch c {
	case Rooms:
		s.rooms.err = ""
	case Exhibits:
		s.exhibits.err = ""
	case Content:
		s.content.err = ""
	}
}
