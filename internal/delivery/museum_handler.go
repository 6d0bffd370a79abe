package delivery

import (
	"errors"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/museo/internal/domain"
	"github.com/Vovarama1992/museo/internal/ports"
	"github.com/go-chi/chi/v5"
)

type MuseumHandler struct {
	museum ports.MuseumQueries
	log    *logger.ZapLogger
}

func NewMuseumHandler(museum ports.MuseumQueries, log *logger.ZapLogger) *MuseumHandler {
	return &MuseumHandler{
		museum: museum,
		log:    log,
	}
}

// GET /api/rooms
func (h *MuseumHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.museum.ListRooms(r.Context())
	if err != nil {
		h.fault(w, r, err, "Error al obtener las salas")
		return
	}
	writeList(w, rooms)
}

// GET /api/rooms/{id}
func (h *MuseumHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	room, err := h.museum.GetRoom(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		writeFail(w, http.StatusNotFound, "Sala no encontrada")
		return
	}
	if err != nil {
		h.fault(w, r, err, "Error al obtener la sala")
		return
	}
	writeItem(w, room)
}

// GET /api/content
func (h *MuseumHandler) ListContent(w http.ResponseWriter, r *http.Request) {
	items, err := h.museum.ListContent(r.Context())
	if err != nil {
		h.fault(w, r, err, "Error al obtener el contenido")
		return
	}
	writeList(w, items)
}

// GET /api/content/type/{type}
func (h *MuseumHandler) ContentByType(w http.ResponseWriter, r *http.Request) {
	items, err := h.museum.ContentByType(r.Context(), chi.URLParam(r, "type"))
	if err != nil {
		h.fault(w, r, err, "Error al filtrar el contenido")
		return
	}
	writeList(w, items)
}

// GET /api/exhibits
func (h *MuseumHandler) ListExhibits(w http.ResponseWriter, r *http.Request) {
	items, err := h.museum.ListExhibits(r.Context())
	if err != nil {
		h.fault(w, r, err, "Error al obtener las exhibiciones")
		return
	}
	writeList(w, items)
}

// GET /api/exhibits/room/{roomId}
func (h *MuseumHandler) ExhibitsByRoom(w http.ResponseWriter, r *http.Request) {
	items, err := h.museum.ExhibitsByRoom(r.Context(), chi.URLParam(r, "roomId"))
	if err != nil {
		h.fault(w, r, err, "Error al obtener las exhibiciones")
		return
	}
	writeList(w, items)
}

// fault logs the real cause and answers with a generic message only.
func (h *MuseumHandler) fault(w http.ResponseWriter, r *http.Request, err error, msg string) {
	h.log.Log(logger.LogEntry{
		Level:   "error",
		Message: "query failed",
		Error:   err,
		Fields:  map[string]any{"path": r.URL.Path},
	})
	writeFail(w, http.StatusInternalServerError, msg)
}
