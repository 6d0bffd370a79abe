package delivery

import (
	"net/http"

	"github.com/Vovarama1992/museo/internal/models"
	"github.com/Vovarama1992/museo/internal/ports"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

type ExternalHandler struct {
	animals ports.AnimalGateway
	plants  ports.PlantGateway
}

func NewExternalHandler(animals ports.AnimalGateway, plants ports.PlantGateway) *ExternalHandler {
	return &ExternalHandler{
		animals: animals,
		plants:  plants,
	}
}

// externalError is the failure body of every proxy route. UseMock tells the
// caller it may substitute fallback data.
type externalError struct {
	Error   string `json:"error"`
	UseMock bool   `json:"useMock,omitempty"`
}

// upstreamFailure adds the mirrored upstream status and body; message is
// always present, an empty upstream body included.
type upstreamFailure struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Message any    `json:"message"`
	UseMock bool   `json:"useMock,omitempty"`
}

// GET /api/external/animals/{name}
func (h *ExternalHandler) Animal(w http.ResponseWriter, r *http.Request) {
	writeLookup(w, h.animals.LookupAnimal(r.Context(), chi.URLParam(r, "name")))
}

// GET /api/external/plants/search?q=
func (h *ExternalHandler) SearchPlants(w http.ResponseWriter, r *http.Request) {
	writeLookup(w, h.plants.SearchPlants(r.Context(), r.URL.Query().Get("q")))
}

// GET /api/external/plants/{id}
func (h *ExternalHandler) Plant(w http.ResponseWriter, r *http.Request) {
	writeLookup(w, h.plants.GetPlantByID(r.Context(), chi.URLParam(r, "id")))
}

func writeLookup(w http.ResponseWriter, res models.LookupResult) {
	switch {
	case res.Kind == models.LookupSuccess:
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(res.Payload)

	case res.Kind == models.LookupUnavailable, res.Transport:
		writeJSON(w, res.StatusCode, externalError{
			Error:   res.Reason,
			UseMock: res.SuggestFallback,
		})

	default:
		writeJSON(w, res.StatusCode, upstreamFailure{
			Error:   res.Reason,
			Status:  res.StatusCode,
			Message: upstreamMessage(res.Body),
			UseMock: res.SuggestFallback,
		})
	}
}

// upstreamMessage mirrors the upstream error body: as JSON when it parses,
// otherwise as a plain string.
func upstreamMessage(body []byte) any {
	if len(body) == 0 {
		return ""
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
