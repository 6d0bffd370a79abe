package delivery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const APIVersion = "1.0.0"

func RegisterRoutes(r chi.Router, hMuseum *MuseumHandler, hExternal *ExternalHandler) {

	// rooms
	r.Get("/api/rooms", hMuseum.ListRooms)
	r.Get("/api/rooms/{id}", hMuseum.GetRoom)

	// educational content
	r.Get("/api/content", hMuseum.ListContent)
	r.Get("/api/content/type/{type}", hMuseum.ContentByType)

	// exhibits
	r.Get("/api/exhibits", hMuseum.ListExhibits)
	r.Get("/api/exhibits/room/{roomId}", hMuseum.ExhibitsByRoom)

	// upstream proxies
	r.Get("/api/external/animals/{name}", hExternal.Animal)
	r.Get("/api/external/plants/search", hExternal.SearchPlants)
	r.Get("/api/external/plants/{id}", hExternal.Plant)
}

func NewRouter(allowedOrigins []string, hMuseum *MuseumHandler, hExternal *ExternalHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RecoverJSON)
	r.Use(RequestMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	RegisterRoutes(r, hMuseum, hExternal)

	r.Get("/", Banner)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// a known path with the wrong method is just another unmatched route
	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	return r
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "Ruta no encontrada"})
}

// GET /
func Banner(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "🌊 Bienvenido al API del Museo Virtual del Agua",
		"version": APIVersion,
		"endpoints": map[string]string{
			"rooms":    "/api/rooms",
			"content":  "/api/content",
			"exhibits": "/api/exhibits",
		},
	})
}
