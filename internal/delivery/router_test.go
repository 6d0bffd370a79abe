package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/museo/internal/domain"
	"github.com/Vovarama1992/museo/internal/infra"
	"github.com/Vovarama1992/museo/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAnimals struct {
	res   models.LookupResult
	names []string
}

func (f *fakeAnimals) LookupAnimal(_ context.Context, name string) models.LookupResult {
	f.names = append(f.names, name)
	return f.res
}

type fakePlants struct {
	search models.LookupResult
	detail models.LookupResult
	query  string
	id     string
}

func (f *fakePlants) SearchPlants(_ context.Context, query string) models.LookupResult {
	f.query = query
	return f.search
}

func (f *fakePlants) GetPlantByID(_ context.Context, id string) models.LookupResult {
	f.id = id
	return f.detail
}

func newTestRouter(t *testing.T, snap *models.Snapshot, animals *fakeAnimals, plants *fakePlants) http.Handler {
	t.Helper()
	zl := logger.NewZapLogger(zap.NewNop().Sugar())
	if animals == nil {
		animals = &fakeAnimals{}
	}
	if plants == nil {
		plants = &fakePlants{}
	}
	return NewRouter(
		[]string{"*"},
		NewMuseumHandler(domain.NewMuseumService(snap), zl),
		NewExternalHandler(animals, plants),
	)
}

func embeddedSnapshot(t *testing.T) *models.Snapshot {
	t.Helper()
	snap, err := infra.NewJSONDataset("").Load(context.Background())
	require.NoError(t, err)
	return snap
}

func do(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 && rec.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestRooms(t *testing.T) {
	h := newTestRouter(t, embeddedSnapshot(t), nil, nil)

	rec, body := do(t, h, "/api/rooms")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 2, body["count"])
	assert.Len(t, body["data"], 2)

	rec, body = do(t, h, "/api/rooms/room-2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "room-2", body["data"].(map[string]any)["id"])
	assert.NotContains(t, body, "count")
}

func TestRoomNotFound(t *testing.T) {
	h := newTestRouter(t, embeddedSnapshot(t), nil, nil)

	rec, _ := do(t, h, "/api/rooms/room-3")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Sala no encontrada"}`, rec.Body.String())
}

func TestContentByType_EmptyIsSuccess(t *testing.T) {
	h := newTestRouter(t, embeddedSnapshot(t), nil, nil)

	rec, _ := do(t, h, "/api/content/type/video")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"count":0,"data":[]}`, rec.Body.String())
}

func TestContent_PassesAttributesThrough(t *testing.T) {
	h := newTestRouter(t, embeddedSnapshot(t), nil, nil)

	rec, body := do(t, h, "/api/content/type/text")
	require.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].([]any)
	require.NotEmpty(t, data)
	first := data[0].(map[string]any)
	assert.Equal(t, "text", first["type"])
	assert.Contains(t, first, "body")

	rec, body = do(t, h, "/api/content")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 3, body["count"])
}

func TestExhibits(t *testing.T) {
	h := newTestRouter(t, embeddedSnapshot(t), nil, nil)

	rec, body := do(t, h, "/api/exhibits")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 4, body["count"])

	rec, body = do(t, h, "/api/exhibits/room/room-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, body["count"])
	for _, e := range body["data"].([]any) {
		assert.Equal(t, "room-1", e.(map[string]any)["roomId"])
	}

	rec, _ = do(t, h, "/api/exhibits/room/room-3")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"count":0,"data":[]}`, rec.Body.String())
}

func TestQueryFault_Returns500WithoutDetails(t *testing.T) {
	h := newTestRouter(t, nil, nil, nil)

	tests := []struct {
		path string
		msg  string
	}{
		{"/api/rooms", "Error al obtener las salas"},
		{"/api/rooms/room-1", "Error al obtener la sala"},
		{"/api/content", "Error al obtener el contenido"},
		{"/api/content/type/text", "Error al filtrar el contenido"},
		{"/api/exhibits", "Error al obtener las exhibiciones"},
		{"/api/exhibits/room/room-1", "Error al obtener las exhibiciones"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec, body := do(t, h, tt.path)
			require.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.msg, body["error"])
		})
	}
}

func TestRoomsServeDocumentsUnchanged(t *testing.T) {
	fsys := fstest.MapFS{
		"rooms.json":    {Data: []byte(`[{"id":"room-1","name":"Sala","order":1,"floor":2}]`)},
		"exhibits.json": {Data: []byte(`[{"id":"e1","roomId":"room-1","title":"Ajolote","audio":"/a.mp3"}]`)},
		"content.json":  {Data: []byte(`[]`)},
	}
	snap, err := infra.NewJSONDatasetFS(fsys).Load(context.Background())
	require.NoError(t, err)
	h := newTestRouter(t, snap, nil, nil)

	rec, body := do(t, h, "/api/rooms/room-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, body["data"].(map[string]any)["floor"])

	rec, body = do(t, h, "/api/exhibits/room/room-1")
	require.Equal(t, http.StatusOK, rec.Code)
	items := body["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "/a.mp3", items[0].(map[string]any)["audio"])
}

func TestBannerAndNotFound(t *testing.T) {
	h := newTestRouter(t, embeddedSnapshot(t), nil, nil)

	rec, body := do(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, APIVersion, body["version"])
	assert.Contains(t, body, "message")
	endpoints := body["endpoints"].(map[string]any)
	assert.Equal(t, "/api/rooms", endpoints["rooms"])
	assert.NotContains(t, endpoints, "external")

	rec, _ = do(t, h, "/api/galaxies")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Ruta no encontrada"}`, rec.Body.String())

	for _, method := range []string{http.MethodPost, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/rooms", nil)
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code, method)
		assert.JSONEq(t, `{"error":"Ruta no encontrada"}`, rec.Body.String(), method)
	}

	rec, _ = do(t, h, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRecoverJSON(t *testing.T) {
	r := chi.NewRouter()
	r.Use(RecoverJSON)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec, body := do(t, r, "/boom")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Error interno del servidor", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter(t, embeddedSnapshot(t), nil, nil)
	do(t, h, "/api/rooms")

	rec, _ := do(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `museo_http_requests_total{method="GET",route="/api/rooms",status="200"}`)
}
