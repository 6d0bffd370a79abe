package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Vovarama1992/museo/internal/models"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

var ErrNotFound = errors.New("not found")

// APIError is a non-2xx answer from the museum API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("museum api %d: %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

type listEnvelope[T any] struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    []T  `json:"data"`
}

type itemEnvelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// API talks to the museum endpoints under /api.
type API struct {
	http *resty.Client
}

func NewAPI(baseURL string) *API {
	return &API{http: newClient(baseURL+"/api", 10*time.Second)}
}

func newClient(baseURL string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetHeader("Accept", "application/json")
}

func (a *API) Rooms(ctx context.Context) ([]models.Room, error) {
	return getList[models.Room](ctx, a.http, "/rooms", nil)
}

func (a *API) RoomByID(ctx context.Context, id string) (models.Room, error) {
	return getItem[models.Room](ctx, a.http, "/rooms/{id}", map[string]string{"id": id})
}

func (a *API) Exhibits(ctx context.Context) ([]models.Exhibit, error) {
	return getList[models.Exhibit](ctx, a.http, "/exhibits", nil)
}

func (a *API) ExhibitsByRoom(ctx context.Context, roomID string) ([]models.Exhibit, error) {
	return getList[models.Exhibit](ctx, a.http, "/exhibits/room/{roomId}", map[string]string{"roomId": roomID})
}

func (a *API) Content(ctx context.Context) ([]models.ContentItem, error) {
	return getList[models.ContentItem](ctx, a.http, "/content", nil)
}

func (a *API) ContentByType(ctx context.Context, contentType string) ([]models.ContentItem, error) {
	return getList[models.ContentItem](ctx, a.http, "/content/type/{type}", map[string]string{"type": contentType})
}

func getList[T any](ctx context.Context, c *resty.Client, path string, params map[string]string) ([]T, error) {
	var out listEnvelope[T]
	if err := get(ctx, c, path, params, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		out.Data = []T{}
	}
	return out.Data, nil
}

func getItem[T any](ctx context.Context, c *resty.Client, path string, params map[string]string) (T, error) {
	var out itemEnvelope[T]
	if err := get(ctx, c, path, params, &out); err != nil {
		var zero T
		return zero, err
	}
	return out.Data, nil
}

func get(ctx context.Context, c *resty.Client, path string, params map[string]string, result any) error {
	var failure errorEnvelope
	resp, err := c.R().
		SetContext(ctx).
		SetPathParams(params).
		SetResult(result).
		SetError(&failure).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.IsError() {
		msg := failure.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return &APIError{Status: resp.StatusCode(), Message: msg}
	}
	return nil
}
