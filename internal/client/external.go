package client

import (
	"context"
	"fmt"
	"time"

	"github.com/Vovarama1992/museo/internal/models"
	"github.com/Vovarama1992/museo/internal/ports"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

type Source int

const (
	SourceLive Source = iota
	SourceFallback
)

func (s Source) String() string {
	if s == SourceFallback {
		return "fallback"
	}
	return "live"
}

// proxyFailure is the normalized failure body of the /api/external routes.
type proxyFailure struct {
	Error   string `json:"error"`
	UseMock bool   `json:"useMock"`
}

// External calls the server's proxy routes and substitutes fallback data
// when the proxy allows it or when no normalized answer came back at all.
type External struct {
	http    *resty.Client
	animals ports.AnimalFallback
	plants  ports.PlantFallback
}

func NewExternal(baseURL string, animals ports.AnimalFallback, plants ports.PlantFallback) *External {
	return &External{
		http:    newClient(baseURL+"/api/external", 15*time.Second),
		animals: animals,
		plants:  plants,
	}
}

func (e *External) AnimalByName(ctx context.Context, name string) ([]models.AnimalRecord, Source, error) {
	resp, err := e.http.R().
		SetContext(ctx).
		SetPathParam("name", name).
		Get("/animals/{name}")

	var recs []models.AnimalRecord
	if useFallback(resp, err, &recs) {
		return e.animals.Mock(name), SourceFallback, nil
	}
	if !resp.IsSuccess() {
		return nil, SourceLive, failureError(resp)
	}
	if recs == nil {
		recs = []models.AnimalRecord{}
	}
	return recs, SourceLive, nil
}

func (e *External) SearchPlants(ctx context.Context, query string) (models.PlantSearchResult, Source, error) {
	resp, err := e.http.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		Get("/plants/search")

	var out models.PlantSearchResult
	if useFallback(resp, err, &out) {
		return e.plants.Mock(query), SourceFallback, nil
	}
	if !resp.IsSuccess() {
		return models.PlantSearchResult{}, SourceLive, failureError(resp)
	}
	if out.Data == nil {
		out.Data = []models.PlantRecord{}
	}
	return out, SourceLive, nil
}

// PlantByID has no fallback: any failure is reported as ErrNotFound.
func (e *External) PlantByID(ctx context.Context, id string) (json.RawMessage, error) {
	resp, err := e.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get("/plants/{id}")
	if err != nil {
		return nil, fmt.Errorf("plant %s: %w: %w", id, ErrNotFound, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("plant %s: %w: %w", id, ErrNotFound, failureError(resp))
	}
	if !json.Valid(resp.Body()) {
		return nil, fmt.Errorf("plant %s: %w: invalid json", id, ErrNotFound)
	}
	return json.RawMessage(resp.Body()), nil
}

// useFallback decides whether the caller should substitute mock data. On a
// 2xx it also decodes the body into live; a body that does not decode counts
// as a call that could not complete.
func useFallback(resp *resty.Response, err error, live any) bool {
	if err != nil || resp == nil {
		return true
	}
	if resp.IsSuccess() {
		return json.Unmarshal(resp.Body(), live) != nil
	}

	var f proxyFailure
	if json.Unmarshal(resp.Body(), &f) != nil || f.Error == "" {
		// not one of our envelopes
		return true
	}
	return f.UseMock
}

func failureError(resp *resty.Response) error {
	var f proxyFailure
	_ = json.Unmarshal(resp.Body(), &f)
	return &APIError{Status: resp.StatusCode(), Message: f.Error}
}
