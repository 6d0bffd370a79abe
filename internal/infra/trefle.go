package infra

import (
	"context"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/museo/internal/metrics"
	"github.com/Vovarama1992/museo/internal/models"
	"github.com/go-resty/resty/v2"
)

const DefaultTrefleURL = "https://trefle.io"

// TrefleGateway proxies plant search and plant detail. The token travels as
// a query parameter, as Trefle requires.
type TrefleGateway struct {
	http  *resty.Client
	token string
	log   *logger.ZapLogger
}

func NewTrefleGateway(baseURL, token string, log *logger.ZapLogger) *TrefleGateway {
	if baseURL == "" {
		baseURL = DefaultTrefleURL
	}
	return &TrefleGateway{
		http:  newUpstreamClient(baseURL, plantsTimeout),
		token: token,
		log:   log,
	}
}

func (g *TrefleGateway) SearchPlants(ctx context.Context, query string) models.LookupResult {
	res := g.search(ctx, query)
	metrics.RecordGateway("trefle", "search", res.Outcome())
	return res
}

func (g *TrefleGateway) search(ctx context.Context, query string) models.LookupResult {
	if g.token == "" {
		return models.Unavailable("Trefle API key not configured", true)
	}

	g.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "fetching plant data",
		Fields:  map[string]any{"q": query},
	})

	start := time.Now()
	resp, err := g.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"token": g.token,
			"q":     query,
		}).
		Get("/api/v1/plants/search")
	metrics.UpstreamDuration.WithLabelValues("trefle", "search").Observe(time.Since(start).Seconds())

	if err != nil {
		g.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "plant search failed",
			Error:   err,
			Fields:  map[string]any{"q": query},
		})
		return models.TransportFailure(500, "Failed to fetch plant data", true)
	}

	if !resp.IsSuccess() {
		g.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "trefle api returned error",
			Fields:  map[string]any{"q": query, "status": resp.StatusCode()},
		})
		return models.UpstreamError(resp.StatusCode(), "Error from Trefle API", resp.Body(), true)
	}

	return models.Success(resp.Body())
}

// GetPlantByID never suggests a fallback: plant detail has no mock data, and
// a transport failure is reported as not found.
func (g *TrefleGateway) GetPlantByID(ctx context.Context, id string) models.LookupResult {
	res := g.byID(ctx, id)
	metrics.RecordGateway("trefle", "detail", res.Outcome())
	return res
}

func (g *TrefleGateway) byID(ctx context.Context, id string) models.LookupResult {
	if g.token == "" {
		return models.Unavailable("Trefle API key not configured", false)
	}

	g.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "fetching plant details",
		Fields:  map[string]any{"id": id},
	})

	start := time.Now()
	resp, err := g.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetQueryParam("token", g.token).
		Get("/api/v1/plants/{id}")
	metrics.UpstreamDuration.WithLabelValues("trefle", "detail").Observe(time.Since(start).Seconds())

	if err != nil {
		g.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "plant detail failed",
			Error:   err,
			Fields:  map[string]any{"id": id},
		})
		return models.TransportFailure(404, "Plant not found", false)
	}

	if !resp.IsSuccess() {
		g.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "trefle api returned error",
			Fields:  map[string]any{"id": id, "status": resp.StatusCode()},
		})
		return models.UpstreamError(resp.StatusCode(), "Error from Trefle API", resp.Body(), false)
	}

	return models.Success(resp.Body())
}
