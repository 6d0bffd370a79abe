package infra

import (
	"context"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/museo/internal/metrics"
	"github.com/Vovarama1992/museo/internal/models"
	"github.com/go-resty/resty/v2"
)

const DefaultAnimalsURL = "https://api.api-ninjas.com"

// AnimalsGateway proxies the api-ninjas animals endpoint. The key is sent as
// X-Api-Key and never reaches the browser.
type AnimalsGateway struct {
	http   *resty.Client
	apiKey string
	log    *logger.ZapLogger
}

func NewAnimalsGateway(baseURL, apiKey string, log *logger.ZapLogger) *AnimalsGateway {
	if baseURL == "" {
		baseURL = DefaultAnimalsURL
	}
	return &AnimalsGateway{
		http:   newUpstreamClient(baseURL, animalsTimeout),
		apiKey: apiKey,
		log:    log,
	}
}

func (g *AnimalsGateway) LookupAnimal(ctx context.Context, name string) models.LookupResult {
	res := g.lookup(ctx, name)
	metrics.RecordGateway("animals", "lookup", res.Outcome())
	return res
}

func (g *AnimalsGateway) lookup(ctx context.Context, name string) models.LookupResult {
	if g.apiKey == "" {
		return models.Unavailable("Animals API key not configured", true)
	}

	g.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "fetching animal data",
		Fields:  map[string]any{"name": name},
	})

	start := time.Now()
	resp, err := g.http.R().
		SetContext(ctx).
		SetQueryParam("name", name).
		SetHeader("X-Api-Key", g.apiKey).
		Get("/v1/animals")
	metrics.UpstreamDuration.WithLabelValues("animals", "lookup").Observe(time.Since(start).Seconds())

	if err != nil {
		g.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "animal lookup failed",
			Error:   err,
			Fields:  map[string]any{"name": name},
		})
		return models.TransportFailure(500, "Failed to fetch animal data", true)
	}

	if !resp.IsSuccess() {
		g.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "animals api returned error",
			Fields:  map[string]any{"name": name, "status": resp.StatusCode()},
		})
		return models.UpstreamError(resp.StatusCode(), "Error from Animals API", resp.Body(), true)
	}

	g.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "animal data received",
		Fields:  map[string]any{"name": name, "bytes": len(resp.Body())},
	})
	return models.Success(resp.Body())
}
