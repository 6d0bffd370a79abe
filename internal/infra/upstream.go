package infra

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const (
	animalsTimeout = 10 * time.Second
	plantsTimeout  = 15 * time.Second
)

// newUpstreamClient builds a single-shot client: no retries, one timeout
// bounding the whole call.
func newUpstreamClient(baseURL string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetHeader("Accept", "application/json")
}
