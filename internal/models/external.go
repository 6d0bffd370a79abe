package models

import "github.com/goccy/go-json"

type LookupKind int

const (
	LookupSuccess LookupKind = iota
	LookupUnavailable
	LookupUpstreamError
)

func (k LookupKind) String() string {
	switch k {
	case LookupSuccess:
		return "success"
	case LookupUnavailable:
		return "unavailable"
	case LookupUpstreamError:
		return "upstream_error"
	}
	return "unknown"
}

// LookupResult is the outcome of one gateway call. It lives for a single
// request.
type LookupResult struct {
	Kind LookupKind

	// Success
	Payload []byte

	// Unavailable / UpstreamError
	Reason          string
	StatusCode      int
	Body            []byte
	SuggestFallback bool

	// Transport is set when no upstream response was received at all.
	Transport bool
}

// Outcome names the result for logs and metrics.
func (r LookupResult) Outcome() string {
	if r.Transport {
		return "transport_failure"
	}
	return r.Kind.String()
}

func Success(payload []byte) LookupResult {
	return LookupResult{Kind: LookupSuccess, Payload: payload, StatusCode: 200}
}

func Unavailable(reason string, suggestFallback bool) LookupResult {
	return LookupResult{
		Kind:            LookupUnavailable,
		Reason:          reason,
		StatusCode:      503,
		SuggestFallback: suggestFallback,
	}
}

func UpstreamError(status int, reason string, body []byte, suggestFallback bool) LookupResult {
	return LookupResult{
		Kind:            LookupUpstreamError,
		Reason:          reason,
		StatusCode:      status,
		Body:            body,
		SuggestFallback: suggestFallback,
	}
}

// TransportFailure reports a call that got no response (timeout, DNS,
// refused connection) as an upstream error with a synthetic status.
func TransportFailure(status int, reason string, suggestFallback bool) LookupResult {
	return LookupResult{
		Kind:            LookupUpstreamError,
		Reason:          reason,
		StatusCode:      status,
		SuggestFallback: suggestFallback,
		Transport:       true,
	}
}

type AnimalTaxonomy struct {
	Kingdom        string `json:"kingdom,omitempty"`
	Phylum         string `json:"phylum,omitempty"`
	Class          string `json:"class,omitempty"`
	Order          string `json:"order,omitempty"`
	Family         string `json:"family,omitempty"`
	Genus          string `json:"genus,omitempty"`
	ScientificName string `json:"scientific_name,omitempty"`
}

// AnimalRecord mirrors one element of the animals API response.
type AnimalRecord struct {
	Name            string            `json:"name"`
	Taxonomy        AnimalTaxonomy    `json:"taxonomy"`
	Locations       []string          `json:"locations"`
	Characteristics map[string]string `json:"characteristics"`
}

type PlantLinks struct {
	Self string `json:"self"`
}

// PlantRecord mirrors one element of the plants search response.
type PlantRecord struct {
	ID               int        `json:"id"`
	CommonName       string     `json:"common_name"`
	ScientificName   string     `json:"scientific_name"`
	FamilyCommonName string     `json:"family_common_name"`
	Year             int        `json:"year"`
	Bibliography     string     `json:"bibliography"`
	ImageURL         string     `json:"image_url"`
	Observations     string     `json:"observations"`
	Family           string     `json:"family"`
	Links            PlantLinks `json:"links"`
}

type PlantSearchResult struct {
	Data  []PlantRecord   `json:"data"`
	Links json.RawMessage `json:"links,omitempty"`
	Meta  json.RawMessage `json:"meta,omitempty"`
}
