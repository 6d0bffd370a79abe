package ports

import "github.com/Vovarama1992/museo/internal/models"

// FallbackProvider returns a fixed substitute payload for a lookup term.
type FallbackProvider[T any] interface {
	Mock(term string) T
}

type AnimalFallback = FallbackProvider[[]models.AnimalRecord]

type PlantFallback = FallbackProvider[models.PlantSearchResult]
