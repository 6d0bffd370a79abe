package ports

import (
	"context"

	"github.com/Vovarama1992/museo/internal/models"
)

type AnimalGateway interface {
	LookupAnimal(ctx context.Context, name string) models.LookupResult
}

type PlantGateway interface {
	SearchPlants(ctx context.Context, query string) models.LookupResult
	GetPlantByID(ctx context.Context, id string) models.LookupResult
}
