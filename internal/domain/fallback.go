package domain

import (
	"maps"
	"slices"
	"strings"

	"github.com/Vovarama1992/museo/internal/models"
	"github.com/Vovarama1992/museo/internal/ports"
)

// plantMockMatch is the substring (case-insensitive) that selects the
// mangrove mock set.
const plantMockMatch = "mang"

type animalFallback struct {
	table map[string][]models.AnimalRecord
}

func NewAnimalFallback() ports.AnimalFallback {
	return &animalFallback{table: mockAnimals}
}

// Mock looks the name up by exact key. Unknown names give an empty slice.
func (f *animalFallback) Mock(name string) []models.AnimalRecord {
	recs, ok := f.table[name]
	if !ok {
		return []models.AnimalRecord{}
	}
	out := make([]models.AnimalRecord, len(recs))
	for i, r := range recs {
		r.Locations = slices.Clone(r.Locations)
		r.Characteristics = maps.Clone(r.Characteristics)
		out[i] = r
	}
	return out
}

type plantFallback struct {
	records []models.PlantRecord
}

func NewPlantFallback() ports.PlantFallback {
	return &plantFallback{records: mockMangroves}
}

func (f *plantFallback) Mock(query string) models.PlantSearchResult {
	if !strings.Contains(strings.ToLower(query), plantMockMatch) {
		return models.PlantSearchResult{Data: []models.PlantRecord{}}
	}
	out := make([]models.PlantRecord, len(f.records))
	copy(out, f.records)
	return models.PlantSearchResult{Data: out}
}

var mockAnimals = map[string][]models.AnimalRecord{
	"axolotl": {
		{
			Name: "Axolotl",
			Taxonomy: models.AnimalTaxonomy{
				Kingdom:        "Animalia",
				Phylum:         "Chordata",
				Class:          "Amphibia",
				Order:          "Urodela",
				Family:         "Ambystomatidae",
				Genus:          "Ambystoma",
				ScientificName: "Ambystoma mexicanum",
			},
			Locations: []string{"Mexico"},
			Characteristics: map[string]string{
				"prey":                      "Gusanos, insectos, peces pequeños",
				"name_of_young":             "Larva",
				"group_behavior":            "Solitario",
				"estimated_population_size": "Menos de 1,000 en estado salvaje",
				"biggest_threat":            "Contaminación del agua y urbanización",
				"most_distinctive_feature":  "Branquias externas y capacidad de regeneración",
				"other_name":                "Pez Caminante Mexicano",
				"gestation_period":          "14 días",
				"habitat":                   "Lagos y canales de agua dulce",
				"diet":                      "Carnívoro",
				"type":                      "Anfibio",
				"common_name":               "Axolotl",
				"number_of_species":         "1",
				"location":                  "Lago Xochimilco, Ciudad de México",
				"color":                     "Rosa, Café, Blanco, Negro, Dorado",
				"skin_type":                 "Permeable",
				"lifespan":                  "10-15 años",
				"weight":                    "60-200g",
				"length":                    "15-45cm",
				"age_of_sexual_maturity":    "12-18 meses",
				"venomous":                  "No",
			},
		},
	},
}

var mockMangroves = []models.PlantRecord{
	{
		ID:               1,
		CommonName:       "Red Mangrove",
		ScientificName:   "Rhizophora mangle",
		FamilyCommonName: "Mangrove Family",
		Year:             1753,
		Bibliography:     "Sp. Pl. 1: 443",
		ImageURL:         "https://images.unsplash.com/photo-1590227986583-2f634e98855e?w=400",
		Observations:     "Most common mangrove species. Can tolerate high salinity.",
		Family:           "Rhizophoraceae",
		Links:            models.PlantLinks{Self: "/api/v1/plants/1"},
	},
	{
		ID:               2,
		CommonName:       "Black Mangrove",
		ScientificName:   "Avicennia germinans",
		FamilyCommonName: "Verbena Family",
		Year:             1753,
		Bibliography:     "Sp. Pl. 1: 110",
		ImageURL:         "https://images.unsplash.com/photo-1565008576549-57569a49371d?w=400",
		Observations:     "Identified by pneumatophores (breathing roots) that grow vertically.",
		Family:           "Acanthaceae",
		Links:            models.PlantLinks{Self: "/api/v1/plants/2"},
	},
	{
		ID:               3,
		CommonName:       "White Mangrove",
		ScientificName:   "Laguncularia racemosa",
		FamilyCommonName: "Leadwood Tree Family",
		Year:             1753,
		Bibliography:     "Sp. Pl. 1: 177",
		ImageURL:         "https://images.unsplash.com/photo-1542273917363-3b1817f69a2d?w=400",
		Observations:     "Found in higher elevations of mangrove forests. Salt-excreting glands on leaves.",
		Family:           "Combretaceae",
		Links:            models.PlantLinks{Self: "/api/v1/plants/3"},
	},
	{
		ID:               4,
		CommonName:       "Buttonwood",
		ScientificName:   "Conocarpus erectus",
		FamilyCommonName: "Combretum Family",
		Year:             1753,
		Bibliography:     "Sp. Pl. 1: 176",
		ImageURL:         "https://images.unsplash.com/photo-1518531933037-91b2f5f229cc?w=400",
		Observations:     "Often considered a mangrove associate. Grows at forest edges.",
		Family:           "Combretaceae",
		Links:            models.PlantLinks{Self: "/api/v1/plants/4"},
	},
}
