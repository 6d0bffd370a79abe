package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimalFallback(t *testing.T) {
	fb := NewAnimalFallback()

	recs := fb.Mock("axolotl")
	require.Len(t, recs, 1)
	assert.Equal(t, "Axolotl", recs[0].Name)
	assert.Equal(t, "Ambystoma mexicanum", recs[0].Taxonomy.ScientificName)
	assert.Equal(t, []string{"Mexico"}, recs[0].Locations)
	assert.Equal(t, "Lago Xochimilco, Ciudad de México", recs[0].Characteristics["location"])

	// exact key only
	assert.Empty(t, fb.Mock("Axolotl"))
	assert.NotNil(t, fb.Mock("shark"))
	assert.Empty(t, fb.Mock("shark"))
}

func TestPlantFallback(t *testing.T) {
	fb := NewPlantFallback()

	tests := []struct {
		query string
		want  int
	}{
		{"mangrove", 4},
		{"Red MANGROVE", 4},
		{"mang", 4},
		{"cactus", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			res := fb.Mock(tt.query)
			assert.NotNil(t, res.Data)
			assert.Len(t, res.Data, tt.want)
		})
	}

	res := fb.Mock("mangrove")
	assert.Equal(t, "Red Mangrove", res.Data[0].CommonName)
	assert.Equal(t, "Buttonwood", res.Data[3].CommonName)
	assert.Equal(t, "/api/v1/plants/4", res.Data[3].Links.Self)
}
