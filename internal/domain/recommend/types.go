package recommend

import (
	"github.com/nadira/tripstylist/internal/domain/catalog"
	"github.com/nadira/tripstylist/internal/domain/climate"
)

// ScoredProduct is a catalog product annotated with its ranking score and a
// short line explaining why it suits the trip's season.
type ScoredProduct struct {
	Product           catalog.Product `json:"product"`
	CulturalScore     float64         `json:"culturalScore"`
	SeasonalRelevance string          `json:"seasonalRelevance,omitempty"`
}

// Result is the full pipeline output handed to the narrative layer.
type Result struct {
	Products      []ScoredProduct `json:"products"`
	Climate       *climate.Record `json:"climate,omitempty"`
	TaboosApplied []string        `json:"taboosApplied,omitempty"`
}
