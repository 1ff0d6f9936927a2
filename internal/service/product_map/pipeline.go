package product_map

import (
	"github.com/dinerozz/product-map-backend/internal/entity"
	"github.com/dinerozz/product-map-backend/internal/service/journey"
	"github.com/dinerozz/product-map-backend/internal/service/metadata"
	"github.com/dinerozz/product-map-backend/internal/service/navigation"
	"github.com/dinerozz/product-map-backend/internal/service/page"
)

// Compute прогоняет конвейер parse -> aggregate -> edges -> journeys.
// Чистая функция: одинаковый вход всегда даёт одинаковый результат.
func Compute(raw string, funnels []journey.FunnelDef) *entity.ProductMap {
	events, stats := metadata.ParseWithReport(raw)

	pages := page.Aggregate(events)
	edges := navigation.BuildEdges(events)
	journeys := journey.MapFunnelsToJourneys(funnels, pages)

	return &entity.ProductMap{
		Pages:    pages,
		Edges:    navigation.AttachJourneys(edges, journeys),
		Journeys: journeys,
		Stats:    stats,
	}
}
