package request

import "github.com/dinerozz/product-map-backend/internal/service/journey"

// AnalyzeProductMap сырой лог и воронки для разового расчёта карты
type AnalyzeProductMap struct {
	Metadata string              `json:"metadata" binding:"required"`
	Funnels  []journey.FunnelDef `json:"funnels"`
}
