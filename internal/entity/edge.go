package entity

// Edge переход между двумя страницами внутри хотя бы одной сессии.
// Sessions считает уникальные сессии, а не количество переходов.
type Edge struct {
	ID         string   `json:"id"`
	Source     string   `json:"source"`
	Target     string   `json:"target"`
	Sessions   int      `json:"sessions"`
	JourneyIDs []string `json:"journeyIds"`
}
