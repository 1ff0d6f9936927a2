package entity

import "time"

type ProductMap struct {
	Pages    []PageNode `json:"pages"`
	Edges    []Edge     `json:"edges"`
	Journeys []Journey  `json:"journeys"`
	Stats    ParseStats `json:"stats"`
}

// ParseStats итоги разбора лога
type ParseStats struct {
	TotalLines    int `json:"totalLines"`
	Events        int `json:"events"`
	Skipped       int `json:"skipped"`
	Malformed     int `json:"malformed"`
	NonImage      int `json:"nonImage"`
	BadTimestamps int `json:"badTimestamps"`
}

type ProductMapMeta struct {
	Source      string    `json:"source"`
	Cached      bool      `json:"cached"`
	GeneratedAt time.Time `json:"generatedAt"`
}

type ProductMapResponse struct {
	Data    *ProductMap     `json:"data"`
	Success bool            `json:"success"`
	Meta    *ProductMapMeta `json:"meta,omitempty"`
}
