package entity

type PageNode struct {
	ID          string       `json:"id"`
	URL         string       `json:"url"`
	URLPattern  string       `json:"urlPattern"`
	PageType    string       `json:"pageType"`
	Title       string       `json:"title"`
	Screenshots []VisitEvent `json:"screenshots"`
	Sessions    int          `json:"sessions"`
	UniqueUsers int          `json:"uniqueUsers"`
}
