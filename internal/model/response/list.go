package response

type ListMeta struct {
	Total    int `json:"total"`
	Returned int `json:"returned"`
}
