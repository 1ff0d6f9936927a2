package wrapper

import "github.com/dinerozz/product-map-backend/internal/model/response"

type ResponseWrapper struct {
	Data    interface{} `json:"data"`
	Success bool        `json:"success"`
}

type ListResponseWrapper struct {
	Data    interface{}       `json:"data"`
	Meta    response.ListMeta `json:"meta"`
	Success bool              `json:"success"`
}
