package product_map

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dinerozz/product-map-backend/internal/entity"
	"github.com/dinerozz/product-map-backend/internal/model/request"
	"github.com/dinerozz/product-map-backend/internal/model/response"
	"github.com/dinerozz/product-map-backend/internal/model/response/wrapper"
	service "github.com/dinerozz/product-map-backend/internal/service/product_map"
)

type ProductMapHandler struct {
	service service.ProductMapService
}

func NewProductMapHandler(service service.ProductMapService) *ProductMapHandler {
	return &ProductMapHandler{
		service: service,
	}
}

// GetProductMap godoc
// @Summary      Get product map
// @Description  Pages, navigation edges and journeys built from the screenshot metadata log
// @Tags         /api/v1/product-map
// @Produce      json
// @Success      200  {object}  entity.ProductMapResponse
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /product-map [get]
func (h *ProductMapHandler) GetProductMap(c *gin.Context) {
	productMap, meta, err := h.service.Build(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, entity.ProductMapResponse{
		Data:    productMap,
		Success: true,
		Meta:    meta,
	})
}

// RefreshProductMap godoc
// @Summary      Rebuild product map
// @Description  Drop cached product maps and rebuild from the current log
// @Tags         /api/v1/product-map
// @Produce      json
// @Success      200  {object}  entity.ProductMapResponse
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /product-map/refresh [post]
func (h *ProductMapHandler) RefreshProductMap(c *gin.Context) {
	productMap, meta, err := h.service.Refresh(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, entity.ProductMapResponse{
		Data:    productMap,
		Success: true,
		Meta:    meta,
	})
}

// GetPages godoc
// @Summary      Get pages
// @Description  Aggregated pages ordered by sessions, most visited first
// @Tags         /api/v1/product-map
// @Produce      json
// @Param        limit  query     int  false  "Max pages to return"
// @Success      200    {object}  wrapper.ListResponseWrapper{data=[]entity.PageNode}
// @Failure      400    {object}  wrapper.ErrorWrapper
// @Failure      500    {object}  wrapper.ErrorWrapper
// @Router       /product-map/pages [get]
func (h *ProductMapHandler) GetPages(c *gin.Context) {
	limit, ok := intQuery(c, "limit")
	if !ok {
		return
	}

	all, err := h.service.GetPages(c.Request.Context(), 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
			Message: err.Error(),
		})
		return
	}

	pages := all
	if limit > 0 && limit < len(all) {
		pages = all[:limit]
	}

	c.JSON(http.StatusOK, wrapper.ListResponseWrapper{
		Data:    pages,
		Meta:    response.ListMeta{Total: len(all), Returned: len(pages)},
		Success: true,
	})
}

// GetPage godoc
// @Summary      Get page by id
// @Description  Page ids are URL patterns, so the id is passed as a query parameter
// @Tags         /api/v1/product-map
// @Produce      json
// @Param        id   query     string  true  "Page id (URL pattern)"
// @Success      200  {object}  wrapper.ResponseWrapper{data=entity.PageNode}
// @Failure      400  {object}  wrapper.ErrorWrapper
// @Failure      404  {object}  wrapper.ErrorWrapper
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /product-map/pages/lookup [get]
func (h *ProductMapHandler) GetPage(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: "id query parameter is required",
		})
		return
	}

	page, err := h.service.GetPage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{
				Message: "Page not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{
		Data:    page,
		Success: true,
	})
}

// GetEdges godoc
// @Summary      Get navigation edges
// @Description  Directed page transitions weighted by distinct sessions
// @Tags         /api/v1/product-map
// @Produce      json
// @Param        min_sessions  query     int  false  "Only edges with at least this many sessions"
// @Success      200           {object}  wrapper.ListResponseWrapper{data=[]entity.Edge}
// @Failure      400           {object}  wrapper.ErrorWrapper
// @Failure      500           {object}  wrapper.ErrorWrapper
// @Router       /product-map/edges [get]
func (h *ProductMapHandler) GetEdges(c *gin.Context) {
	minSessions, ok := intQuery(c, "min_sessions")
	if !ok {
		return
	}

	edges, err := h.service.GetEdges(c.Request.Context(), minSessions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, wrapper.ListResponseWrapper{
		Data:    edges,
		Meta:    response.ListMeta{Total: len(edges), Returned: len(edges)},
		Success: true,
	})
}

// GetJourneys godoc
// @Summary      Get journeys
// @Description  Funnel definitions mapped onto pages
// @Tags         /api/v1/product-map
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=[]entity.Journey}
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /product-map/journeys [get]
func (h *ProductMapHandler) GetJourneys(c *gin.Context) {
	journeys, err := h.service.GetJourneys(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{
		Data:    journeys,
		Success: true,
	})
}

// Analyze godoc
// @Summary      Analyze a metadata log
// @Description  Build a product map from a log and funnels supplied in the request body
// @Tags         /api/v1/product-map
// @Accept       json
// @Produce      json
// @Param        body  body      request.AnalyzeProductMap  true  "Metadata log and funnels"
// @Success      200   {object}  wrapper.ResponseWrapper{data=entity.ProductMap}
// @Failure      400   {object}  wrapper.ErrorWrapper
// @Router       /product-map/analyze [post]
func (h *ProductMapHandler) Analyze(c *gin.Context) {
	var req request.AnalyzeProductMap
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	productMap, err := h.service.Analyze(c.Request.Context(), req.Metadata, req.Funnels)
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{
		Data:    productMap,
		Success: true,
	})
}

func intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: "Invalid " + name + " value, must be non-negative integer",
		})
		return 0, false
	}

	return value, true
}
