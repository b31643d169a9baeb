package main

import (
	"net/http"
	"strconv"

	"FashionStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultItemsPerPage = 30
	maxItemsPerPage     = 100
)

type findSimilarRequest struct {
	QueryID string `json:"query_id"`
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 1 {
		return fallback
	}
	return val
}

func allItemsHandler(catalogSvc *services.CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		page := queryInt(c, "page", 1)
		perPage := queryInt(c, "items_per_page", defaultItemsPerPage)
		if perPage > maxItemsPerPage {
			perPage = maxItemsPerPage
		}

		result, err := catalogSvc.AllItems(c.Request().Context(), page, perPage)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "catalog service unavailable"})
		}
		return c.JSON(http.StatusOK, result)
	}
}

func findSimilarHandler(catalogSvc *services.CatalogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(findSimilarRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if req.QueryID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "query_id is required"})
		}

		items, err := catalogSvc.FindSimilar(c.Request().Context(), req.QueryID)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "catalog service unavailable"})
		}
		return c.JSON(http.StatusOK, echo.Map{"similar_items": items})
	}
}

func registerCatalogRoutes(e *echo.Echo, catalogSvc *services.CatalogService) {
	catalog := e.Group("/catalog")
	catalog.GET("/all-items", allItemsHandler(catalogSvc))
	catalog.POST("/find-similar", findSimilarHandler(catalogSvc))
}
