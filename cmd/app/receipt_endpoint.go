package main

import (
	"net/http"
	"time"

	"FashionStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type createReceiptRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

func listReceiptsHandler(receiptSvc *services.ReceiptService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseUserID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		receipts, err := receiptSvc.ListForUser(c.Request().Context(), id)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
		}
		return c.JSON(http.StatusOK, receipts)
	}
}

func createReceiptHandler(receiptSvc *services.ReceiptService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseUserID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		req := new(createReceiptRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if req.Amount <= 0 || req.Description == "" || req.Date == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount, description and date are required"})
		}
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be formatted as YYYY-MM-DD"})
		}

		receipt, err := receiptSvc.Create(c.Request().Context(), id, req.Amount, req.Description, date)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
		}
		return c.JSON(http.StatusCreated, receipt)
	}
}

func registerReceiptRoutes(e *echo.Echo, receiptSvc *services.ReceiptService) {
	api := e.Group("/api")
	api.GET("/user/:id/receipts", listReceiptsHandler(receiptSvc))
	api.POST("/user/:id/receipts", createReceiptHandler(receiptSvc))
}
