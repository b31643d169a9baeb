package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"FashionStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type updateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type profileResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func parseUserID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func getUserHandler(userSvc *services.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseUserID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		user, err := userSvc.GetByID(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
			}
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
		}
		return c.JSON(http.StatusOK, profileResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		})
	}
}

func updateUserHandler(userSvc *services.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseUserID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		req := new(updateUserRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if req.Name == "" || req.Email == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and email are required"})
		}

		if err := userSvc.UpdateProfile(c.Request().Context(), id, req.Name, req.Email); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
			case errors.Is(err, services.ErrEmailExists):
				return c.JSON(http.StatusConflict, echo.Map{"error": "email already in use"})
			default:
				c.Logger().Error(err)
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
			}
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "user updated successfully"})
	}
}

func registerUserRoutes(e *echo.Echo, userSvc *services.UserService) {
	api := e.Group("/api")
	api.GET("/user/:id", getUserHandler(userSvc))
	api.PUT("/user/:id", updateUserHandler(userSvc))
}
