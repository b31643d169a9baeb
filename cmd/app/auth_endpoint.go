package main

import (
	"errors"
	"net/http"

	"FashionStoreAPI/internal/middleware"
	"FashionStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Name     string `json:"Name"`
	Email    string `json:"Email"`
	Password string `json:"Password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
	Role     string `json:"role"`
}

func registerHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
		}

		_, err := authSvc.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.Role)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailExists):
				return c.JSON(http.StatusConflict, echo.Map{"error": "user already exists"})
			case errors.Is(err, services.ErrInvalidRole):
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role"})
			default:
				c.Logger().Error(err)
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cannot register user"})
			}
		}

		return c.JSON(http.StatusCreated, echo.Map{"message": "user created successfully"})
	}
}

func loginHandler(authSvc *services.AuthService, jwtm *middleware.JWTManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if req.Email == "" || req.Password == "" || req.Role == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
		}

		user, err := authSvc.Login(c.Request().Context(), req.Email, req.Password, req.Role)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAccountNotFound):
				// unknown email and role mismatch are deliberately the same
				return c.JSON(http.StatusNotFound, echo.Map{"error": "user does not exist or role mismatch"})
			case errors.Is(err, services.ErrInvalidCredentials):
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "incorrect password"})
			default:
				c.Logger().Error(err)
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "an error occurred"})
			}
		}

		token, err := jwtm.GenerateToken(user.Email, user.Role)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create token"})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"token": token,
			"Email": user.Email,
			"role":  user.Role,
			"id":    user.ID,
		})
	}
}

// homeHandler returns the authenticated caller's account row
func homeHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}
		user, err := authSvc.GetAccount(c.Request().Context(), claims.Email)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "user does not exist"})
			}
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
		}
		return c.JSON(http.StatusOK, echo.Map{"user": user})
	}
}

func userDashboardHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "welcome to the user dashboard"})
	}
}

func registerAuthRoutes(e *echo.Echo, authSvc *services.AuthService, jwtm *middleware.JWTManager) {
	auth := e.Group("/auth")

	// public
	auth.POST("/register", registerHandler(authSvc))
	auth.POST("/login", loginHandler(authSvc, jwtm))

	// authenticated
	auth.GET("/home", homeHandler(authSvc), jwtm.Middleware())

	// role-gated: token check first, then the role gate
	auth.GET("/user-dashboard", userDashboardHandler(), jwtm.Middleware(), middleware.RequireRole("User"))
}
