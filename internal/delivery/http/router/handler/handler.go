// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// actorFrom extracts the authenticated user stored by the auth middleware.
func actorFrom(c echo.Context) (*entity.User, bool) {
	actor, ok := c.Get(middleware.ActorKey).(*entity.User)

	return actor, ok
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
