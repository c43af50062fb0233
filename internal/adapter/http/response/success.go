package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// ChatEffects writes a 200 OK response with the turn's effects.
func ChatEffects(c echo.Context, payload interface{}) error {
	return c.JSON(http.StatusOK, payload)
}

// OffersResults writes a 200 OK response with offers search results.
func OffersResults(c echo.Context, results interface{}) error {
	return c.JSON(http.StatusOK, results)
}
