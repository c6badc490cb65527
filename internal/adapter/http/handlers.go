package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Info describes the API surface at the root URL.
func (h *Handler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Credit Approval API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"register":          "/register (POST) - Register a new customer",
			"check-eligibility": "/check-eligibility (POST) - Check loan eligibility",
			"create-loan":       "/create-loan (POST) - Process a new loan",
			"view-loan":         "/view-loan/{loan_id} (GET) - View loan details",
			"view-loans":        "/view-loans/{customer_id} (GET) - View a customer's loans",
		},
	})
}
