package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casetrack/case-management/internal/api/metrics"
	"github.com/casetrack/case-management/internal/core/ports"
)

// StatusHandler handles the admin-only status transition endpoint.
type StatusHandler struct {
	service ports.StatusService
}

func NewStatusHandler(service ports.StatusService) *StatusHandler {
	return &StatusHandler{service: service}
}

// Set handles PUT /api/status/:personId.
//
// @Summary      Change a person's workflow status
// @Tags         status
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        personId  path      string            true  "Person id"
// @Param        body      body      setStatusRequest  true  "New status"
// @Success      200       {object}  domain.Person
// @Failure      400       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /api/status/{personId} [put]
func (h *StatusHandler) Set(c echo.Context) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	_, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	person, err := h.service.SetStatus(c.Request().Context(), c.Param("personId"), req.Status, role)
	if err != nil {
		return err
	}

	metrics.StatusChangesTotal.WithLabelValues(person.Status).Inc()
	return c.JSON(http.StatusOK, person)
}
