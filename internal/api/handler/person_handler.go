package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casetrack/case-management/internal/core/ports"
)

// PersonHandler handles HTTP requests for case records. Any authenticated
// user may perform all five CRUD operations; only the status endpoint is
// admin-gated, and that lives in StatusHandler.
type PersonHandler struct {
	service ports.PersonService
}

func NewPersonHandler(service ports.PersonService) *PersonHandler {
	return &PersonHandler{service: service}
}

// List handles GET /api/people.
//
// @Summary      List all people
// @Tags         people
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Person
// @Router       /api/people [get]
func (h *PersonHandler) List(c echo.Context) error {
	people, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, people)
}

// Get handles GET /api/people/:id.
//
// @Summary      Get a person by id
// @Tags         people
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Person id"
// @Success      200  {object}  domain.Person
// @Failure      404  {object}  map[string]string
// @Router       /api/people/{id} [get]
func (h *PersonHandler) Get(c echo.Context) error {
	person, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, person)
}

// Create handles POST /api/people.
//
// @Summary      Create a person
// @Tags         people
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPersonRequest  true  "Person details"
// @Success      201   {object}  domain.Person
// @Failure      400   {object}  map[string]string
// @Router       /api/people [post]
func (h *PersonHandler) Create(c echo.Context) error {
	var req createPersonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	person, err := h.service.Create(c.Request().Context(), toCreatePersonInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, person)
}

// Update handles PUT /api/people/:id with partial-update semantics.
//
// @Summary      Update a person (partial)
// @Tags         people
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Person id"
// @Param        body  body      updatePersonRequest  true  "Fields to change"
// @Success      200   {object}  domain.Person
// @Failure      404   {object}  map[string]string
// @Router       /api/people/{id} [put]
func (h *PersonHandler) Update(c echo.Context) error {
	var req updatePersonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	person, err := h.service.Update(c.Request().Context(), c.Param("id"), toPersonUpdate(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, person)
}

// Delete handles DELETE /api/people/:id. Attached documents cascade away
// with the person.
//
// @Summary      Delete a person
// @Tags         people
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Person id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/people/{id} [delete]
func (h *PersonHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "person deleted"})
}
