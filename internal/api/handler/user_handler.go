package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/casetrack/case-management/internal/core/domain"
	"github.com/casetrack/case-management/internal/core/ports"
)

// UserHandler handles the admin-only user administration endpoints. All of
// its routes sit behind Auth + RBAC(admin).
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

// userDetailResponse is the public admin view of an account.
type userDetailResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// List handles GET /api/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userDetailResponse
// @Failure      403  {object}  map[string]string
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]userDetailResponse, len(users))
	for i, u := range users {
		out[i] = toUserDetail(u)
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userDetailResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserDetail(user))
}

// SetRole handles PUT /api/users/:id/role.
//
// @Summary      Change a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "User id"
// @Param        body  body      setRoleRequest  true  "New role"
// @Success      200   {object}  userDetailResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/users/{id}/role [put]
func (h *UserHandler) SetRole(c echo.Context) error {
	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.service.SetRole(c.Request().Context(), actorID, c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserDetail(user))
}

func toUserDetail(u *domain.User) userDetailResponse {
	return userDetailResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
