package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrkit/vacation-api/internal/api/dispatch"
	"github.com/hrkit/vacation-api/internal/api/metrics"
	"github.com/hrkit/vacation-api/internal/core/domain"
	"github.com/hrkit/vacation-api/internal/core/ports"
)

// UserHandler is the controller for the /users resource.
type UserHandler struct {
	service  ports.UserService
	validate *requestValidator
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service, validate: newRequestValidator()}
}

// Table registers every user action. Built once at startup.
func (h *UserHandler) Table() *dispatch.Table {
	t := dispatch.NewTable()
	t.Register("index", h.Index)
	t.Register("show", h.Show)
	t.Register("store", h.Store)
	t.Register("update", h.Update)
	t.Register("destroy", h.Destroy)
	t.Register("authenticate", h.Authenticate)
	t.Register("profile", h.Profile)
	t.Register("validate", h.Validate)
	t.Register("admin", h.Admin)
	return t
}

type createUserRequest struct {
	Name       string `json:"name"        validate:"required"`
	Email      string `json:"email"       validate:"required,email"`
	Username   string `json:"username"    validate:"required"`
	EmployCode string `json:"employ_code"`
	RolesID    int    `json:"roles_id"`
	Password   string `json:"password"    validate:"required"`
}

type updateUserRequest struct {
	Name       string `json:"name"        validate:"required"`
	Email      string `json:"email"       validate:"required,email"`
	Username   string `json:"username"    validate:"required"`
	EmployCode string `json:"employ_code"`
	RolesID    int    `json:"roles_id"`
}

type authenticateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Index handles GET /users (admin only).
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) Index(c echo.Context, _ dispatch.Resolution) error {
	if _, err := requireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Show handles GET /users/{id}. Callers may read their own record; any
// other record requires the admin role.
func (h *UserHandler) Show(c echo.Context, res dispatch.Resolution) error {
	claims, err := requireAuth(c)
	if err != nil {
		return err
	}

	if claims.UserID != res.ID {
		if _, err := requireRole(c, domain.RoleAdmin); err != nil {
			return err
		}
	}

	user, err := h.service.Get(c.Request().Context(), res.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Store handles POST /users (admin only).
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  map[string]any
// @Failure      422   {object}  map[string][]string
// @Router       /users [post]
func (h *UserHandler) Store(c echo.Context, _ dispatch.Resolution) error {
	if _, err := requireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if errs := h.validate.collect(req); errs != nil {
		return errs
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Username:   req.Username,
		EmployCode: req.EmployCode,
		RoleID:     domain.Role(req.RolesID),
		Password:   req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "User created",
		"id":      id,
	})
}

// Update handles PUT/PATCH /users/{id}.
//
// The reference behavior carries no role or ownership gate here, unlike
// store and destroy. Preserved as-is; see DESIGN.md.
func (h *UserHandler) Update(c echo.Context, res dispatch.Resolution) error {
	if _, err := h.service.Get(c.Request().Context(), res.ID); err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if errs := h.validate.collect(req); errs != nil {
		return errs
	}

	err := h.service.Update(c.Request().Context(), res.ID, ports.UpdateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Username:   req.Username,
		EmployCode: req.EmployCode,
		RoleID:     domain.Role(req.RolesID),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "User updated",
		"id":      res.ID,
	})
}

// Destroy handles DELETE /users/{id} (admin only).
func (h *UserHandler) Destroy(c echo.Context, res dispatch.Resolution) error {
	if _, err := requireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), res.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted"})
}

// Authenticate handles POST /users/authenticate (public).
//
// @Summary      Authenticate and obtain a bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      authenticateRequest  true  "Credentials"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /users/authenticate [post]
func (h *UserHandler) Authenticate(c echo.Context, _ dispatch.Resolution) error {
	var req authenticateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if req.Username == "" || req.Password == "" {
		return domain.ErrMissingCredentials
	}

	token, user, err := h.service.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Authentication successful",
		"token":   token,
		"user":    user,
	})
}

// Profile handles GET /users/profile: the caller's own record, resolved
// from the token's user id.
func (h *UserHandler) Profile(c echo.Context, _ dispatch.Resolution) error {
	claims, err := requireAuth(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"user": user})
}

// Validate handles POST /users/validate: echoes the decoded claims.
func (h *UserHandler) Validate(c echo.Context, _ dispatch.Resolution) error {
	claims, err := requireAuth(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"valid":    true,
		"user_id":  claims.UserID,
		"username": claims.Username,
		"role_id":  int(claims.RoleID),
	})
}

// Admin handles GET /users/admin (admin only).
func (h *UserHandler) Admin(c echo.Context, _ dispatch.Resolution) error {
	if _, err := requireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Welcome admin!",
		"users":   users,
	})
}
