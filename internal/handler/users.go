package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/railboard/railboard/internal/model"
	"github.com/railboard/railboard/internal/server"
	"github.com/railboard/railboard/internal/service"
	"github.com/railboard/railboard/internal/validation"
)

// UserHandler serves user administration endpoints.
type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// CreateUserRequest mirrors the registration payload but carries an
// explicit role, since it is an admin-only operation.
type CreateUserRequest struct {
	Username string     `json:"username" validate:"required,min=3,max=50"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=8,max=72"`
	Role     model.Role `json:"role" validate:"omitempty,oneof=user admin"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(r)
}

// UserIDRequest carries the user id path parameter.
type UserIDRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *UserIDRequest) Validate() error {
	return validation.Struct(r)
}

// ListUsersRequest has no inputs.
type ListUsersRequest struct{}

func (r *ListUsersRequest) Validate() error {
	return nil
}

// UpdateUserRequest is a partial update. Nil fields are left unchanged.
type UpdateUserRequest struct {
	ID       int64       `param:"id" validate:"required,gt=0"`
	Username *string     `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string     `json:"email" validate:"omitempty,email"`
	Password *string     `json:"password" validate:"omitempty,min=8,max=72"`
	Role     *model.Role `json:"role" validate:"omitempty,oneof=user admin"`
}

func (r *UpdateUserRequest) Validate() error {
	return validation.Struct(r)
}

// Create handles POST /api/users.
func (h *UserHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusCreated)
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, h.get, http.StatusOK)
}

// List handles GET /api/users.
func (h *UserHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, h.list, http.StatusOK)
}

// Update handles PUT /api/users/:id.
func (h *UserHandler) Update() echo.HandlerFunc {
	return Handle(h.Handler, h.update, http.StatusOK)
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete() echo.HandlerFunc {
	return HandleNoContent(h.Handler, h.delete, http.StatusNoContent)
}

func (h *UserHandler) create(c echo.Context, req *CreateUserRequest) (*model.User, error) {
	return h.users.Create(c.Request().Context(), &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
}

func (h *UserHandler) get(c echo.Context, req *UserIDRequest) (*model.User, error) {
	return h.users.GetByID(c.Request().Context(), req.ID)
}

func (h *UserHandler) list(c echo.Context, req *ListUsersRequest) ([]model.User, error) {
	users, err := h.users.GetAll(c.Request().Context())
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

func (h *UserHandler) update(c echo.Context, req *UpdateUserRequest) (*model.User, error) {
	return h.users.Update(c.Request().Context(), req.ID, model.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
}

func (h *UserHandler) delete(c echo.Context, req *UserIDRequest) error {
	return h.users.Delete(c.Request().Context(), req.ID)
}
