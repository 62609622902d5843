package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/railboard/railboard/internal/model"
	"github.com/railboard/railboard/internal/server"
	"github.com/railboard/railboard/internal/service"
	"github.com/railboard/railboard/internal/validation"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	Handler
	auth *service.AuthService
}

func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    auth,
	}
}

// RegisterRequest is the registration payload. Admin is an optional
// value compared against the configured admin secret; it does not
// appear in any response.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Admin    string `json:"admin"`
}

func (r *RegisterRequest) Validate() error {
	return validation.Struct(r)
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

// AuthResponse is the payload returned by both auth endpoints.
type AuthResponse struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
	Token   string      `json:"token"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register() echo.HandlerFunc {
	return Handle(h.Handler, h.register, http.StatusCreated)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login() echo.HandlerFunc {
	return Handle(h.Handler, h.login, http.StatusOK)
}

func (h *AuthHandler) register(c echo.Context, req *RegisterRequest) (*AuthResponse, error) {
	user, token, err := h.auth.Register(c.Request().Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Admin:    req.Admin,
	})
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Message: "User registered successfully",
		User:    user,
		Token:   token,
	}, nil
}

func (h *AuthHandler) login(c echo.Context, req *LoginRequest) (*AuthResponse, error) {
	user, token, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Message: "Login successful",
		User:    user,
		Token:   token,
	}, nil
}
