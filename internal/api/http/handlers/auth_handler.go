package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/company-research/internal/api/dto"
	"github.com/spec-kit/company-research/internal/service"
)

// AuthHandler exposes signup, login, logout and token verification.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "email, password, name required")
	}

	member, token, expiresAt, err := h.auth.Signup(c.UserContext(), req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.AuthResponse{
		Token:     token,
		ExpiresAt: &expiresAt,
		UserCode:  member.UserCode,
		Email:     member.Email,
		Name:      member.Name,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	member, token, expiresAt, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{
		Token:     token,
		ExpiresAt: &expiresAt,
		UserCode:  member.UserCode,
		Email:     member.Email,
		Name:      member.Name,
	})
}

// Logout handles POST /auth/logout. Tokens are stateless; the client
// discards its copy.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.UserContext(), ""); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "logged out; discard the token client-side"})
}

// Verify handles GET /auth/verify: validates the presented token and
// returns the member it belongs to.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return fiber.NewError(http.StatusUnauthorized, "missing credentials")
	}

	member, err := h.auth.VerifyToken(c.UserContext(), token)
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{
		UserCode: member.UserCode,
		Email:    member.Email,
		Name:     member.Name,
	})
}
