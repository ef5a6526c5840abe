package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/oladimeji-kazeem/budgetpro/internal/api/dto"
	"github.com/oladimeji-kazeem/budgetpro/internal/domain"
	"github.com/oladimeji-kazeem/budgetpro/internal/service"
	apperrors "github.com/oladimeji-kazeem/budgetpro/pkg/util/errorutil"
)

// AuthHandler exposes registration and token endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/users/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	if details := validateRegistration(req); len(details) > 0 {
		return apperrors.NewValidationError("registration invalid", details)
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return apperrors.NewValidationError("registration invalid", map[string]string{"role": err.Error()})
	}

	user, err := h.auth.Register(c.Context(), service.Registration{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: req.Department,
		Role:       role,
		Password:   req.Password,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"message": "Registration successful. An email has been sent to the access approvers.",
			"user": fiber.Map{
				"id":    user.ID,
				"email": user.Email,
			},
		},
	})
}

// Login handles POST /api/token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	pair, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": pair})
}

// Refresh handles POST /api/token/refresh.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Refresh == "" {
		return fiber.NewError(http.StatusBadRequest, "refresh token required")
	}

	pair, err := h.auth.Refresh(c.Context(), req.Refresh)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": pair})
}

func validateRegistration(req dto.RegisterRequest) map[string]string {
	details := map[string]string{}
	if strings.TrimSpace(req.FirstName) == "" {
		details["first_name"] = "required"
	}
	if strings.TrimSpace(req.LastName) == "" {
		details["last_name"] = "required"
	}
	if strings.TrimSpace(req.Email) == "" {
		details["email"] = "required"
	}
	if strings.TrimSpace(req.Department) == "" {
		details["department"] = "required"
	}
	if req.Password == "" {
		details["password"] = "required"
	}
	return details
}
