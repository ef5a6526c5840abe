package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/oladimeji-kazeem/budgetpro/internal/api/dto"
	"github.com/oladimeji-kazeem/budgetpro/internal/auth"
	"github.com/oladimeji-kazeem/budgetpro/internal/service"
	apperrors "github.com/oladimeji-kazeem/budgetpro/pkg/util/errorutil"
)

// RequestsHandler exposes the admin access-request endpoints.
type RequestsHandler struct {
	requests *service.RequestService
}

// NewRequestsHandler constructs the handler.
func NewRequestsHandler(requestService *service.RequestService) *RequestsHandler {
	return &RequestsHandler{requests: requestService}
}

// List handles GET /api/users/requests.
func (h *RequestsHandler) List(c *fiber.Ctx) error {
	pending, err := h.requests.ListPending(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.AccessRequestResponse, 0, len(pending))
	for _, p := range pending {
		out = append(out, dto.AccessRequestResponse{
			ID:            p.Request.ID,
			UserEmail:     p.Email,
			UserFullName:  p.Name,
			RequestedRole: string(p.Request.RequestedRole),
			RequestedAt:   p.Request.RequestedAt,
			Status:        string(p.Request.Status),
		})
	}

	return c.JSON(fiber.Map{"data": out})
}

// Action handles PATCH /api/users/requests/:id.
func (h *RequestsHandler) Action(c *fiber.Ctx) error {
	requestID := c.Params("id")
	if requestID == "" {
		return fiber.NewError(http.StatusBadRequest, "request id required")
	}

	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.RequestActionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	switch strings.ToUpper(req.Action) {
	case "APPROVE":
		if err := h.requests.Approve(c.Context(), requestID, principal.User.ID); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": fiber.Map{"message": "request approved"}})
	case "REJECT":
		if err := h.requests.Reject(c.Context(), requestID, principal.User.ID, req.RejectionReason); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": fiber.Map{"message": "request rejected"}})
	default:
		return fiber.NewError(http.StatusBadRequest, "action must be APPROVE or REJECT")
	}
}
