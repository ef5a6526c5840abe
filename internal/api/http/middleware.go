package http

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/oladimeji-kazeem/budgetpro/internal/access"
	"github.com/oladimeji-kazeem/budgetpro/internal/auth"
	"github.com/oladimeji-kazeem/budgetpro/internal/domain"
	"github.com/oladimeji-kazeem/budgetpro/internal/observability"
	apperrors "github.com/oladimeji-kazeem/budgetpro/pkg/util/errorutil"
)

// RegisterMiddlewares attaches global middlewares such as error handling
// and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

// RequireRoles gates a route on the required-role set. The decision is
// delegated to access.Evaluate so route gating and view gating share one
// definition of role semantics.
func RequireRoles(roles ...domain.Role) fiber.Handler {
	required := domain.NewRoleSet(roles...)

	return func(c *fiber.Ctx) error {
		var identity *auth.Claims
		if principal, ok := auth.PrincipalFromContext(c); ok {
			identity = principal.Claims
		}

		switch access.Evaluate(identity, required) {
		case access.Allow:
			return c.Next()
		case access.RedirectUnauthenticated:
			return apperrors.NewUnauthorized("authentication required")
		default:
			return apperrors.NewForbidden("insufficient role")
		}
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := toDomainError(err)
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				}
				response := fiber.Map{"error": fiber.Map{
					"code":    domainErr.Code,
					"message": domainErr.Message,
				}}
				if len(domainErr.Details) > 0 {
					response["error"].(fiber.Map)["details"] = domainErr.Details
				}
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}

func toDomainError(err error) *apperrors.DomainError {
	if fiberErr, ok := err.(*fiber.Error); ok {
		return apperrors.NewDomainError("REQUEST_INVALID", fiberErr.Message, fiberErr.Code, nil)
	}
	return apperrors.ToDomainError(err)
}
