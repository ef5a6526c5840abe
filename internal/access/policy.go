// Package access holds the single authorization decision function. Every
// gating check in the system, client shell and API alike, routes through
// Evaluate so role semantics are defined exactly once.
package access

import (
	"github.com/oladimeji-kazeem/budgetpro/internal/auth"
	"github.com/oladimeji-kazeem/budgetpro/internal/domain"
)

// Decision is the outcome of an access evaluation.
type Decision int

const (
	// Allow grants entry to the protected surface.
	Allow Decision = iota
	// RedirectUnauthenticated sends the caller to the login entry point.
	RedirectUnauthenticated
	// RedirectForbidden sends an authenticated caller away from a surface
	// their role does not cover.
	RedirectForbidden
)

// String renders the decision for logs.
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectUnauthenticated:
		return "redirect_unauthenticated"
	case RedirectForbidden:
		return "redirect_forbidden"
	default:
		return "unknown"
	}
}

// Evaluate decides whether the identity may enter a surface guarded by the
// required role set. A nil identity is an unauthenticated session. An empty
// required set means any authenticated identity is acceptable.
func Evaluate(identity *auth.Claims, required domain.RoleSet) Decision {
	if identity == nil {
		return RedirectUnauthenticated
	}
	if !required.Empty() && !required.Contains(identity.Role) {
		return RedirectForbidden
	}
	return Allow
}
