// Package shell gates entry into the client's protected views.
package shell

import (
	"github.com/oladimeji-kazeem/budgetpro/internal/access"
	"github.com/oladimeji-kazeem/budgetpro/internal/domain"
	"github.com/oladimeji-kazeem/budgetpro/internal/session"
)

// Outcome is the result of resolving a navigation attempt.
type Outcome int

const (
	// Render shows the protected content.
	Render Outcome = iota
	// RedirectLogin sends the user to the login entry point.
	RedirectLogin
	// RedirectForbidden sends the user to the generic not-permitted
	// destination. The redirect itself is the signal; no error toast.
	RedirectForbidden
	// NotFound is the fallthrough for unregistered view names. Unknown
	// paths never reach protected content.
	NotFound
)

// String renders the outcome for logs and shell output.
func (o Outcome) String() string {
	switch o {
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect_login"
	case RedirectForbidden:
		return "redirect_forbidden"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// View is a named screen registered with its required-role set. The
// requirement is fixed at registration time.
type View struct {
	Name     string
	Title    string
	Required domain.RoleSet
}

// Guard resolves navigation attempts against the registered views. It is
// stateless between resolutions: the policy runs fresh on every attempt,
// so a logout between navigations is always respected.
type Guard struct {
	views map[string]View
}

// NewGuard builds a guard over the given views. Later registrations with
// a duplicate name replace earlier ones.
func NewGuard(views ...View) *Guard {
	g := &Guard{views: make(map[string]View, len(views))}
	for _, v := range views {
		g.views[v.Name] = v
	}
	return g
}

// Lookup returns the registered view by name.
func (g *Guard) Lookup(name string) (View, bool) {
	v, ok := g.views[name]
	return v, ok
}

// Resolve evaluates whether the session may enter the named view.
func (g *Guard) Resolve(name string, sess session.Session) (View, Outcome) {
	view, ok := g.views[name]
	if !ok {
		return View{}, NotFound
	}

	switch access.Evaluate(sess.Identity, view.Required) {
	case access.Allow:
		return view, Render
	case access.RedirectUnauthenticated:
		return view, RedirectLogin
	default:
		return view, RedirectForbidden
	}
}
