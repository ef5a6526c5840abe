package shell

import "github.com/oladimeji-kazeem/budgetpro/internal/domain"

// DefaultViews is the application's protected-surface registry. An empty
// required set means any authenticated identity may enter.
func DefaultViews() []View {
	return []View{
		{
			Name:     "dashboard",
			Title:    "Dashboard",
			Required: domain.NewRoleSet(),
		},
		{
			Name:     "admin-dashboard",
			Title:    "Admin Dashboard",
			Required: domain.NewRoleSet(domain.RoleAppAdmin, domain.RoleSuperAdmin),
		},
		{
			Name:     "budget-submission",
			Title:    "Budget Submission",
			Required: domain.NewRoleSet(domain.RoleDeptOfficer, domain.RoleHeadOfDept),
		},
		{
			Name:     "gl-upload",
			Title:    "GL Upload & Mapping",
			Required: domain.NewRoleSet(domain.RoleAppAdmin, domain.RoleSuperAdmin),
		},
	}
}
