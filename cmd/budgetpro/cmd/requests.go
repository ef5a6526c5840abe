package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oladimeji-kazeem/budgetpro/internal/access"
	"github.com/oladimeji-kazeem/budgetpro/internal/client"
	"github.com/oladimeji-kazeem/budgetpro/internal/domain"
)

var requestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "List pending access requests (admins only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newShell()
		if err != nil {
			return err
		}
		defer app.close()

		sess := app.sessions.Current()
		required := domain.NewRoleSet(domain.RoleAppAdmin, domain.RoleSuperAdmin)
		switch access.Evaluate(sess.Identity, required) {
		case access.RedirectUnauthenticated:
			fmt.Println("Please log in first: budgetpro login")
			return nil
		case access.RedirectForbidden:
			fmt.Println("Redirected: your role does not include this screen.")
			return nil
		}

		pending, err := app.api.PendingRequests(cmd.Context(), sess.Tokens.Access)
		if err != nil {
			if errors.Is(err, client.ErrUnreachable) {
				fmt.Println("Could not reach the BudgetPro service. Try again later.")
				return nil
			}
			return err
		}

		if len(pending) == 0 {
			fmt.Println("No pending access requests.")
			return nil
		}
		for _, req := range pending {
			fmt.Printf("%s  %-30s %-25s role=%s  requested=%s\n",
				req.ID, req.UserEmail, req.UserFullName, req.RequestedRole,
				req.RequestedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(requestsCmd)
}
