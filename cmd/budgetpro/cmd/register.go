package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oladimeji-kazeem/budgetpro/internal/client"
)

var registerForm client.RegistrationForm

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Request a BudgetPro account",
	Long: `Submits a registration. The account stays inactive until an App
Admin approves the access request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newShell()
		if err != nil {
			return err
		}
		defer app.close()

		if err := app.api.Register(cmd.Context(), registerForm); err != nil {
			var validation *client.ValidationError
			switch {
			case errors.As(err, &validation):
				fmt.Println("Registration rejected:")
				for field, msg := range validation.Fields {
					if field == "" {
						fmt.Printf("  %s\n", msg)
						continue
					}
					fmt.Printf("  %s: %s\n", field, msg)
				}
			case errors.Is(err, client.ErrUnreachable):
				fmt.Println("Could not reach the BudgetPro service. Try again later.")
			default:
				return err
			}
			return nil
		}

		fmt.Println("Registration submitted. You can log in once an admin approves your request.")
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerForm.FirstName, "first-name", "", "first name")
	registerCmd.Flags().StringVar(&registerForm.LastName, "last-name", "", "last name")
	registerCmd.Flags().StringVar(&registerForm.Email, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerForm.Department, "department", "", "assigned department")
	registerCmd.Flags().StringVar(&registerForm.Role, "role", "DO", "requested role (DO or HOD)")
	registerCmd.Flags().StringVar(&registerForm.Password, "password", "", "account password")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(registerCmd)
}
