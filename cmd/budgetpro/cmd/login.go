package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oladimeji-kazeem/budgetpro/internal/client"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the BudgetPro API",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newShell()
		if err != nil {
			return err
		}
		defer app.close()

		pair, err := app.api.Login(cmd.Context(), loginEmail, loginPassword)
		if err != nil {
			switch {
			case errors.Is(err, client.ErrInvalidCredentials):
				fmt.Println("Login failed: email or password incorrect.")
			case errors.Is(err, client.ErrAccountPending):
				fmt.Println("Your account is awaiting admin approval.")
			case errors.Is(err, client.ErrUnreachable):
				fmt.Println("Could not reach the BudgetPro service. Try again later.")
			default:
				return err
			}
			return nil
		}

		if err := app.sessions.Login(pair); err != nil {
			return fmt.Errorf("issued token could not be decoded: %w", err)
		}

		identity := app.sessions.Current().Identity
		fmt.Printf("Logged in as %s (%s)\n", identity.Email, identity.Role.DisplayName())
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
}
