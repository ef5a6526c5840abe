package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newShell()
		if err != nil {
			return err
		}
		defer app.close()

		sess := app.sessions.Current()
		if !sess.Authenticated() {
			fmt.Println("Not logged in.")
			return nil
		}

		identity := sess.Identity
		fmt.Printf("Email:      %s\n", identity.Email)
		fmt.Printf("Role:       %s (%s)\n", identity.Role, identity.Role.DisplayName())
		if identity.Department != "" {
			fmt.Printf("Department: %s\n", identity.Department)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
