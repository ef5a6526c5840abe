package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oladimeji-kazeem/budgetpro/internal/shell"
)

var openCmd = &cobra.Command{
	Use:   "open <view>",
	Short: "Navigate to a view, subject to access control",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newShell()
		if err != nil {
			return err
		}
		defer app.close()

		view, outcome := app.guard.Resolve(args[0], app.sessions.Current())
		switch outcome {
		case shell.Render:
			fmt.Printf("== %s ==\n", view.Title)
			fmt.Println("(screen placeholder)")
		case shell.RedirectLogin:
			fmt.Println("Please log in first: budgetpro login")
		case shell.RedirectForbidden:
			fmt.Println("Redirected: your role does not include this screen.")
		default:
			fmt.Printf("No such view %q.\n", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
