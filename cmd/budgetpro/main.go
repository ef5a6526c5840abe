package main

import "github.com/oladimeji-kazeem/budgetpro/cmd/budgetpro/cmd"

func main() {
	cmd.Execute()
}
