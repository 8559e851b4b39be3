package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lcactl",
	Short: "Administration tool for the LCA posting service",
	Long: `lcactl manages the LCA posting database and admin credentials.

Available subcommands:
  migrate        - Apply pending database migrations
  seed           - Load the built-in sample postings
  token          - Issue an admin access token
  hash-password  - Produce a bcrypt hash for ADMIN_PASSWORD_HASH`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd, tokenCmd, hashPasswordCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
