package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// passwordCmd represents the password command
var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Manage the operator password",
	Long:  `Manage the operator password.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'password' requires a subcommand (hash)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

// passwordHashCmd represents the password hash command
var passwordHashCmd = &cobra.Command{
	Use:   "hash <password>",
	Short: "Hash a password for AUTH_PASSWORD",
	Long: `Hash a password with bcrypt.

Set the result as AUTH_PASSWORD so the plaintext never appears in the
server environment.

Example:
  export AUTH_PASSWORD="$(journalctl password hash 's3cret')"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to hash password:", err)
			os.Exit(1)
		}
		fmt.Printf("%s", hash)
	},
}

func init() {
	rootCmd.AddCommand(passwordCmd)
	passwordCmd.AddCommand(passwordHashCmd)
}
