package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"festival/internal/auth"
)

var flagPassword string

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Hash a password for ADMIN_PASSWORD_HASH",
	Long:  "Hash a password with argon2id. The password is read from --password or the first line of stdin.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		password := flagPassword
		if password == "" {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return errors.New("no password given")
			}
			password = strings.TrimRight(line, "\r\n")
		}
		if password == "" {
			return errors.New("password cannot be empty")
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	hashPasswordCmd.Flags().StringVar(&flagPassword, "password", "", "Password to hash")
	rootCmd.AddCommand(hashPasswordCmd)
}
