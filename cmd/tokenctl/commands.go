package main

import (
	"errors"
	"fmt"
	"os"

	"pr-activity-service/internal/auth"

	"github.com/spf13/cobra"
)

var errInvalidToken = errors.New("token has invalid format")

func newRootCmd() *cobra.Command {
	var password string

	root := &cobra.Command{
		Use:           "tokenctl",
		Short:         "Encrypt, decrypt and validate GitHub tokens",
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVarP(&password, "password", "p", os.Getenv("ENCRYPTION_PASSWORD"),
		"encryption password (default from ENCRYPTION_PASSWORD)")

	root.AddCommand(
		newEncryptCmd(&password),
		newDecryptCmd(&password),
		newValidateCmd(),
	)
	return root
}

func newEncryptCmd(password *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "encrypt TOKEN",
		Short: "Encrypt a token for GITHUB_TOKEN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := args[0]
			if !force && !auth.ValidateToken(token) {
				return fmt.Errorf("%w (use --force to encrypt anyway)", errInvalidToken)
			}

			encrypted, err := auth.EncryptToken(token, *password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), encrypted)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "skip token format check")
	return cmd
}

func newDecryptCmd(password *string) *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt VALUE",
		Short: "Decrypt a value produced by encrypt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := auth.DecryptToken(args[0], *password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate TOKEN",
		Short: "Check token prefix and length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := auth.TokenKindOf(args[0])
			if !ok {
				return errInvalidToken
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid %s token\n", kind)
			return nil
		},
	}
}
