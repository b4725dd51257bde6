package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		password := loginPassword
		if password == "" {
			password, err = promptLine("Password: ")
			if err != nil {
				return err
			}
		}

		user, err := a.auth.Login(cmd.Context(), loginEmail, password)
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (%s)\n", user.Email, user.Role)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a student account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		password := loginPassword
		if password == "" {
			password, err = promptLine("Password: ")
			if err != nil {
				return err
			}
		}

		user, err := a.auth.Register(cmd.Context(), loginEmail, password)
		if err != nil {
			return err
		}
		fmt.Printf("Registered %s\n", user.Email)
		return nil
	},
}

func promptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().StringVar(&loginEmail, "email", "", "account email")
		c.Flags().StringVar(&loginPassword, "password", "", "account password (prompted if omitted)")
		c.MarkFlagRequired("email")
	}
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
}
