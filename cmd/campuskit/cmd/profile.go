package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your student profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		profile, err := a.students().Profile(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Email:  %s\n", profile.Email)
		fmt.Printf("Name:   %s %s\n", deref(profile.FirstName), deref(profile.LastName))
		fmt.Printf("Group:  %s\n", deref(profile.GroupName))
		fmt.Printf("Points: %d (som %d)\n", profile.TotalPoints, profile.TotalSom)
		return nil
	},
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
