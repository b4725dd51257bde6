package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	ratingPage    int
	ratingPerPage int
)

var ratingCmd = &cobra.Command{
	Use:   "rating",
	Short: "Show the student points rating",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		rating, err := a.students().Rating(cmd.Context(), ratingPage, ratingPerPage)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RANK\tNAME\tGROUP\tPOINTS\tSOM")
		for _, s := range rating.Students {
			name := strings.TrimSpace(deref(s.FirstName) + " " + deref(s.LastName))
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", s.Rank, name, deref(s.GroupName), s.TotalPoints, s.TotalSom)
		}
		w.Flush()
		fmt.Printf("page %d of %d (%d students)\n", rating.Pagination.Page, rating.Pagination.Pages, rating.Pagination.Total)
		return nil
	},
}

func init() {
	ratingCmd.Flags().IntVar(&ratingPage, "page", 1, "page number")
	ratingCmd.Flags().IntVar(&ratingPerPage, "per-page", 20, "students per page")
	rootCmd.AddCommand(ratingCmd)
}
