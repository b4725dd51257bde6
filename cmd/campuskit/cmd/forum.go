package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	topicsPage    int
	topicsPerPage int
)

var forumCmd = &cobra.Command{
	Use:   "forum",
	Short: "Browse the forum",
}

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List forum topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		resp, err := a.forum().Topics(cmd.Context(), topicsPage, topicsPerPage, true)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tMESSAGES\tAUTHOR")
		for _, topic := range resp.Topics {
			title := topic.Title
			if topic.IsPinned {
				title = "* " + title
			}
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", topic.ID, title, topic.MessagesCount, topic.Author.Email)
		}
		w.Flush()
		fmt.Printf("page %d of %d\n", resp.Pagination.Page, resp.Pagination.Pages)
		return nil
	},
}

func init() {
	topicsCmd.Flags().IntVar(&topicsPage, "page", 1, "page number")
	topicsCmd.Flags().IntVar(&topicsPerPage, "per-page", 20, "topics per page")
	forumCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(forumCmd)
}
