package command

// shelf.go = commands over a user's whole bookshelf.

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	shelfUserID int64
	shelfStatus string
)

var shelfCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Browse a user's bookshelf",
}

var shelfListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the books on a user's shelves",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()

		shelf, err := c.ListShelf(cmd.Context(), shelfUserID, shelfStatus)
		if err != nil {
			return err
		}

		if shelf.Total == 0 {
			fmt.Println("No books on this shelf yet.")
			return nil
		}

		for _, item := range shelf.Items {
			status := "-"
			if item.Status != nil {
				status = *item.Status
			}
			line := fmt.Sprintf("%-18s %-20s %s", item.BookID, status, item.Title)
			if item.DateRead != nil {
				line += fmt.Sprintf(" (read %s)", *item.DateRead)
			}
			fmt.Println(line)
		}
		fmt.Printf("%d book(s)\n", shelf.Total)
		return nil
	},
}

func init() {
	shelfCmd.PersistentFlags().Int64Var(&shelfUserID, "user", 0, "owning user id (required)")
	shelfCmd.MarkPersistentFlagRequired("user")
	shelfListCmd.Flags().StringVar(&shelfStatus, "status", "", "filter by shelf: read | toRead | currentlyReading")

	shelfCmd.AddCommand(shelfListCmd)
	rootCmd.AddCommand(shelfCmd)
}
