package command

// book.go = commands for a single book record: look it up and move it
// between shelves.

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"bookhub/cmd/cli/command/client"
	"bookhub/cmd/cli/command/state"
)

var (
	bookUserID   int64
	bookStatus   string
	bookDateRead string
	catalogFile  string
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Manage a single book record",
}

var bookGetCmd = &cobra.Command{
	Use:   "get <bookid>",
	Short: "Show the stored record for a book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()

		record, err := c.GetBook(cmd.Context(), args[0], bookUserID)
		if err != nil {
			return err
		}

		return printJSON(record)
	},
}

var bookUpdateCmd = &cobra.Command{
	Use:   "update <bookid>",
	Short: "Move a book onto a shelf, optionally recording the date read",
	Long: `Fetches the stored record for the book (seeding a new one from a catalog
JSON file on a first-time add), applies the selected shelf and date read,
and submits the update. A failed submission leaves the record untouched and
can simply be retried.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()

		var fallback *client.CatalogBook
		if catalogFile != "" {
			cat, err := readCatalogFile(catalogFile)
			if err != nil {
				return err
			}
			fallback = cat
		}

		wc, err := c.FetchWorkingCopy(cmd.Context(), args[0], bookUserID, fallback)
		if err != nil {
			return err
		}
		if wc.Seeded {
			fmt.Fprintln(os.Stderr, "first-time add, seeding record from catalog data")
		}

		flow := state.NewUpdateFlow(c, wc.Record)
		if err := flow.SelectStatus(bookStatus); err != nil {
			return err
		}
		if bookDateRead != "" {
			day, err := time.Parse("2006-01-02", bookDateRead)
			if err != nil {
				return fmt.Errorf("invalid --date-read %q: expected YYYY-MM-DD", bookDateRead)
			}
			if err := flow.SelectDateRead(day); err != nil {
				return err
			}
		}

		stored, err := flow.Submit(cmd.Context())
		if err != nil {
			return fmt.Errorf("update failed: %w", err)
		}

		fmt.Println("Book updated!")
		return printJSON(stored)
	},
}

var bookRemoveCmd = &cobra.Command{
	Use:   "remove <bookid>",
	Short: "Remove a book from the user's shelves",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()

		if err := c.RemoveBook(cmd.Context(), args[0], bookUserID); err != nil {
			return err
		}

		fmt.Println("Book removed.")
		return nil
	},
}

// readCatalogFile loads an external catalog search result saved as JSON.
func readCatalogFile(path string) (*client.CatalogBook, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var cat client.CatalogBook
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return &cat, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func init() {
	bookCmd.PersistentFlags().Int64Var(&bookUserID, "user", 0, "owning user id (required)")
	bookCmd.MarkPersistentFlagRequired("user")

	bookUpdateCmd.Flags().StringVar(&bookStatus, "status", "", "shelf status: read | toRead | currentlyReading (required)")
	bookUpdateCmd.MarkFlagRequired("status")
	bookUpdateCmd.Flags().StringVar(&bookDateRead, "date-read", "", "date the book was finished (YYYY-MM-DD)")
	bookUpdateCmd.Flags().StringVar(&catalogFile, "catalog", "", "catalog JSON file used to seed a first-time add")

	bookCmd.AddCommand(bookGetCmd)
	bookCmd.AddCommand(bookUpdateCmd)
	bookCmd.AddCommand(bookRemoveCmd)
	rootCmd.AddCommand(bookCmd)
}
