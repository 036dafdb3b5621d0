package command

// root.go defines the root command for the bookhubCLI application.
// set up the global flags here.

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"bookhub/cmd/cli/command/client"
)

var (
	apiURL  string        //Global flag for API server URL
	timeout time.Duration // per-request client timeout
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bookhubCLI",
	Short: "bookhubCLI - Bookhub Command Line Interface",
	Long: `bookhubCLI is a tool to manage your personal bookshelf against the
bookhub API. User can use this application to:
- Look up a book on one of their shelves
- Move a book between the read / toRead / currentlyReading shelves
- Record the date a book was finished
- List a bookshelf

Use "bookhubCLI command -help" or "bookhubCLI command -h" to see all available commands.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err) // Print error to standard error
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:5000", "API server URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
}

// newClient builds a client from the global flags; the config travels with
// the client instead of living in package state.
func newClient() *client.BookClient {
	return client.NewBookClient(client.Config{
		BaseURL: apiURL,
		Timeout: timeout,
	})
}
