package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ikagiorgadze/symphony2/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run interactive setup wizard",
	Long:  "Run the interactive setup wizard to configure the bot token, webhook URL and server port.",
	RunE:  runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	if _, err := tui.RunSetup(); err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}

	fmt.Println()
	fmt.Println("You can now:")
	fmt.Println("  - Start the relay:       symphony serve")
	fmt.Println("  - Register the webhook:  symphony webhook set <url>")
	fmt.Println("  - View status:           symphony status")

	return nil
}
