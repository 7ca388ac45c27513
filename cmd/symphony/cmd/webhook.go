package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ikagiorgadze/symphony2/internal/config"
	"github.com/ikagiorgadze/symphony2/internal/telegram"
)

var webhookCmd = &cobra.Command{
	Use:   "webhook",
	Short: "Manage the Telegram webhook registration",
}

var webhookSetCmd = &cobra.Command{
	Use:   "set <url>",
	Short: "Register a webhook URL with Telegram",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := webhookClient()
		if err != nil {
			return err
		}

		description, err := client.SetWebhook(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Webhook set: %s\n", description)
		return nil
	},
}

var webhookInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the current webhook registration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := webhookClient()
		if err != nil {
			return err
		}

		info, err := client.WebhookInfo()
		if err != nil {
			return err
		}

		if info.URL == "" {
			fmt.Println("No webhook registered.")
			return nil
		}

		fmt.Printf("URL:             %s\n", info.URL)
		fmt.Printf("Pending updates: %d\n", info.PendingUpdateCount)
		if info.LastErrorMessage != "" {
			fmt.Printf("Last error:      %s\n", info.LastErrorMessage)
		}
		return nil
	},
}

var webhookDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the current webhook registration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := webhookClient()
		if err != nil {
			return err
		}

		if err := client.DeleteWebhook(); err != nil {
			return err
		}

		fmt.Println("Webhook deleted.")
		return nil
	},
}

func webhookClient() (*telegram.Client, error) {
	cfg, err := config.LoadConfig("")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return telegram.NewClient(cfg.Telegram.Token)
}

func init() {
	webhookCmd.AddCommand(webhookSetCmd)
	webhookCmd.AddCommand(webhookInfoCmd)
	webhookCmd.AddCommand(webhookDeleteCmd)
}
