package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ikagiorgadze/symphony2/internal/config"
	"github.com/ikagiorgadze/symphony2/internal/telegram"
)

var sendCmd = &cobra.Command{
	Use:   "send <chat-id> <message>",
	Short: "Send a message to a conversation",
	Long:  "Send a text message to a guest conversation directly through the Telegram Bot API.",
	Args:  cobra.ExactArgs(2),
	RunE:  runSend,
}

func runSend(cmd *cobra.Command, args []string) error {
	chatID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat ID %q: %w", args[0], err)
	}

	cfg, err := config.LoadConfig("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := telegram.NewClient(cfg.Telegram.Token)
	if err != nil {
		return err
	}

	messageID, err := client.SendText(chatID, args[1])
	if err != nil {
		return err
	}

	fmt.Printf("Message sent (id %d)\n", messageID)
	return nil
}
