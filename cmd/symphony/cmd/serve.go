package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ikagiorgadze/symphony2/internal/config"
	"github.com/ikagiorgadze/symphony2/internal/hub"
	"github.com/ikagiorgadze/symphony2/internal/server"
	"github.com/ikagiorgadze/symphony2/internal/telegram"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the relay server",
	Long:  "Start the webhook server that receives Telegram updates, answers guests automatically, and pushes every message to connected dashboard viewers.",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := hub.New()
	go h.Run(ctx)

	if cfg.Telegram.WebhookURL != "" {
		if _, err := client.SetWebhook(cfg.Telegram.WebhookURL); err != nil {
			return fmt.Errorf("failed to register webhook: %w", err)
		}
		log.Printf("Webhook registered: %s", cfg.Telegram.WebhookURL)
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: server.New(client, h).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Relay server running on %s", cfg.Addr())
		log.Println("Endpoints:")
		log.Println("  POST /webhook      - Receive Telegram updates")
		log.Println("  POST /send-message - Send a message to a conversation")
		log.Println("  POST /set-webhook  - Register the Telegram webhook")
		log.Println("  GET  /webhook-info - Current webhook registration")
		log.Println("  GET  /health       - Health check")
		log.Println("  GET  /ws           - Dashboard push channel")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-sigChan:
	}

	fmt.Println("\nShutting down relay...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Relay shutdown timed out.")
		return err
	}

	fmt.Println("Relay stopped gracefully.")
	return nil
}
