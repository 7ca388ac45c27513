package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ikagiorgadze/symphony2/internal/config"
	"github.com/ikagiorgadze/symphony2/internal/tui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and relay status",
	Long:  "Display the current configuration and, when the relay is running, its health and connected viewer count.",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	tui.ShowStatus(cfg, fetchHealth(cfg))
	return nil
}

// fetchHealth queries the running relay's health endpoint. Returns nil when
// the relay is not reachable.
func fetchHealth(cfg *config.Config) *tui.Health {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://%s/health", cfg.Addr()))
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	var payload struct {
		Status           string `json:"status"`
		WebsocketClients int    `json:"websocketClients"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil
	}

	return &tui.Health{
		Status:           payload.Status,
		WebsocketClients: payload.WebsocketClients,
	}
}
