// Package tui provides the interactive terminal setup wizard and status
// display for the relay.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ikagiorgadze/symphony2/internal/config"
)

// Styles for the setup wizard.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginBottom(1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)

// setupState holds the answers collected by the wizard.
type setupState struct {
	Token      string
	WebhookURL string
	Port       string
	Confirmed  bool
}

// RunSetup runs the interactive setup wizard and saves the resulting
// configuration.
func RunSetup() (*config.Config, error) {
	existing, err := config.LoadConfig("")
	if err != nil {
		return nil, fmt.Errorf("failed to load existing config: %w", err)
	}

	state := &setupState{
		Token:      existing.Telegram.Token,
		WebhookURL: existing.Telegram.WebhookURL,
		Port:       strconv.Itoa(existing.Server.Port),
	}

	welcome := boxStyle.Render(
		titleStyle.Render("Symphony Relay Setup") + "\n\n" +
			"This wizard configures the guest-messaging relay.\n" +
			"You can always edit the configuration later at:\n" +
			subtitleStyle.Render(config.GetConfigPath()),
	)
	fmt.Println(welcome)
	fmt.Println()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Telegram bot token").
				Description("Create a bot with @BotFather and paste its token here").
				Placeholder("123456789:AA...").
				EchoMode(huh.EchoModePassword).
				Value(&state.Token).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("bot token is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Webhook URL (optional)").
				Description("Public HTTPS URL Telegram should deliver updates to; registered at serve time").
				Placeholder("https://hotel.example.com/webhook").
				Value(&state.WebhookURL),
			huh.NewInput().
				Title("HTTP port").
				Description("Port for the webhook, admin endpoints and the /ws push channel").
				Value(&state.Port).
				Validate(func(s string) error {
					port, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || port <= 0 || port > 65535 {
						return fmt.Errorf("enter a port between 1 and 65535")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save configuration?").
				Affirmative("Save").
				Negative("Cancel").
				Value(&state.Confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}
	if !state.Confirmed {
		return nil, fmt.Errorf("setup cancelled by user")
	}

	port, _ := strconv.Atoi(strings.TrimSpace(state.Port))
	cfg := &config.Config{
		Telegram: config.TelegramConfig{
			Token:      strings.TrimSpace(state.Token),
			WebhookURL: strings.TrimSpace(state.WebhookURL),
		},
		Server: config.ServerConfig{
			Host: existing.Server.Host,
			Port: port,
		},
	}

	if err := config.SaveConfig(cfg, ""); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println(successStyle.Render("\n✓ Configuration saved successfully!"))
	fmt.Println(subtitleStyle.Render("Config file: " + config.GetConfigPath()))

	return cfg, nil
}
