package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ikagiorgadze/symphony2/internal/config"
)

// Status display styles.
var (
	statusTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205")).
				MarginBottom(1).
				Padding(0, 1)

	statusBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Width(60)

	statusSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginTop(1)

	statusLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Width(20)

	statusValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255"))

	statusEnabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82")).
				Bold(true)

	statusDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Bold(true)
)

// Health is the live-process information shown next to the configuration.
// Nil fields mean the running relay could not be reached.
type Health struct {
	Status           string
	WebsocketClients int
}

// ShowStatus displays the configuration and, when available, the health of
// the running relay.
func ShowStatus(cfg *config.Config, health *Health) {
	var sb strings.Builder

	sb.WriteString(statusTitleStyle.Render("Symphony Relay Status"))
	sb.WriteString("\n\n")

	sb.WriteString(statusSectionStyle.Render("Telegram"))
	sb.WriteString("\n")
	if cfg.Telegram.Token == "" {
		sb.WriteString(statusLabelStyle.Render("Bot token"))
		sb.WriteString(statusErrorStyle.Render("not configured"))
	} else {
		sb.WriteString(statusLabelStyle.Render("Bot token"))
		sb.WriteString(statusEnabledStyle.Render("configured"))
	}
	sb.WriteString("\n")
	sb.WriteString(statusLabelStyle.Render("Webhook URL"))
	if cfg.Telegram.WebhookURL == "" {
		sb.WriteString(statusDisabledStyle.Render("not set"))
	} else {
		sb.WriteString(statusValueStyle.Render(cfg.Telegram.WebhookURL))
	}
	sb.WriteString("\n")

	sb.WriteString(statusSectionStyle.Render("Server"))
	sb.WriteString("\n")
	sb.WriteString(statusLabelStyle.Render("Listen address"))
	sb.WriteString(statusValueStyle.Render(cfg.Addr()))
	sb.WriteString("\n")

	sb.WriteString(statusSectionStyle.Render("Relay"))
	sb.WriteString("\n")
	if health == nil {
		sb.WriteString(statusLabelStyle.Render("Process"))
		sb.WriteString(statusDisabledStyle.Render("not running"))
		sb.WriteString("\n")
	} else {
		sb.WriteString(statusLabelStyle.Render("Process"))
		sb.WriteString(statusEnabledStyle.Render(health.Status))
		sb.WriteString("\n")
		sb.WriteString(statusLabelStyle.Render("Viewers connected"))
		sb.WriteString(statusValueStyle.Render(fmt.Sprintf("%d", health.WebsocketClients)))
		sb.WriteString("\n")
	}

	fmt.Println(statusBoxStyle.Render(sb.String()))
}
