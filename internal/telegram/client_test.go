package telegram

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ikagiorgadze/symphony2/internal/relay"
)

func TestIsExpiredCallback(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("connection refused"), false},
		{errors.New("Bad Request: query is too old and response timeout expired or query ID is invalid"), true},
		{fmt.Errorf("failed to answer callback query: %w", errors.New("query is too old")), true},
	}

	for _, tt := range tests {
		if got := IsExpiredCallback(tt.err); got != tt.want {
			t.Errorf("IsExpiredCallback(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestInlineKeyboard(t *testing.T) {
	menu := relay.ButtonMenu{
		{
			{Label: "🔑 Get WiFi Password", Action: "wifi_password"},
			{Label: "🔧 Technical Support", Action: "wifi_support"},
		},
	}

	markup := inlineKeyboard(menu)

	if len(markup.InlineKeyboard) != 1 {
		t.Fatalf("keyboard rows = %d, want 1", len(markup.InlineKeyboard))
	}
	row := markup.InlineKeyboard[0]
	if len(row) != 2 {
		t.Fatalf("row buttons = %d, want 2", len(row))
	}
	if row[0].Text != "🔑 Get WiFi Password" {
		t.Errorf("button text = %q, want label", row[0].Text)
	}
	if row[1].CallbackData == nil || *row[1].CallbackData != "wifi_support" {
		t.Errorf("callback data = %v, want wifi_support", row[1].CallbackData)
	}
}
