package relay

import (
	"strings"
	"testing"
)

func TestAutoRespondWelcome(t *testing.T) {
	tests := []string{"/start", "hello", "Hello there", "hi", "HI", "good morning, hi"}

	for _, text := range tests {
		resp := AutoRespond(text)
		if resp == nil {
			t.Fatalf("AutoRespond(%q) = nil, want welcome response", text)
		}
		if !strings.Contains(resp.Text, "Welcome to Symphony Hotel") {
			t.Errorf("AutoRespond(%q).Text = %q, want welcome text", text, resp.Text)
		}
		if len(resp.Menu) != 4 {
			t.Errorf("AutoRespond(%q) menu rows = %d, want 4", text, len(resp.Menu))
		}
	}
}

func TestAutoRespondRuleOrder(t *testing.T) {
	// "hi" matches before "wifi": the welcome rule is evaluated first.
	resp := AutoRespond("hi, wifi please")
	if resp == nil {
		t.Fatal("AutoRespond() = nil, want welcome response")
	}
	if !strings.Contains(resp.Text, "Welcome") {
		t.Errorf("AutoRespond() matched %q, want the welcome rule", resp.Text)
	}
}

func TestAutoRespondKeywords(t *testing.T) {
	tests := []struct {
		text     string
		wantText string
		wantRows int
	}{
		{"wifi is down", "📶 WiFi Help - What would you like to do?", 1},
		{"no INTERNET in my room", "📶 WiFi Help - What would you like to do?", 1},
		{"can I get room service?", "🍽️ Room Service - What would you like to order?", 2},
		{"some food would be great", "🍽️ Room Service - What would you like to order?", 2},
		{"housekeeping please", "🧹 Housekeeping Service - What do you need?", 2},
		{"the room needs cleaning", "🧹 Housekeeping Service - What do you need?", 2},
	}

	for _, tt := range tests {
		resp := AutoRespond(tt.text)
		if resp == nil {
			t.Fatalf("AutoRespond(%q) = nil, want a response", tt.text)
		}
		if resp.Text != tt.wantText {
			t.Errorf("AutoRespond(%q).Text = %q, want %q", tt.text, resp.Text, tt.wantText)
		}
		if len(resp.Menu) != tt.wantRows {
			t.Errorf("AutoRespond(%q) menu rows = %d, want %d", tt.text, len(resp.Menu), tt.wantRows)
		}
	}
}

func TestAutoRespondSilence(t *testing.T) {
	tests := []string{"", "my shower is broken", "what time is breakfast?", "/stop"}

	for _, text := range tests {
		if resp := AutoRespond(text); resp != nil {
			t.Errorf("AutoRespond(%q) = %+v, want nil", text, resp)
		}
	}
}

func TestWelcomeMenuLayout(t *testing.T) {
	resp := AutoRespond("/start")
	if resp == nil {
		t.Fatal("AutoRespond(\"/start\") = nil")
	}

	wantActions := [][]string{
		{"checkin", "wifi"},
		{"roomservice", "housekeeping"},
		{"concierge", "checkout"},
		{"emergency"},
	}

	for i, row := range resp.Menu {
		if len(row) != len(wantActions[i]) {
			t.Fatalf("row %d has %d buttons, want %d", i, len(row), len(wantActions[i]))
		}
		for j, b := range row {
			if b.Action != wantActions[i][j] {
				t.Errorf("menu[%d][%d].Action = %q, want %q", i, j, b.Action, wantActions[i][j])
			}
			if b.Label == "" {
				t.Errorf("menu[%d][%d] has empty label", i, j)
			}
		}
	}
}
