package relay

import (
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestFromTelegramText(t *testing.T) {
	msg := &tgbotapi.Message{
		MessageID: 100,
		Text:      "hello",
		Date:      1700000000,
		Chat:      &tgbotapi.Chat{ID: 42},
		From: &tgbotapi.User{
			UserName:  "guest",
			FirstName: "Anna",
			LastName:  "Smith",
		},
	}

	got := FromTelegram(msg)

	if got.ID != "100" {
		t.Errorf("ID = %q, want %q", got.ID, "100")
	}
	if got.ChatID != "42" {
		t.Errorf("ChatID = %q, want %q", got.ChatID, "42")
	}
	if got.Message != "hello" {
		t.Errorf("Message = %q, want %q", got.Message, "hello")
	}
	if got.Type != TypeText {
		t.Errorf("Type = %q, want %q", got.Type, TypeText)
	}
	if got.Direction != DirectionIncoming {
		t.Errorf("Direction = %q, want %q", got.Direction, DirectionIncoming)
	}
	if got.Status != StatusDelivered {
		t.Errorf("Status = %q, want %q", got.Status, StatusDelivered)
	}
	if got.Username == nil || *got.Username != "@guest" {
		t.Errorf("Username = %v, want @guest", got.Username)
	}
	if got.FirstName == nil || *got.FirstName != "Anna" {
		t.Errorf("FirstName = %v, want Anna", got.FirstName)
	}
	if !got.Timestamp.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("Timestamp = %v, want platform send time", got.Timestamp)
	}
}

func TestFromTelegramCaption(t *testing.T) {
	msg := &tgbotapi.Message{
		MessageID: 101,
		Caption:   "pool photo",
		Chat:      &tgbotapi.Chat{ID: 42},
	}

	got := FromTelegram(msg)

	if got.Message != "pool photo" {
		t.Errorf("Message = %q, want caption", got.Message)
	}
	if got.Type != TypeMedia {
		t.Errorf("Type = %q, want %q", got.Type, TypeMedia)
	}
}

func TestFromTelegramMediaPlaceholder(t *testing.T) {
	msg := &tgbotapi.Message{
		MessageID: 102,
		Chat:      &tgbotapi.Chat{ID: 42},
	}

	got := FromTelegram(msg)

	if got.Message != "Media message" {
		t.Errorf("Message = %q, want %q", got.Message, "Media message")
	}
	if got.Type != TypeMedia {
		t.Errorf("Type = %q, want %q", got.Type, TypeMedia)
	}
	if got.Username != nil || got.FirstName != nil || got.LastName != nil {
		t.Error("anonymous sender should have nil display names")
	}
}

func TestConversationKeyFallback(t *testing.T) {
	username := "@guest"
	phone := "+100200300"

	tests := []struct {
		name     string
		chat     *tgbotapi.Chat
		username *string
		phone    *string
		want     string
	}{
		{"chat id wins", &tgbotapi.Chat{ID: 7}, &username, &phone, "7"},
		{"username fallback", nil, &username, &phone, "@guest"},
		{"phone fallback", nil, nil, &phone, "+100200300"},
		{"nothing known", nil, nil, nil, "unknown"},
	}

	for _, tt := range tests {
		if got := conversationKey(tt.chat, tt.username, tt.phone); got != tt.want {
			t.Errorf("%s: conversationKey() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFromCallback(t *testing.T) {
	q := &tgbotapi.CallbackQuery{
		ID:   "q1",
		Data: "wifi_password",
		From: &tgbotapi.User{UserName: "guest"},
		Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: 42},
		},
	}

	got := FromCallback(q)

	if got.ID != "btn-q1" {
		t.Errorf("ID = %q, want %q", got.ID, "btn-q1")
	}
	if got.Message != "🔘 Selected: Get WiFi Password" {
		t.Errorf("Message = %q, want selection label", got.Message)
	}
	if got.Type != TypeButtonClick {
		t.Errorf("Type = %q, want %q", got.Type, TypeButtonClick)
	}
	if got.Direction != DirectionIncoming {
		t.Errorf("Direction = %q, want %q", got.Direction, DirectionIncoming)
	}
	if got.ChatID != "42" {
		t.Errorf("ChatID = %q, want %q", got.ChatID, "42")
	}
}

func TestFromCallbackUnknownAction(t *testing.T) {
	q := &tgbotapi.CallbackQuery{
		ID:      "q2",
		Data:    "xyz123",
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 42}},
	}

	got := FromCallback(q)

	if got.Message != "🔘 Selected: xyz123" {
		t.Errorf("Message = %q, want raw code label", got.Message)
	}
}

func TestBotResponse(t *testing.T) {
	got := BotResponse("42", 55, "your towels are on the way")

	if got.ID != "bot-55" {
		t.Errorf("ID = %q, want %q", got.ID, "bot-55")
	}
	if got.Direction != DirectionOutgoing {
		t.Errorf("Direction = %q, want %q", got.Direction, DirectionOutgoing)
	}
	if got.Status != StatusSent {
		t.Errorf("Status = %q, want %q", got.Status, StatusSent)
	}
	if got.Type != TypeBotResponse {
		t.Errorf("Type = %q, want %q", got.Type, TypeBotResponse)
	}
	if got.Username == nil || *got.Username != "Symphony Hotel Bot" {
		t.Errorf("Username = %v, want bot identity", got.Username)
	}
	if got.ChatID != "42" {
		t.Errorf("ChatID = %q, want %q", got.ChatID, "42")
	}
}
