// Package relay contains the canonical message model shared by the webhook
// endpoint, the broadcast hub and dashboard viewers, together with the
// keyword auto-responder and the button action table.
package relay

import (
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Message direction values.
const (
	DirectionIncoming = "incoming"
	DirectionOutgoing = "outgoing"
)

// Message type values. The dashboard renders each type differently.
const (
	TypeText        = "text"
	TypeMedia       = "media"
	TypeButtonClick = "button_click"
	TypeBotResponse = "bot_response"
)

// Delivery status values.
const (
	StatusDelivered = "delivered"
	StatusSent      = "sent"
)

// mediaPlaceholder substitutes for payloads without text or caption, so
// Message.Message is never empty.
const mediaPlaceholder = "Media message"

// Bot identity attached to outgoing auto-responses.
const (
	botUsername  = "Symphony Hotel Bot"
	botFirstName = "Symphony Hotel"
	botLastName  = "Bot"
)

// Message is the normalized representation of a single inbound or outbound
// event. It is immutable once built and is the only payload fanned out to
// dashboard viewers. The JSON field names are the wire format the dashboard
// consumes.
type Message struct {
	ID           string    `json:"id"`
	PhoneNumber  *string   `json:"phoneNumber"`
	Username     *string   `json:"username"`
	FirstName    *string   `json:"firstName"`
	LastName     *string   `json:"lastName"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
	Direction    string    `json:"direction"`
	Status       string    `json:"status"`
	IsSimulation bool      `json:"isSimulation"`
	ChatID       string    `json:"chatId"`
	Type         string    `json:"type"`
}

// FromTelegram normalizes a guest-originated Telegram message. The
// conversation key is the chat ID, falling back to username and then phone
// number so grouping stays stable for senders without a chat.
func FromTelegram(msg *tgbotapi.Message) Message {
	var phone, username, firstName, lastName *string

	if msg.Contact != nil && msg.Contact.PhoneNumber != "" {
		phone = strPtr(msg.Contact.PhoneNumber)
	}
	if msg.From != nil {
		if msg.From.UserName != "" {
			username = strPtr("@" + msg.From.UserName)
		}
		if msg.From.FirstName != "" {
			firstName = strPtr(msg.From.FirstName)
		}
		if msg.From.LastName != "" {
			lastName = strPtr(msg.From.LastName)
		}
	}

	text := msg.Text
	kind := TypeText
	if text == "" {
		kind = TypeMedia
		text = msg.Caption
		if text == "" {
			text = mediaPlaceholder
		}
	}

	return Message{
		ID:          strconv.Itoa(msg.MessageID),
		PhoneNumber: phone,
		Username:    username,
		FirstName:   firstName,
		LastName:    lastName,
		Message:     text,
		Timestamp:   time.Unix(int64(msg.Date), 0),
		Direction:   DirectionIncoming,
		Status:      StatusDelivered,
		ChatID:      conversationKey(msg.Chat, username, phone),
		Type:        kind,
	}
}

// FromCallback normalizes a button tap into a synthetic incoming message
// whose text is a human-readable label of the chosen action.
func FromCallback(q *tgbotapi.CallbackQuery) Message {
	var username, firstName, lastName *string
	if q.From != nil {
		if q.From.UserName != "" {
			username = strPtr("@" + q.From.UserName)
		}
		if q.From.FirstName != "" {
			firstName = strPtr(q.From.FirstName)
		}
		if q.From.LastName != "" {
			lastName = strPtr(q.From.LastName)
		}
	}

	var chat *tgbotapi.Chat
	if q.Message != nil {
		chat = q.Message.Chat
	}

	return Message{
		ID:        "btn-" + q.ID,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Message:   "🔘 Selected: " + ActionLabel(q.Data),
		Timestamp: time.Now(),
		Direction: DirectionIncoming,
		Status:    StatusDelivered,
		ChatID:    conversationKey(chat, username, nil),
		Type:      TypeButtonClick,
	}
}

// BotResponse builds the outgoing message broadcast to viewers after the
// upstream API confirmed a bot reply. messageID is the platform-assigned ID
// of the sent message.
func BotResponse(chatKey string, messageID int, text string) Message {
	return Message{
		ID:        "bot-" + strconv.Itoa(messageID),
		Username:  strPtr(botUsername),
		FirstName: strPtr(botFirstName),
		LastName:  strPtr(botLastName),
		Message:   text,
		Timestamp: time.Now(),
		Direction: DirectionOutgoing,
		Status:    StatusSent,
		ChatID:    chatKey,
		Type:      TypeBotResponse,
	}
}

// Outbound builds the message broadcast after an operator sent text through
// the administrative send endpoint.
func Outbound(chatKey string, messageID int, text string) Message {
	return Message{
		ID:        strconv.Itoa(messageID),
		Message:   text,
		Timestamp: time.Now(),
		Direction: DirectionOutgoing,
		Status:    StatusSent,
		ChatID:    chatKey,
		Type:      TypeText,
	}
}

// conversationKey derives the stable grouping key for a conversation.
func conversationKey(chat *tgbotapi.Chat, username, phone *string) string {
	switch {
	case chat != nil:
		return strconv.FormatInt(chat.ID, 10)
	case username != nil:
		return *username
	case phone != nil:
		return *phone
	default:
		return "unknown"
	}
}

func strPtr(s string) *string {
	return &s
}
