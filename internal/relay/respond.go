package relay

import "strings"

// Button is one inline keyboard entry. Action is the opaque code echoed
// back when the guest taps it.
type Button struct {
	Label  string
	Action string
}

// ButtonMenu is an ordered sequence of button rows attached to an outbound
// message. Immutable once sent.
type ButtonMenu [][]Button

// Response is an automated reply produced by AutoRespond. Menu is nil for
// plain-text replies.
type Response struct {
	Text string
	Menu ButtonMenu
}

var welcomeMenu = ButtonMenu{
	{
		{Label: "🏨 Check-in Help", Action: "checkin"},
		{Label: "📶 WiFi Issues", Action: "wifi"},
	},
	{
		{Label: "🍽️ Room Service", Action: "roomservice"},
		{Label: "🧹 Housekeeping", Action: "housekeeping"},
	},
	{
		{Label: "🛎️ Concierge", Action: "concierge"},
		{Label: "🚪 Check-out", Action: "checkout"},
	},
	{
		{Label: "🆘 Emergency", Action: "emergency"},
	},
}

var wifiMenu = ButtonMenu{
	{
		{Label: "🔑 Get WiFi Password", Action: "wifi_password"},
		{Label: "🔧 Technical Support", Action: "wifi_support"},
	},
}

var foodMenu = ButtonMenu{
	{
		{Label: "🍽️ View Menu", Action: "menu"},
		{Label: "☕ Coffee/Tea", Action: "coffee"},
	},
	{
		{Label: "🥗 Light Meals", Action: "light_meals"},
		{Label: "🍰 Desserts", Action: "desserts"},
	},
}

var cleaningMenu = ButtonMenu{
	{
		{Label: "🧻 Extra Towels", Action: "towels"},
		{Label: "🛏️ Fresh Bedding", Action: "bedding"},
	},
	{
		{Label: "🧹 Room Cleaning", Action: "cleaning"},
		{Label: "🧴 Toiletries", Action: "toiletries"},
	},
}

// AutoRespond maps guest text to zero or one automated reply. Rules are
// evaluated in order and the first match wins; matching is case-insensitive
// substring matching with no language understanding. A nil return means a
// human operator is expected to answer.
func AutoRespond(text string) *Response {
	t := strings.ToLower(text)

	switch {
	case t == "/start" || strings.Contains(t, "hello") || strings.Contains(t, "hi"):
		return &Response{
			Text: "🏨 Welcome to Symphony Hotel! How can I assist you today?",
			Menu: welcomeMenu,
		}
	case strings.Contains(t, "wifi") || strings.Contains(t, "internet"):
		return &Response{
			Text: "📶 WiFi Help - What would you like to do?",
			Menu: wifiMenu,
		}
	case strings.Contains(t, "room service") || strings.Contains(t, "food"):
		return &Response{
			Text: "🍽️ Room Service - What would you like to order?",
			Menu: foodMenu,
		}
	case strings.Contains(t, "housekeeping") || strings.Contains(t, "cleaning"):
		return &Response{
			Text: "🧹 Housekeeping Service - What do you need?",
			Menu: cleaningMenu,
		}
	default:
		return nil
	}
}
