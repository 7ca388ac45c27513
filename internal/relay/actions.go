package relay

// Canned responses for button actions. Several action codes intentionally
// share a response (a top-level menu entry and its sub-menu button resolve
// to the same text), so each text lives in exactly one constant.
const (
	respCheckin = "🏨 Check-in assistance: Our front desk staff will help you shortly. Your room number and key cards are ready!"

	respWiFi = "📶 WiFi Details:\n🔑 Network: Symphony_Guest\n🔑 Password: Hotel2024\n\nIf you have issues, please let us know!"

	respWiFiSupport = "🔧 Our IT support has been notified. Someone will assist you within 15 minutes."

	respMenu = "🍽️ Room Service Menu:\n🥗 Salads: $12-18\n🍝 Pasta: $16-22\n🥩 Main Courses: $24-35\n🍰 Desserts: $8-12\n\nCall ext. 2468 to order!"

	respCoffee = "☕ Coffee & Tea service:\n☕ Coffee: $4\n🍵 Tea selection: $3\n🥐 Pastries: $6\n\nWe'll deliver in 15-20 minutes!"

	respTowels = "🧻 Extra towels are being sent to your room right now! They should arrive within 10 minutes."

	respBedding = "🛏️ Fresh bedding change has been scheduled. Housekeeping will arrive in 20-30 minutes."

	respCleaning = "🧹 Room cleaning service scheduled. We'll arrive within the next hour. Please let us know if you need to reschedule."

	respConcierge = "🛎️ Concierge Services:\n🚗 Transportation\n🎭 Event tickets\n🍽️ Restaurant reservations\n🗺️ Local recommendations\n\nHow can we assist you?"

	respCheckout = "🚪 Check-out assistance:\n📧 Express checkout via email\n🧾 Final bill sent to your room\n🚗 Luggage assistance available\n\nCheckout time: 11 AM"

	respEmergency = "🆘 EMERGENCY: If this is a medical emergency, call 911 immediately.\n\nFor hotel emergencies:\n📞 Front desk: ext. 0\n🔧 Maintenance: ext. 1234\n🚨 Security: ext. 5678"

	respFallback = "✅ Thank you for your request! Our team will assist you shortly."
)

// actionResponses maps button action codes to canned replies. Codes absent
// here (light_meals, desserts, toiletries) fall through to respFallback.
var actionResponses = map[string]string{
	"checkin":       respCheckin,
	"wifi":          respWiFi,
	"wifi_password": respWiFi,
	"wifi_support":  respWiFiSupport,
	"roomservice":   respMenu,
	"menu":          respMenu,
	"coffee":        respCoffee,
	"housekeeping":  respTowels,
	"towels":        respTowels,
	"bedding":       respBedding,
	"cleaning":      respCleaning,
	"concierge":     respConcierge,
	"checkout":      respCheckout,
	"emergency":     respEmergency,
}

// actionLabels maps action codes to the human-readable labels shown on the
// dashboard when a guest taps a button.
var actionLabels = map[string]string{
	"checkin":       "Check-in Help",
	"wifi":          "WiFi Issues",
	"wifi_password": "Get WiFi Password",
	"wifi_support":  "Technical Support",
	"roomservice":   "Room Service",
	"menu":          "View Menu",
	"coffee":        "Coffee/Tea",
	"light_meals":   "Light Meals",
	"desserts":      "Desserts",
	"housekeeping":  "Housekeeping",
	"towels":        "Extra Towels",
	"bedding":       "Fresh Bedding",
	"cleaning":      "Room Cleaning",
	"toiletries":    "Toiletries",
	"concierge":     "Concierge",
	"checkout":      "Check-out",
	"emergency":     "Emergency",
}

// ActionResponse resolves a button action code to the reply text sent back
// to the guest. Unknown codes resolve to a generic acknowledgment; the
// resolver never fails.
func ActionResponse(code string) string {
	if text, ok := actionResponses[code]; ok {
		return text
	}
	return respFallback
}

// ActionLabel returns the display label for an action code, falling back to
// the raw code when unknown.
func ActionLabel(code string) string {
	if label, ok := actionLabels[code]; ok {
		return label
	}
	return code
}
