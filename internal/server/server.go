// Package server exposes the relay's HTTP surface: the Telegram webhook,
// the administrative send/webhook endpoints, the health check, and the
// WebSocket push channel for dashboard viewers.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gorilla/mux"

	"github.com/ikagiorgadze/symphony2/internal/hub"
	"github.com/ikagiorgadze/symphony2/internal/relay"
	"github.com/ikagiorgadze/symphony2/internal/telegram"
)

// ServiceName identifies the process in the health payload.
const ServiceName = "telegram-bot"

// Upstream is the outbound Telegram surface the server depends on. The
// production implementation is telegram.Client; tests substitute a fake.
type Upstream interface {
	SendText(chatID int64, text string) (int, error)
	SendMenu(chatID int64, text string, menu relay.ButtonMenu) (int, error)
	AckCallback(callbackQueryID string) error
	SetWebhook(url string) (string, error)
	WebhookInfo() (tgbotapi.WebhookInfo, error)
}

// Server routes HTTP traffic to the relay components.
type Server struct {
	upstream Upstream
	hub      *hub.Hub
	router   *mux.Router
}

// New wires the handler routes. The hub must already be running.
func New(upstream Upstream, h *hub.Hub) *Server {
	s := &Server{
		upstream: upstream,
		hub:      h,
		router:   mux.NewRouter(),
	}

	s.router.HandleFunc("/webhook", s.handleWebhook).Methods(http.MethodPost)
	s.router.HandleFunc("/send-message", s.handleSendMessage).Methods(http.MethodPost)
	s.router.HandleFunc("/set-webhook", s.handleSetWebhook).Methods(http.MethodPost)
	s.router.HandleFunc("/webhook-info", s.handleWebhookInfo).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", h.ServeWS).Methods(http.MethodGet)

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// handleWebhook ingests one Telegram update per call. Payloads that are
// neither a message nor a callback query are acknowledged and ignored so
// upstream retries stay idempotent.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Printf("Error processing Telegram webhook: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	switch {
	case update.Message != nil:
		if err := s.processMessage(update.Message); err != nil {
			log.Printf("Error processing Telegram webhook: %v", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	case update.CallbackQuery != nil:
		if err := s.processCallback(update.CallbackQuery); err != nil {
			log.Printf("Error processing Telegram webhook: %v", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}

	w.Write([]byte("OK"))
}

// processMessage broadcasts the guest message first, so viewers see it with
// minimal latency, then runs the auto-responder. There is deliberately no
// transaction across the two broadcasts: if the reply send fails the guest
// message stays visible and a human operator takes over.
func (s *Server) processMessage(msg *tgbotapi.Message) error {
	normalized := relay.FromTelegram(msg)
	s.hub.Broadcast(normalized)

	resp := relay.AutoRespond(msg.Text)
	if resp == nil {
		return nil
	}

	var (
		messageID int
		err       error
	)
	if resp.Menu != nil {
		messageID, err = s.upstream.SendMenu(msg.Chat.ID, resp.Text, resp.Menu)
	} else {
		messageID, err = s.upstream.SendText(msg.Chat.ID, resp.Text)
	}
	if err != nil {
		return err
	}

	s.hub.Broadcast(relay.BotResponse(normalized.ChatID, messageID, resp.Text))
	return nil
}

// processCallback handles a button tap: broadcast the click, acknowledge it
// best-effort, then send and broadcast the canned response.
func (s *Server) processCallback(q *tgbotapi.CallbackQuery) error {
	click := relay.FromCallback(q)
	s.hub.Broadcast(click)

	if err := s.upstream.AckCallback(q.ID); err != nil {
		if telegram.IsExpiredCallback(err) {
			log.Printf("Callback query expired, continuing with response...")
		} else {
			log.Printf("Error acknowledging callback query: %v", err)
		}
	}

	text := relay.ActionResponse(q.Data)

	var chatID int64
	if q.Message != nil && q.Message.Chat != nil {
		chatID = q.Message.Chat.ID
	}

	messageID, err := s.upstream.SendText(chatID, text)
	if err != nil {
		return err
	}

	s.hub.Broadcast(relay.BotResponse(click.ChatID, messageID, text))
	return nil
}

// handleSendMessage lets an operator send an arbitrary message to a
// conversation. The sent message is broadcast so every viewer sees it.
func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChatID  int64  `json:"chatId"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ChatID == 0 || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Chat ID and message are required"})
		return
	}

	messageID, err := s.upstream.SendText(req.ChatID, req.Message)
	if err != nil {
		log.Printf("Error sending message: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to send message"})
		return
	}

	s.hub.Broadcast(relay.Outbound(strconv.FormatInt(req.ChatID, 10), messageID, req.Message))

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "messageId": messageID})
}

func (s *Server) handleSetWebhook(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WebhookURL string `json:"webhookUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.WebhookURL == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Webhook URL is required"})
		return
	}

	description, err := s.upstream.SetWebhook(req.WebhookURL)
	if err != nil {
		log.Printf("Error setting webhook: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to set webhook"})
		return
	}

	log.Printf("Webhook set successfully: %s", req.WebhookURL)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "description": description})
}

func (s *Server) handleWebhookInfo(w http.ResponseWriter, r *http.Request) {
	info, err := s.upstream.WebhookInfo()
	if err != nil {
		log.Printf("Error getting webhook info: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
		"websocketClients": s.hub.Count(),
		"service":          ServiceName,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
