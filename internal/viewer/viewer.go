// Package viewer implements the dashboard side of the push channel: a
// client that stays connected to the relay, groups received messages by
// conversation, and reconnects on a fixed delay whenever the channel drops.
package viewer

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ikagiorgadze/symphony2/internal/hub"
	"github.com/ikagiorgadze/symphony2/internal/relay"
)

// DefaultRetryDelay is the fixed pause between reconnection attempts.
// There is intentionally no backoff growth and no retry cap: an always-on
// operations dashboard should keep trying forever.
const DefaultRetryDelay = 3 * time.Second

// Viewer is one dashboard connection. Conversation state lives entirely on
// this side; the relay keeps no history, so messages published while the
// viewer is disconnected are silently lost.
type Viewer struct {
	url        string
	retryDelay time.Duration

	// onMessage, when set, is called for every newly observed message.
	onMessage func(relay.Message)

	mu            sync.RWMutex
	connected     bool
	conversations map[string][]relay.Message
	seen          map[string]bool
}

// New creates a viewer for the given ws:// URL. onMessage may be nil.
func New(url string, onMessage func(relay.Message)) *Viewer {
	return &Viewer{
		url:           url,
		retryDelay:    DefaultRetryDelay,
		onMessage:     onMessage,
		conversations: make(map[string][]relay.Message),
		seen:          make(map[string]bool),
	}
}

// SetRetryDelay overrides the reconnection delay. Must be called before Run.
func (v *Viewer) SetRetryDelay(d time.Duration) {
	v.retryDelay = d
}

// Run connects and keeps the viewer connected until ctx is cancelled.
// Conversation groups are never cleared across reconnects; only newly
// published messages append to them.
func (v *Viewer) Run(ctx context.Context) {
	for {
		if err := v.connectAndRead(ctx); err != nil && ctx.Err() == nil {
			log.Printf("WebSocket connection lost: %v", err)
		}
		v.setConnected(false)

		select {
		case <-ctx.Done():
			return
		case <-time.After(v.retryDelay):
		}
	}
}

// connectAndRead dials the relay and consumes frames until the connection
// breaks or ctx is cancelled.
func (v *Viewer) connectAndRead(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, v.url, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Unblock the read loop when the caller shuts down.
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	v.setConnected(true)
	log.Printf("Connected to relay at %s", v.url)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var frame hub.Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			log.Printf("Discarding malformed frame: %v", err)
			continue
		}
		if frame.Type != hub.FrameType {
			continue
		}

		v.observe(frame.Data)
	}
}

// observe files msg under its conversation, deduplicating by ID so a
// re-delivered message never doubles up in the local history.
func (v *Viewer) observe(msg relay.Message) {
	v.mu.Lock()
	if v.seen[msg.ID] {
		v.mu.Unlock()
		return
	}
	v.seen[msg.ID] = true

	group := append(v.conversations[msg.ChatID], msg)
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].Timestamp.Before(group[j].Timestamp)
	})
	v.conversations[msg.ChatID] = group
	v.mu.Unlock()

	if v.onMessage != nil {
		v.onMessage(msg)
	}
}

// Connected reports whether the push channel is currently open.
func (v *Viewer) Connected() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.connected
}

func (v *Viewer) setConnected(connected bool) {
	v.mu.Lock()
	v.connected = connected
	v.mu.Unlock()
}

// Conversation returns a copy of the timestamp-ordered messages observed
// for one conversation key.
func (v *Viewer) Conversation(key string) []relay.Message {
	v.mu.RLock()
	defer v.mu.RUnlock()

	group := v.conversations[key]
	out := make([]relay.Message, len(group))
	copy(out, group)
	return out
}

// ConversationKeys returns the keys of every conversation observed so far,
// sorted for stable display.
func (v *Viewer) ConversationKeys() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	keys := make([]string, 0, len(v.conversations))
	for key := range v.conversations {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
