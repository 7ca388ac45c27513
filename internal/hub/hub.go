// Package hub fans normalized messages out to every connected dashboard
// viewer over WebSocket. It is the only shared-state component in the
// relay: the subscriber set is owned by a single run loop, so publishes
// always iterate a point-in-time snapshot and a broken subscriber can never
// corrupt delivery to the others.
package hub

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ikagiorgadze/symphony2/internal/relay"
)

// Frame is the only envelope sent over the push channel.
type Frame struct {
	Type string        `json:"type"`
	Data relay.Message `json:"data"`
}

// FrameType is the Type value of every frame the hub emits.
const FrameType = "telegram_message"

const (
	// sendBuffer bounds the per-subscriber outbound queue. A subscriber
	// that falls this far behind is dropped rather than stalling the
	// publish loop.
	sendBuffer = 64

	writeTimeout = 10 * time.Second
)

type subscriber struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains the live set of viewer connections. All mutations and
// publishes are serialized through the run loop.
type Hub struct {
	register   chan *subscriber
	unregister chan *subscriber
	broadcast  chan []byte
	count      chan chan int
	done       chan struct{}
}

// New creates a Hub. Run must be started before the hub accepts
// subscribers or publishes.
func New() *Hub {
	return &Hub{
		register:   make(chan *subscriber),
		unregister: make(chan *subscriber),
		broadcast:  make(chan []byte),
		count:      make(chan chan int),
		done:       make(chan struct{}),
	}
}

// Run owns the subscriber set until ctx is cancelled. It should be started
// once, in its own goroutine.
func (h *Hub) Run(ctx context.Context) {
	subscribers := make(map[*subscriber]bool)

	defer func() {
		close(h.done)
		for s := range subscribers {
			close(s.send)
			s.conn.Close()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case s := <-h.register:
			subscribers[s] = true
			log.Printf("WebSocket client connected: %s (%d total)", s.id, len(subscribers))

		case s := <-h.unregister:
			if subscribers[s] {
				delete(subscribers, s)
				close(s.send)
				s.conn.Close()
				log.Printf("WebSocket client disconnected: %s (%d total)", s.id, len(subscribers))
			}

		case data := <-h.broadcast:
			for s := range subscribers {
				select {
				case s.send <- data:
				default:
					// Subscriber is not draining its queue. Drop it so
					// one stuck connection never blocks the rest.
					delete(subscribers, s)
					close(s.send)
					s.conn.Close()
					log.Printf("WebSocket client %s too slow, dropped", s.id)
				}
			}

		case reply := <-h.count:
			reply <- len(subscribers)
		}
	}
}

// Broadcast delivers msg to every currently-open subscriber, best effort.
// Subscribers connecting during an in-flight publish may or may not receive
// it; there is no backlog for subscribers that were not connected.
func (h *Hub) Broadcast(msg relay.Message) {
	data, err := json.Marshal(Frame{Type: FrameType, Data: msg})
	if err != nil {
		log.Printf("Error encoding broadcast frame: %v", err)
		return
	}

	select {
	case h.broadcast <- data:
	case <-h.done:
	}
}

// Count returns the number of live subscribers. Returns 0 once the hub has
// stopped.
func (h *Hub) Count() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}

// add registers conn as a live subscriber and starts its pumps.
func (h *Hub) add(conn *websocket.Conn) {
	s := &subscriber{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	select {
	case h.register <- s:
	case <-h.done:
		conn.Close()
		return
	}

	go s.writePump()
	go s.readPump(h)
}

// writePump drains the outbound queue onto the connection. It exits when
// the hub closes the queue or a write fails.
func (s *subscriber) writePump() {
	for data := range s.send {
		s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// readPump discards anything the viewer sends; its job is to notice the
// connection closing and unregister the subscriber.
func (s *subscriber) readPump(h *Hub) {
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			select {
			case h.unregister <- s:
			case <-h.done:
			}
			return
		}
	}
}
