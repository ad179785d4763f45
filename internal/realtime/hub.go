// Package realtime pushes recommendation and plan updates to connected
// clients over websockets.
package realtime

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const writeTimeout = 5 * time.Second

// Message types pushed to subscribers.
const (
	TypeRecommendationsUpdated = "recommendations.updated"
	TypePlanProgress           = "plan.progress"
)

// Message is one update pushed to a user's open connections.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type subscriber struct {
	userID int64
	msgs   chan Message
}

// Hub fans out per-user update messages to websocket subscribers. Slow
// subscribers are dropped rather than blocking publishers.
type Hub struct {
	mu   sync.Mutex
	subs map[*subscriber]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[*subscriber]struct{})}
}

// Publish sends a message to every open connection subscribed to the user.
// It never blocks: a subscriber whose buffer is full is closed.
func (h *Hub) Publish(userID int64, msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.subs {
		if s.userID != userID {
			continue
		}
		select {
		case s.msgs <- msg:
		default:
			close(s.msgs)
			delete(h.subs, s)
		}
	}
}

func (h *Hub) add(s *subscriber) {
	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) remove(s *subscriber) {
	h.mu.Lock()
	if _, ok := h.subs[s]; ok {
		close(s.msgs)
		delete(h.subs, s)
	}
	h.mu.Unlock()
}

// Subscribe upgrades the request to a websocket and streams the user's
// updates until the client disconnects or ctx is done.
func (h *Hub) Subscribe(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int64) error {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return err
	}
	defer conn.CloseNow()

	s := &subscriber{
		userID: userID,
		msgs:   make(chan Message, 16),
	}
	h.add(s)
	defer h.remove(s)

	slog.Debug("realtime subscriber connected", "user_id", userID)

	ctx = conn.CloseRead(ctx)
	for {
		select {
		case msg, ok := <-s.msgs:
			if !ok {
				return conn.Close(websocket.StatusPolicyViolation, "subscriber too slow")
			}
			if err := writeTimeoutJSON(ctx, conn, msg); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func writeTimeoutJSON(ctx context.Context, conn *websocket.Conn, msg Message) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, msg)
}
