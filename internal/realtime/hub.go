package realtime

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 512
	sendBuffer     = 16
)

type Watcher interface {
	Watch(f Filter, fn func(Update)) (cancel func())
}

// Hub pushes Updates to connected devices. It never sends booking data, only the hint
// that a view must be re-read.
type Hub struct {
	watcher  Watcher
	upgrader websocket.Upgrader
	logger   logger.Logger
}

func NewHub(w Watcher, allowedOrigins []string, log logger.Logger) *Hub {
	h := &Hub{
		watcher: w,
		logger:  log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	if len(allowedOrigins) > 0 {
		h.upgrader.CheckOrigin = originChecker(allowedOrigins)
	}
	return h
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// Serve upgrades the request and streams updates matching f until the device disconnects.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, f Filter) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("upgrade websocket: %w", err)
	}

	send := make(chan []byte, sendBuffer)
	overflow := make(chan struct{})
	var overflowed bool

	cancel := h.watcher.Watch(f, func(u Update) {
		data, err := json.Marshal(u)
		if err != nil {
			return
		}
		select {
		case send <- data:
		default:
			// A device that cannot keep up is dropped; it resyncs on reconnect.
			if !overflowed {
				overflowed = true
				close(overflow)
			}
		}
	})

	closed := make(chan struct{})
	go h.readPump(conn, closed)
	h.writePump(conn, send, overflow, closed)
	cancel()

	h.logger.Debug("live connection closed",
		logger.String("booking_id", f.BookingID),
		logger.String("user_id", f.UserID),
	)

	return nil
}

// readPump only services control frames; clients are not expected to send anything.
func (h *Hub) readPump(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("live connection read error",
					logger.String("error", err.Error()),
				)
			}
			return
		}
	}
}

func (h *Hub) writePump(conn *websocket.Conn, send <-chan []byte, overflow, closed <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case <-closed:
			return
		case <-overflow:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "too slow"))
			return
		case msg := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
