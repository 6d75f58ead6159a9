package ws

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"stratego/internal/api/origin"
	"stratego/internal/room"
	"stratego/internal/shared"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Hub owns the websocket connections. Every socket gets an opaque connection
// id; inbound frames become commands for the room manager and outbound events
// are queued per connection and written by a dedicated goroutine.
type Hub struct {
	mu          sync.RWMutex
	clients     map[string]*client
	roomManager RoomManager
	log         *zap.Logger
	upgrader    websocket.Upgrader
	sendBuffer  int
	origins     *origin.Policy
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (c *client) stop() {
	c.once.Do(func() { close(c.done) })
}

func NewHub(roomManager RoomManager, origins *origin.Policy, sendBuffer int, log *zap.Logger) *Hub {
	if sendBuffer <= 0 {
		sendBuffer = 64
	}
	h := &Hub{
		clients:     make(map[string]*client),
		roomManager: roomManager,
		log:         log,
		sendBuffer:  sendBuffer,
		origins:     origins,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     origins.Allow,
	}
	return h
}

// Origins is the policy the upgrader enforces.
func (h *Hub) Origins() *origin.Policy { return h.origins }

// HandleWS upgrades the request and serves the connection until it closes.
// Closing is reported to the room manager as a disconnect.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	cl := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, h.sendBuffer),
		done: make(chan struct{}),
	}
	h.mu.Lock()
	h.clients[cl.id] = cl
	h.mu.Unlock()

	log := h.log.With(zap.String("conn_id", cl.id))
	log.Info("player connected", zap.String("remote", c.Request.RemoteAddr))

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		h.writePump(cl)
	}()

	h.readPump(cl, log)

	h.roomManager.Leave(cl.id)
	h.mu.Lock()
	delete(h.clients, cl.id)
	h.mu.Unlock()
	cl.stop()
	<-writerDone
	log.Info("player disconnected")
}

func (h *Hub) readPump(cl *client, log *zap.Logger) {
	cl.conn.SetReadLimit(maxMessageSize)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		cmd, err := shared.DecodeCommand(data)
		if err != nil {
			log.Debug("bad frame", zap.Error(err))
			h.Send(cl.id, shared.Error(shared.ErrMalformedCommand.Error()))
			continue
		}

		err = h.roomManager.Dispatch(cl.id, cmd)
		switch {
		case err == nil, room.IsSilent(err):
		case errors.Is(err, room.ErrLobbyFull):
			// the error event is already queued; the writer flushes it before closing
			return
		default:
			log.Debug("command failed", zap.String("action", string(cmd.Kind)), zap.Error(err))
		}
	}
}

func (h *Hub) writePump(cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = cl.conn.Close()
	}()

	for {
		select {
		case msg := <-cl.send:
			if err := h.write(cl, websocket.TextMessage, msg); err != nil {
				cl.stop()
				return
			}
		case <-ticker.C:
			if err := h.write(cl, websocket.PingMessage, nil); err != nil {
				cl.stop()
				return
			}
		case <-cl.done:
			for {
				select {
				case msg := <-cl.send:
					if err := h.write(cl, websocket.TextMessage, msg); err != nil {
						return
					}
				default:
					_ = h.write(cl, websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
					return
				}
			}
		}
	}
}

func (h *Hub) write(cl *client, messageType int, data []byte) error {
	if err := cl.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return cl.conn.WriteMessage(messageType, data)
}

// Send queues ev for connID without blocking. A connection whose queue is
// full is dropped.
func (h *Hub) Send(connID string, ev shared.Event) {
	if h == nil {
		return
	}
	h.mu.RLock()
	cl, ok := h.clients[connID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	msg, err := json.Marshal(ev)
	if err != nil {
		h.log.Error("encode event", zap.String("action", string(ev.Kind)), zap.Error(err))
		return
	}

	select {
	case <-cl.done:
	case cl.send <- msg:
	default:
		h.log.Warn("send buffer full, dropping connection", zap.String("conn_id", connID))
		cl.stop()
		_ = cl.conn.Close()
	}
}

// Count returns the number of open connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close shuts every connection down. Their handlers then run the usual
// disconnect path.
func (h *Hub) Close() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, cl := range h.clients {
		cl.stop()
	}
}
