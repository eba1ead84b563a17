package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"staffing/internal/domain"
)

const (
	EventScheduleCreated = "schedule.created"

	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	sendBuffer = 64
)

type Event struct {
	Type      string                  `json:"type"`
	Schedule  domain.ScheduleResponse `json:"schedule"`
	Timestamp string                  `json:"timestamp"`
}

type Client struct {
	// ProfessionalID limits delivery to one professional's schedules when set.
	ProfessionalID *int64
	Conn           *websocket.Conn
	Send           chan []byte
	Hub            *ScheduleHub
}

func (c *Client) wants(resp *domain.ScheduleResponse) bool {
	return c.ProfessionalID == nil || *c.ProfessionalID == resp.Professional.ID
}

// ScheduleHub fans committed schedules out to connected watchers.
type ScheduleHub struct {
	clients    map[*Client]struct{}
	broadcast  chan *domain.ScheduleResponse
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	logger *zap.Logger
	mutex  sync.RWMutex
}

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

func NewScheduleHub(logger *zap.Logger) *ScheduleHub {
	return &ScheduleHub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan *domain.ScheduleResponse, sendBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run serves the hub until ctx is done, then disconnects every client.
func (h *ScheduleHub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mutex.Unlock()
			return

		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = struct{}{}
			h.mutex.Unlock()
			h.logger.Debug("schedule watcher connected")

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mutex.Unlock()
			h.logger.Debug("schedule watcher disconnected")

		case resp := <-h.broadcast:
			h.deliver(resp)
		}
	}
}

// ScheduleCreated queues resp for delivery. It never blocks the caller; events
// are dropped while the queue is full.
func (h *ScheduleHub) ScheduleCreated(resp *domain.ScheduleResponse) {
	select {
	case h.broadcast <- resp:
	default:
		h.logger.Warn("schedule event dropped", zap.Int64("order_id", resp.Order.ID))
	}
}

func (h *ScheduleHub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *ScheduleHub) deliver(resp *domain.ScheduleResponse) {
	message, err := json.Marshal(Event{
		Type:      EventScheduleCreated,
		Schedule:  *resp,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		h.logger.Error("failed to marshal schedule event", zap.Error(err))
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for client := range h.clients {
		if !client.wants(resp) {
			continue
		}
		select {
		case client.Send <- message:
		default:
			delete(h.clients, client)
			close(client.Send)
			h.logger.Warn("slow schedule watcher disconnected")
		}
	}
}

// HandleWebSocket upgrades the request and streams schedule events to it.
// An optional professional_id query parameter narrows the stream.
func (h *ScheduleHub) HandleWebSocket(c *gin.Context) {
	var professionalID *int64
	if raw := c.Query("professional_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid professional_id", "code": http.StatusBadRequest})
			return
		}
		professionalID = &id
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("failed to upgrade connection", zap.Error(err))
		return
	}

	client := &Client{
		ProfessionalID: professionalID,
		Conn:           conn,
		Send:           make(chan []byte, sendBuffer),
		Hub:            h,
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// readPump only watches for close frames and pongs; watchers do not send events.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
		}
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(512)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("websocket read error", zap.Error(err))
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.Hub.logger.Warn("failed to write schedule event", zap.Error(err))
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
