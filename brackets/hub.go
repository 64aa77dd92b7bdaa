package brackets

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Dosada05/playoff-bracket/models"
	"github.com/gorilla/websocket"
)

const MessageLeaderboardUpdated = "LEADERBOARD_UPDATED"

type Client struct {
	Hub      *Hub
	Conn     *websocket.Conn
	Send     chan []byte
	Room     string
	IsClosed bool
	Mu       sync.Mutex

	// пока held, рассылки копят только последнее сообщение в pending
	held    bool
	pending []byte
}

type WebSocketMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	RoomID  string      `json:"room_id,omitempty"`
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 16
)

// Hub раздаёт обновления таблицы лидеров подписчикам сезона (комнаты).
type Hub struct {
	Unregister chan *Client
	rooms      map[string]map[*Client]bool
	mu         sync.RWMutex
	stopped    bool
	done       chan struct{}
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		Unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]bool),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

func LeaderboardRoom(seasonYear int) string {
	return fmt.Sprintf("season_%d", seasonYear)
}

func NewClient(hub *Hub, conn *websocket.Conn, room string) *Client {
	return &Client{Hub: hub, Conn: conn, Send: make(chan []byte, sendBufferSize), Room: room}
}

// Subscribe adds the client to its room; the next broadcast already reaches it.
// It returns false when the hub has stopped.
func (h *Hub) Subscribe(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return false
	}
	if _, ok := h.rooms[c.Room]; !ok {
		h.rooms[c.Room] = make(map[*Client]bool)
	}
	h.rooms[c.Room][c] = true
	h.logger.Debug("websocket client registered", slog.String("room", c.Room), slog.Int("clients", len(h.rooms[c.Room])))
	return true
}

// Unsubscribe removes the client and closes its send buffer.
func (h *Hub) Unsubscribe(c *Client) {
	h.mu.Lock()
	h.removeLocked(c)
	h.mu.Unlock()
}

// Run processes disconnects until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.Unregister:
			h.Unsubscribe(client)

		case <-ctx.Done():
			h.mu.Lock()
			h.stopped = true
			for _, clients := range h.rooms {
				for client := range clients {
					h.removeLocked(client)
				}
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) removeLocked(client *Client) {
	clients, ok := h.rooms[client.Room]
	if !ok || !clients[client] {
		return
	}
	client.close()
	delete(clients, client)
	if len(clients) == 0 {
		delete(h.rooms, client.Room)
	}
	h.logger.Debug("websocket client unregistered", slog.String("room", client.Room))
}

// RoomSize returns the number of clients subscribed to a room.
func (h *Hub) RoomSize(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

// BroadcastToRoom отправляет сообщение всем клиентам комнаты. Медленные
// клиенты с полным буфером пропускают сообщение.
func (h *Hub) BroadcastToRoom(roomID string, message interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	roomClients, ok := h.rooms[roomID]
	if !ok {
		return
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("failed to marshal websocket message", slog.String("room", roomID), slog.Any("error", err))
		return
	}

	for client := range roomClients {
		client.Mu.Lock()
		if client.IsClosed {
			client.Mu.Unlock()
			continue
		}
		if client.held {
			client.pending = messageBytes
			client.Mu.Unlock()
			continue
		}
		select {
		case client.Send <- messageBytes:
		default:
			h.logger.Warn("websocket client buffer full, message dropped", slog.String("room", roomID))
		}
		client.Mu.Unlock()
	}
}

// PublishLeaderboard pushes a freshly computed leaderboard to the season room.
func (h *Hub) PublishLeaderboard(seasonYear int, entries []models.LeaderboardEntry) {
	room := LeaderboardRoom(seasonYear)
	h.BroadcastToRoom(room, WebSocketMessage{
		Type:    MessageLeaderboardUpdated,
		Payload: entries,
		RoomID:  room,
	})
}

// Hold откладывает рассылки до Release; из накопленного остаётся последнее.
func (c *Client) Hold() {
	c.Mu.Lock()
	c.held = true
	c.Mu.Unlock()
}

// Release отправляет snapshot, за ним отложенное обновление, если оно пришло
// после подписки, и снимает Hold.
func (c *Client) Release(snapshot interface{}) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal websocket message: %w", err)
	}
	c.Mu.Lock()
	defer c.Mu.Unlock()
	pending := c.pending
	c.held, c.pending = false, nil
	if c.IsClosed {
		return fmt.Errorf("websocket client in room %s is closed", c.Room)
	}
	for _, msg := range [][]byte{data, pending} {
		if msg == nil {
			continue
		}
		select {
		case c.Send <- msg:
		default:
			return fmt.Errorf("websocket client buffer full in room %s", c.Room)
		}
	}
	return nil
}

func (c *Client) close() {
	c.Mu.Lock()
	defer c.Mu.Unlock()
	if !c.IsClosed {
		close(c.Send)
		c.IsClosed = true
	}
}

// ReadPump only watches for disconnects; clients never send commands.
func (c *Client) ReadPump() {
	defer func() {
		select {
		case c.Hub.Unregister <- c:
		case <-c.Hub.done:
		}
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { return c.Conn.SetReadDeadline(time.Now().Add(pongWait)) })

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("websocket read failed", slog.String("room", c.Room), slog.Any("error", err))
			}
			return
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
