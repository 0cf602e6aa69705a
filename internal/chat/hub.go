package chat

import (
	"context"
	"log"
	"sync"

	"github.com/taoTimTim/C2Hakathon2025/internal/service"

	"github.com/gorilla/websocket"
)

// Hub mantiene las conexiones WebSocket agrupadas por sala y reparte
// los eventos de chat entre ellas.
type Hub struct {
	rooms    *service.RoomService
	messages *service.MessageService

	mu      sync.RWMutex
	bySala  map[int]map[*Client]bool // roomId -> conexiones suscritas
	clients map[*Client]bool
}

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID string
	name   string

	writeMu sync.Mutex
	rooms   map[int]bool
}

// Evento entrante del cliente. El campo Type decide qué se hace con el resto.
type inboundEvent struct {
	Type    string `json:"type"`
	RoomID  int    `json:"room_id"`
	Content string `json:"content"`
}

func NewHub(rooms *service.RoomService, messages *service.MessageService) *Hub {
	return &Hub{
		rooms:    rooms,
		messages: messages,
		bySala:   make(map[int]map[*Client]bool),
		clients:  make(map[*Client]bool),
	}
}

// Serve registra la conexión y atiende sus eventos hasta que se cierra.
func (h *Hub) Serve(conn *websocket.Conn, userID, name string) {
	c := &Client{
		hub:    h,
		conn:   conn,
		userID: userID,
		name:   name,
		rooms:  make(map[int]bool),
	}

	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()

	defer h.drop(c)

	c.send(map[string]any{"type": "connected", "user_id": userID})

	for {
		var ev inboundEvent
		if err := conn.ReadJSON(&ev); err != nil {
			return
		}
		h.dispatch(c, ev)
	}
}

func (h *Hub) dispatch(c *Client, ev inboundEvent) {
	ctx := context.Background()

	switch ev.Type {
	case "join_room":
		// Solo miembros de la sala pueden suscribirse.
		ok, err := h.rooms.IsMember(ctx, ev.RoomID, c.userID)
		if err != nil || !ok {
			c.send(map[string]any{"type": "error", "error": "not a member of this room"})
			return
		}
		h.join(c, ev.RoomID)
		c.send(map[string]any{"type": "joined", "room_id": ev.RoomID})

	case "leave_room":
		h.leave(c, ev.RoomID)
		c.send(map[string]any{"type": "left", "room_id": ev.RoomID})

	case "send_message":
		if !c.rooms[ev.RoomID] {
			c.send(map[string]any{"type": "error", "error": "join the room first"})
			return
		}
		m, err := h.messages.Send(ctx, ev.RoomID, c.userID, ev.Content)
		if err != nil {
			c.send(map[string]any{"type": "error", "error": err.Error()})
			return
		}
		h.broadcast(ev.RoomID, nil, map[string]any{
			"type":       "new_message",
			"message_id": m.MessageID,
			"room_id":    m.RoomID,
			"user_id":    m.UserID,
			"user_name":  c.name,
			"content":    m.Content,
			"created_at": m.CreatedAt,
		})

	case "typing":
		if !c.rooms[ev.RoomID] {
			return
		}
		// El que escribe no recibe su propio indicador.
		h.broadcast(ev.RoomID, c, map[string]any{
			"type":      "typing",
			"room_id":   ev.RoomID,
			"user_id":   c.userID,
			"user_name": c.name,
		})

	default:
		c.send(map[string]any{"type": "error", "error": "unknown event type"})
	}
}

func (h *Hub) join(c *Client, roomID int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.bySala[roomID] == nil {
		h.bySala[roomID] = make(map[*Client]bool)
	}
	h.bySala[roomID][c] = true
	c.rooms[roomID] = true
}

func (h *Hub) leave(c *Client, roomID int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.bySala[roomID], c)
	if len(h.bySala[roomID]) == 0 {
		delete(h.bySala, roomID)
	}
	delete(c.rooms, roomID)
}

// broadcast manda el payload a toda la sala; skip (opcional) queda fuera.
func (h *Hub) broadcast(roomID int, skip *Client, payload map[string]any) {
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.bySala[roomID]))
	for c := range h.bySala[roomID] {
		if c != skip {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		c.send(payload)
	}
}

func (h *Hub) drop(c *Client) {
	h.mu.Lock()
	for roomID := range c.rooms {
		delete(h.bySala[roomID], c)
		if len(h.bySala[roomID]) == 0 {
			delete(h.bySala, roomID)
		}
	}
	delete(h.clients, c)
	h.mu.Unlock()

	c.conn.Close()
}

func (c *Client) send(payload map[string]any) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.WriteJSON(payload); err != nil {
		log.Printf("[chat] error enviando a %s: %v", c.userID, err)
	}
}
