package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

type broadcastMsg struct {
	jobID   uuid.UUID
	payload []byte
}

// Hub groups simulation connections into per-job rooms so a matching pass for
// one posting only wakes the dashboards watching it.
type Hub struct {
	rooms      map[uuid.UUID]map[*Client]bool
	broadcast  chan broadcastMsg
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		rooms:      make(map[uuid.UUID]map[*Client]bool),
		broadcast:  make(chan broadcastMsg, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			room, ok := h.rooms[client.jobID]
			if !ok {
				room = make(map[*Client]bool)
				h.rooms[client.jobID] = room
			}
			room[client] = true
			total := len(room)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | job=%s room_clients=%d", client.jobID, total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if room, ok := h.rooms[client.jobID]; ok {
				if _, ok := room[client]; ok {
					delete(room, client)
					close(client.send)
				}
				if len(room) == 0 {
					delete(h.rooms, client.jobID)
				}
			}
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS disconnected | job=%s", client.jobID)
			}

		case msg := <-h.broadcast:
			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.rooms[msg.jobID]))
			for c := range h.rooms[msg.jobID] {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- msg.payload:
				default:
					h.unregister <- client
				}
			}

			if h.logger != nil && len(snapshot) > 0 {
				h.logger.Printf("WS broadcast | job=%s clients=%d", msg.jobID, len(snapshot))
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

func (h *Hub) Broadcast(jobID uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- broadcastMsg{jobID: jobID, payload: payload}:
	default:
		if h.logger != nil {
			h.logger.Printf("WS broadcast dropped | job=%s reason=buffer_full", jobID)
		}
	}
}

func (h *Hub) ClientCount(jobID uuid.UUID) int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.rooms[jobID])
}
