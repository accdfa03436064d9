package ws

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Chidwan3578/Veridex-Local/internal/delivery/http/dto"
	"github.com/Chidwan3578/Veridex-Local/internal/usecase"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// Client is one live simulation session. Each inbound frame carries a weight
// configuration; the reply is the re-ranked candidate list for this client's
// job under those weights.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	jobID    uuid.UUID
	send     chan []byte
	simulate usecase.SimulationUsecase
	logger   *log.Logger
}

func NewClient(hub *Hub, conn *websocket.Conn, jobID uuid.UUID, simulate usecase.SimulationUsecase, logger *log.Logger) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		jobID:    jobID,
		send:     make(chan []byte, 64),
		simulate: simulate,
		logger:   logger,
	}
}

type simulationResultEvent struct {
	Type    string              `json:"type"`
	JobID   string              `json:"job_id"`
	Ranking []dto.MatchResponse `json:"ranking"`
}

type errorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && c.logger != nil {
				c.logger.Printf("WS read error | job=%s err=%v", c.jobID, err)
			}
			return
		}
		c.handleFrame(raw)
	}
}

func (c *Client) handleFrame(raw []byte) {
	var req dto.SimulationRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		c.sendJSON(errorEvent{Type: "error", Message: "invalid simulation request"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ranked, err := c.simulate.Simulate(ctx, c.jobID, req.ToInput())
	if err != nil {
		c.sendJSON(errorEvent{Type: "error", Message: err.Error()})
		return
	}

	c.sendJSON(simulationResultEvent{
		Type:    "simulation_result",
		JobID:   c.jobID.String(),
		Ranking: dto.NewSimulationResponse(ranked),
	})
}

func (c *Client) sendJSON(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	select {
	case c.send <- b:
	default:
		if c.logger != nil {
			c.logger.Printf("WS send dropped | job=%s reason=buffer_full", c.jobID)
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
