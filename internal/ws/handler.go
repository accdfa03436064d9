package ws

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Chidwan3578/Veridex-Local/internal/usecase"
)

type Handler struct {
	hub      *Hub
	simulate usecase.SimulationUsecase
	logger   *log.Logger
}

func NewHandler(hub *Hub, simulate usecase.SimulationUsecase, logger *log.Logger) *Handler {
	return &Handler{hub: hub, simulate: simulate, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleSimulateWS upgrades the connection and binds it to the job's room.
func (h *Handler) HandleSimulateWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("WS upgrade error | job=%s err=%v", jobID, err)
			}
			return
		}

		client := NewClient(h.hub, conn, jobID, h.simulate, h.logger)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
