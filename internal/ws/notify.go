package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/Chidwan3578/Veridex-Local/internal/domain/job"
)

type MatchesUpdatedEvent struct {
	Type      string `json:"type"`
	JobID     string `json:"job_id"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

// Notifier pushes match-pass completion events into the hub. It satisfies the
// usecase notifier interface without the usecase layer knowing about ws.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) MatchesUpdated(jobID uuid.UUID, results []job.MatchResult) {
	if n == nil || n.hub == nil {
		return
	}

	evt := MatchesUpdatedEvent{
		Type:      "matches_updated",
		JobID:     jobID.String(),
		Count:     len(results),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(jobID, b)
}
