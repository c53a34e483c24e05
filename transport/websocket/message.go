package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/edgerun-backend/internal/usecase"
)

const (
	actionState = "game:state"
	actionTurn  = "game:turn"
	actionReset = "game:reset"
	actionError = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type TurnPayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type ResponsePayload struct {
	Game    *usecase.GameView   `json:"game,omitempty"`
	Outcome usecase.MoveOutcome `json:"outcome,omitempty"`
	Error   string              `json:"error,omitempty"`
}
