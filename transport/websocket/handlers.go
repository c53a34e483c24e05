package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
)

func (that *Server) handleState(_ context.Context, msg *Message, conn *websocket.Conn) error {
	view := that.gameManager.View()

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: &view})
}

func (that *Server) handleTurn(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	var turn TurnPayload
	if err := json.Unmarshal(msg.Payload, &turn); err != nil {
		if sendErr := that.sendError(conn, msg.Action, "invalid turn payload"); sendErr != nil {
			return sendErr
		}
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	outcome, err := that.gameManager.SubmitHumanMove(ctx, turn.Row, turn.Col)
	view := that.gameManager.View()

	resp := ResponsePayload{
		Game:    &view,
		Outcome: outcome,
	}
	if err != nil {
		resp.Error = err.Error()
	}

	return that.sendMessage(conn, msg.Action, resp)
}

func (that *Server) handleReset(_ context.Context, msg *Message, conn *websocket.Conn) error {
	that.gameManager.Reset()
	view := that.gameManager.View()

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: &view})
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(conn *websocket.Conn, action, reason string) error {
	return that.sendMessage(conn, action, ResponsePayload{Error: reason})
}
