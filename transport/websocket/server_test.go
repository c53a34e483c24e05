package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/edgerun-backend/internal/entity"
	"github.com/rocketscienceinc/edgerun-backend/internal/repository"
	"github.com/rocketscienceinc/edgerun-backend/internal/service"
	"github.com/rocketscienceinc/edgerun-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T) *websocket.Conn {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, service.NewBotService(service.BotOptions{}), repository.NewMemoryScoreRepository())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	srv := httptest.NewServer(New(logger, manager).Handler(ctx))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = resp.Body.Close()
		_ = conn.Close()
	})

	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, action string, payload any) (string, ResponsePayload) {
	t.Helper()

	msg := Message{Action: action}
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		msg.Payload = body
	}

	require.NoError(t, conn.WriteJSON(msg))

	var reply Message
	require.NoError(t, conn.ReadJSON(&reply))

	var resp ResponsePayload
	require.NoError(t, json.Unmarshal(reply.Payload, &resp))

	return reply.Action, resp
}

func TestServer_State(t *testing.T) {
	conn := dial(t)

	// When: asking for the game state
	action, resp := roundTrip(t, conn, actionState, nil)

	// Then: the starting board is returned
	assert.Equal(t, actionState, action)
	require.NotNil(t, resp.Game)
	assert.Equal(t, entity.NewBoard().Snapshot(), resp.Game.Board)
	assert.Equal(t, entity.PhaseAwaitingHuman, resp.Game.State.Phase)
}

func TestServer_Turn(t *testing.T) {
	t.Run("Applied turn carries the bot reply", func(t *testing.T) {
		conn := dial(t)

		// When: green moves (0,1)
		action, resp := roundTrip(t, conn, actionTurn, TurnPayload{Row: 0, Col: 1})

		// Then: the move is applied and red answered
		assert.Equal(t, actionTurn, action)
		assert.Equal(t, usecase.MoveApplied, resp.Outcome)
		assert.Empty(t, resp.Error)
		require.NotNil(t, resp.Game)
		require.NotNil(t, resp.Game.LastBotMove)
		assert.Equal(t, entity.GreenCell, resp.Game.Board[1][1])
	})

	t.Run("Illegal turn reports the error", func(t *testing.T) {
		conn := dial(t)

		_, resp := roundTrip(t, conn, actionTurn, TurnPayload{Row: 4, Col: 4})

		assert.Equal(t, usecase.MoveIllegal, resp.Outcome)
		assert.NotEmpty(t, resp.Error)
	})
}

func TestServer_Reset(t *testing.T) {
	// Given: a connection that played one turn
	conn := dial(t)
	roundTrip(t, conn, actionTurn, TurnPayload{Row: 0, Col: 1})

	// When: resetting
	_, resp := roundTrip(t, conn, actionReset, nil)

	// Then: the starting board is back
	require.NotNil(t, resp.Game)
	assert.Equal(t, entity.NewBoard().Snapshot(), resp.Game.Board)
}

func TestServer_UnknownAction(t *testing.T) {
	conn := dial(t)

	// When: sending an unknown action
	action, resp := roundTrip(t, conn, "game:fly", nil)

	// Then: an error is returned and the connection stays usable
	assert.Equal(t, "game:fly", action)
	assert.Equal(t, "unknown action", resp.Error)

	_, resp = roundTrip(t, conn, actionState, nil)
	assert.NotNil(t, resp.Game)
}

func TestServer_MalformedMessage(t *testing.T) {
	conn := dial(t)

	// When: sending text that is not JSON
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))

	// Then: an error reply comes back
	var reply Message
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, actionError, reply.Action)
}
