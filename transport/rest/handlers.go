package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/edgerun-backend/internal/apperror"
	"github.com/rocketscienceinc/edgerun-backend/internal/entity"
	"github.com/rocketscienceinc/edgerun-backend/internal/usecase"
)

type gameManager interface {
	View() usecase.GameView
	SubmitHumanMove(ctx context.Context, row, col int) (usecase.MoveOutcome, error)
	Reset()
	Scores(ctx context.Context) (entity.Scores, error)
}

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	GameHandler(w http.ResponseWriter, _ *http.Request)
	MoveHandler(w http.ResponseWriter, r *http.Request)
	ResetHandler(w http.ResponseWriter, _ *http.Request)
	ScoresHandler(w http.ResponseWriter, r *http.Request)
}

type MoveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type MoveResponse struct {
	Outcome usecase.MoveOutcome `json:"outcome"`
	Error   string              `json:"error,omitempty"`
	Game    usecase.GameView    `json:"game"`
}

type handlers struct {
	logger      *slog.Logger
	gameManager gameManager
}

func NewHandlers(logger *slog.Logger, gameManager gameManager) Handlers {
	return &handlers{
		logger:      logger.With("component", "rest"),
		gameManager: gameManager,
	}
}

// NewRouter registers every handler on a new mux.
func NewRouter(handlers Handlers) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", handlers.PingHandler)
	mux.HandleFunc("GET /api/game", handlers.GameHandler)
	mux.HandleFunc("POST /api/game/move", handlers.MoveHandler)
	mux.HandleFunc("POST /api/game/reset", handlers.ResetHandler)
	mux.HandleFunc("GET /api/scores", handlers.ScoresHandler)

	return mux
}

func (that *handlers) GameHandler(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.gameManager.View())
}

func (that *handlers) MoveHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "MoveHandler")

	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode move request", "error", err)
		http.Error(w, "invalid move request", http.StatusBadRequest)
		return
	}

	outcome, err := that.gameManager.SubmitHumanMove(r.Context(), req.Row, req.Col)

	resp := MoveResponse{
		Outcome: outcome,
		Game:    that.gameManager.View(),
	}
	if err != nil {
		resp.Error = err.Error()
	}

	that.writeJSON(w, moveStatus(outcome, err), resp)
}

func (that *handlers) ResetHandler(w http.ResponseWriter, _ *http.Request) {
	that.gameManager.Reset()
	that.writeJSON(w, http.StatusOK, that.gameManager.View())
}

func (that *handlers) ScoresHandler(w http.ResponseWriter, r *http.Request) {
	scores, err := that.gameManager.Scores(r.Context())
	if err != nil {
		that.logger.Error("failed to get scores", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, http.StatusOK, scores)
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func moveStatus(outcome usecase.MoveOutcome, err error) int {
	switch outcome {
	case usecase.MoveApplied:
		return http.StatusOK
	case usecase.MoveNotYourTurn:
		return http.StatusConflict
	case usecase.MoveIllegal:
		if errors.Is(err, apperror.ErrOutOfBounds) {
			return http.StatusBadRequest
		}
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
