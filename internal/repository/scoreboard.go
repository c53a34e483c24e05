package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/edgerun-backend/internal/entity"
)

const scoreKeyPrefix = "score:"

var ErrUnknownOutcome = errors.New("outcome is not a finished game")

// ScoreRepository keeps the tally of finished games. It never stores boards or turns.
type ScoreRepository interface {
	Record(ctx context.Context, outcome entity.Outcome) error
	Get(ctx context.Context) (entity.Scores, error)
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func (that *dbScore) Record(ctx context.Context, outcome entity.Outcome) error {
	if !isFinal(outcome) {
		return fmt.Errorf("%w: %s", ErrUnknownOutcome, outcome)
	}

	if err := that.client.Incr(ctx, scoreKeyPrefix+string(outcome)).Err(); err != nil {
		return fmt.Errorf("failed to increment score: %w", err)
	}

	return nil
}

func (that *dbScore) Get(ctx context.Context) (entity.Scores, error) {
	var scores entity.Scores

	for outcome, counter := range scores.Counters() {
		value, err := that.client.Get(ctx, scoreKeyPrefix+string(outcome)).Int64()
		if errors.Is(err, redis.Nil) {
			continue
		}

		if err != nil {
			return entity.Scores{}, fmt.Errorf("failed to get score %s: %w", outcome, err)
		}

		*counter = value
	}

	return scores, nil
}

type memoryScore struct {
	mu     sync.Mutex
	scores entity.Scores
}

// NewMemoryScoreRepository keeps the tally in process memory, used when Redis is disabled.
func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScore{}
}

func (that *memoryScore) Record(_ context.Context, outcome entity.Outcome) error {
	if !isFinal(outcome) {
		return fmt.Errorf("%w: %s", ErrUnknownOutcome, outcome)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	*that.scores.Counters()[outcome]++

	return nil
}

func (that *memoryScore) Get(_ context.Context) (entity.Scores, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.scores, nil
}

func isFinal(outcome entity.Outcome) bool {
	_, ok := (&entity.Scores{}).Counters()[outcome]
	return ok
}
