package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/edgerun-backend/internal/entity"
	"github.com/rocketscienceinc/edgerun-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRepository_Redis(t *testing.T) {
	t.Run("Get on an empty database returns zero scores", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreRepo := NewScoreRepository(st.Storage)

		// When: reading scores before any game finished
		scores, err := scoreRepo.Get(ctx)

		// Then: every counter is zero
		require.NoError(t, err)
		assert.Equal(t, entity.Scores{}, scores)
	})

	t.Run("Record increments the outcome counter", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreRepo := NewScoreRepository(st.Storage)

		// Given: two red wins and one green win
		require.NoError(t, scoreRepo.Record(ctx, entity.OutcomeRedWins))
		require.NoError(t, scoreRepo.Record(ctx, entity.OutcomeRedWins))
		require.NoError(t, scoreRepo.Record(ctx, entity.OutcomeGreenWins))

		// When: reading scores
		scores, err := scoreRepo.Get(ctx)

		// Then: the tally matches
		require.NoError(t, err)
		assert.Equal(t, entity.Scores{RedWins: 2, GreenWins: 1}, scores)
	})

	t.Run("Record rejects a game in progress", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreRepo := NewScoreRepository(st.Storage)

		err := scoreRepo.Record(ctx, entity.OutcomeInProgress)

		assert.ErrorIs(t, err, ErrUnknownOutcome)
	})
}

func TestScoreRepository_Memory(t *testing.T) {
	ctx := context.Background()

	t.Run("Record increments the outcome counter", func(t *testing.T) {
		// Given: an in-memory scoreboard
		scoreRepo := NewMemoryScoreRepository()

		// When: recording one game of each final outcome
		require.NoError(t, scoreRepo.Record(ctx, entity.OutcomeRedWins))
		require.NoError(t, scoreRepo.Record(ctx, entity.OutcomeGreenWins))
		require.NoError(t, scoreRepo.Record(ctx, entity.OutcomeAmbiguous))

		// Then: each counter is one
		scores, err := scoreRepo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.Scores{RedWins: 1, GreenWins: 1, Ambiguous: 1}, scores)
	})

	t.Run("Record rejects a game in progress", func(t *testing.T) {
		scoreRepo := NewMemoryScoreRepository()

		err := scoreRepo.Record(ctx, entity.OutcomeInProgress)

		require.ErrorIs(t, err, ErrUnknownOutcome)

		scores, err := scoreRepo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.Scores{}, scores)
	})
}
