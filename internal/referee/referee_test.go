package referee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festy23/tournament_portal/internal/model"
)

func TestOffline_AskReferee(t *testing.T) {
	t.Run("no rules source", func(t *testing.T) {
		answer, err := NewOffline(nil).AskReferee(context.Background(), "Is offside a foul?", model.SportFootball)
		require.NoError(t, err)
		assert.Equal(t, OfflineAnswer, answer)
	})

	t.Run("appends published rules", func(t *testing.T) {
		assistant := NewOffline(func(context.Context) model.Rules { return model.DefaultRules() })

		answer, err := assistant.AskReferee(context.Background(), "How many sets?", "volleyball")
		require.NoError(t, err)
		assert.Contains(t, answer, OfflineAnswer)
		assert.Contains(t, answer, "Volleyball rules:")
		assert.Contains(t, answer, "- Best of 5 sets.")
	})

	t.Run("unknown sport", func(t *testing.T) {
		assistant := NewOffline(func(context.Context) model.Rules { return model.DefaultRules() })

		answer, err := assistant.AskReferee(context.Background(), "Checkmate?", "Chess")
		require.NoError(t, err)
		assert.Equal(t, OfflineAnswer, answer)
	})

	t.Run("empty question", func(t *testing.T) {
		_, err := NewOffline(nil).AskReferee(context.Background(), "  ", model.SportFootball)
		assert.ErrorIs(t, err, ErrEmptyQuestion)
	})
}
