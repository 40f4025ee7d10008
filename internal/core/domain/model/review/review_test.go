package review_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, s string) kernel.ID {
	t.Helper()
	id, err := kernel.IDFromString(s)
	require.NoError(t, err)
	return id
}

func TestValidateRating(t *testing.T) {
	t.Run("accepts_one_through_five", func(t *testing.T) {
		for rating := 1; rating <= 5; rating++ {
			require.NoError(t, review.ValidateRating(rating))
		}
	})

	t.Run("rejects_out_of_range", func(t *testing.T) {
		for _, rating := range []int{0, -1, 6, 100} {
			err := review.ValidateRating(rating)

			require.Error(t, err)
			assert.ErrorIs(t, err, review.ErrInvalidRating)
		}
	})
}

func TestRestoreReview(t *testing.T) {
	t.Run("restores_complete_review", func(t *testing.T) {
		r, err := review.RestoreReview(
			mustID(t, "review-1"),
			mustID(t, "order-1"),
			mustID(t, "customer-1"),
			4,
			"Great pizza",
			time.Now(),
		)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, 4, r.Rating())
		assert.Equal(t, "Great pizza", r.Comment())
		assert.True(t, r.IsFor(mustID(t, "order-1")))
		assert.False(t, r.IsFor(mustID(t, "order-2")))
	})

	t.Run("rejects_invalid_rating", func(t *testing.T) {
		_, err := review.RestoreReview(
			mustID(t, "review-1"),
			mustID(t, "order-1"),
			mustID(t, "customer-1"),
			0,
			"",
			time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, review.ErrInvalidRating)
	})

	t.Run("rejects_missing_identifiers", func(t *testing.T) {
		var zero kernel.ID

		_, err := review.RestoreReview(zero, mustID(t, "order-1"), mustID(t, "customer-1"), 3, "", time.Now())
		require.Error(t, err)

		_, err = review.RestoreReview(mustID(t, "review-1"), zero, mustID(t, "customer-1"), 3, "", time.Now())
		require.Error(t, err)
	})
}

func TestReview_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var r review.Review

		err := r.Validate()

		require.Error(t, err)
		assert.Equal(t, review.ErrReviewIsNotConstructed, err)
	})
}
