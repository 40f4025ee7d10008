// Package review models post-delivery feedback. A review is tied one-to-one
// to a completed order, authored by that order's own customer, and immutable
// once created.
package review

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

const (
	// MinRating is the lowest accepted rating.
	MinRating = 1

	// MaxRating is the highest accepted rating.
	MaxRating = 5
)

var (
	// ErrReviewIsNotConstructed is returned when a Review was not created
	// via RestoreReview.
	ErrReviewIsNotConstructed = errors.New("Review must be created via RestoreReview constructor")

	// ErrInvalidRating is the sentinel for ratings outside [MinRating, MaxRating].
	ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")

	// ErrNotDelivered is returned when a review is attempted on an order
	// that has not reached the Delivered status.
	ErrNotDelivered = errors.New("order must be delivered before it can be reviewed")

	// ErrDuplicateReview is returned when the customer already reviewed the
	// order.
	ErrDuplicateReview = errors.New("order has already been reviewed")
)

// ValidateRating checks the rating is an integer in [1, 5].
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"rating", rating, MinRating, MaxRating, ErrInvalidRating,
		)
	}
	return nil
}

// Review is feedback for a delivered order as stored by the remote API.
// There is no edit operation; a review never changes after creation.
type Review struct {
	id         kernel.ID
	orderID    kernel.ID
	customerID kernel.ID
	rating     int
	comment    string
	createdAt  time.Time

	isConstructed bool
}

// RestoreReview reconstructs a review fetched off the remote API.
func RestoreReview(
	id kernel.ID,
	orderID kernel.ID,
	customerID kernel.ID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		customerID.Validate(),
		ValidateRating(rating),
	); err != nil {
		return nil, err
	}

	return &Review{
		id:            id,
		orderID:       orderID,
		customerID:    customerID,
		rating:        rating,
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Review was created via RestoreReview.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

// ID returns the review identifier.
func (r *Review) ID() kernel.ID { return r.id }

// OrderID returns the reviewed order's identifier.
func (r *Review) OrderID() kernel.ID { return r.orderID }

// CustomerID returns the author's identifier.
func (r *Review) CustomerID() kernel.ID { return r.customerID }

// Rating returns the rating, an integer in [1, 5].
func (r *Review) Rating() int { return r.rating }

// Comment returns the free-text comment, possibly empty.
func (r *Review) Comment() string { return r.comment }

// CreatedAt returns the submission timestamp.
func (r *Review) CreatedAt() time.Time { return r.createdAt }

// IsFor reports whether this review belongs to the given order.
func (r *Review) IsFor(orderID kernel.ID) bool {
	return r.orderID.IsEqual(orderID)
}
