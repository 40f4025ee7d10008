package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand represents a request to review a delivered order.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	rating  int
	comment string

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand creates a review command. The rating must be an
// integer between 1 and 5; the comment may be empty.
func NewSubmitReviewCommand(orderID kernel.ID, rating int, comment string) (SubmitReviewCommand, error) {
	cmd := SubmitReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRating(rating),
	); err != nil {
		return SubmitReviewCommand{}, err
	}

	cmd.comment = comment

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

// OrderID returns the reviewed order's identifier.
func (c SubmitReviewCommand) OrderID() kernel.ID {
	return c.orderID
}

// Rating returns the rating.
func (c SubmitReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the free-text comment, possibly empty.
func (c SubmitReviewCommand) Comment() string {
	return c.comment
}

func (c *SubmitReviewCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitReviewCommand) setRating(rating int) error {
	if err := review.ValidateRating(rating); err != nil {
		return err
	}

	c.rating = rating
	return nil
}
