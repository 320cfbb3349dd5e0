package commands

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rating"
	"freight/internal/pkg/guard"
)

var ErrSubmitRatingCommandIsNotConstructed = errors.New(
	"SubmitRatingCommand must be created via NewSubmitRatingCommand constructor",
)

// SubmitRatingCommand rates the other party of a delivered load.
type SubmitRatingCommand struct { //nolint:recvcheck //using for validation
	loadRequestID kernel.UUID
	participants  rating.Participants
	score         rating.Score
	comment       string

	guard guard.ConstructorGuard
}

// NewSubmitRatingCommand validates identifiers, roles and the 1..5 score.
func NewSubmitRatingCommand(
	loadRequestID kernel.UUID,
	raterID kernel.UUID,
	raterRole rating.Role,
	ratedID kernel.UUID,
	ratedRole rating.Role,
	score int,
	comment string,
) (SubmitRatingCommand, error) {
	c := SubmitRatingCommand{
		participants: rating.Participants{RaterRole: raterRole, RatedRole: ratedRole},
		comment:      comment,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		required("loadRequestId", loadRequestID, &c.loadRequestID),
		required("raterId", raterID, &c.participants.RaterID),
		required("ratedId", ratedID, &c.participants.RatedID),
		wrapRole("raterRole", raterRole),
		wrapRole("ratedRole", ratedRole),
		c.setScore(score),
	); err != nil {
		return SubmitRatingCommand{}, err
	}

	return c, nil
}

func (c SubmitRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRatingCommandIsNotConstructed)
}

func (c SubmitRatingCommand) LoadRequestID() kernel.UUID {
	return c.loadRequestID
}

func (c SubmitRatingCommand) Participants() rating.Participants {
	return c.participants
}

func (c SubmitRatingCommand) Score() rating.Score {
	return c.score
}

func (c SubmitRatingCommand) Comment() string {
	return c.comment
}

func (c *SubmitRatingCommand) setScore(value int) error {
	score, err := rating.NewScore(value)
	if err != nil {
		return err
	}
	c.score = score
	return nil
}

func wrapRole(paramName string, role rating.Role) error {
	if err := role.Validate(); err != nil {
		return fmt.Errorf("%s: %w", paramName, err)
	}
	return nil
}
