package rating

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const maxCommentLength = 1000

var (
	ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating or RestoreRating")

	// ErrNotDelivered is returned when a rating is submitted before the load is delivered.
	ErrNotDelivered = errors.New("load not delivered")

	// ErrDuplicateRating is returned when the rater's side has already rated the load.
	ErrDuplicateRating = errors.New("duplicate rating")
)

// Participants names who rates whom on a delivered load.
type Participants struct {
	RaterID   kernel.UUID
	RaterRole Role
	RatedID   kernel.UUID
	RatedRole Role
}

// Rating is the feedback one side of a delivered load leaves about the other side.
// It is immutable; at most one rating exists per (load request, rater role).
type Rating struct {
	id            kernel.UUID
	loadRequestID kernel.UUID
	bidID         kernel.UUID
	participants  Participants
	score         Score
	comment       string
	createdAt     time.Time

	kernel.EventRecorder
	guard guard.ConstructorGuard
}

// NewRating validates a rating and records a "rating.submitted" event.
//
// The rater and the rated party must hold opposite roles. Checking that they really are
// the load's client and trucker, and that the load is delivered, is left to the caller.
func NewRating(
	id kernel.UUID,
	loadRequestID kernel.UUID,
	bidID kernel.UUID,
	participants Participants,
	score Score,
	comment string,
	createdAt time.Time,
) (*Rating, error) {
	r, err := build(id, loadRequestID, bidID, participants, score, comment)
	if err != nil {
		return nil, err
	}

	r.createdAt = createdAt.UTC()
	r.Record(kernel.NewEvent("rating.submitted", r.id, createdAt, map[string]string{
		"loadRequestId": loadRequestID.String(),
		"raterRole":     participants.RaterRole.String(),
		"ratedId":       participants.RatedID.String(),
		"score":         strconv.Itoa(score.Value()),
	}))
	return r, nil
}

func RestoreRating(
	id kernel.UUID,
	loadRequestID kernel.UUID,
	bidID kernel.UUID,
	participants Participants,
	score Score,
	comment string,
	createdAt time.Time,
) (*Rating, error) {
	r, err := build(id, loadRequestID, bidID, participants, score, comment)
	if err != nil {
		return nil, err
	}
	r.createdAt = createdAt
	return r, nil
}

func build(
	id kernel.UUID,
	loadRequestID kernel.UUID,
	bidID kernel.UUID,
	participants Participants,
	score Score,
	comment string,
) (*Rating, error) {
	r := &Rating{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		r.setID(id),
		r.setLoadRequestID(loadRequestID),
		r.setBidID(bidID),
		r.setParticipants(participants),
		r.setScore(score),
		r.setComment(comment),
	); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Rating) Validate() error {
	if r == nil {
		return ErrRatingIsNotConstructed
	}
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

func (r *Rating) ID() kernel.UUID {
	return r.id
}

func (r *Rating) LoadRequestID() kernel.UUID {
	return r.loadRequestID
}

func (r *Rating) BidID() kernel.UUID {
	return r.bidID
}

func (r *Rating) Participants() Participants {
	return r.participants
}

func (r *Rating) Score() Score {
	return r.score
}

func (r *Rating) Comment() string {
	return r.comment
}

func (r *Rating) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Rating) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rating) setLoadRequestID(loadRequestID kernel.UUID) error {
	if err := loadRequestID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadRequestId", err)
	}
	r.loadRequestID = loadRequestID
	return nil
}

func (r *Rating) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("bidId", err)
	}
	r.bidID = bidID
	return nil
}

func (r *Rating) setParticipants(p Participants) error {
	var errRater, errRated, errRoles error
	if err := p.RaterID.Validate(); err != nil {
		errRater = errs.NewValueIsRequiredErrorWithCause("raterId", err)
	}
	if err := p.RatedID.Validate(); err != nil {
		errRated = errs.NewValueIsRequiredErrorWithCause("ratedId", err)
	}
	if err := errors.Join(p.RaterRole.Validate(), p.RatedRole.Validate()); err != nil {
		errRoles = err
	} else if p.RaterRole == p.RatedRole {
		errRoles = errs.NewValueIsInvalidErrorWithCause(
			"ratedRole", fmt.Errorf("a %s cannot rate another %s", p.RaterRole, p.RatedRole))
	}
	if err := errors.Join(errRater, errRated, errRoles); err != nil {
		return err
	}

	r.participants = p
	return nil
}

func (r *Rating) setScore(score Score) error {
	if err := score.Validate(); err != nil {
		return err
	}
	r.score = score
	return nil
}

func (r *Rating) setComment(comment string) error {
	comment = strings.TrimSpace(comment)
	if len(comment) > maxCommentLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"comment", fmt.Errorf("%d characters exceed the limit of %d", len(comment), maxCommentLength))
	}
	r.comment = comment
	return nil
}
