package services

import (
	"fmt"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/loadrequest"
	"freight/internal/core/domain/model/rating"
	"freight/internal/pkg/errs"
)

// RatingPolicy checks that a rating refers to a delivered load and to its real parties:
// the client who owns the load and the trucker of its accepted bid.
type RatingPolicy struct{}

func NewRatingPolicy() RatingPolicy {
	return RatingPolicy{}
}

// Check returns rating.ErrNotDelivered for loads that are not delivered and a
// validation error when a participant does not match the role they claim.
func (p RatingPolicy) Check(load *loadrequest.LoadRequest, accepted *bid.Bid, participants rating.Participants) error {
	if err := load.Validate(); err != nil {
		return err
	}
	if !load.IsDelivered() {
		return fmt.Errorf("%w: load request %s is %s", rating.ErrNotDelivered, load.ID(), load.Status())
	}
	if err := accepted.Validate(); err != nil {
		return err
	}

	if err := p.checkParty(load, accepted, "raterId", participants.RaterRole, participants.RaterID.String()); err != nil {
		return err
	}
	return p.checkParty(load, accepted, "ratedId", participants.RatedRole, participants.RatedID.String())
}

func (p RatingPolicy) checkParty(
	load *loadrequest.LoadRequest,
	accepted *bid.Bid,
	param string,
	role rating.Role,
	id string,
) error {
	var expected string
	switch role {
	case rating.Client:
		expected = load.ClientID().String()
	case rating.Trucker:
		expected = accepted.TruckerID().String()
	default:
		return role.Validate()
	}

	if id != expected {
		return errs.NewValueIsInvalidErrorWithCause(
			param, fmt.Errorf("%s is not the %s of load request %s", id, role, load.ID()))
	}
	return nil
}
