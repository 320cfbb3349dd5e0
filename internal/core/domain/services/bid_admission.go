package services

import (
	"fmt"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/loadrequest"
	"freight/internal/core/domain/model/truck"
	"freight/internal/pkg/errs"
)

// BidAdmission decides whether a freshly built bid may enter the ledger.
type BidAdmission struct{}

func NewBidAdmission() BidAdmission {
	return BidAdmission{}
}

// Admit checks candidate against the load, the trucker's rejection of it, the offered
// trucks and the trucker's other bids. Checks run in this order:
//
//  1. the load is Open and the trucker has not rejected it (InvalidTransition)
//  2. the bid names no more trucks than requested (bid.ErrInvalidTruckCount)
//  3. every truck belongs to the trucker (ValueIsInvalid)
//  4. every truck is on Standby and not offered in another active bid of the trucker
//     (truck.ErrTruckUnavailable)
//  5. the trucker holds no other non-rejected bid on the load (bid.ErrDuplicateBid)
//
// truckerBids are the trucker's bids across all loads that are still Submitted, plus
// every bid of the trucker on this load.
func (a BidAdmission) Admit(
	load *loadrequest.LoadRequest,
	candidate *bid.Bid,
	rejectedByTrucker bool,
	trucks []*truck.Truck,
	truckerBids []*bid.Bid,
) error {
	if err := load.Validate(); err != nil {
		return err
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	if !load.IsOpen() {
		return errs.NewInvalidTransitionErrorWithCause(
			"bid", "none", bid.Submitted.String(),
			fmt.Errorf("load request %s is %s", load.ID(), load.Status()),
		)
	}
	if rejectedByTrucker {
		return errs.NewInvalidTransitionErrorWithCause(
			"bid", "none", bid.Submitted.String(),
			fmt.Errorf("trucker %s rejected load request %s", candidate.TruckerID(), load.ID()),
		)
	}

	if err := candidate.CheckTruckCount(load.Cargo().RequestedTruckCount()); err != nil {
		return err
	}

	byID := make(map[kernel.UUID]*truck.Truck, len(trucks))
	for _, t := range trucks {
		byID[t.ID()] = t
	}
	for _, id := range candidate.TruckIDs() {
		t, ok := byID[id]
		if !ok {
			return errs.NewObjectNotFoundError("truckId", id.String())
		}
		if !t.BelongsTo(candidate.TruckerID()) {
			return errs.NewValueIsInvalidErrorWithCause(
				"truckIds", fmt.Errorf("truck %s does not belong to trucker %s", id, candidate.TruckerID()))
		}
		if err := t.CheckAvailable(); err != nil {
			return err
		}
	}

	for _, other := range truckerBids {
		if other.ID().IsEqual(candidate.ID()) || !other.OwnedBy(candidate.TruckerID()) {
			continue
		}
		if !other.IsSubmitted() {
			continue
		}
		for _, id := range candidate.TruckIDs() {
			if other.NamesTruck(id) {
				return fmt.Errorf("%w: truck %s is already offered in bid %s",
					truck.ErrTruckUnavailable, id, other.ID())
			}
		}
	}

	for _, other := range truckerBids {
		if other.ID().IsEqual(candidate.ID()) || !other.OwnedBy(candidate.TruckerID()) {
			continue
		}
		if other.BelongsTo(load.ID()) && other.Status() != bid.Rejected {
			return fmt.Errorf("%w: trucker %s already holds bid %s on load request %s",
				bid.ErrDuplicateBid, candidate.TruckerID(), other.ID(), load.ID())
		}
	}

	return nil
}
