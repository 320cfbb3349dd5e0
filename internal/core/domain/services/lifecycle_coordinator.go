package services

import (
	"fmt"
	"time"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/loadrequest"
	"freight/internal/core/domain/model/truck"
	"freight/internal/pkg/errs"
)

// LifecycleCoordinator is the domain service that drives a load request, its accepted
// bid and the bid's trucks through the lifecycle as one unit.
//
// It is the only caller of the truck status methods, which keeps the registry in step
// with the bid that occupies each truck. All guards run before the first mutation, so a
// failing call leaves every aggregate untouched.
//
// Example usage:
//
//	coordinator := services.NewLifecycleCoordinator()
//	superseded, err := coordinator.Accept(load, clientID, winner, allBids, trucks, time.Now())
//	if errors.Is(err, truck.ErrTruckUnavailable) {
//	    // one of the offered trucks is busy with another load
//	}
type LifecycleCoordinator struct{}

func NewLifecycleCoordinator() LifecycleCoordinator {
	return LifecycleCoordinator{}
}

// Accept makes winner the accepted bid of load.
//
// Parameters:
//   - load: the load request, locked by the caller
//   - clientID: the acting client, must own the load
//   - winner: the bid to accept, must be Submitted and belong to load
//   - bids: every bid on the load; Submitted rivals of winner are superseded
//   - trucks: the trucks named by winner
//   - at: transition moment
//
// Returns the rival bids that were superseded.
//
// Errors:
//   - InvalidTransition: foreign client, or winner is not Submitted
//   - Conflict: the load is no longer Open
//   - NotFound: winner belongs to another load, or a named truck is missing from trucks
//   - bid.ErrInvalidTruckCount: winner names more trucks than requested
//   - truck.ErrTruckUnavailable: a named truck is not on Standby
func (c LifecycleCoordinator) Accept(
	load *loadrequest.LoadRequest,
	clientID kernel.UUID,
	winner *bid.Bid,
	bids []*bid.Bid,
	trucks []*truck.Truck,
	at time.Time,
) ([]*bid.Bid, error) {
	if err := load.Validate(); err != nil {
		return nil, err
	}
	if err := winner.Validate(); err != nil {
		return nil, err
	}

	if err := load.CheckAcceptableBy(clientID); err != nil {
		return nil, err
	}
	if !winner.BelongsTo(load.ID()) {
		return nil, errs.NewObjectNotFoundError("bidId", winner.ID().String())
	}
	if !winner.IsSubmitted() {
		return nil, errs.NewInvalidTransitionError("bid", winner.Status().String(), bid.Accepted.String())
	}
	if err := winner.CheckTruckCount(load.Cargo().RequestedTruckCount()); err != nil {
		return nil, err
	}

	named, err := c.namedTrucks(winner, trucks)
	if err != nil {
		return nil, err
	}
	for _, t := range named {
		if err = t.CheckAvailable(); err != nil {
			return nil, err
		}
	}

	if err = load.Accept(clientID, winner.ID(), at); err != nil {
		return nil, err
	}
	if err = winner.Accept(at); err != nil {
		return nil, err
	}
	for _, t := range named {
		if err = t.Reserve(winner.ID()); err != nil {
			return nil, err
		}
	}

	superseded := make([]*bid.Bid, 0, len(bids))
	for _, rival := range bids {
		if rival.ID().IsEqual(winner.ID()) || !rival.IsSubmitted() {
			continue
		}
		if err = rival.Supersede(at); err != nil {
			return nil, err
		}
		superseded = append(superseded, rival)
	}

	return superseded, nil
}

// Advance moves load, its accepted bid and the bid's trucks to target
// (Loaded, InTransit or Delivered) on behalf of truckerID.
//
// Truck propagation:
//   - Loaded: Reserved -> Loaded
//   - InTransit: Loaded -> InTransit
//   - Delivered: InTransit -> Standby, occupying bid cleared
//
// Errors:
//   - InvalidTransition: truckerID does not hold the accepted bid, or target skips a step
//   - Conflict: load is already in target
//   - NotFound: a truck of the accepted bid is missing from trucks
func (c LifecycleCoordinator) Advance(
	load *loadrequest.LoadRequest,
	truckerID kernel.UUID,
	accepted *bid.Bid,
	trucks []*truck.Truck,
	target loadrequest.Status,
	at time.Time,
) error {
	if err := load.Validate(); err != nil {
		return err
	}
	if err := accepted.Validate(); err != nil {
		return err
	}

	if load.AcceptedBidID() == nil || !load.AcceptedBidID().IsEqual(accepted.ID()) {
		return errs.NewInvalidTransitionErrorWithCause(
			"load request", load.Status().String(), target.String(),
			fmt.Errorf("bid %s is not the accepted bid of load request %s", accepted.ID(), load.ID()),
		)
	}
	if !accepted.OwnedBy(truckerID) {
		return errs.NewInvalidTransitionErrorWithCause(
			"load request", load.Status().String(), target.String(),
			fmt.Errorf("trucker %s does not hold the accepted bid", truckerID),
		)
	}

	named, err := c.namedTrucks(accepted, trucks)
	if err != nil {
		return err
	}

	if err = load.Advance(target, at); err != nil {
		return err
	}

	bidStep, truckStep := c.steps(target)
	if err = bidStep(accepted, at); err != nil {
		return err
	}
	for _, t := range named {
		if err = truckStep(t, accepted.ID()); err != nil {
			return err
		}
	}
	return nil
}

func (c LifecycleCoordinator) steps(target loadrequest.Status) (
	func(*bid.Bid, time.Time) error,
	func(*truck.Truck, kernel.UUID) error,
) {
	switch target {
	case loadrequest.Loaded:
		return (*bid.Bid).MarkLoaded, (*truck.Truck).Load
	case loadrequest.InTransit:
		return (*bid.Bid).MarkInTransit, (*truck.Truck).StartTransit
	default:
		return (*bid.Bid).MarkDelivered, (*truck.Truck).Release
	}
}

// namedTrucks picks the trucks of b out of trucks, in the order b names them.
func (c LifecycleCoordinator) namedTrucks(b *bid.Bid, trucks []*truck.Truck) ([]*truck.Truck, error) {
	byID := make(map[kernel.UUID]*truck.Truck, len(trucks))
	for _, t := range trucks {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		byID[t.ID()] = t
	}

	named := make([]*truck.Truck, 0, len(b.TruckIDs()))
	for _, id := range b.TruckIDs() {
		t, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("truckId", id.String())
		}
		named = append(named, t)
	}
	return named, nil
}
