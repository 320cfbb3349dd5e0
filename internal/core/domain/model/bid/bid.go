package bid

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrBidIsNotConstructed = errors.New("Bid must be created via NewBid or RestoreBid")

// Bid is a trucker's offer to carry a load with specific trucks at a counter price.
//
// Invariants:
//   - names at least one truck and no truck twice
//   - price is positive
//   - only Submitted bids can be accepted, superseded or withdrawn
//   - after acceptance the status only follows the load request forward
type Bid struct {
	id            kernel.UUID
	loadRequestID kernel.UUID
	truckerID     kernel.UUID
	truckIDs      []kernel.UUID
	price         float64
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
	version       int

	kernel.EventRecorder
	guard guard.ConstructorGuard
}

// NewBid creates a Submitted bid and records a "bid.submitted" event.
//
// Parameters:
//   - id, loadRequestID, truckerID: identifiers of the bid, the load it targets and its author
//   - truckIDs: the trucks offered, at least one and without repetition
//   - price: the trucker's counter price, must be positive
//   - createdAt: submission moment
//
// The truck count against the load and truck availability are checked by the caller,
// which owns the Load Request Store and the Truck Registry.
func NewBid(
	id kernel.UUID,
	loadRequestID kernel.UUID,
	truckerID kernel.UUID,
	truckIDs []kernel.UUID,
	price float64,
	createdAt time.Time,
) (*Bid, error) {
	b, err := build(id, loadRequestID, truckerID, truckIDs, price)
	if err != nil {
		return nil, err
	}

	b.status = Submitted
	b.createdAt = createdAt.UTC()
	b.updatedAt = b.createdAt
	b.record("bid.submitted", createdAt, map[string]string{
		"truckCount": strconv.Itoa(len(b.truckIDs)),
		"price":      strconv.FormatFloat(b.price, 'f', -1, 64),
	})
	return b, nil
}

// RestoreBid rebuilds a bid from storage without recording events.
func RestoreBid(
	id kernel.UUID,
	loadRequestID kernel.UUID,
	truckerID kernel.UUID,
	truckIDs []kernel.UUID,
	price float64,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Bid, error) {
	b, err := build(id, loadRequestID, truckerID, truckIDs, price)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	b.status = status
	b.createdAt = createdAt
	b.updatedAt = updatedAt
	b.version = version
	return b, nil
}

func build(
	id kernel.UUID,
	loadRequestID kernel.UUID,
	truckerID kernel.UUID,
	truckIDs []kernel.UUID,
	price float64,
) (*Bid, error) {
	b := &Bid{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		b.setID(id),
		b.setLoadRequestID(loadRequestID),
		b.setTruckerID(truckerID),
		b.setTruckIDs(truckIDs),
		b.setPrice(price),
	); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bid) Validate() error {
	if b == nil {
		return ErrBidIsNotConstructed
	}
	return b.guard.Validate(ErrBidIsNotConstructed)
}

func (b *Bid) ID() kernel.UUID {
	return b.id
}

func (b *Bid) LoadRequestID() kernel.UUID {
	return b.loadRequestID
}

func (b *Bid) TruckerID() kernel.UUID {
	return b.truckerID
}

// TruckIDs returns a copy of the offered trucks in submission order.
func (b *Bid) TruckIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(b.truckIDs))
	copy(out, b.truckIDs)
	return out
}

func (b *Bid) Price() float64 {
	return b.price
}

func (b *Bid) Status() Status {
	return b.status
}

func (b *Bid) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Bid) UpdatedAt() time.Time {
	return b.updatedAt
}

func (b *Bid) Version() int {
	return b.version
}

// BumpVersion is called by the persistence layer after a successful versioned write.
func (b *Bid) BumpVersion() {
	b.version++
}

func (b *Bid) IsActive() bool {
	return b.status.IsActive()
}

func (b *Bid) IsSubmitted() bool {
	return b.status == Submitted
}

func (b *Bid) OwnedBy(truckerID kernel.UUID) bool {
	return b.truckerID.IsEqual(truckerID)
}

func (b *Bid) BelongsTo(loadRequestID kernel.UUID) bool {
	return b.loadRequestID.IsEqual(loadRequestID)
}

// NamesTruck reports whether truckID is one of the offered trucks.
func (b *Bid) NamesTruck(truckID kernel.UUID) bool {
	for _, id := range b.truckIDs {
		if id.IsEqual(truckID) {
			return true
		}
	}
	return false
}

// CheckTruckCount returns ErrInvalidTruckCount when the bid offers more trucks than requested.
func (b *Bid) CheckTruckCount(requested int) error {
	if len(b.truckIDs) > requested {
		return fmt.Errorf("%w: bid offers %d trucks, load requests %d",
			ErrInvalidTruckCount, len(b.truckIDs), requested)
	}
	return nil
}

// Accept marks a submitted bid as the winner of its load.
func (b *Bid) Accept(at time.Time) error {
	if err := b.leaveSubmitted(Accepted, at); err != nil {
		return err
	}
	b.record("bid.accepted", at, map[string]string{})
	return nil
}

// Supersede closes a submitted bid that lost to another bid on the same load.
func (b *Bid) Supersede(at time.Time) error {
	if err := b.leaveSubmitted(Superseded, at); err != nil {
		return err
	}
	b.record("bid.superseded", at, map[string]string{})
	return nil
}

// Withdraw closes a submitted bid because its trucker rejected the load.
func (b *Bid) Withdraw(at time.Time) error {
	if err := b.leaveSubmitted(Rejected, at); err != nil {
		return err
	}
	b.record("bid.withdrawn", at, map[string]string{})
	return nil
}

func (b *Bid) MarkLoaded(at time.Time) error {
	return b.follow(Accepted, Loaded, at)
}

func (b *Bid) MarkInTransit(at time.Time) error {
	return b.follow(Loaded, InTransit, at)
}

func (b *Bid) MarkDelivered(at time.Time) error {
	return b.follow(InTransit, Delivered, at)
}

func (b *Bid) leaveSubmitted(target Status, at time.Time) error {
	if b.status != Submitted {
		return errs.NewInvalidTransitionError("bid", b.status.String(), target.String())
	}
	b.status = target
	b.updatedAt = at.UTC()
	return nil
}

func (b *Bid) follow(from, target Status, at time.Time) error {
	if b.status != from {
		return errs.NewInvalidTransitionError("bid", b.status.String(), target.String())
	}
	b.status = target
	b.updatedAt = at.UTC()
	return nil
}

func (b *Bid) record(name string, at time.Time, attributes map[string]string) {
	attributes["loadRequestId"] = b.loadRequestID.String()
	attributes["truckerId"] = b.truckerID.String()
	attributes["status"] = b.status.String()
	b.Record(kernel.NewEvent(name, b.id, at, attributes))
}

func (b *Bid) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bid) setLoadRequestID(loadRequestID kernel.UUID) error {
	if err := loadRequestID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadRequestId", err)
	}
	b.loadRequestID = loadRequestID
	return nil
}

func (b *Bid) setTruckerID(truckerID kernel.UUID) error {
	if err := truckerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("truckerId", err)
	}
	b.truckerID = truckerID
	return nil
}

func (b *Bid) setTruckIDs(truckIDs []kernel.UUID) error {
	if len(truckIDs) == 0 {
		return errs.NewValueIsRequiredError("truckIds")
	}

	seen := make(map[kernel.UUID]struct{}, len(truckIDs))
	for _, id := range truckIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("truckIds", err)
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("truckIds", fmt.Errorf("truck %s is listed twice", id))
		}
		seen[id] = struct{}{}
	}

	b.truckIDs = make([]kernel.UUID, len(truckIDs))
	copy(b.truckIDs, truckIDs)
	return nil
}

func (b *Bid) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%g is not greater than 0", price))
	}
	b.price = price
	return nil
}
