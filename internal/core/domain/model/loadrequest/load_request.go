package loadrequest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const maxCommentsLength = 2000

var ErrLoadRequestIsNotConstructed = errors.New(
	"LoadRequest must be created via NewLoadRequest or RestoreLoadRequest")

// Timeline holds the moments a load request entered each status.
// Only CreatedAt is mandatory, the rest stay nil until the status is reached.
type Timeline struct {
	CreatedAt   time.Time
	AcceptedAt  *time.Time
	LoadedAt    *time.Time
	InTransitAt *time.Time
	DeliveredAt *time.Time
}

// LoadRequest is a client's request to move cargo. It is the aggregate root of the
// Load Request Store and the authority on the request's status.
//
// Invariants:
//   - status only moves forward, one step at a time, and never leaves Delivered
//   - acceptedBidID is set exactly when the status is past Open
//   - the request is never deleted; a delivered request is immutable
//
// Example:
//
//	route, _ := loadrequest.NewRoute(pickup, dropoff, 312.5)
//	cargo, _ := loadrequest.NewCargo("grain", 18, 1)
//	load, err := loadrequest.NewLoadRequest(kernel.NewUUID(), clientID, route, cargo,
//	    250000, "50% upfront", "", time.Now())
type LoadRequest struct {
	id            kernel.UUID
	clientID      kernel.UUID
	route         Route
	cargo         Cargo
	rate          float64
	paymentTerms  string
	comments      string
	status        Status
	acceptedBidID *kernel.UUID
	timeline      Timeline
	version       int

	kernel.EventRecorder
	guard guard.ConstructorGuard
}

// NewLoadRequest creates an Open request and records a "load_request.created" event.
//
// Parameters:
//   - id, clientID: identifiers of the request and of the client who posts it
//   - route, cargo: validated value objects
//   - rate: the asking price of the client, must be positive
//   - paymentTerms, comments: free text, optional
//   - createdAt: creation moment
//
// Returns every validation failure joined into one error.
func NewLoadRequest(
	id kernel.UUID,
	clientID kernel.UUID,
	route Route,
	cargo Cargo,
	rate float64,
	paymentTerms string,
	comments string,
	createdAt time.Time,
) (*LoadRequest, error) {
	lr, err := build(id, clientID, route, cargo, rate, paymentTerms, comments)
	if err != nil {
		return nil, err
	}

	lr.status = Open
	lr.timeline = Timeline{CreatedAt: createdAt.UTC()}
	lr.record("load_request.created", createdAt, map[string]string{
		"clientId": clientID.String(),
	})
	return lr, nil
}

// RestoreLoadRequest rebuilds a request from storage. No events are recorded.
func RestoreLoadRequest(
	id kernel.UUID,
	clientID kernel.UUID,
	route Route,
	cargo Cargo,
	rate float64,
	paymentTerms string,
	comments string,
	status Status,
	acceptedBidID *kernel.UUID,
	timeline Timeline,
	version int,
) (*LoadRequest, error) {
	lr, err := build(id, clientID, route, cargo, rate, paymentTerms, comments)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if (status == Open) != (acceptedBidID == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"acceptedBidId",
			fmt.Errorf("load request in status %s cannot have accepted bid %v", status, acceptedBidID),
		)
	}

	lr.status = status
	lr.acceptedBidID = acceptedBidID
	lr.timeline = timeline
	lr.version = version
	return lr, nil
}

func build(
	id kernel.UUID,
	clientID kernel.UUID,
	route Route,
	cargo Cargo,
	rate float64,
	paymentTerms string,
	comments string,
) (*LoadRequest, error) {
	lr := &LoadRequest{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		lr.setID(id),
		lr.setClientID(clientID),
		lr.setRoute(route),
		lr.setCargo(cargo),
		lr.setRate(rate),
		lr.setComments(comments),
	); err != nil {
		return nil, err
	}
	lr.paymentTerms = strings.TrimSpace(paymentTerms)

	return lr, nil
}

func (lr *LoadRequest) Validate() error {
	if lr == nil {
		return ErrLoadRequestIsNotConstructed
	}
	return lr.guard.Validate(ErrLoadRequestIsNotConstructed)
}

func (lr *LoadRequest) ID() kernel.UUID {
	return lr.id
}

func (lr *LoadRequest) ClientID() kernel.UUID {
	return lr.clientID
}

func (lr *LoadRequest) Route() Route {
	return lr.route
}

func (lr *LoadRequest) Cargo() Cargo {
	return lr.cargo
}

func (lr *LoadRequest) Rate() float64 {
	return lr.rate
}

func (lr *LoadRequest) PaymentTerms() string {
	return lr.paymentTerms
}

func (lr *LoadRequest) Comments() string {
	return lr.comments
}

func (lr *LoadRequest) Status() Status {
	return lr.status
}

// AcceptedBidID is nil while the request is Open.
func (lr *LoadRequest) AcceptedBidID() *kernel.UUID {
	return lr.acceptedBidID
}

func (lr *LoadRequest) Timeline() Timeline {
	return lr.timeline
}

func (lr *LoadRequest) Version() int {
	return lr.version
}

// BumpVersion is called by the persistence layer after a successful versioned write.
func (lr *LoadRequest) BumpVersion() {
	lr.version++
}

func (lr *LoadRequest) IsOpen() bool {
	return lr.status == Open
}

func (lr *LoadRequest) IsDelivered() bool {
	return lr.status == Delivered
}

func (lr *LoadRequest) OwnedBy(clientID kernel.UUID) bool {
	return lr.clientID.IsEqual(clientID)
}

// Accept binds the request to bidID on behalf of its owner.
//
// Errors:
//   - InvalidTransition if clientID does not own the request
//   - Conflict if the request is no longer Open (another bid won, or it moved on)
func (lr *LoadRequest) Accept(clientID kernel.UUID, bidID kernel.UUID, at time.Time) error {
	if err := bidID.Validate(); err != nil {
		return err
	}
	if err := lr.CheckAcceptableBy(clientID); err != nil {
		return err
	}

	accepted := at.UTC()
	lr.status = Accepted
	lr.acceptedBidID = &bidID
	lr.timeline.AcceptedAt = &accepted
	lr.record("load_request.accepted", at, map[string]string{
		"clientId": lr.clientID.String(),
		"bidId":    bidID.String(),
	})
	return nil
}

// CheckAcceptableBy runs the guards of Accept without changing the request.
func (lr *LoadRequest) CheckAcceptableBy(clientID kernel.UUID) error {
	if !lr.OwnedBy(clientID) {
		return errs.NewInvalidTransitionErrorWithCause(
			"load request", lr.status.String(), Accepted.String(),
			fmt.Errorf("client %s does not own load request %s", clientID, lr.id),
		)
	}
	if lr.status != Open {
		return errs.NewConflictErrorWithCause(
			"loadRequestId", lr.id.String(), fmt.Errorf("load request is already %s", lr.status))
	}
	return nil
}

// Advance moves an accepted request one step along Loaded -> InTransit -> Delivered.
//
// Errors:
//   - ValueIsInvalid if target is not one of Loaded, InTransit, Delivered
//   - Conflict if the request is already in target (a replayed command)
//   - InvalidTransition if target is not the immediate successor of the current status
func (lr *LoadRequest) Advance(target Status, at time.Time) error {
	if target != Loaded && target != InTransit && target != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"targetStatus", fmt.Errorf("%s is not a lifecycle step", target))
	}
	if lr.status == target {
		return errs.NewConflictErrorWithCause(
			"loadRequestId", lr.id.String(), fmt.Errorf("load request is already %s", lr.status))
	}
	if next, ok := lr.status.Next(); !ok || next != target {
		return errs.NewInvalidTransitionError("load request", lr.status.String(), target.String())
	}

	stamp := at.UTC()
	switch target {
	case Loaded:
		lr.timeline.LoadedAt = &stamp
	case InTransit:
		lr.timeline.InTransitAt = &stamp
	case Delivered:
		lr.timeline.DeliveredAt = &stamp
	}
	lr.status = target

	lr.record("load_request."+target.String(), at, map[string]string{
		"clientId": lr.clientID.String(),
		"bidId":    lr.acceptedBidID.String(),
	})
	return nil
}

func (lr *LoadRequest) record(name string, at time.Time, attributes map[string]string) {
	attributes["status"] = lr.status.String()
	lr.Record(kernel.NewEvent(name, lr.id, at, attributes))
}

func (lr *LoadRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	lr.id = id
	return nil
}

func (lr *LoadRequest) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	lr.clientID = clientID
	return nil
}

func (lr *LoadRequest) setRoute(route Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	lr.route = route
	return nil
}

func (lr *LoadRequest) setCargo(cargo Cargo) error {
	if err := cargo.Validate(); err != nil {
		return err
	}
	lr.cargo = cargo
	return nil
}

func (lr *LoadRequest) setRate(rate float64) error {
	if rate <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("rate", fmt.Errorf("%g is not greater than 0", rate))
	}
	lr.rate = rate
	return nil
}

func (lr *LoadRequest) setComments(comments string) error {
	comments = strings.TrimSpace(comments)
	if len(comments) > maxCommentsLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"comments", fmt.Errorf("%d characters exceed the limit of %d", len(comments), maxCommentsLength))
	}
	lr.comments = comments
	return nil
}
