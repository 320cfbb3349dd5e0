package bid

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const maxReasonLength = 500

var ErrRejectionIsNotConstructed = errors.New("Rejection must be created via NewRejection constructor")

// Rejection records that a trucker declined a load. It hides the load from that trucker
// only and never changes the load's status. At most one rejection exists per
// (load request, trucker) pair.
type Rejection struct {
	loadRequestID kernel.UUID
	truckerID     kernel.UUID
	reason        string
	createdAt     time.Time
	guard         guard.ConstructorGuard
}

func NewRejection(loadRequestID, truckerID kernel.UUID, reason string, createdAt time.Time) (Rejection, error) {
	r := Rejection{guard: guard.NewConstructorGuard()}

	var errLoad, errTrucker, errReason error
	if err := loadRequestID.Validate(); err != nil {
		errLoad = errs.NewValueIsRequiredErrorWithCause("loadRequestId", err)
	}
	if err := truckerID.Validate(); err != nil {
		errTrucker = errs.NewValueIsRequiredErrorWithCause("truckerId", err)
	}
	reason = strings.TrimSpace(reason)
	if len(reason) > maxReasonLength {
		errReason = errs.NewValueIsInvalidErrorWithCause(
			"reason", fmt.Errorf("%d characters exceed the limit of %d", len(reason), maxReasonLength))
	}
	if err := errors.Join(errLoad, errTrucker, errReason); err != nil {
		return Rejection{}, err
	}

	r.loadRequestID = loadRequestID
	r.truckerID = truckerID
	r.reason = reason
	r.createdAt = createdAt.UTC()
	return r, nil
}

func (r Rejection) Validate() error {
	return r.guard.Validate(ErrRejectionIsNotConstructed)
}

func (r Rejection) LoadRequestID() kernel.UUID {
	return r.loadRequestID
}

func (r Rejection) TruckerID() kernel.UUID {
	return r.truckerID
}

// Reason is empty when the trucker gave none.
func (r Rejection) Reason() string {
	return r.reason
}

func (r Rejection) CreatedAt() time.Time {
	return r.createdAt
}
