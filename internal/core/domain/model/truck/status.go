package truck

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status is the availability of a truck.
//
// State transitions, all driven by the lifecycle of the bid that occupies the truck:
//
//	Standby ──> Reserved ──> Loaded ──> InTransit
//	   ^                                    │
//	   └────────────────────────────────────┘
//	             (load delivered)
type Status int

const (
	Unknown Status = iota

	// Standby trucks are free and may be named in new bids.
	Standby

	// Reserved trucks belong to an accepted bid whose cargo is not loaded yet.
	Reserved

	// Loaded trucks carry the cargo but have not departed.
	Loaded

	// InTransit trucks are on the road to the drop-off point.
	InTransit
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Standby:   "standby",
		Reserved:  "reserved",
		Loaded:    "loaded",
		InTransit: "in_transit",
	}
}

func (s Status) Validate() error {
	if s < Standby || s > InTransit {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid truck status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// next returns the only status reachable from s.
func (s Status) next() (Status, bool) {
	switch s {
	case Standby:
		return Reserved, true
	case Reserved:
		return Loaded, true
	case Loaded:
		return InTransit, true
	case InTransit:
		return Standby, true
	default:
		return Unknown, false
	}
}

func (s Status) moveTo(target Status) (Status, error) {
	if next, ok := s.next(); !ok || next != target {
		return Unknown, errs.NewInvalidTransitionError("truck", s.String(), target.String())
	}
	return target, nil
}
