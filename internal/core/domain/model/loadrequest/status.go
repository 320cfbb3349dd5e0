package loadrequest

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

// Status is the position of a load request in its lifecycle.
//
// State transitions (strictly forward, one step at a time):
//
//	Open ──> Accepted ──> Loaded ──> InTransit ──> Delivered
//
// Rejection by a trucker is not a status: it only hides the request from that trucker.
type Status int

const (
	Unknown Status = iota

	// Open requests are visible to truckers and accept bids.
	Open

	// Accepted requests have exactly one accepted bid and reserved trucks.
	Accepted

	// Loaded requests have the cargo on the trucks.
	Loaded

	// InTransit requests are on the road.
	InTransit

	// Delivered is final. Ratings can be submitted from here on.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Open:      "open",
		Accepted:  "accepted",
		Loaded:    "loaded",
		InTransit: "in_transit",
		Delivered: "delivered",
	}
}

// ParseStatus converts the wire name of a status ("open", "in_transit", ...) back into a Status.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid load request status", s))
}

func (s Status) Validate() error {
	if s < Open || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid load request status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Next returns the immediate successor of s. Delivered has none.
func (s Status) Next() (Status, bool) {
	if s < Open || s >= Delivered {
		return Unknown, false
	}
	return s + 1, true
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Delivered
}
