package bid

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status of a bid. An active bid mirrors the status of its load request:
//
//	Submitted ──> Accepted ──> Loaded ──> InTransit ──> Delivered
//	    │
//	    ├──> Superseded   (another bid on the same load was accepted)
//	    └──> Rejected     (the trucker withdrew by rejecting the load)
//
// Superseded and Rejected are terminal and keep the bid for auditing.
type Status int

const (
	Unknown Status = iota
	Submitted
	Accepted
	Loaded
	InTransit
	Delivered
	Superseded
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Submitted:  "submitted",
		Accepted:   "accepted",
		Loaded:     "loaded",
		InTransit:  "in_transit",
		Delivered:  "delivered",
		Superseded: "superseded",
		Rejected:   "rejected",
	}
}

func (s Status) Validate() error {
	if s < Submitted || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid bid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the bid still competes for, or holds, its load.
func (s Status) IsActive() bool {
	return s >= Submitted && s <= Delivered
}
