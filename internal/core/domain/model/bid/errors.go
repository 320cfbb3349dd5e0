package bid

import "errors"

var (
	// ErrInvalidTruckCount is returned when a bid names more trucks than the load requests.
	ErrInvalidTruckCount = errors.New("invalid truck count")

	// ErrDuplicateBid is returned when a trucker already holds an active bid on the load.
	ErrDuplicateBid = errors.New("duplicate bid")
)
