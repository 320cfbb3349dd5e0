package rating

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

// Role is the side of a delivered load a participant was on.
type Role int

const (
	UnknownRole Role = iota
	Client
	Trucker
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Client:      "client",
		Trucker:     "trucker",
	}
}

func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "client":
		return Client, nil
	case "trucker":
		return Trucker, nil
	default:
		return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
	}
}

func (r Role) Validate() error {
	if r != Client && r != Trucker {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Counterpart returns the role on the other side of the load.
func (r Role) Counterpart() Role {
	switch r {
	case Client:
		return Trucker
	case Trucker:
		return Client
	default:
		return UnknownRole
	}
}
