package http

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// UserIDHeader carries the id of the acting client or trucker. Authentication happens
// upstream; the header is trusted.
const UserIDHeader = "X-User-ID"

func actingUser(c echo.Context) (kernel.UUID, error) {
	raw := c.Request().Header.Get(UserIDHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(UserIDHeader)
	}
	return parseID(UserIDHeader, raw)
}

func pathID(c echo.Context, name string) (kernel.UUID, error) {
	return parseID(name, c.Param(name))
}

func parseID(name, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if err = id.Validate(); err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return id, nil
}
