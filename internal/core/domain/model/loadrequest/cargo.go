package loadrequest

import (
	"errors"
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCargoIsNotConstructed = errors.New("Cargo must be created via NewCargo constructor")

// Cargo describes what is shipped and how many trucks the client asks for.
type Cargo struct {
	goodsType           string
	weightTons          float64
	requestedTruckCount int
	guard               guard.ConstructorGuard
}

// NewCargo requires a goods type, a positive weight and at least one truck.
func NewCargo(goodsType string, weightTons float64, requestedTruckCount int) (Cargo, error) {
	c := Cargo{guard: guard.NewConstructorGuard()}

	goodsType = strings.TrimSpace(goodsType)
	var errGoods, errWeight, errCount error
	if goodsType == "" {
		errGoods = errs.NewValueIsRequiredError("goodsType")
	}
	if weightTons <= 0 {
		errWeight = errs.NewValueIsInvalidErrorWithCause("weightTons", fmt.Errorf("%g is not greater than 0", weightTons))
	}
	if requestedTruckCount < 1 {
		errCount = errs.NewValueIsInvalidErrorWithCause(
			"requestedTruckCount", fmt.Errorf("%d is less than 1", requestedTruckCount))
	}
	if err := errors.Join(errGoods, errWeight, errCount); err != nil {
		return Cargo{}, err
	}

	c.goodsType = goodsType
	c.weightTons = weightTons
	c.requestedTruckCount = requestedTruckCount
	return c, nil
}

func (c Cargo) Validate() error {
	return c.guard.Validate(ErrCargoIsNotConstructed)
}

func (c Cargo) GoodsType() string {
	return c.goodsType
}

func (c Cargo) WeightTons() float64 {
	return c.weightTons
}

func (c Cargo) RequestedTruckCount() int {
	return c.requestedTruckCount
}
