package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrRegisterTruckCommandIsNotConstructed = errors.New(
	"RegisterTruckCommand must be created via NewRegisterTruckCommand constructor",
)

// RegisterTruckCommand adds a truck to a trucker's fleet. Trucks start on standby.
type RegisterTruckCommand struct {
	truckerID     kernel.UUID
	truckType     string
	maxWeightTons float64
	plateNumber   string
	driverName    string
	driverPhone   string

	guard guard.ConstructorGuard
}

// NewRegisterTruckCommand checks the identity of the owner. The truck attributes are
// validated by the Truck aggregate itself.
func NewRegisterTruckCommand(
	truckerID kernel.UUID,
	truckType string,
	maxWeightTons float64,
	plateNumber string,
	driverName string,
	driverPhone string,
) (RegisterTruckCommand, error) {
	if err := truckerID.Validate(); err != nil {
		return RegisterTruckCommand{}, errs.NewValueIsRequiredErrorWithCause("truckerId", err)
	}

	return RegisterTruckCommand{
		truckerID:     truckerID,
		truckType:     truckType,
		maxWeightTons: maxWeightTons,
		plateNumber:   plateNumber,
		driverName:    driverName,
		driverPhone:   driverPhone,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterTruckCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTruckCommandIsNotConstructed)
}

func (c RegisterTruckCommand) TruckerID() kernel.UUID {
	return c.truckerID
}

func (c RegisterTruckCommand) TruckType() string {
	return c.truckType
}

func (c RegisterTruckCommand) MaxWeightTons() float64 {
	return c.maxWeightTons
}

func (c RegisterTruckCommand) PlateNumber() string {
	return c.plateNumber
}

func (c RegisterTruckCommand) DriverName() string {
	return c.driverName
}

func (c RegisterTruckCommand) DriverPhone() string {
	return c.driverPhone
}
