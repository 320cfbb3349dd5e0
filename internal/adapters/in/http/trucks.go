package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type RegisterTruckRequest struct {
	TruckType     string  `json:"truckType"`
	MaxWeightTons float64 `json:"maxWeightTons"`
	PlateNumber   string  `json:"plateNumber"`
	DriverName    string  `json:"driverName"`
	DriverPhone   string  `json:"driverPhone"`
}

// RegisterTruck handles POST /api/v1/trucks. The acting user becomes the owner.
func (s *Server) RegisterTruck(c echo.Context) error {
	truckerID, err := actingUser(c)
	if err != nil {
		return err
	}

	var req RegisterTruckRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterTruckCommand(
		truckerID, req.TruckType, req.MaxWeightTons, req.PlateNumber, req.DriverName, req.DriverPhone)
	if err != nil {
		return err
	}

	registered, err := s.h.RegisterTruck.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, truckResponse(registered))
}

// ListTruckerTrucks handles GET /api/v1/truckers/:truckerId/trucks.
func (s *Server) ListTruckerTrucks(c echo.Context) error {
	truckerID, err := pathID(c, "truckerId")
	if err != nil {
		return err
	}

	query, err := queries.NewListTruckerTrucksQuery(truckerID)
	if err != nil {
		return err
	}

	trucks, err := s.h.ListTruckerTrucks.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trucks)
}
