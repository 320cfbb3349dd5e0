package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/loadrequest"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

type LocationRequest struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CreateLoadRequestRequest struct {
	Pickup              LocationRequest `json:"pickup"`
	Dropoff             LocationRequest `json:"dropoff"`
	DistanceKm          float64         `json:"distanceKm"`
	GoodsType           string          `json:"goodsType"`
	WeightTons          float64         `json:"weightTons"`
	RequestedTruckCount int             `json:"requestedTruckCount"`
	PaymentTerms        string          `json:"paymentTerms"`
	Rate                float64         `json:"rate"`
	Comments            string          `json:"comments"`
}

type AdvanceLoadStatusRequest struct {
	Status string `json:"status"`
}

// CreateLoadRequest handles POST /api/v1/loads. The acting user is the client.
func (s *Server) CreateLoadRequest(c echo.Context) error {
	clientID, err := actingUser(c)
	if err != nil {
		return err
	}

	var req CreateLoadRequestRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	pickup, err := kernel.NewLocation(req.Pickup.Address, req.Pickup.Latitude, req.Pickup.Longitude)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickup", err)
	}
	dropoff, err := kernel.NewLocation(req.Dropoff.Address, req.Dropoff.Latitude, req.Dropoff.Longitude)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("dropoff", err)
	}

	cmd, err := commands.NewCreateLoadRequestCommand(
		clientID,
		pickup,
		dropoff,
		req.DistanceKm,
		req.GoodsType,
		req.WeightTons,
		req.RequestedTruckCount,
		req.PaymentTerms,
		req.Rate,
		req.Comments,
	)
	if err != nil {
		return err
	}

	load, err := s.h.CreateLoadRequest.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, loadResponse(load))
}

// GetLoadRequest handles GET /api/v1/loads/:loadId.
func (s *Server) GetLoadRequest(c echo.Context) error {
	loadID, err := pathID(c, "loadId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetLoadRequestQuery(loadID)
	if err != nil {
		return err
	}

	details, err := s.h.GetLoadRequest.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, details)
}

// ListVisibleLoads handles GET /api/v1/truckers/:truckerId/loads.
func (s *Server) ListVisibleLoads(c echo.Context) error {
	truckerID, err := pathID(c, "truckerId")
	if err != nil {
		return err
	}

	query, err := queries.NewListVisibleLoadsQuery(truckerID)
	if err != nil {
		return err
	}

	loads, err := s.h.ListVisibleLoads.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loads)
}

// AdvanceLoadStatus handles POST /api/v1/loads/:loadId/status. The acting user is the
// trucker of the accepted bid.
func (s *Server) AdvanceLoadStatus(c echo.Context) error {
	truckerID, err := actingUser(c)
	if err != nil {
		return err
	}
	loadID, err := pathID(c, "loadId")
	if err != nil {
		return err
	}

	var req AdvanceLoadStatusRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	target, err := loadrequest.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceLoadStatusCommand(loadID, truckerID, target)
	if err != nil {
		return err
	}

	load, err := s.h.AdvanceLoadStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	metrics.TrackTransition(load.Status().String())
	return c.JSON(http.StatusOK, loadResponse(load))
}
