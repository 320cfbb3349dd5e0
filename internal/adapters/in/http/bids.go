package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

type SubmitBidRequest struct {
	TruckIDs []kernel.UUID `json:"truckIds"`
	Price    float64       `json:"price"`
}

type RejectLoadRequest struct {
	Reason string `json:"reason"`
}

// SubmitBid handles POST /api/v1/loads/:loadId/bids. The acting user is the trucker.
func (s *Server) SubmitBid(c echo.Context) error {
	truckerID, err := actingUser(c)
	if err != nil {
		return err
	}
	loadID, err := pathID(c, "loadId")
	if err != nil {
		return err
	}

	var req SubmitBidRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewSubmitBidCommand(loadID, truckerID, req.TruckIDs, req.Price)
	if err != nil {
		return err
	}

	submitted, err := s.h.SubmitBid.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, bidResponse(submitted))
}

// RejectLoad handles POST /api/v1/loads/:loadId/rejections. Repeating it returns the
// stored rejection.
func (s *Server) RejectLoad(c echo.Context) error {
	truckerID, err := actingUser(c)
	if err != nil {
		return err
	}
	loadID, err := pathID(c, "loadId")
	if err != nil {
		return err
	}

	var req RejectLoadRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewRejectLoadCommand(loadID, truckerID, req.Reason)
	if err != nil {
		return err
	}

	rejection, err := s.h.RejectLoad.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, rejectionResponse(rejection))
}

// AcceptBid handles POST /api/v1/loads/:loadId/bids/:bidId/accept. The acting user is
// the client who owns the load.
func (s *Server) AcceptBid(c echo.Context) error {
	clientID, err := actingUser(c)
	if err != nil {
		return err
	}
	loadID, err := pathID(c, "loadId")
	if err != nil {
		return err
	}
	bidID, err := pathID(c, "bidId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptBidCommand(loadID, clientID, bidID)
	if err != nil {
		return err
	}

	load, err := s.h.AcceptBid.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	metrics.TrackTransition(load.Status().String())
	return c.JSON(http.StatusOK, loadResponse(load))
}
