// Package http exposes the coordinator over a JSON API built on echo.
package http

import (
	"context"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/loadrequest"
	"freight/internal/core/domain/model/rating"
	"freight/internal/core/domain/model/truck"

	"github.com/labstack/echo/v4"
)

// handler is satisfied by every command and query handler of the application layer.
type handler[C, R any] interface {
	Handle(ctx context.Context, request C) (R, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateLoadRequest handler[commands.CreateLoadRequestCommand, *loadrequest.LoadRequest]
	SubmitBid         handler[commands.SubmitBidCommand, *bid.Bid]
	RejectLoad        handler[commands.RejectLoadCommand, bid.Rejection]
	AcceptBid         handler[commands.AcceptBidCommand, *loadrequest.LoadRequest]
	AdvanceLoadStatus handler[commands.AdvanceLoadStatusCommand, *loadrequest.LoadRequest]
	SubmitRating      handler[commands.SubmitRatingCommand, *rating.Rating]
	RegisterTruck     handler[commands.RegisterTruckCommand, *truck.Truck]

	GetLoadRequest    handler[queries.GetLoadRequestQuery, queries.LoadRequestDetails]
	ListVisibleLoads  handler[queries.ListVisibleLoadsQuery, []queries.LoadView]
	GetRating         handler[queries.GetRatingQuery, queries.RatingView]
	ListTruckerTrucks handler[queries.ListTruckerTrucksQuery, []queries.TruckView]
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// Register mounts the API routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")

	api.POST("/loads", s.CreateLoadRequest)
	api.GET("/loads/:loadId", s.GetLoadRequest)
	api.POST("/loads/:loadId/bids", s.SubmitBid)
	api.POST("/loads/:loadId/rejections", s.RejectLoad)
	api.POST("/loads/:loadId/bids/:bidId/accept", s.AcceptBid)
	api.POST("/loads/:loadId/status", s.AdvanceLoadStatus)
	api.POST("/loads/:loadId/ratings", s.SubmitRating)
	api.GET("/loads/:loadId/ratings/:raterRole", s.GetRating)

	api.POST("/trucks", s.RegisterTruck)
	api.GET("/truckers/:truckerId/loads", s.ListVisibleLoads)
	api.GET("/truckers/:truckerId/trucks", s.ListTruckerTrucks)
}
