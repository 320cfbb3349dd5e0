package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/rating"

	"github.com/labstack/echo/v4"
)

type SubmitRatingRequest struct {
	RaterRole string `json:"raterRole"`
	RatedID   string `json:"ratedId"`
	RatedRole string `json:"ratedRole"`
	Score     int    `json:"score"`
	Comment   string `json:"comment"`
}

// SubmitRating handles POST /api/v1/loads/:loadId/ratings. The acting user is the rater.
func (s *Server) SubmitRating(c echo.Context) error {
	raterID, err := actingUser(c)
	if err != nil {
		return err
	}
	loadID, err := pathID(c, "loadId")
	if err != nil {
		return err
	}

	var req SubmitRatingRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	ratedID, err := parseID("ratedId", req.RatedID)
	if err != nil {
		return err
	}
	raterRole, err := rating.ParseRole(req.RaterRole)
	if err != nil {
		return err
	}
	ratedRole, err := rating.ParseRole(req.RatedRole)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSubmitRatingCommand(loadID, raterID, raterRole, ratedID, ratedRole, req.Score, req.Comment)
	if err != nil {
		return err
	}

	stored, err := s.h.SubmitRating.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, ratingResponse(stored))
}

// GetRating handles GET /api/v1/loads/:loadId/ratings/:raterRole.
func (s *Server) GetRating(c echo.Context) error {
	loadID, err := pathID(c, "loadId")
	if err != nil {
		return err
	}
	raterRole, err := rating.ParseRole(c.Param("raterRole"))
	if err != nil {
		return err
	}

	query, err := queries.NewGetRatingQuery(loadID, raterRole)
	if err != nil {
		return err
	}

	view, err := s.h.GetRating.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}
