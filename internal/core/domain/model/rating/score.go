package rating

import (
	"errors"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const (
	MinScore = 1
	MaxScore = 5
)

var ErrScoreIsNotConstructed = errors.New("Score must be created via NewScore constructor")

// Score is an integer grade from MinScore to MaxScore.
type Score struct {
	value int
	guard guard.ConstructorGuard
}

func NewScore(value int) (Score, error) {
	if value < MinScore || value > MaxScore {
		return Score{}, errs.NewValueIsOutOfRangeError("score", value, MinScore, MaxScore)
	}
	return Score{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (s Score) Validate() error {
	return s.guard.Validate(ErrScoreIsNotConstructed)
}

func (s Score) Value() int {
	return s.value
}
