package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rating"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListVisibleLoadsQuery(t *testing.T) {
	truckerID := kernel.NewUUID()

	query, err := queries.NewListVisibleLoadsQuery(truckerID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.TruckerID().IsEqual(truckerID))
}

func TestNewListVisibleLoadsQuery_MissingTrucker(t *testing.T) {
	_, err := queries.NewListVisibleLoadsQuery(kernel.UUID{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetLoadRequestQuery_MissingLoad(t *testing.T) {
	_, err := queries.NewGetLoadRequestQuery(kernel.UUID{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetRatingQuery(t *testing.T) {
	loadID := kernel.NewUUID()

	query, err := queries.NewGetRatingQuery(loadID, rating.Trucker)

	require.NoError(t, err)
	assert.True(t, query.LoadRequestID().IsEqual(loadID))
	assert.Equal(t, rating.Trucker, query.RaterRole())
}

func TestNewGetRatingQuery_UnknownRole(t *testing.T) {
	_, err := queries.NewGetRatingQuery(kernel.NewUUID(), rating.UnknownRole)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListTruckerTrucksQuery_MissingTrucker(t *testing.T) {
	_, err := queries.NewListTruckerTrucksQuery(kernel.UUID{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.ListVisibleLoadsQuery{}.Validate(), queries.ErrListVisibleLoadsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetLoadRequestQuery{}.Validate(), queries.ErrGetLoadRequestQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetRatingQuery{}.Validate(), queries.ErrGetRatingQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListTruckerTrucksQuery{}.Validate(), queries.ErrListTruckerTrucksQueryIsNotConstructed)
}
