package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/api"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/clienterr"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/models"
	mock_repository "gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/repository/mocks"
)

func newTestCourierRepo(t *testing.T) (*CourierRepository, *mock_repository.MockCouriersAPI, *mock_repository.MockTokenSource) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	couriersAPI := mock_repository.NewMockCouriersAPI(ctrl)
	tokens := mock_repository.NewMockTokenSource(ctrl)
	repo := NewCourierRepository(couriersAPI, tokens, zap.NewNop())
	return repo, couriersAPI, tokens
}

func TestCourierRepository_FetchCouriers(t *testing.T) {
	repo, couriersAPI, tokens := newTestCourierRepo(t)
	ctx := context.Background()

	couriers := []models.Courier{
		{ID: "d1", Name: "Luis", Activo: true, Rating: 4.5},
		{ID: "d2", Name: "Marta", Activo: false},
	}

	tokens.EXPECT().Token(ctx).Return("tok1", nil)
	couriersAPI.EXPECT().ListCouriers(ctx, "tok1").Return(couriers, nil)

	repo.FetchCouriers(ctx)
	assert.Equal(t, couriers, repo.Couriers())
}

func TestCourierRepository_FetchFailureKeepsSnapshot(t *testing.T) {
	repo, couriersAPI, tokens := newTestCourierRepo(t)
	ctx := context.Background()

	seeded := []models.Courier{{ID: "d1", Activo: true}}
	tokens.EXPECT().Token(ctx).Return("tok1", nil)
	couriersAPI.EXPECT().ListCouriers(ctx, "tok1").Return(seeded, nil)
	repo.FetchCouriers(ctx)

	tokens.EXPECT().Token(ctx).Return("tok1", nil)
	couriersAPI.EXPECT().ListCouriers(ctx, "tok1").Return(nil, errors.New("boom"))
	repo.FetchCouriers(ctx)

	assert.Equal(t, seeded, repo.Couriers())
}

func TestCourierRepository_AddCourier(t *testing.T) {
	t.Run("success refreshes the list", func(t *testing.T) {
		repo, couriersAPI, tokens := newTestCourierRepo(t)
		ctx := context.Background()

		couriersAPI.EXPECT().AddCourier(ctx, "Luis", "Pérez").
			Return(&api.MutationResponse{Status: "success"}, nil)
		tokens.EXPECT().Token(ctx).Return("tok1", nil)
		couriersAPI.EXPECT().ListCouriers(ctx, "tok1").
			Return([]models.Courier{{ID: "d1", Name: "Luis", Surname: "Pérez"}}, nil)

		_, err := repo.AddCourier(ctx, "Luis", "Pérez")
		require.NoError(t, err)
		require.Len(t, repo.Couriers(), 1)
	})

	t.Run("failure propagates without refresh", func(t *testing.T) {
		repo, couriersAPI, _ := newTestCourierRepo(t)
		ctx := context.Background()

		couriersAPI.EXPECT().AddCourier(ctx, "Luis", "Pérez").
			Return(nil, errors.New("duplicate"))

		_, err := repo.AddCourier(ctx, "Luis", "Pérez")
		require.Error(t, err)
	})

	t.Run("validation", func(t *testing.T) {
		repo, _, _ := newTestCourierRepo(t)

		_, err := repo.AddCourier(context.Background(), "", "Pérez")
		assert.ErrorIs(t, err, clienterr.ErrValidation)

		_, err = repo.AddCourier(context.Background(), "Luis", "")
		assert.ErrorIs(t, err, clienterr.ErrValidation)
	})
}

func TestCourierRepository_UpdateAvailability(t *testing.T) {
	t.Run("success refreshes the list", func(t *testing.T) {
		repo, couriersAPI, tokens := newTestCourierRepo(t)
		ctx := context.Background()

		tokens.EXPECT().Token(ctx).Return("tok1", nil).Times(2)
		couriersAPI.EXPECT().UpdateAvailability(ctx, "tok1", false).Return(nil)
		couriersAPI.EXPECT().ListCouriers(ctx, "tok1").
			Return([]models.Courier{{ID: "d1", Activo: false}}, nil)

		require.NoError(t, repo.UpdateAvailability(ctx, false))
		require.Len(t, repo.Couriers(), 1)
		assert.False(t, repo.Couriers()[0].Activo)
	})

	t.Run("requires token", func(t *testing.T) {
		repo, _, tokens := newTestCourierRepo(t)
		ctx := context.Background()

		tokens.EXPECT().Token(ctx).Return("", clienterr.ErrNoToken)

		err := repo.UpdateAvailability(ctx, true)
		assert.ErrorIs(t, err, clienterr.ErrNoToken)
	})
}

func TestCourierRepository_Clear(t *testing.T) {
	repo, couriersAPI, tokens := newTestCourierRepo(t)
	ctx := context.Background()

	tokens.EXPECT().Token(ctx).Return("tok1", nil)
	couriersAPI.EXPECT().ListCouriers(ctx, "tok1").Return([]models.Courier{{ID: "d1"}}, nil)

	repo.FetchCouriers(ctx)
	require.NotEmpty(t, repo.Couriers())

	repo.Clear()
	assert.Empty(t, repo.Couriers())
}
