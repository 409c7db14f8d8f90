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

func newTestOrderRepo(t *testing.T) (*OrderRepository, *mock_repository.MockOrdersAPI, *mock_repository.MockTokenSource, *mock_repository.MockCourierRefresher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ordersAPI := mock_repository.NewMockOrdersAPI(ctrl)
	tokens := mock_repository.NewMockTokenSource(ctrl)
	couriers := mock_repository.NewMockCourierRefresher(ctrl)
	repo := NewOrderRepository(ordersAPI, tokens, couriers, zap.NewNop())
	return repo, ordersAPI, tokens, couriers
}

func TestOrderRepository_FetchOrders(t *testing.T) {
	repo, ordersAPI, tokens, _ := newTestOrderRepo(t)
	ctx := context.Background()

	orders := []models.Order{
		{ID: "o1", OrderNumber: "1001", Status: models.StatusPending},
		{ID: "o2", OrderNumber: "1002", Status: models.StatusAssigned, DeliveryID: "d1"},
	}

	tokens.EXPECT().Token(ctx).Return("tok1", nil)
	ordersAPI.EXPECT().ListOrders(ctx, "tok1").Return(orders, nil)

	repo.FetchOrders(ctx)
	assert.Equal(t, orders, repo.Orders())
}

func TestOrderRepository_FetchFailureKeepsSnapshot(t *testing.T) {
	repo, ordersAPI, tokens, _ := newTestOrderRepo(t)
	ctx := context.Background()

	seeded := []models.Order{{ID: "o1", Status: models.StatusPending}}
	tokens.EXPECT().Token(ctx).Return("tok1", nil)
	ordersAPI.EXPECT().ListOrders(ctx, "tok1").Return(seeded, nil)
	repo.FetchOrders(ctx)

	// failed refresh is swallowed; consumers keep the previous snapshot
	tokens.EXPECT().Token(ctx).Return("tok1", nil)
	ordersAPI.EXPECT().ListOrders(ctx, "tok1").Return(nil, errors.New("boom"))
	repo.FetchOrders(ctx)

	assert.Equal(t, seeded, repo.Orders())
}

func TestOrderRepository_FetchWithoutTokenSkips(t *testing.T) {
	repo, _, tokens, _ := newTestOrderRepo(t)
	ctx := context.Background()

	tokens.EXPECT().Token(ctx).Return("", clienterr.ErrNoToken)

	repo.FetchOrders(ctx)
	assert.Empty(t, repo.Orders())
}

func TestOrderRepository_AssignOrder(t *testing.T) {
	t.Run("success refreshes both collections once", func(t *testing.T) {
		repo, ordersAPI, tokens, couriers := newTestOrderRepo(t)
		ctx := context.Background()

		tokens.EXPECT().Token(ctx).Return("tok1", nil).Times(2)
		ordersAPI.EXPECT().AssignOrder(ctx, "tok1", "o1", "d1").
			Return(&api.MutationResponse{Status: "success"}, nil)
		ordersAPI.EXPECT().ListOrders(ctx, "tok1").Return([]models.Order{}, nil).Times(1)
		couriers.EXPECT().FetchCouriers(ctx).Times(1)

		resp, err := repo.AssignOrder(ctx, "o1", "d1")
		require.NoError(t, err)
		assert.True(t, resp.OK())
	})

	t.Run("failure triggers no refresh", func(t *testing.T) {
		repo, ordersAPI, tokens, _ := newTestOrderRepo(t)
		ctx := context.Background()

		tokens.EXPECT().Token(ctx).Return("tok1", nil)
		ordersAPI.EXPECT().AssignOrder(ctx, "tok1", "o1", "d1").
			Return(nil, &clienterr.HTTPError{Status: 404, Message: "order not found"})

		_, err := repo.AssignOrder(ctx, "o1", "d1")
		require.Error(t, err)

		var httpErr *clienterr.HTTPError
		assert.ErrorAs(t, err, &httpErr)
	})

	t.Run("validation rejects empty arguments", func(t *testing.T) {
		tests := []struct {
			name       string
			orderID    string
			deliveryID string
		}{
			{name: "empty order id", orderID: "", deliveryID: "d1"},
			{name: "empty delivery id", orderID: "o1", deliveryID: ""},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				repo, _, _, _ := newTestOrderRepo(t)

				_, err := repo.AssignOrder(context.Background(), tc.orderID, tc.deliveryID)
				assert.ErrorIs(t, err, clienterr.ErrValidation)
			})
		}
	})
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	repo, ordersAPI, tokens, _ := newTestOrderRepo(t)
	ctx := context.Background()

	form := models.OrderForm{
		OrderNumber:  "1003",
		CustomerName: "Marta",
		Address:      "Calle Mayor 5",
	}

	tokens.EXPECT().Token(ctx).Return("tok1", nil).Times(2)
	ordersAPI.EXPECT().CreateOrder(ctx, "tok1", form).
		Return(&api.MutationResponse{Status: "success"}, nil)
	ordersAPI.EXPECT().ListOrders(ctx, "tok1").
		Return([]models.Order{{ID: "o3", OrderNumber: "1003", Status: models.StatusPending}}, nil)

	_, err := repo.CreateOrder(ctx, form)
	require.NoError(t, err)
	require.Len(t, repo.Orders(), 1)
	assert.Equal(t, "1003", repo.Orders()[0].OrderNumber)
}

func TestOrderRepository_UpdateOrderStatusDoesNotEnforceOrdering(t *testing.T) {
	// the repository relays any valid status and trusts the server; the
	// forward-only rule lives in models.OrderStatus and the UI contract
	repo, ordersAPI, tokens, _ := newTestOrderRepo(t)
	ctx := context.Background()

	tokens.EXPECT().Token(ctx).Return("tok1", nil).Times(3)
	ordersAPI.EXPECT().UpdateOrderStatus(ctx, "tok1", "o1", models.StatusDelivered).
		Return(&api.MutationResponse{Status: "success"}, nil)
	ordersAPI.EXPECT().ListOrders(ctx, "tok1").Return(nil, nil)
	ordersAPI.EXPECT().ListMyOrders(ctx, "tok1").Return(nil, nil)

	// jumping pending straight to delivered is not blocked client-side
	_, err := repo.UpdateOrderStatus(ctx, "o1", models.StatusDelivered)
	require.NoError(t, err)

	// but the UI helper rejects the same jump
	assert.False(t, models.StatusPending.CanTransition(models.StatusDelivered))
}

func TestOrderRepository_UpdateOrderStatusValidation(t *testing.T) {
	repo, _, _, _ := newTestOrderRepo(t)

	_, err := repo.UpdateOrderStatus(context.Background(), "", models.StatusAssigned)
	assert.ErrorIs(t, err, clienterr.ErrValidation)

	_, err = repo.UpdateOrderStatus(context.Background(), "o1", models.OrderStatus("cancelled"))
	assert.ErrorIs(t, err, clienterr.ErrValidation)
}

func TestOrderRepository_Clear(t *testing.T) {
	repo, ordersAPI, tokens, _ := newTestOrderRepo(t)
	ctx := context.Background()

	tokens.EXPECT().Token(ctx).Return("tok1", nil).Times(2)
	ordersAPI.EXPECT().ListOrders(ctx, "tok1").Return([]models.Order{{ID: "o1"}}, nil)
	ordersAPI.EXPECT().ListMyOrders(ctx, "tok1").Return([]models.Order{{ID: "o2"}}, nil)

	repo.FetchOrders(ctx)
	repo.FetchMyOrders(ctx)
	require.NotEmpty(t, repo.Orders())
	require.NotEmpty(t, repo.MyOrders())

	repo.Clear()
	assert.Empty(t, repo.Orders())
	assert.Empty(t, repo.MyOrders())
}
