//go:generate mockgen -source ./orders.go -destination=./mocks/orders.go -package=mock_repository
package repository

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/api"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/clienterr"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/models"
)

// TokenSource yields the current persisted token. Implemented by the
// session manager; reads hit the credential store fresh on every call.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type OrdersAPI interface {
	ListOrders(ctx context.Context, token string) ([]models.Order, error)
	ListMyOrders(ctx context.Context, token string) ([]models.Order, error)
	AssignOrder(ctx context.Context, token, orderID, deliveryID string) (*api.MutationResponse, error)
	CreateOrder(ctx context.Context, token string, form models.OrderForm) (*api.MutationResponse, error)
	UpdateOrderStatus(ctx context.Context, token, orderID string, status models.OrderStatus) (*api.MutationResponse, error)
}

// CourierRefresher re-syncs the courier collection after mutations that
// change courier workload.
type CourierRefresher interface {
	FetchCouriers(ctx context.Context)
}

// OrderRepository owns the two order collections. Fetches are best-effort
// background refreshes and swallow errors; mutations propagate errors to
// the caller. Consistency after a write comes from re-fetching the
// authoritative list, never from patching collections locally.
type OrderRepository struct {
	api      OrdersAPI
	tokens   TokenSource
	couriers CourierRefresher
	logger   *zap.Logger

	mu       sync.RWMutex
	orders   []models.Order
	myOrders []models.Order
}

func NewOrderRepository(ordersAPI OrdersAPI, tokens TokenSource, couriers CourierRefresher, logger *zap.Logger) *OrderRepository {
	return &OrderRepository{
		api:      ordersAPI,
		tokens:   tokens,
		couriers: couriers,
		logger:   logger,
	}
}

func (r *OrderRepository) Orders() []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *OrderRepository) MyOrders() []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Order, len(r.myOrders))
	copy(out, r.myOrders)
	return out
}

// FetchOrders refreshes the admin-scoped order list. Failures are logged
// and swallowed: consumers keep the previous snapshot.
func (r *OrderRepository) FetchOrders(ctx context.Context) {
	token, err := r.tokens.Token(ctx)
	if err != nil {
		r.logger.Warn("skipping order refresh", zap.Error(err))
		metrics.RefreshFailuresTotal.WithLabelValues("orders").Inc()
		return
	}

	orders, err := r.api.ListOrders(ctx, token)
	if err != nil {
		r.logger.Warn("failed to fetch orders", zap.Error(err))
		metrics.RefreshFailuresTotal.WithLabelValues("orders").Inc()
		return
	}

	r.mu.Lock()
	r.orders = orders
	r.mu.Unlock()

	metrics.CollectionRefreshesTotal.WithLabelValues("orders").Inc()
	r.logger.Debug("orders refreshed", zap.Int("count", len(orders)))
}

// FetchMyOrders refreshes the courier-scoped order list with the same
// silent-failure policy.
func (r *OrderRepository) FetchMyOrders(ctx context.Context) {
	token, err := r.tokens.Token(ctx)
	if err != nil {
		r.logger.Warn("skipping my-order refresh", zap.Error(err))
		metrics.RefreshFailuresTotal.WithLabelValues("my_orders").Inc()
		return
	}

	orders, err := r.api.ListMyOrders(ctx, token)
	if err != nil {
		r.logger.Warn("failed to fetch my orders", zap.Error(err))
		metrics.RefreshFailuresTotal.WithLabelValues("my_orders").Inc()
		return
	}

	r.mu.Lock()
	r.myOrders = orders
	r.mu.Unlock()

	metrics.CollectionRefreshesTotal.WithLabelValues("my_orders").Inc()
	r.logger.Debug("my orders refreshed", zap.Int("count", len(orders)))
}

// AssignOrder assigns an order to a courier. Success changes both an
// order's state and a courier's workload, so both collections are
// re-fetched.
func (r *OrderRepository) AssignOrder(ctx context.Context, orderID, deliveryID string) (*api.MutationResponse, error) {
	if orderID == "" || deliveryID == "" {
		return nil, clienterr.Validation("orderId and deliveryId are required")
	}

	token, err := r.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := r.api.AssignOrder(ctx, token, orderID, deliveryID)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("assign_order").Inc()
		r.logger.Error("failed to assign order",
			zap.String("order_id", orderID),
			zap.String("delivery_id", deliveryID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to assign order: %w", err)
	}

	r.FetchOrders(ctx)
	r.couriers.FetchCouriers(ctx)
	return resp, nil
}

// CreateOrder submits a new order. Field validation is the caller's
// responsibility; the repository only relays the form.
func (r *OrderRepository) CreateOrder(ctx context.Context, form models.OrderForm) (*api.MutationResponse, error) {
	token, err := r.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := r.api.CreateOrder(ctx, token, form)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_order").Inc()
		r.logger.Error("failed to create order", zap.Error(err))
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	r.FetchOrders(ctx)
	return resp, nil
}

// UpdateOrderStatus posts a status transition. The forward-only ordering is
// not checked here: callers offer only the next legal transition (see
// models.OrderStatus.Next) and the server has the final word.
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*api.MutationResponse, error) {
	if orderID == "" {
		return nil, clienterr.Validation("orderId is required")
	}
	if !status.Valid() {
		return nil, clienterr.Validation("unknown order status %q", status)
	}

	token, err := r.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := r.api.UpdateOrderStatus(ctx, token, orderID, status)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_order_status").Inc()
		r.logger.Error("failed to update order status",
			zap.String("order_id", orderID),
			zap.String("status", string(status)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	r.FetchOrders(ctx)
	r.FetchMyOrders(ctx)
	return resp, nil
}

// Clear drops both collections. Called on logout.
func (r *OrderRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = nil
	r.myOrders = nil
}
