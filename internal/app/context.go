package app

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/api"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/models"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/session"
)

// SessionContext is the process-wide composition of session manager and
// repositories. It is the only writer of the collections; consumers read
// snapshots and issue commands through it.
type SessionContext struct {
	ctx      context.Context
	manager  *session.Manager
	orders   *repository.OrderRepository
	couriers *repository.CourierRepository
	logger   *zap.Logger
}

// Snapshot is the read-only view handed to consumers. Collections are
// copies; mutating them has no effect on the context.
type Snapshot struct {
	State           session.State
	IsAuthenticated bool
	User            *models.User
	Orders          []models.Order
	MyOrders        []models.Order
	Couriers        []models.Courier
}

func New(ctx context.Context, manager *session.Manager, orders *repository.OrderRepository, couriers *repository.CourierRepository, logger *zap.Logger) *SessionContext {
	c := &SessionContext{
		ctx:      ctx,
		manager:  manager,
		orders:   orders,
		couriers: couriers,
		logger:   logger,
	}
	manager.SetStateListener(c.onStateChange)
	return c
}

// onStateChange reacts to session transitions: entering Authenticated
// hydrates all three collections once, returning to Unauthenticated drops
// them.
func (c *SessionContext) onStateChange(state session.State) {
	switch state {
	case session.Authenticated:
		c.refreshAll()
	case session.Unauthenticated:
		c.orders.Clear()
		c.couriers.Clear()
		c.logger.Debug("collections cleared")
	}
}

// refreshAll fans out the three collection fetches. Each fetch swallows
// its own errors, so the group never fails; the wait just bounds the
// refresh before control returns to the caller.
func (c *SessionContext) refreshAll() {
	g, ctx := errgroup.WithContext(c.ctx)
	g.Go(func() error {
		c.orders.FetchOrders(ctx)
		return nil
	})
	g.Go(func() error {
		c.orders.FetchMyOrders(ctx)
		return nil
	})
	g.Go(func() error {
		c.couriers.FetchCouriers(ctx)
		return nil
	})
	_ = g.Wait()
}

func (c *SessionContext) Snapshot() Snapshot {
	state := c.manager.State()
	return Snapshot{
		State:           state,
		IsAuthenticated: state == session.Authenticated,
		User:            c.manager.User(),
		Orders:          c.orders.Orders(),
		MyOrders:        c.orders.MyOrders(),
		Couriers:        c.couriers.Couriers(),
	}
}

func (c *SessionContext) Hydrate(ctx context.Context) error {
	return c.manager.Hydrate(ctx)
}

func (c *SessionContext) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	return c.manager.Login(ctx, email, password)
}

func (c *SessionContext) Logout(ctx context.Context) error {
	return c.manager.Logout(ctx)
}

func (c *SessionContext) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return c.manager.ChangePassword(ctx, currentPassword, newPassword)
}

func (c *SessionContext) AssignOrder(ctx context.Context, orderID, deliveryID string) (*api.MutationResponse, error) {
	return c.orders.AssignOrder(ctx, orderID, deliveryID)
}

func (c *SessionContext) CreateOrder(ctx context.Context, form models.OrderForm) (*api.MutationResponse, error) {
	return c.orders.CreateOrder(ctx, form)
}

func (c *SessionContext) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*api.MutationResponse, error) {
	return c.orders.UpdateOrderStatus(ctx, orderID, status)
}

func (c *SessionContext) AddCourier(ctx context.Context, name, surname string) (*api.MutationResponse, error) {
	return c.couriers.AddCourier(ctx, name, surname)
}

func (c *SessionContext) UpdateAvailability(ctx context.Context, activo bool) error {
	if err := c.couriers.UpdateAvailability(ctx, activo); err != nil {
		return err
	}
	c.manager.SetUserStatus(activo)
	return nil
}
