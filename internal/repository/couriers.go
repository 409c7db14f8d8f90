//go:generate mockgen -source ./couriers.go -destination=./mocks/couriers.go -package=mock_repository
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

type CouriersAPI interface {
	ListCouriers(ctx context.Context, token string) ([]models.Courier, error)
	AddCourier(ctx context.Context, name, surname string) (*api.MutationResponse, error)
	UpdateAvailability(ctx context.Context, token string, activo bool) error
}

// CourierRepository owns the courier collection and the availability flag
// of the authenticated courier.
type CourierRepository struct {
	api    CouriersAPI
	tokens TokenSource
	logger *zap.Logger

	mu       sync.RWMutex
	couriers []models.Courier
}

func NewCourierRepository(couriersAPI CouriersAPI, tokens TokenSource, logger *zap.Logger) *CourierRepository {
	return &CourierRepository{
		api:    couriersAPI,
		tokens: tokens,
		logger: logger,
	}
}

func (r *CourierRepository) Couriers() []models.Courier {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Courier, len(r.couriers))
	copy(out, r.couriers)
	return out
}

// FetchCouriers refreshes the courier list. Same silent-failure policy as
// order fetches.
func (r *CourierRepository) FetchCouriers(ctx context.Context) {
	token, err := r.tokens.Token(ctx)
	if err != nil {
		r.logger.Warn("skipping courier refresh", zap.Error(err))
		metrics.RefreshFailuresTotal.WithLabelValues("couriers").Inc()
		return
	}

	couriers, err := r.api.ListCouriers(ctx, token)
	if err != nil {
		r.logger.Warn("failed to fetch couriers", zap.Error(err))
		metrics.RefreshFailuresTotal.WithLabelValues("couriers").Inc()
		return
	}

	r.mu.Lock()
	r.couriers = couriers
	r.mu.Unlock()

	metrics.CollectionRefreshesTotal.WithLabelValues("couriers").Inc()
	r.logger.Debug("couriers refreshed", zap.Int("count", len(couriers)))
}

// AddCourier registers a new delivery agent and re-syncs the list.
func (r *CourierRepository) AddCourier(ctx context.Context, name, surname string) (*api.MutationResponse, error) {
	if name == "" || surname == "" {
		return nil, clienterr.Validation("name and surname are required")
	}

	resp, err := r.api.AddCourier(ctx, name, surname)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("add_courier").Inc()
		r.logger.Error("failed to add courier", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("failed to add courier: %w", err)
	}

	r.FetchCouriers(ctx)
	return resp, nil
}

// UpdateAvailability flips the authenticated courier's own availability
// flag and re-syncs the courier list so the change is visible everywhere.
func (r *CourierRepository) UpdateAvailability(ctx context.Context, activo bool) error {
	token, err := r.tokens.Token(ctx)
	if err != nil {
		return err
	}

	if err := r.api.UpdateAvailability(ctx, token, activo); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_availability").Inc()
		r.logger.Error("failed to update availability", zap.Bool("activo", activo), zap.Error(err))
		return fmt.Errorf("failed to update availability: %w", err)
	}

	r.FetchCouriers(ctx)
	return nil
}

// Clear drops the collection. Called on logout.
func (r *CourierRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.couriers = nil
}
