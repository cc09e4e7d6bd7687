package service

import (
	"context"
	"fmt"
	"time"

	"chroma-store/internal/model"
	"chroma-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Place stores an order with the caller's pre-assembled line items.
// The items are a point-in-time snapshot: product IDs are not looked up,
// so later catalogue changes cannot alter the stored order. An empty
// item list is stored as-is.
func (s *orderService) Place(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	if req == nil {
		return nil, fmt.Errorf("order request is nil")
	}

	order := &model.Order{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Items:       req.Items,
		CreatedAt:   time.Now(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to place order")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(order.Items)).
		Msg("order placed")

	return order, nil
}

// List retrieves every stored order.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	s.logger.Debug().Int("count", len(orders)).Msg("retrieved orders")

	return orders, nil
}
