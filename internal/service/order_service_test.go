package service

import (
	"context"
	"errors"
	"testing"

	"chroma-store/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func TestOrderService_Place(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("line items stored exactly as supplied", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		items := []model.OrderLine{
			{
				ProductID: "p1",
				Title:     "Shirt",
				Image:     "url1",
				Price:     decimal.NewFromInt(20),
				Color:     "red",
				Tone:      "light",
			},
		}
		req := &model.OrderRequest{
			Name:        "Jo",
			Email:       "jo@x.com",
			PhoneNumber: "12345",
			Address:     "1 High St",
			Items:       items,
		}

		var stored *model.Order
		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Order")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*model.Order)
			}).
			Return(nil)

		order, err := svc.Place(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, order)

		assert.NotEqual(t, uuid.Nil, order.ID)
		// The snapshot goes to the store untouched: no lookup, no rewrite.
		assert.Equal(t, items, stored.Items)
		assert.Equal(t, "Jo", stored.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("order with no items is stored", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		var stored *model.Order
		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Order")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*model.Order)
			}).
			Return(nil)

		order, err := svc.Place(ctx, &model.OrderRequest{Name: "Jo"})
		require.NoError(t, err)
		require.NotNil(t, stored)

		assert.Equal(t, "Jo", stored.Name)
		assert.Empty(t, stored.Items)
		assert.NotEqual(t, uuid.Nil, order.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Order")).
			Return(errors.New("database error"))

		order, err := svc.Place(ctx, &model.OrderRequest{
			Items: []model.OrderLine{{ProductID: "p1"}},
		})
		assert.Error(t, err)
		assert.Nil(t, order)
	})
}

func TestOrderService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		stored := []model.Order{
			{ID: uuid.New(), Name: "Jo", Items: []model.OrderLine{{ProductID: "p1"}}},
		}
		mockRepo.On("GetAll", ctx).Return(stored, nil)

		orders, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, stored, orders)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		mockRepo.On("GetAll", ctx).Return(nil, errors.New("database error"))

		orders, err := svc.List(ctx)
		assert.Error(t, err)
		assert.Nil(t, orders)
	})
}
