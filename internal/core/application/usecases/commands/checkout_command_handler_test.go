package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"carrybee/internal/core/application/usecases/commands"
	"carrybee/internal/core/domain/model/cart"
	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/core/domain/model/merchant"
	"carrybee/internal/core/domain/model/order"
	"carrybee/internal/core/domain/services"
	"carrybee/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockMerchantRepository struct{ mock.Mock }

func (m *MockMerchantRepository) Get(ctx context.Context, id kernel.UUID) (*merchant.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*merchant.Merchant), args.Error(1)
}

type MockCheckoutUoW struct{ mock.Mock }

func (m *MockCheckoutUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockCheckoutUoW) MerchantRepository() ports.MerchantRepository {
	args := m.Called()
	return args.Get(0).(ports.MerchantRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishOrderCreated(ctx context.Context, o *order.Order, f *merchant.Merchant) error {
	args := m.Called(ctx, o, f)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func merchantAt(t *testing.T, id kernel.UUID, name string, point *kernel.GeoPoint) *merchant.Merchant {
	t.Helper()
	m, err := merchant.NewMerchant(id, name, "5 Market Rd", point)
	require.NoError(t, err)
	return m
}

func mustCheckoutCommand(t *testing.T, lines []cart.Line) commands.CheckoutCommand {
	t.Helper()
	point := mustPoint(t, 12.9700, 77.5900)
	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), lines, &point, "12 Rose St", "+91 98765 43210")
	require.NoError(t, err)
	return cmd
}

func okCheckoutUoW(orderRepo ports.OrderRepository, merchantRepo ports.MerchantRepository) *MockCheckoutUoW {
	uow := new(MockCheckoutUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("MerchantRepository").Return(merchantRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	return uow
}

func TestCheckoutCommandHandler_Handle_SingleMerchant(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()
	merchantPoint := mustPoint(t, 12.9700, 77.5900)
	cmd := mustCheckoutCommand(t, []cart.Line{
		mustLine(t, merchantID, "Spice Villa", 15000, 2),
	})

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	merchantRepo := new(MockMerchantRepository)
	merchantRepo.On("Get", mock.Anything, merchantID).
		Return(merchantAt(t, merchantID, "Spice Villa", &merchantPoint), nil).Once()

	uow := okCheckoutUoW(orderRepo, merchantRepo)
	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)
	publisher.On("PublishOrderCreated", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewCheckoutCommandHandler(factory, services.NewDefaultTariff(), publisher, discardLogger())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Len(t, result.CreatedOrders, 1)
	assert.Empty(t, result.FailedMerchants)

	created := result.CreatedOrders[0]
	assert.Equal(t, merchantID, created.MerchantID)
	assert.Equal(t, "Spice Villa", created.MerchantName)
	assert.Equal(t, kernel.Money(30000), created.Subtotal)
	// Same point: zero distance, minimum fee applies.
	assert.Equal(t, services.DefaultMinimumFee, created.DeliveryFee)
	assert.False(t, created.FeeEstimated)
	assert.Equal(t, kernel.Money(30010), created.Total)
	assert.Equal(t, kernel.Money(30010), result.GrandTotal())

	orderRepo.AssertExpectations(t)
	merchantRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_GroupsByMerchantFirstOccurrence(t *testing.T) {
	ctx := t.Context()
	firstID := kernel.NewUUID()
	secondID := kernel.NewUUID()
	merchantPoint := mustPoint(t, 12.9700, 77.5900)
	cmd := mustCheckoutCommand(t, []cart.Line{
		mustLine(t, firstID, "Spice Villa", 15000, 1),
		mustLine(t, secondID, "Green Basket", 4000, 3),
		mustLine(t, firstID, "Spice Villa", 9000, 1),
	})

	var added []*order.Order
	newOrderRepo := func() *MockOrderRepository {
		repo := new(MockOrderRepository)
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				added = append(added, args.Get(1).(*order.Order))
			}).Return(nil).Once()
		return repo
	}

	firstMerchantRepo := new(MockMerchantRepository)
	firstMerchantRepo.On("Get", mock.Anything, firstID).
		Return(merchantAt(t, firstID, "Spice Villa", &merchantPoint), nil).Once()
	secondMerchantRepo := new(MockMerchantRepository)
	secondMerchantRepo.On("Get", mock.Anything, secondID).
		Return(merchantAt(t, secondID, "Green Basket", &merchantPoint), nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(okCheckoutUoW(newOrderRepo(), firstMerchantRepo)).Once()
	factory.On("Create").Return(okCheckoutUoW(newOrderRepo(), secondMerchantRepo)).Once()

	publisher := new(MockPublisher)
	publisher.On("PublishOrderCreated", mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()

	h := commands.NewCheckoutCommandHandler(factory, services.NewDefaultTariff(), publisher, discardLogger())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Len(t, result.CreatedOrders, 2)
	assert.Equal(t, firstID, result.CreatedOrders[0].MerchantID)
	assert.Equal(t, secondID, result.CreatedOrders[1].MerchantID)
	assert.Equal(t, kernel.Money(24000), result.CreatedOrders[0].Subtotal)
	assert.Equal(t, kernel.Money(12000), result.CreatedOrders[1].Subtotal)

	require.Len(t, added, 2)
	assert.Len(t, added[0].Lines(), 2)
	assert.Len(t, added[1].Lines(), 1)

	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_FlatFeeWhenMerchantHasNoLocation(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()
	cmd := mustCheckoutCommand(t, []cart.Line{
		mustLine(t, merchantID, "Spice Villa", 15000, 1),
	})

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	merchantRepo := new(MockMerchantRepository)
	merchantRepo.On("Get", mock.Anything, merchantID).
		Return(merchantAt(t, merchantID, "Spice Villa", nil), nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(okCheckoutUoW(orderRepo, merchantRepo)).Once()
	publisher := new(MockPublisher)
	publisher.On("PublishOrderCreated", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewCheckoutCommandHandler(factory, services.NewDefaultTariff(), publisher, discardLogger())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Len(t, result.CreatedOrders, 1)
	assert.Equal(t, services.DefaultFlatFee, result.CreatedOrders[0].DeliveryFee)
	assert.True(t, result.CreatedOrders[0].FeeEstimated)
}

func TestCheckoutCommandHandler_Handle_PartialFailure(t *testing.T) {
	ctx := t.Context()
	failingID := kernel.NewUUID()
	healthyID := kernel.NewUUID()
	merchantPoint := mustPoint(t, 12.9700, 77.5900)
	cmd := mustCheckoutCommand(t, []cart.Line{
		mustLine(t, failingID, "Spice Villa", 15000, 1),
		mustLine(t, healthyID, "Green Basket", 4000, 1),
	})

	storeDown := errors.New("connection refused")
	failingOrderRepo := new(MockOrderRepository)
	failingOrderRepo.On("Add", mock.Anything, mock.Anything).Return(storeDown).Once()
	failingMerchantRepo := new(MockMerchantRepository)
	failingMerchantRepo.On("Get", mock.Anything, failingID).
		Return(merchantAt(t, failingID, "Spice Villa", &merchantPoint), nil).Once()

	failingUoW := new(MockCheckoutUoW)
	failingUoW.On("Begin", mock.Anything).Return(nil).Once()
	failingUoW.On("MerchantRepository").Return(failingMerchantRepo).Once()
	failingUoW.On("OrderRepository").Return(failingOrderRepo).Once()
	failingUoW.On("Rollback", mock.Anything).Return(nil).Once()

	healthyOrderRepo := new(MockOrderRepository)
	healthyOrderRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	healthyMerchantRepo := new(MockMerchantRepository)
	healthyMerchantRepo.On("Get", mock.Anything, healthyID).
		Return(merchantAt(t, healthyID, "Green Basket", &merchantPoint), nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(failingUoW).Once()
	factory.On("Create").Return(okCheckoutUoW(healthyOrderRepo, healthyMerchantRepo)).Once()

	publisher := new(MockPublisher)
	publisher.On("PublishOrderCreated", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewCheckoutCommandHandler(factory, services.NewDefaultTariff(), publisher, discardLogger())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Len(t, result.CreatedOrders, 1)
	assert.Equal(t, healthyID, result.CreatedOrders[0].MerchantID)

	require.Len(t, result.FailedMerchants, 1)
	assert.Equal(t, failingID, result.FailedMerchants[0].MerchantID)
	assert.ErrorIs(t, result.FailedMerchants[0].Reason, commands.ErrPersistenceFailed)
	assert.ErrorIs(t, result.FailedMerchants[0].Reason, storeDown)

	failingUoW.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_AllGroupsFail(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()
	cmd := mustCheckoutCommand(t, []cart.Line{
		mustLine(t, merchantID, "Spice Villa", 15000, 1),
	})

	uow := new(MockCheckoutUoW)
	uow.On("Begin", mock.Anything).Return(errors.New("begin error")).Once()
	uow.On("Rollback", mock.Anything).Return(errors.New("no tx")).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)

	h := commands.NewCheckoutCommandHandler(factory, services.NewDefaultTariff(), publisher, discardLogger())
	result, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCheckoutFailed)

	assert.Empty(t, result.CreatedOrders)
	require.Len(t, result.FailedMerchants, 1)
	publisher.AssertNotCalled(t, "PublishOrderCreated", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockCheckoutUoWFactory)
	publisher := new(MockPublisher)

	h := commands.NewCheckoutCommandHandler(factory, services.NewDefaultTariff(), publisher, discardLogger())
	_, err := h.Handle(ctx, commands.CheckoutCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCheckoutCommandHandler_Handle_PublishFailureDoesNotFailCheckout(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()
	merchantPoint := mustPoint(t, 12.9700, 77.5900)
	cmd := mustCheckoutCommand(t, []cart.Line{
		mustLine(t, merchantID, "Spice Villa", 15000, 1),
	})

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	merchantRepo := new(MockMerchantRepository)
	merchantRepo.On("Get", mock.Anything, merchantID).
		Return(merchantAt(t, merchantID, "Spice Villa", &merchantPoint), nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(okCheckoutUoW(orderRepo, merchantRepo)).Once()

	publisher := new(MockPublisher)
	publisher.On("PublishOrderCreated", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("broker down")).Once()

	h := commands.NewCheckoutCommandHandler(factory, services.NewDefaultTariff(), publisher, discardLogger())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, result.CreatedOrders, 1)
	assert.Empty(t, result.FailedMerchants)
	publisher.AssertExpectations(t)
}
