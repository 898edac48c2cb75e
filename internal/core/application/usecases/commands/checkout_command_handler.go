package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"carrybee/internal/core/domain/model/cart"
	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/core/domain/model/merchant"
	"carrybee/internal/core/domain/model/order"
	"carrybee/internal/core/domain/services"
)

// ErrCheckoutFailed is returned when no merchant group could be persisted.
// Per-group failures are reported in CheckoutResult; this sentinel only
// fires when the whole checkout produced nothing.
var ErrCheckoutFailed = errors.New("checkout failed for every merchant")

// ErrPersistenceFailed wraps storage errors for a single merchant group,
// including the bounded persistence timeout expiring.
var ErrPersistenceFailed = errors.New("persistence failed")

// defaultPersistTimeout bounds the per-group transaction so a slow store
// surfaces a failure instead of hanging the checkout.
const defaultPersistTimeout = 5 * time.Second

// CreatedOrder describes one successfully persisted order of a checkout.
type CreatedOrder struct {
	OrderID      kernel.UUID
	MerchantID   kernel.UUID
	MerchantName string
	Subtotal     kernel.Money
	DeliveryFee  kernel.Money
	FeeEstimated bool
	Total        kernel.Money
}

// FailedMerchant describes one merchant group that could not be persisted.
type FailedMerchant struct {
	MerchantID   kernel.UUID
	MerchantName string
	Reason       error
}

// CheckoutResult reports the per-merchant outcome of a checkout, so the
// caller can retry only the failed subset.
type CheckoutResult struct {
	CreatedOrders   []CreatedOrder
	FailedMerchants []FailedMerchant
}

// GrandTotal sums the totals of all created orders.
func (r CheckoutResult) GrandTotal() kernel.Money {
	var total kernel.Money
	for _, created := range r.CreatedOrders {
		total = total.Add(created.Total)
	}
	return total
}

// CheckoutCommandHandler turns a cart into one order per merchant.
// Lines are grouped by merchant in first-occurrence order, each group is
// priced via the tariff and persisted in its own transaction. One group's
// failure never rolls back another group's order, so the result can be a
// partial success.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, tariff, publisher, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // nothing was created
//	}
//	for _, failed := range result.FailedMerchants {
//	    // offer retry for just these merchants
//	}
type CheckoutCommandHandler struct {
	uowFactory     CheckoutUoWFactory
	tariff         services.Tariff
	publisher      OrderCreatedPublisher
	logger         *slog.Logger
	persistTimeout time.Duration
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	tariff services.Tariff,
	publisher OrderCreatedPublisher,
	logger *slog.Logger,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:     uowFactory,
		tariff:         tariff,
		publisher:      publisher,
		logger:         logger,
		persistTimeout: defaultPersistTimeout,
	}
}

// merchantGroup is one merchant's slice of the cart, in cart order.
type merchantGroup struct {
	merchantID   kernel.UUID
	merchantName string
	lines        []cart.Line
}

// Handle processes the checkout command. Groups appear in the result in the
// order their merchant first appeared in the cart. Returns ErrCheckoutFailed
// only when every single group failed.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	var result CheckoutResult
	for _, group := range groupByMerchant(cmd.Lines()) {
		created, persisted, err := h.composeGroup(ctx, cmd, group)
		if err != nil {
			h.logger.Error("merchant group failed during checkout",
				"merchant_id", group.merchantID.String(),
				"merchant", group.merchantName,
				"error", err)
			result.FailedMerchants = append(result.FailedMerchants, FailedMerchant{
				MerchantID:   group.merchantID,
				MerchantName: group.merchantName,
				Reason:       err,
			})
			continue
		}

		result.CreatedOrders = append(result.CreatedOrders, created)
		h.publish(ctx, persisted.order, persisted.merchant)
	}

	if len(result.CreatedOrders) == 0 {
		return result, ErrCheckoutFailed
	}

	return result, nil
}

// persistedGroup carries what the dispatcher needs after a commit.
type persistedGroup struct {
	order    *order.Order
	merchant *merchant.Merchant
}

func (h *CheckoutCommandHandler) composeGroup(
	ctx context.Context,
	cmd CheckoutCommand,
	group merchantGroup,
) (CreatedOrder, persistedGroup, error) {
	groupCtx, cancel := context.WithTimeout(ctx, h.persistTimeout)
	defer cancel()

	uow := h.uowFactory.Create()
	if err := uow.Begin(groupCtx); err != nil {
		return CreatedOrder{}, persistedGroup{}, errors.Join(ErrPersistenceFailed, err)
	}

	defer func() {
		_ = uow.Rollback(groupCtx)
	}()

	groupMerchant, err := uow.MerchantRepository().Get(groupCtx, group.merchantID)
	if err != nil {
		return CreatedOrder{}, persistedGroup{}, err
	}

	fee, estimated, err := h.tariff.Quote(groupMerchant.Location(), cmd.DeliveryPoint())
	if err != nil {
		return CreatedOrder{}, persistedGroup{}, err
	}

	lines, err := orderLines(group.lines)
	if err != nil {
		return CreatedOrder{}, persistedGroup{}, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		group.merchantID,
		cmd.CustomerID(),
		lines,
		fee,
		cmd.Address(),
		cmd.Phone(),
		cmd.DeliveryPoint(),
		time.Now().UTC(),
	)
	if err != nil {
		return CreatedOrder{}, persistedGroup{}, err
	}

	if err = uow.OrderRepository().Add(groupCtx, newOrder); err != nil {
		return CreatedOrder{}, persistedGroup{}, errors.Join(ErrPersistenceFailed, err)
	}

	if err = uow.Commit(groupCtx); err != nil {
		return CreatedOrder{}, persistedGroup{}, errors.Join(ErrPersistenceFailed, err)
	}

	created := CreatedOrder{
		OrderID:      newOrder.ID(),
		MerchantID:   newOrder.MerchantID(),
		MerchantName: groupMerchant.Name(),
		Subtotal:     newOrder.Subtotal(),
		DeliveryFee:  fee,
		FeeEstimated: estimated,
		Total:        newOrder.Total(),
	}

	return created, persistedGroup{order: newOrder, merchant: groupMerchant}, nil
}

// publish schedules the side effects for a committed order. Failures are
// logged and never surfaced: the order already exists.
func (h *CheckoutCommandHandler) publish(ctx context.Context, createdOrder *order.Order, createdFor *merchant.Merchant) {
	if err := h.publisher.PublishOrderCreated(ctx, createdOrder, createdFor); err != nil {
		h.logger.Error("failed to publish order created event",
			"order_id", createdOrder.ID().String(),
			"error", err)
	}
}

// groupByMerchant splits cart lines into per-merchant groups, preserving
// the order in which each merchant first appears in the cart.
func groupByMerchant(lines []cart.Line) []merchantGroup {
	groups := make([]merchantGroup, 0)
	indexByMerchant := make(map[kernel.UUID]int)

	for _, line := range lines {
		idx, seen := indexByMerchant[line.MerchantID()]
		if !seen {
			idx = len(groups)
			indexByMerchant[line.MerchantID()] = idx
			groups = append(groups, merchantGroup{
				merchantID:   line.MerchantID(),
				merchantName: line.MerchantName(),
			})
		}
		groups[idx].lines = append(groups[idx].lines, line)
	}

	return groups
}

func orderLines(cartLines []cart.Line) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(cartLines))
	for _, cartLine := range cartLines {
		line, err := order.NewLine(cartLine.ProductID(), cartLine.ProductName(), cartLine.Quantity(), cartLine.UnitPrice())
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
