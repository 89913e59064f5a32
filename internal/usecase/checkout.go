package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/restomart/restomart/internal/audit"
	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/domain/model"
	"github.com/restomart/restomart/internal/domain/repository"
)

// CheckoutUseCase converts a customer's cart into an order.
type CheckoutUseCase struct {
	atomic repository.Atomic
	repos  repository.Factory
	now    func() time.Time
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(atomic repository.Atomic, repos repository.Factory) *CheckoutUseCase {
	return &CheckoutUseCase{atomic: atomic, repos: repos, now: time.Now}
}

// orderNumber derives a unique order number from the submission time. The
// uuid suffix removes same-millisecond collisions between concurrent
// checkouts; the unique index on orders.number is the backstop.
func orderNumber(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + uuid.NewString()[:8]
}

// Submit materializes the actor's cart into an order with its lines and
// clears the cart, all inside one transaction. Validation failures abort
// before any write; a failure at any later step rolls everything back.
func (u *CheckoutUseCase) Submit(ctx context.Context, addressID int64, remark string) (*model.OrderSummary, error) {
	actor, ok := audit.ActorFrom(ctx)
	if !ok {
		return nil, domainErrors.ErrMissingActor
	}

	var summary *model.OrderSummary
	err := u.atomic.RunAtomic(ctx, func(r repository.Factory) error {
		addr, err := r.Addresses().GetByID(ctx, addressID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return domainErrors.ErrAddressMissing
			}
			return err
		}

		lines, err := r.Carts().ListByAccount(ctx, actor)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domainErrors.ErrCartEmpty
		}

		now := u.now()
		amount := decimal.Zero
		for _, line := range lines {
			amount = amount.Add(line.Subtotal())
		}

		order := &model.Order{
			Number:    orderNumber(now),
			AccountID: actor,
			AddressID: addr.ID,
			Status:    model.OrderStatusPendingPayment,
			PayStatus: model.PayStatusUnpaid,
			Amount:    amount,
			Consignee: addr.Consignee,
			Phone:     addr.Phone,
			Remark:    remark,
			OrderTime: now,
		}
		if err := r.Orders().Insert(ctx, order); err != nil {
			return err
		}

		orderLines := make([]model.OrderLine, 0, len(lines))
		for _, line := range lines {
			orderLines = append(orderLines, model.OrderLine{
				OrderID:   order.ID,
				ItemID:    line.ItemID,
				Name:      line.Name,
				Flavor:    line.Flavor,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
			})
		}
		if err := r.Orders().InsertLines(ctx, orderLines); err != nil {
			return err
		}

		if err := r.Carts().Clear(ctx, actor); err != nil {
			return err
		}

		summary = &model.OrderSummary{
			OrderID:   order.ID,
			Number:    order.Number,
			OrderTime: order.OrderTime,
			Amount:    order.Amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// Orders lists the actor's orders.
func (u *CheckoutUseCase) Orders(ctx context.Context) ([]model.Order, error) {
	actor, ok := audit.ActorFrom(ctx)
	if !ok {
		return nil, domainErrors.ErrMissingActor
	}
	return u.repos.Orders().ListByAccount(ctx, actor)
}

// PendingOrders returns unpaid orders for the payment poller.
func (u *CheckoutUseCase) PendingOrders(ctx context.Context, limit int) ([]model.Order, error) {
	return u.repos.Orders().ListPendingPayment(ctx, limit)
}

// MarkPaid transitions an order to paid/to-be-confirmed.
func (u *CheckoutUseCase) MarkPaid(ctx context.Context, orderID int64) error {
	return u.repos.Orders().MarkPaid(ctx, orderID)
}

// Cancel cancels an order.
func (u *CheckoutUseCase) Cancel(ctx context.Context, orderID int64) error {
	return u.repos.Orders().Cancel(ctx, orderID)
}
