package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/restomart/restomart/internal/adapter/payment"
	"github.com/restomart/restomart/internal/domain/model"
)

// PlatformFacade exposes the subset of application functionality required by the worker.
type PlatformFacade interface {
	PendingOrders(ctx context.Context, limit int) ([]model.Order, error)
	CheckPayment(ctx context.Context, number string) (*model.Payment, error)
	MarkOrderPaid(ctx context.Context, orderID int64) error
	CancelOrder(ctx context.Context, orderID int64) error
}

// PaymentProcessor polls the payment service for unpaid orders and settles or
// cancels them concurrently.
type PaymentProcessor struct {
	facade         PlatformFacade
	pollInterval   time.Duration
	paymentTimeout time.Duration
	batchSize      int
	workers        int
	logger         *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
	now    func() time.Time
}

// NewPaymentProcessor constructs the payment worker pool.
func NewPaymentProcessor(facade PlatformFacade, pollInterval, paymentTimeout time.Duration, batchSize, workers int, logger *slog.Logger) *PaymentProcessor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &PaymentProcessor{
		facade:         facade,
		pollInterval:   pollInterval,
		paymentTimeout: paymentTimeout,
		batchSize:      batchSize,
		workers:        workers,
		logger:         logger,
		jobs:           make(chan model.Order, batchSize*workers),
		now:            time.Now,
	}
}

// Start launches background processing.
func (p *PaymentProcessor) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *PaymentProcessor) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *PaymentProcessor) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *PaymentProcessor) fetchAndDispatch(ctx context.Context) {
	orders, err := p.facade.PendingOrders(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("fetch pending orders failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- order:
		}
	}
}

func (p *PaymentProcessor) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-p.jobs:
			if !ok {
				return
			}
			p.handleOrder(ctx, order)
		}
	}
}

func (p *PaymentProcessor) handleOrder(ctx context.Context, order model.Order) {
	expired := p.now().Sub(order.OrderTime) > p.paymentTimeout

	result, err := p.facade.CheckPayment(ctx, order.Number)
	if err != nil {
		switch e := err.(type) {
		case payment.TooManyRequestsError:
			p.logger.Warn("payment service rate limited", slog.Duration("retry_after", e.RetryAfter))
			time.Sleep(e.RetryAfter)
		default:
			if errors.Is(err, payment.ErrPaymentUnknown) {
				if expired {
					p.cancelOrder(ctx, order)
				}
				return
			}
			p.logger.Error("payment fetch failed", slog.String("order", order.Number), slog.String("error", err.Error()))
		}
		return
	}

	switch result.Status {
	case model.PaymentStatusPaid:
		if err := p.facade.MarkOrderPaid(ctx, order.ID); err != nil {
			p.logger.Error("mark order paid failed", slog.String("order", order.Number), slog.String("error", err.Error()))
		}
	case model.PaymentStatusFailed:
		p.cancelOrder(ctx, order)
	default:
		if expired {
			p.cancelOrder(ctx, order)
		}
	}
}

func (p *PaymentProcessor) cancelOrder(ctx context.Context, order model.Order) {
	if err := p.facade.CancelOrder(ctx, order.ID); err != nil {
		p.logger.Error("cancel order failed", slog.String("order", order.Number), slog.String("error", err.Error()))
	}
}
