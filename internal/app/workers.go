package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/allocation"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/chargeback"
	"github.com/GetwithitMan/gwi-pos-sub001/pkg/lock"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc         fx.Lifecycle
	NC         *nats.Conn
	Allocation allocation.Service
	Chargeback chargeback.Service
	Locker     *lock.Locker
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startChargebackWorker(p.NC, p.Chargeback, p.Locker)
			startReconcileWorker(p.NC, p.Allocation, p.Locker)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// subjectTail returns the last token of a subject like
// "gwipos.payment.voided.<id>" parsed as a UUID.
func subjectTail(subject string) (uuid.UUID, bool) {
	parts := strings.Split(subject, ".")
	if len(parts) < 4 {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(parts[len(parts)-1])
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}

// ---------------------------------------------------------------------------
// chargeback_worker
// ---------------------------------------------------------------------------

func startChargebackWorker(nc *nats.Conn, svc chargeback.Service, locker *lock.Locker) {
	// Subject carries the payment id; msg.Data carries the location id.
	_, err := nc.Subscribe("gwipos.payment.voided.*", func(msg *nats.Msg) {
		paymentID, ok := subjectTail(msg.Subject)
		if !ok {
			return
		}
		locationID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			slog.Warn("chargeback_worker: bad location id", "payment_id", paymentID, "err", err)
			return
		}

		ctx := context.Background()

		lease, err := locker.Acquire(ctx, lock.PaymentKey(paymentID))
		if errors.Is(err, lock.ErrHeld) {
			slog.Warn("chargeback_worker: payment busy, skipping", "payment_id", paymentID)
			return
		}
		if err != nil {
			slog.Error("chargeback_worker: lock failed", "payment_id", paymentID, "err", err)
			return
		}
		defer lease.Release(ctx)

		result, err := svc.Execute(ctx, paymentID, locationID)
		if errors.Is(err, chargeback.ErrNoTipTransactions) {
			slog.Debug("chargeback_worker: no tip transactions for payment", "payment_id", paymentID)
			return
		}
		if err != nil {
			slog.Error("chargeback_worker: execute failed", "payment_id", paymentID, "err", err)
			return
		}
		slog.Info("chargeback_worker: payment reversed",
			"payment_id", paymentID,
			"policy", result.Policy,
			"charged_back_cents", result.ChargedBackCents,
			"flagged_cents", result.FlaggedForReviewCents,
		)
	})
	if err != nil {
		slog.Error("chargeback_worker: subscribe payment.voided failed", "err", err)
	}

	slog.Info("chargeback_worker: started")
}

// ---------------------------------------------------------------------------
// reconcile_worker
// ---------------------------------------------------------------------------

func startReconcileWorker(nc *nats.Conn, svc allocation.Service, locker *lock.Locker) {
	// Group membership or split changed upstream.
	_, err := nc.Subscribe("gwipos.tipgroup.updated.*", func(msg *nats.Msg) {
		groupID, ok := subjectTail(msg.Subject)
		if !ok {
			return
		}

		ctx := context.Background()

		lease, err := locker.Acquire(ctx, lock.GroupKey(groupID))
		if errors.Is(err, lock.ErrHeld) {
			slog.Warn("reconcile_worker: group busy, skipping", "group_id", groupID)
			return
		}
		if err != nil {
			slog.Error("reconcile_worker: lock failed", "group_id", groupID, "err", err)
			return
		}
		defer lease.Release(ctx)

		result, err := svc.ReconcileGroup(ctx, groupID, allocation.Options{
			Reason:        "group updated upstream",
			AutoTriggered: true,
		})
		if err != nil {
			slog.Error("reconcile_worker: group reconcile failed", "group_id", groupID, "err", err)
			return
		}
		if result.AdjustmentID == nil {
			slog.Debug("reconcile_worker: group already consistent", "group_id", groupID)
			return
		}
		slog.Info("reconcile_worker: group reconciled",
			"group_id", groupID,
			"adjustment_id", result.AdjustmentID,
			"corrections", result.PostedCount,
		)
	})
	if err != nil {
		slog.Error("reconcile_worker: subscribe tipgroup.updated failed", "err", err)
	}

	// Order ownership shares changed upstream.
	_, err = nc.Subscribe("gwipos.order.ownership.updated.*", func(msg *nats.Msg) {
		orderID, ok := subjectTail(msg.Subject)
		if !ok {
			return
		}

		ctx := context.Background()

		lease, err := locker.Acquire(ctx, lock.OrderKey(orderID))
		if errors.Is(err, lock.ErrHeld) {
			slog.Warn("reconcile_worker: order busy, skipping", "order_id", orderID)
			return
		}
		if err != nil {
			slog.Error("reconcile_worker: lock failed", "order_id", orderID, "err", err)
			return
		}
		defer lease.Release(ctx)

		result, err := svc.ReconcileOrder(ctx, orderID, allocation.Options{
			Reason:        "ownership updated upstream",
			AutoTriggered: true,
		})
		if err != nil {
			slog.Error("reconcile_worker: order reconcile failed", "order_id", orderID, "err", err)
			return
		}
		if result.AdjustmentID == nil {
			slog.Debug("reconcile_worker: order already consistent", "order_id", orderID)
			return
		}
		slog.Info("reconcile_worker: order reconciled",
			"order_id", orderID,
			"adjustment_id", result.AdjustmentID,
			"corrections", result.PostedCount,
		)
	})
	if err != nil {
		slog.Error("reconcile_worker: subscribe order.ownership.updated failed", "err", err)
	}

	slog.Info("reconcile_worker: started")
}
