package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/chargeback"
	"github.com/GetwithitMan/gwi-pos-sub001/pkg/lock"
)

type ChargebackHandler struct {
	svc    chargeback.Service
	locker *lock.Locker
}

func NewChargebackHandler(svc chargeback.Service, locker *lock.Locker) *ChargebackHandler {
	return &ChargebackHandler{svc: svc, locker: locker}
}

func mapChargebackError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, chargeback.ErrNoTipTransactions):
		return notFound(c, err.Error())
	case errors.Is(err, chargeback.ErrDebtNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, chargeback.ErrDebtAlreadyClosed):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /tips/chargebacks
func (h *ChargebackHandler) Execute(c fiber.Ctx) error {
	var body struct {
		PaymentID  string `json:"payment_id"`
		LocationID string `json:"location_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	paymentID, err := uuid.Parse(body.PaymentID)
	if err != nil {
		return badRequest(c, "invalid payment_id")
	}
	locationID, err := uuid.Parse(body.LocationID)
	if err != nil {
		return badRequest(c, "invalid location_id")
	}

	lease, err := h.locker.Acquire(c.Context(), lock.PaymentKey(paymentID))
	if errors.Is(err, lock.ErrHeld) {
		return conflict(c, "chargeback already in progress for this payment")
	}
	if err != nil {
		return internalError(c)
	}
	defer lease.Release(c.Context())

	result, err := h.svc.Execute(c.Context(), paymentID, locationID)
	if err != nil {
		return mapChargebackError(c, err)
	}
	return ok(c, result)
}

// GET /tips/debts
func (h *ChargebackHandler) ListOpenDebts(c fiber.Ctx) error {
	var q struct {
		LocationID string `query:"location_id"`
		Page       int    `query:"page"`
		PerPage    int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	locationID, err := uuid.Parse(q.LocationID)
	if err != nil {
		return badRequest(c, "invalid location_id")
	}

	debts, total, err := h.svc.ListOpenDebts(c.Context(), locationID, q.Page, q.PerPage)
	if err != nil {
		return mapChargebackError(c, err)
	}
	return ok(c, fiber.Map{"debts": debts, "total": total})
}

// PATCH /tips/debts/:id/resolve
func (h *ChargebackHandler) ResolveDebt(c fiber.Ctx) error {
	debtID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid debt id")
	}

	debt, err := h.svc.ResolveDebt(c.Context(), debtID)
	if err != nil {
		return mapChargebackError(c, err)
	}
	return ok(c, debt)
}
