package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/ledger"
)

type LedgerHandler struct {
	svc ledger.Service
}

func NewLedgerHandler(svc ledger.Service) *LedgerHandler {
	return &LedgerHandler{svc: svc}
}

func mapLedgerError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ledger.ErrWalletNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /tips/employees/:id/balance
func (h *LedgerHandler) GetBalance(c fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid employee id")
	}

	balance, err := h.svc.GetBalance(c.Context(), employeeID)
	if err != nil {
		return mapLedgerError(c, err)
	}
	return ok(c, fiber.Map{"employee_id": employeeID, "balance_cents": balance})
}

// GET /tips/employees/:id/entries
func (h *LedgerHandler) ListEntries(c fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid employee id")
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	entries, err := h.svc.ListEntries(c.Context(), employeeID, q.Page, q.PerPage)
	if err != nil {
		return mapLedgerError(c, err)
	}
	return ok(c, entries)
}
