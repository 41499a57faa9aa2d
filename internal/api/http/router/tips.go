package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/GetwithitMan/gwi-pos-sub001/internal/api/http/handler"
)

func (r *Router) registerTipRoutes(
	api fiber.Router,
	allocationH *handler.AllocationHandler,
	chargebackH *handler.ChargebackHandler,
	adjustmentH *handler.AdjustmentHandler,
	ledgerH *handler.LedgerHandler,
) {
	tips := api.Group("/tips")

	// Reconciliation
	tips.Post("/groups/:id/reconcile", allocationH.ReconcileGroup)
	tips.Post("/orders/:id/reconcile", allocationH.ReconcileOrder)

	// Chargebacks and debts
	tips.Post("/chargebacks", chargebackH.Execute)
	tips.Get("/debts", chargebackH.ListOpenDebts)
	tips.Patch("/debts/:id/resolve", chargebackH.ResolveDebt)

	// Manual adjustments and audit log
	tips.Post("/adjustments", adjustmentH.ApplyManual)
	tips.Get("/adjustments", adjustmentH.List)

	// Employee ledger reads
	tips.Get("/employees/:id/balance", ledgerH.GetBalance)
	tips.Get("/employees/:id/entries", ledgerH.ListEntries)
}
