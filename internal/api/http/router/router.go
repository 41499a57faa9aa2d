package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/GetwithitMan/gwi-pos-sub001/config"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/api/http/handler"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/adjustment"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/allocation"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/chargeback"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/ledger"
	"github.com/GetwithitMan/gwi-pos-sub001/pkg/lock"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg           *config.Config
	AllocationSvc allocation.Service
	ChargebackSvc chargeback.Service
	AdjustmentSvc adjustment.Service
	LedgerSvc     ledger.Service
	Locker        *lock.Locker
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Handlers
	allocationH := handler.NewAllocationHandler(r.p.AllocationSvc, r.p.Locker)
	chargebackH := handler.NewChargebackHandler(r.p.ChargebackSvc, r.p.Locker)
	adjustmentH := handler.NewAdjustmentHandler(r.p.AdjustmentSvc)
	ledgerH := handler.NewLedgerHandler(r.p.LedgerSvc)

	api := app.Group("/api/v1")

	// 3. Delegate to sub-files
	r.registerTipRoutes(api, allocationH, chargebackH, adjustmentH, ledgerH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
