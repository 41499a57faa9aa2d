package app

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/GetwithitMan/gwi-pos-sub001/config"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/adjustment"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/allocation"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/chargeback"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/service/ledger"
	"github.com/GetwithitMan/gwi-pos-sub001/pkg/lock"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideLedgerService,
		ProvidePoster,
		ProvideAllocationService,
		ProvideChargebackService,
		ProvideAdjustmentService,
		ProvideLocker,
	),
)

func ProvideLedgerService(db *repo.Client) ledger.Service {
	return ledger.New(db)
}

// ProvidePoster narrows the ledger service to the posting primitive the
// engines depend on.
func ProvidePoster(svc ledger.Service) ledger.Poster {
	return svc
}

func ProvideAllocationService(db *repo.Client, poster ledger.Poster) allocation.Service {
	return allocation.New(db, poster)
}

func ProvideChargebackService(db *repo.Client, poster ledger.Poster) chargeback.Service {
	return chargeback.New(db, poster)
}

func ProvideAdjustmentService(db *repo.Client, poster ledger.Poster) adjustment.Service {
	return adjustment.New(db, poster)
}

func ProvideLocker(rdb *redis.Client, cfg *config.Config) *lock.Locker {
	return lock.New(rdb, time.Duration(cfg.Tips.LockTTLSeconds)*time.Second)
}
