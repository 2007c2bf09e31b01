package admin

import (
	"casino_demo/internal/config"
	"casino_demo/internal/repository"
	"casino_demo/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

const minPasswordLen = 4

type serv struct {
	ledger    repository.LedgerRepository
	statsRepo repository.StatsRepository
	txManager trm.Manager
	currency  config.CurrencyConfig
}

func NewAdminService(
	ledger repository.LedgerRepository,
	statsRepo repository.StatsRepository,
	txManager trm.Manager,
	currencyCfg config.CurrencyConfig,
) service.AdminService {
	return &serv{
		ledger:    ledger,
		statsRepo: statsRepo,
		txManager: txManager,
		currency:  currencyCfg,
	}
}
