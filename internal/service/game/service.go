package game

import (
	"casino_demo/internal/config"
	"casino_demo/internal/model"
	"casino_demo/internal/repository"
	"casino_demo/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	ledger    repository.LedgerRepository
	statsRepo repository.StatsRepository
	txManager trm.Manager
	table     model.PayoutTable
	currency  config.CurrencyConfig
	rng       Rand
}

// NewGameService - расчёт ставок поверх журнала.
// Источник случайности передаётся снаружи, чтобы тесты
// могли зафиксировать исходы
func NewGameService(
	ledger repository.LedgerRepository,
	statsRepo repository.StatsRepository,
	txManager trm.Manager,
	payoutCfg config.PayoutConfig,
	currencyCfg config.CurrencyConfig,
	rng Rand,
) service.GameService {
	return &serv{
		ledger:    ledger,
		statsRepo: statsRepo,
		txManager: txManager,
		table:     payoutCfg.Table(),
		currency:  currencyCfg,
		rng:       rng,
	}
}
