package account

import (
	"casino_demo/internal/repository"
	"casino_demo/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// Минимальная длина пароля при регистрации
const minPasswordLen = 4

type serv struct {
	ledger    repository.LedgerRepository
	txManager trm.Manager
}

func NewAccountService(ledger repository.LedgerRepository, txManager trm.Manager) service.AccountService {
	return &serv{
		ledger:    ledger,
		txManager: txManager,
	}
}
