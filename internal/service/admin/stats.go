package admin

import (
	"casino_demo/internal/model"
	"context"
)

// Stats - сводка по пользователям и журналу плюс статистика выплат
func (s *serv) Stats(ctx context.Context) (*model.AdminStats, error) {
	users, err := s.ledger.AllUsers(ctx)
	if err != nil {
		return nil, err
	}

	txs, err := s.ledger.Transactions(ctx)
	if err != nil {
		return nil, err
	}

	stats := &model.AdminStats{
		UserCount:        len(users),
		TransactionCount: len(txs),
		Payout:           s.statsRepo.Stats(),
	}

	for _, u := range users {
		stats.TotalBalance += u.Balance
	}
	for _, tx := range txs {
		if tx.Amount > 0 {
			stats.DepositTotal += tx.Amount
		} else {
			stats.WithdrawalTotal += -tx.Amount
		}
	}

	return stats, nil
}
