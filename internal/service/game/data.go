package game

import (
	"casino_demo/internal/model"
	"context"
)

// Data - баланс игрока и его операции в хронологическом порядке
func (s *serv) Data(ctx context.Context, userID string) (*model.PlayerData, error) {
	user, err := s.ledger.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	all, err := s.ledger.Transactions(ctx)
	if err != nil {
		return nil, err
	}

	own := make([]model.Transaction, 0)
	for _, tx := range all {
		if tx.UserID == userID {
			own = append(own, tx)
		}
	}

	return &model.PlayerData{
		Balance:      user.Balance,
		Transactions: own,
	}, nil
}
