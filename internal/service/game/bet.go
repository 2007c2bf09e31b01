package game

import (
	"casino_demo/internal/model"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// PlaceBet - одна ставка: списание, розыгрыш, начисление выигрыша.
// Списание и начисление - две отдельные записи журнала
func (s *serv) PlaceBet(ctx context.Context, userID string, bet int) (*model.BetResult, error) {
	if bet < s.currency.MinTransaction() {
		return nil, fmt.Errorf("%w: minimum bet is %d", model.ErrValidation, s.currency.MinTransaction())
	}
	if bet > s.currency.MaxTransaction() {
		return nil, fmt.Errorf("%w: maximum bet is %d", model.ErrValidation, s.currency.MaxTransaction())
	}

	var res *model.BetResult

	// Начало транзакции, в которой выполняется процесс ставки
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		user, err := s.ledger.UserByID(ctx, userID)
		if err != nil {
			return err
		}
		if user.Balance < bet {
			return model.ErrInsufficientBalance
		}

		// Списание ставки
		betTx, err := s.ledger.UpdateBalance(ctx, userID, -bet)
		if err != nil {
			return err
		}

		win := Resolve(bet, s.table, s.rng)

		res = &model.BetResult{
			Bet:     bet,
			Win:     win,
			Balance: betTx.NewBalance,
			BetTx:   *betTx,
		}

		// Начисление выигрыша, если он есть
		if win > 0 {
			winTx, err := s.ledger.UpdateBalance(ctx, userID, win)
			if err != nil {
				return err
			}
			res.WinTx = winTx
			res.Balance = winTx.NewBalance
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.Record(bet, res.Win)

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"bet":     bet,
		"win":     res.Win,
		"balance": res.Balance,
	}).Info("bet resolved")

	return res, nil
}
