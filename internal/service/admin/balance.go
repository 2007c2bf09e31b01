package admin

import (
	"casino_demo/internal/model"
	"context"
	"fmt"
)

// AddBalance - пополнение счёта администратором
func (s *serv) AddBalance(ctx context.Context, userID string, amount int) (*model.Transaction, error) {
	if err := s.validateAmount(amount); err != nil {
		return nil, err
	}

	var tx *model.Transaction
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.ledger.UpdateBalance(ctx, userID, amount)
		if err != nil {
			return err
		}
		tx = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tx, nil
}

// SubtractBalance - списание со счёта администратором.
// Достаточность баланса не проверяется: счёт может уйти в минус
func (s *serv) SubtractBalance(ctx context.Context, userID string, amount int) (*model.Transaction, error) {
	if err := s.validateAmount(amount); err != nil {
		return nil, err
	}

	var tx *model.Transaction
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.ledger.UpdateBalance(ctx, userID, -amount)
		if err != nil {
			return err
		}
		tx = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *serv) validateAmount(amount int) error {
	if amount < s.currency.MinTransaction() {
		return fmt.Errorf("%w: minimum amount is %d", model.ErrValidation, s.currency.MinTransaction())
	}
	if amount > s.currency.MaxTransaction() {
		return fmt.Errorf("%w: maximum amount is %d", model.ErrValidation, s.currency.MaxTransaction())
	}
	return nil
}
