package admin

import (
	"casino_demo/internal/model"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// CreateUser - заведение аккаунта администратором.
// Правила те же, что при самостоятельной регистрации,
// но сессия не открывается
func (s *serv) CreateUser(ctx context.Context, username, password string) (*model.User, error) {
	if len(username) == 0 || len(password) == 0 {
		return nil, fmt.Errorf("%w: username and password are required", model.ErrValidation)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", model.ErrValidation, minPasswordLen)
	}

	var user *model.User
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.ledger.CreateUser(ctx, username, password)
		if err != nil {
			return err
		}
		user = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser - удаляет аккаунт. Записи журнала пользователя
// остаются для аудита
func (s *serv) DeleteUser(ctx context.Context, userID string) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.ledger.DeleteUser(ctx, userID)
	})
	if err != nil {
		return err
	}

	logrus.WithField("user_id", userID).Info("user deleted")
	return nil
}

// ResetPassword - смена пароля пользователя администратором
func (s *serv) ResetPassword(ctx context.Context, userID, password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", model.ErrValidation, minPasswordLen)
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.ledger.UpdateUserFields(ctx, userID, model.UserPatch{
			Password: &password,
		})
	})
}

func (s *serv) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.ledger.AllUsers(ctx)
}

func (s *serv) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	return s.ledger.Transactions(ctx)
}
