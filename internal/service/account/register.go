package account

import (
	"casino_demo/internal/model"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Register - регистрация игрока. Успешная регистрация
// сразу открывает сессию
func (s *serv) Register(ctx context.Context, username, password string) (*model.User, error) {
	if len(username) == 0 || len(password) == 0 {
		return nil, fmt.Errorf("%w: username and password are required", model.ErrValidation)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", model.ErrValidation, minPasswordLen)
	}

	var user *model.User

	// Начало транзакции: создание пользователя и открытие сессии
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.ledger.CreateUser(ctx, username, password)
		if err != nil {
			return err
		}

		err = s.ledger.SetCurrentUser(ctx, created)
		if err != nil {
			return err
		}

		user = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("user registered")

	return user, nil
}
