package account

import (
	"casino_demo/internal/model"
	"context"
)

// Login - вход по имени и паролю. При неверных данных
// активная сессия не меняется
func (s *serv) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.ledger.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.ledger.SetCurrentUser(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *serv) Current(ctx context.Context) (*model.User, error) {
	return s.ledger.CurrentUser(ctx)
}
