package account

import "context"

// Logout - снимает указатель сессии. Пользователи и журнал не трогаются
func (s *serv) Logout(ctx context.Context) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.ledger.SetCurrentUser(ctx, nil)
	})
}
