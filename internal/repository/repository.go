package repository

import (
	"casino_demo/internal/model"
	"context"
)

// Backend - носитель блоба состояния под одним ключом.
// Load возвращает nil без ошибки, если ничего не сохранено
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// LedgerRepository - журнал балансов и операций.
// Баланс меняется и журнал пополняется только через UpdateBalance
type LedgerRepository interface {
	Load(ctx context.Context) (*model.StoreState, error)
	Save(ctx context.Context, state *model.StoreState) error

	CreateUser(ctx context.Context, username, password string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	UpdateBalance(ctx context.Context, userID string, amount int) (*model.Transaction, error)
	DeleteUser(ctx context.Context, userID string) error
	UpdateUserFields(ctx context.Context, userID string, patch model.UserPatch) error

	SetCurrentUser(ctx context.Context, user *model.User) error
	CurrentUser(ctx context.Context) (*model.User, error)

	AllUsers(ctx context.Context) ([]model.User, error)
	UserByID(ctx context.Context, userID string) (*model.User, error)
	Transactions(ctx context.Context) ([]model.Transaction, error)
}

// StatsRepository - статистика выплат казино в памяти процесса
type StatsRepository interface {
	Record(bet, payout int)
	Stats() model.RTPStats
}
