package service

import (
	"casino_demo/internal/model"
	"context"
)

type AccountService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*model.User, error)
}

type GameService interface {
	PlaceBet(ctx context.Context, userID string, bet int) (*model.BetResult, error)
	Data(ctx context.Context, userID string) (*model.PlayerData, error)
}

type AdminService interface {
	CreateUser(ctx context.Context, username, password string) (*model.User, error)
	DeleteUser(ctx context.Context, userID string) error
	ResetPassword(ctx context.Context, userID, password string) error
	AddBalance(ctx context.Context, userID string, amount int) (*model.Transaction, error)
	SubtractBalance(ctx context.Context, userID string, amount int) (*model.Transaction, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	Stats(ctx context.Context) (*model.AdminStats, error)
}

type CatalogService interface {
	Games(ctx context.Context) ([]model.Game, error)
}
