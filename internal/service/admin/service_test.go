package admin

import (
	"casino_demo/internal/config/env"
	"casino_demo/internal/model"
	"casino_demo/internal/repository"
	"casino_demo/internal/repository/blob"
	"casino_demo/internal/repository/ledger_repo"
	"casino_demo/internal/repository/stats_repo"
	"casino_demo/internal/service"
	"casino_demo/pkg/txlock"
	"context"
	"errors"
	"testing"
)

func newTestService(t *testing.T) (service.AdminService, repository.LedgerRepository, repository.StatsRepository) {
	t.Helper()

	ledger := ledger_repo.NewLedgerRepository(blob.NewMemoryBackend())
	stats := stats_repo.NewStatsRepository()
	currencyCfg, err := env.NewCurrencyConfigFromYAML("no_such_config.yaml")
	if err != nil {
		t.Fatal(err)
	}

	return NewAdminService(ledger, stats, txlock.NewManager(), currencyCfg), ledger, stats
}

func TestCreateUserNoSession(t *testing.T) {
	serv, ledger, _ := newTestService(t)
	ctx := context.Background()

	user, err := serv.CreateUser(ctx, "alice", "pass1")
	if err != nil {
		t.Fatalf("CreateUser err=%v", err)
	}
	if user.IsAdmin || user.Balance != model.StartBalance {
		t.Fatalf("unexpected user: %+v", user)
	}

	// Заведение аккаунта администратором не открывает сессию
	if cur, _ := ledger.CurrentUser(ctx); cur != nil {
		t.Fatalf("session=%+v, want nil", cur)
	}

	if _, err := serv.CreateUser(ctx, "alice", "pass2"); !errors.Is(err, model.ErrDuplicateUsername) {
		t.Fatalf("err=%v, want ErrDuplicateUsername", err)
	}
	if _, err := serv.CreateUser(ctx, "", "pass1"); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("err=%v, want ErrValidation", err)
	}
}

func TestBalanceAdjustments(t *testing.T) {
	serv, ledger, _ := newTestService(t)
	ctx := context.Background()

	user, _ := ledger.CreateUser(ctx, "alice", "pass1")

	tx, err := serv.AddBalance(ctx, user.ID, 500)
	if err != nil {
		t.Fatalf("AddBalance err=%v", err)
	}
	if tx.Amount != 500 || tx.Type != model.TransactionDeposit || tx.NewBalance != 1500 {
		t.Fatalf("add tx: %+v", tx)
	}

	// Списание не проверяет достаточность: баланс может уйти в минус
	tx, err = serv.SubtractBalance(ctx, user.ID, 2000)
	if err != nil {
		t.Fatalf("SubtractBalance err=%v", err)
	}
	if tx.Amount != -2000 || tx.Type != model.TransactionWithdrawal || tx.NewBalance != -500 {
		t.Fatalf("subtract tx: %+v", tx)
	}

	got, _ := ledger.UserByID(ctx, user.ID)
	if got.Balance != -500 {
		t.Fatalf("balance=%d, want -500", got.Balance)
	}

	// Лимиты сумм
	if _, err := serv.AddBalance(ctx, user.ID, 0); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("err=%v, want ErrValidation", err)
	}
	if _, err := serv.AddBalance(ctx, user.ID, 2000000); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("err=%v, want ErrValidation", err)
	}
	if _, err := serv.AddBalance(ctx, "ghost", 100); !errors.Is(err, model.ErrUserNotFound) {
		t.Fatalf("err=%v, want ErrUserNotFound", err)
	}
}

func TestResetPassword(t *testing.T) {
	serv, ledger, _ := newTestService(t)
	ctx := context.Background()

	user, _ := ledger.CreateUser(ctx, "alice", "pass1")

	if err := serv.ResetPassword(ctx, user.ID, "abc"); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("err=%v, want ErrValidation", err)
	}
	if err := serv.ResetPassword(ctx, user.ID, "newpass"); err != nil {
		t.Fatalf("ResetPassword err=%v", err)
	}
	if _, err := ledger.Authenticate(ctx, "alice", "newpass"); err != nil {
		t.Fatalf("auth after reset err=%v", err)
	}
}

func TestStats(t *testing.T) {
	serv, ledger, stats := newTestService(t)
	ctx := context.Background()

	user, _ := ledger.CreateUser(ctx, "alice", "pass1")
	_, _ = serv.AddBalance(ctx, user.ID, 300)
	_, _ = serv.SubtractBalance(ctx, user.ID, 100)
	stats.Record(50, 100)

	got, err := serv.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats err=%v", err)
	}
	if got.UserCount != 2 { // admin + alice
		t.Fatalf("users=%d, want 2", got.UserCount)
	}
	if got.TransactionCount != 2 || got.DepositTotal != 300 || got.WithdrawalTotal != 100 {
		t.Fatalf("stats=%+v", got)
	}
	if got.TotalBalance != 999999+1200 {
		t.Fatalf("total balance=%d", got.TotalBalance)
	}
	if got.Payout.TotalBet != 50 || got.Payout.TotalPayout != 100 || got.Payout.RTP != 2.0 {
		t.Fatalf("payout stats=%+v", got.Payout)
	}
}

func TestDeleteUserKeepsLedger(t *testing.T) {
	serv, ledger, _ := newTestService(t)
	ctx := context.Background()

	user, _ := ledger.CreateUser(ctx, "alice", "pass1")
	_, _ = serv.SubtractBalance(ctx, user.ID, 100)

	if err := serv.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("DeleteUser err=%v", err)
	}

	users, _ := serv.ListUsers(ctx)
	for _, u := range users {
		if u.ID == user.ID {
			t.Fatalf("user %q still listed", user.ID)
		}
	}

	txs, _ := serv.ListTransactions(ctx)
	if len(txs) != 1 || txs[0].UserID != user.ID {
		t.Fatalf("orphaned transactions lost: %+v", txs)
	}
}
