package ledger_repo

import (
	"casino_demo/internal/model"
	"casino_demo/internal/repository"
	"casino_demo/internal/repository/blob"
	"context"
	"errors"
	"testing"
)

// brokenBackend - носитель, у которого отказали чтение и запись
type brokenBackend struct{}

func (brokenBackend) Load(context.Context) ([]byte, error) {
	return nil, errors.New("backend down")
}

func (brokenBackend) Save(context.Context, []byte) error {
	return errors.New("backend down")
}

func newTestRepo() repository.LedgerRepository {
	return NewLedgerRepository(blob.NewMemoryBackend())
}

func TestSeedState(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	state, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}

	if len(state.Users) != 1 {
		t.Fatalf("seed users=%d, want 1", len(state.Users))
	}
	admin := state.Users[0]
	if !admin.IsAdmin || admin.Username != "admin" || admin.Balance != 999999 {
		t.Fatalf("unexpected seed admin: %+v", admin)
	}
	if state.CurrentUser != nil {
		t.Fatalf("seed currentUser=%+v, want nil", state.CurrentUser)
	}
	if len(state.Transactions) != 0 {
		t.Fatalf("seed transactions=%d, want 0", len(state.Transactions))
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	first, err := repo.CreateUser(ctx, "alice", "pass1")
	if err != nil {
		t.Fatalf("CreateUser err=%v", err)
	}
	if first.Balance != model.StartBalance || first.IsAdmin || first.Role != model.RolePlayer {
		t.Fatalf("unexpected new user: %+v", first)
	}

	_, err = repo.CreateUser(ctx, "alice", "other")
	if !errors.Is(err, model.ErrDuplicateUsername) {
		t.Fatalf("duplicate err=%v, want ErrDuplicateUsername", err)
	}

	users, _ := repo.AllUsers(ctx)
	if len(users) != 2 { // admin + alice
		t.Fatalf("users=%d, want 2", len(users))
	}
}

func TestAuthenticateExactMatch(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	if _, err := repo.CreateUser(ctx, "alice", "pass1"); err != nil {
		t.Fatal(err)
	}

	user, err := repo.Authenticate(ctx, "alice", "pass1")
	if err != nil || user == nil {
		t.Fatalf("Authenticate err=%v user=%v", err, user)
	}

	if _, err := repo.Authenticate(ctx, "alice", "wrong"); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Fatalf("wrong password err=%v, want ErrInvalidCredentials", err)
	}
	// Регистр имени значим
	if _, err := repo.Authenticate(ctx, "Alice", "pass1"); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Fatalf("case mismatch err=%v, want ErrInvalidCredentials", err)
	}
}

// Сценарий из жизни журнала: регистрация, списание, зачисление,
// удаление пользователя с сохранением его операций
func TestLedgerScenario(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	alice, err := repo.CreateUser(ctx, "alice", "pass1")
	if err != nil {
		t.Fatalf("CreateUser err=%v", err)
	}
	if alice.Balance != 1000 {
		t.Fatalf("balance=%d, want 1000", alice.Balance)
	}
	if txs, _ := repo.Transactions(ctx); len(txs) != 0 {
		t.Fatalf("transactions=%d, want 0", len(txs))
	}

	tx1, err := repo.UpdateBalance(ctx, alice.ID, -100)
	if err != nil {
		t.Fatalf("UpdateBalance err=%v", err)
	}
	if tx1.Amount != -100 || tx1.OldBalance != 1000 || tx1.NewBalance != 900 || tx1.Type != model.TransactionWithdrawal {
		t.Fatalf("unexpected tx1: %+v", tx1)
	}

	tx2, err := repo.UpdateBalance(ctx, alice.ID, 300)
	if err != nil {
		t.Fatalf("UpdateBalance err=%v", err)
	}
	if tx2.Amount != 300 || tx2.OldBalance != 900 || tx2.NewBalance != 1200 || tx2.Type != model.TransactionDeposit {
		t.Fatalf("unexpected tx2: %+v", tx2)
	}

	user, err := repo.UserByID(ctx, alice.ID)
	if err != nil || user.Balance != 1200 {
		t.Fatalf("balance after ops: user=%+v err=%v", user, err)
	}

	if err := repo.DeleteUser(ctx, alice.ID); err != nil {
		t.Fatalf("DeleteUser err=%v", err)
	}
	if _, err := repo.UserByID(ctx, alice.ID); !errors.Is(err, model.ErrUserNotFound) {
		t.Fatalf("deleted user err=%v, want ErrUserNotFound", err)
	}

	// Осиротевшие записи журнала сохраняются нетронутыми
	txs, _ := repo.Transactions(ctx)
	if len(txs) != 2 {
		t.Fatalf("transactions=%d, want 2", len(txs))
	}
	for _, tx := range txs {
		if tx.UserID != alice.ID {
			t.Fatalf("orphaned tx userID=%q, want %q", tx.UserID, alice.ID)
		}
	}
}

// Цепочка: NewBalance записи n равен OldBalance записи n+1
func TestChainedConsistency(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	user, _ := repo.CreateUser(ctx, "bob", "pass1")
	amounts := []int{-50, 200, -300, 75, -1}
	for _, a := range amounts {
		if _, err := repo.UpdateBalance(ctx, user.ID, a); err != nil {
			t.Fatalf("UpdateBalance(%d) err=%v", a, err)
		}
	}

	txs, _ := repo.Transactions(ctx)
	if len(txs) != len(amounts) {
		t.Fatalf("transactions=%d, want %d", len(txs), len(amounts))
	}
	for i, tx := range txs {
		if tx.NewBalance != tx.OldBalance+tx.Amount {
			t.Fatalf("tx %d: %d != %d + %d", i, tx.NewBalance, tx.OldBalance, tx.Amount)
		}
		if i > 0 && txs[i-1].NewBalance != tx.OldBalance {
			t.Fatalf("chain broken at %d: %d != %d", i, txs[i-1].NewBalance, tx.OldBalance)
		}
	}
}

func TestUpdateBalanceUnknownUser(t *testing.T) {
	repo := newTestRepo()

	_, err := repo.UpdateBalance(context.Background(), "ghost", 100)
	if !errors.Is(err, model.ErrUserNotFound) {
		t.Fatalf("err=%v, want ErrUserNotFound", err)
	}
}

func TestUpdateUserFields(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	user, _ := repo.CreateUser(ctx, "carol", "pass1")

	newPass := "newpass"
	if err := repo.UpdateUserFields(ctx, user.ID, model.UserPatch{Password: &newPass}); err != nil {
		t.Fatalf("UpdateUserFields err=%v", err)
	}

	if _, err := repo.Authenticate(ctx, "carol", "newpass"); err != nil {
		t.Fatalf("auth with new password err=%v", err)
	}
	// Остальные поля не тронуты
	got, _ := repo.UserByID(ctx, user.ID)
	if got.Username != "carol" || got.Balance != model.StartBalance {
		t.Fatalf("patch touched other fields: %+v", got)
	}

	if err := repo.UpdateUserFields(ctx, "ghost", model.UserPatch{Password: &newPass}); !errors.Is(err, model.ErrUserNotFound) {
		t.Fatalf("err=%v, want ErrUserNotFound", err)
	}
}

func TestCurrentUserPointer(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	if cur, _ := repo.CurrentUser(ctx); cur != nil {
		t.Fatalf("currentUser=%+v, want nil", cur)
	}

	user, _ := repo.CreateUser(ctx, "dave", "pass1")
	if err := repo.SetCurrentUser(ctx, user); err != nil {
		t.Fatal(err)
	}

	cur, _ := repo.CurrentUser(ctx)
	if cur == nil || cur.ID != user.ID {
		t.Fatalf("currentUser=%+v, want %q", cur, user.ID)
	}

	// Снимок сессии следует за балансом
	if _, err := repo.UpdateBalance(ctx, user.ID, -100); err != nil {
		t.Fatal(err)
	}
	cur, _ = repo.CurrentUser(ctx)
	if cur.Balance != model.StartBalance-100 {
		t.Fatalf("session balance=%d, want %d", cur.Balance, model.StartBalance-100)
	}

	if err := repo.SetCurrentUser(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if cur, _ := repo.CurrentUser(ctx); cur != nil {
		t.Fatalf("currentUser after clear=%+v, want nil", cur)
	}
}

// save(load()) - неподвижная точка
func TestSaveLoadFixedPoint(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	user, _ := repo.CreateUser(ctx, "erin", "pass1")
	_, _ = repo.UpdateBalance(ctx, user.ID, -250)

	before, err := repo.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, before); err != nil {
		t.Fatal(err)
	}
	after, err := repo.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if len(after.Users) != len(before.Users) || len(after.Transactions) != len(before.Transactions) {
		t.Fatalf("state changed: before=%+v after=%+v", before, after)
	}
	if after.Transactions[0] != before.Transactions[0] {
		t.Fatalf("transaction changed: %+v != %+v", after.Transactions[0], before.Transactions[0])
	}
}

// Битые данные на носителе - не ошибка, открываемся на дефолтах
func TestLoadMalformedFallsOpen(t *testing.T) {
	backend := blob.NewMemoryBackend()
	ctx := context.Background()
	if err := backend.Save(ctx, []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	repo := NewLedgerRepository(backend)
	state, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if len(state.Users) != 1 || state.Users[0].Username != "admin" {
		t.Fatalf("expected seed state, got %+v", state)
	}
}

// Отказ носителя: чтение и запись деградируют,
// хранилище продолжает работать из памяти
func TestBrokenBackendDegrades(t *testing.T) {
	repo := NewLedgerRepository(brokenBackend{})
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, "frank", "pass1")
	if err != nil {
		t.Fatalf("CreateUser on broken backend err=%v", err)
	}

	tx, err := repo.UpdateBalance(ctx, user.ID, -100)
	if err != nil {
		t.Fatalf("UpdateBalance on broken backend err=%v", err)
	}
	if tx.NewBalance != model.StartBalance-100 {
		t.Fatalf("balance=%d, want %d", tx.NewBalance, model.StartBalance-100)
	}

	// Явный Save обязан сообщить об отказе
	state, _ := repo.Load(ctx)
	if err := repo.Save(ctx, state); !errors.Is(err, model.ErrStorageUnavailable) {
		t.Fatalf("Save err=%v, want ErrStorageUnavailable", err)
	}
}
