package ledger_repo

import (
	"casino_demo/internal/model"
	"casino_demo/internal/repository"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// repo - движок журнала поверх носителя блоба.
// Все мутации сериализованы мьютексом (один писатель на ключ).
// Сбой носителя не валит операцию: состояние живёт в памяти,
// запись деградирует до no-op с предупреждением в логе
type repo struct {
	mu      sync.Mutex
	backend repository.Backend
	state   *model.StoreState
}

func NewLedgerRepository(backend repository.Backend) repository.LedgerRepository {
	return &repo{
		backend: backend,
	}
}

// seedState - состояние по умолчанию: один администратор,
// пустой журнал, нет активной сессии
func seedState() *model.StoreState {
	return &model.StoreState{
		Users: []model.User{
			{
				ID:        "admin001",
				Username:  "admin",
				Password:  "admin123",
				IsAdmin:   true,
				Balance:   999999,
				Role:      model.RoleAdmin,
				CreatedAt: time.Now(),
			},
		},
		CurrentUser:  nil,
		Transactions: []model.Transaction{},
		GameStates:   map[string]json.RawMessage{},
	}
}

// Load - текущее состояние хранилища.
// Возвращает копию, чтобы вызывающий не менял журнал в обход UpdateBalance
func (r *repo) Load(ctx context.Context) (*model.StoreState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loadLocked(ctx)
	return cloneState(r.state), nil
}

// Save - полная перезапись состояния с сохранением на носитель
func (r *repo) Save(ctx context.Context, state *model.StoreState) error {
	if state == nil {
		return fmt.Errorf("%w: nil state", model.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = cloneState(state)
	if err := r.persistLocked(ctx); err != nil {
		return err
	}
	return nil
}

// CreateUser - регистрирует нового игрока со стартовым балансом.
// Имя пользователя уникально, сравнение строгое
func (r *repo) CreateUser(ctx context.Context, username, password string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loadLocked(ctx)
	for i := range r.state.Users {
		if r.state.Users[i].Username == username {
			return nil, model.ErrDuplicateUsername
		}
	}

	user := model.User{
		ID:        "user_" + uuid.NewString(),
		Username:  username,
		Password:  password,
		IsAdmin:   false,
		Balance:   model.StartBalance,
		Role:      model.RolePlayer,
		CreatedAt: time.Now(),
	}

	r.state.Users = append(r.state.Users, user)
	_ = r.persistLocked(ctx)

	created := user
	return &created, nil
}

// Authenticate - поиск пользователя по точному совпадению имени и пароля
func (r *repo) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loadLocked(ctx)
	for i := range r.state.Users {
		if r.state.Users[i].Username == username && r.state.Users[i].Password == password {
			return cloneUser(&r.state.Users[i]), nil
		}
	}

	return nil, model.ErrInvalidCredentials
}

// UpdateBalance - единственный путь изменения баланса.
// Добавляет в журнал запись со снимками баланса до и после
func (r *repo) UpdateBalance(ctx context.Context, userID string, amount int) (*model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loadLocked(ctx)
	user := r.findLocked(userID)
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	oldBalance := user.Balance
	user.Balance += amount

	txType := model.TransactionWithdrawal
	if amount > 0 {
		txType = model.TransactionDeposit
	}

	tx := model.Transaction{
		ID:         "trans_" + uuid.NewString(),
		UserID:     userID,
		Amount:     amount,
		Type:       txType,
		OldBalance: oldBalance,
		NewBalance: user.Balance,
		Timestamp:  time.Now(),
	}
	r.state.Transactions = append(r.state.Transactions, tx)

	// Активная сессия хранит снимок пользователя, обновляем и его
	if r.state.CurrentUser != nil && r.state.CurrentUser.ID == userID {
		r.state.CurrentUser = cloneUser(user)
	}

	_ = r.persistLocked(ctx)

	logrus.WithFields(logrus.Fields{
		"user_id":     userID,
		"amount":      amount,
		"type":        txType,
		"old_balance": oldBalance,
		"new_balance": user.Balance,
	}).Info("balance updated")

	created := tx
	return &created, nil
}

// DeleteUser - удаляет пользователя. Записи журнала с его ID
// остаются: осиротевшие ссылки допустимы по построению
func (r *repo) DeleteUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loadLocked(ctx)
	users := r.state.Users[:0]
	for _, u := range r.state.Users {
		if u.ID != userID {
			users = append(users, u)
		}
	}
	r.state.Users = users

	if r.state.CurrentUser != nil && r.state.CurrentUser.ID == userID {
		r.state.CurrentUser = nil
	}

	_ = r.persistLocked(ctx)
	return nil
}

// UpdateUserFields - частичное обновление полей пользователя.
// Баланс этим путём не меняется
func (r *repo) UpdateUserFields(ctx context.Context, userID string, patch model.UserPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loadLocked(ctx)
	user := r.findLocked(userID)
	if user == nil {
		return model.ErrUserNotFound
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.IsAdmin != nil {
		user.IsAdmin = *patch.IsAdmin
	}

	if r.state.CurrentUser != nil && r.state.CurrentUser.ID == userID {
		r.state.CurrentUser = cloneUser(user)
	}

	_ = r.persistLocked(ctx)
	return nil
}

// SetCurrentUser - указатель активной сессии. nil снимает сессию
func (r *repo) SetCurrentUser(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loadLocked(ctx)
	if user == nil {
		r.state.CurrentUser = nil
	} else {
		r.state.CurrentUser = cloneUser(user)
	}

	_ = r.persistLocked(ctx)
	return nil
}

func (r *repo) CurrentUser(ctx context.Context) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loadLocked(ctx)
	if r.state.CurrentUser == nil {
		return nil, nil
	}
	return cloneUser(r.state.CurrentUser), nil
}

func (r *repo) AllUsers(ctx context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loadLocked(ctx)
	users := make([]model.User, len(r.state.Users))
	copy(users, r.state.Users)
	return users, nil
}

func (r *repo) UserByID(ctx context.Context, userID string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loadLocked(ctx)
	user := r.findLocked(userID)
	if user == nil {
		return nil, model.ErrUserNotFound
	}
	return cloneUser(user), nil
}

// Transactions - журнал в порядке вставки (хронологический)
func (r *repo) Transactions(ctx context.Context) ([]model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loadLocked(ctx)
	txs := make([]model.Transaction, len(r.state.Transactions))
	copy(txs, r.state.Transactions)
	return txs, nil
}

// loadLocked - ленивое чтение состояния с носителя.
// Нечитаемые или битые данные не ошибка: открываемся на значениях
// по умолчанию. Вызывается под мьютексом
func (r *repo) loadLocked(ctx context.Context) {
	if r.state != nil {
		return
	}

	raw, err := r.backend.Load(ctx)
	if err != nil {
		logrus.WithError(err).Warn("ledger load failed, falling back to defaults")
		r.state = seedState()
		return
	}
	if raw == nil {
		r.state = seedState()
		return
	}

	var state model.StoreState
	if err := json.Unmarshal(raw, &state); err != nil {
		logrus.WithError(err).Warn("ledger data malformed, falling back to defaults")
		r.state = seedState()
		return
	}

	if state.GameStates == nil {
		state.GameStates = map[string]json.RawMessage{}
	}
	if state.Transactions == nil {
		state.Transactions = []model.Transaction{}
	}
	r.state = &state
}

// persistLocked - запись состояния на носитель.
// Сбой записи не прерывает работу: состояние остаётся в памяти
func (r *repo) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(r.state)
	if err != nil {
		logrus.WithError(err).Error("ledger state marshal failed")
		return fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
	}

	if err := r.backend.Save(ctx, raw); err != nil {
		logrus.WithError(err).Warn("ledger save failed, keeping state in memory")
		return fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
	}

	return nil
}

func (r *repo) findLocked(userID string) *model.User {
	for i := range r.state.Users {
		if r.state.Users[i].ID == userID {
			return &r.state.Users[i]
		}
	}
	return nil
}

func cloneUser(u *model.User) *model.User {
	c := *u
	return &c
}

func cloneState(s *model.StoreState) *model.StoreState {
	c := &model.StoreState{
		Users:        make([]model.User, len(s.Users)),
		Transactions: make([]model.Transaction, len(s.Transactions)),
		GameStates:   make(map[string]json.RawMessage, len(s.GameStates)),
	}
	copy(c.Users, s.Users)
	copy(c.Transactions, s.Transactions)
	for k, v := range s.GameStates {
		c.GameStates[k] = v
	}
	if s.CurrentUser != nil {
		c.CurrentUser = cloneUser(s.CurrentUser)
	}
	return c
}
