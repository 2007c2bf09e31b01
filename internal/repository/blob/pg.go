package blob

import (
	"casino_demo/internal/repository"
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "ledger_state"
	colStoreKey  = "store_key"
	colState     = "state"
	colUpdatedAt = "updated_at"
)

type pgBackend struct {
	dbc      *pgxpool.Pool
	getter   *trmpgx.CtxGetter
	storeKey string
}

// NewPGBackend - блоб в Postgres: одна строка на ключ хранилища.
// Запросы идут через CtxGetter и попадают в транзакцию trm, если она открыта
func NewPGBackend(dbc *pgxpool.Pool, storeKey string) repository.Backend {
	return &pgBackend{
		dbc:      dbc,
		getter:   trmpgx.DefaultCtxGetter,
		storeKey: storeKey,
	}
}

// Load - читает блоб состояния по ключу.
// Отсутствие строки не ошибка
func (b *pgBackend) Load(ctx context.Context) ([]byte, error) {
	// Формируем запрос
	query := sq.Select(colState).
		From(table).
		Where(sq.Eq{colStoreKey: b.storeKey}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var raw []byte
	err = b.getter.DefaultTrOrDB(ctx, b.dbc).QueryRow(ctx, sqlStr, args...).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return raw, nil
}

// Save - перезаписывает блоб состояния по ключу
func (b *pgBackend) Save(ctx context.Context, data []byte) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colStoreKey, colState, colUpdatedAt).
		Values(b.storeKey, data, time.Now()).
		Suffix("ON CONFLICT (" + colStoreKey + ") DO UPDATE SET " +
			colState + " = EXCLUDED." + colState + ", " +
			colUpdatedAt + " = EXCLUDED." + colUpdatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = b.getter.DefaultTrOrDB(ctx, b.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}
