// Package txlock - trm.Manager для носителей без настоящих транзакций
// (память, файл): границы операции сериализуются мьютексом,
// один писатель на хранилище
package txlock

import (
	"context"
	"sync"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type manager struct {
	mu sync.Mutex
}

func NewManager() trm.Manager {
	return &manager{}
}

func (m *manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(ctx)
}

func (m *manager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
