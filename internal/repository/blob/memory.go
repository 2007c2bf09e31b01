// Package blob содержит носители блоба состояния журнала:
// память процесса, JSON-файл и Postgres (одна строка на ключ)
package blob

import (
	"casino_demo/internal/repository"
	"context"
	"sync"
)

type memoryBackend struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryBackend() repository.Backend {
	return &memoryBackend{}
}

func (b *memoryBackend) Load(_ context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.data == nil {
		return nil, nil
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, nil
}

func (b *memoryBackend) Save(_ context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data = make([]byte, len(data))
	copy(b.data, data)
	return nil
}
