package blob

import (
	"casino_demo/internal/repository"
	"context"
	"os"
)

type fileBackend struct {
	path string
}

func NewFileBackend(path string) repository.Backend {
	return &fileBackend{
		path: path,
	}
}

func (b *fileBackend) Load(_ context.Context) ([]byte, error) {
	raw, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return raw, nil
}

// Save - атомарная запись: сначала во временный файл, затем rename.
// Прерванная запись не портит прежний снимок
func (b *fileBackend) Save(_ context.Context, data []byte) error {
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, b.path)
}
