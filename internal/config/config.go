package config

import (
	"casino_demo/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

// StoreConfig - носитель и ключ хранилища журнала
type StoreConfig interface {
	Medium() string // memory | file | postgres
	StoreKey() string
	FilePath() string
}

type PayoutConfig interface {
	Table() model.PayoutTable
}

// CurrencyConfig - ограничения на суммы операций
type CurrencyConfig interface {
	MinTransaction() int
	MaxTransaction() int
}

type CatalogConfig interface {
	BaseURL() string
	APIKey() string
}
