package env

import (
	"casino_demo/internal/config"
	"fmt"
	"os"
)

const (
	storeMediumEnvName = "STORE_MEDIUM"
	storeKeyEnvName    = "STORE_KEY"
	storeFileEnvName   = "STORE_FILE"

	MediumMemory   = "memory"
	MediumFile     = "file"
	MediumPostgres = "postgres"

	// Ключ хранилища из клиентского демо
	defaultStoreKey  = "casino_data_tn"
	defaultStoreFile = "ledger.json"
)

type storeConfig struct {
	medium   string
	storeKey string
	filePath string
}

func NewStoreConfig() (config.StoreConfig, error) {
	medium := os.Getenv(storeMediumEnvName)
	if len(medium) == 0 {
		medium = MediumMemory
	}

	switch medium {
	case MediumMemory, MediumFile, MediumPostgres:
	default:
		return nil, fmt.Errorf("unknown store medium: %s", medium)
	}

	storeKey := os.Getenv(storeKeyEnvName)
	if len(storeKey) == 0 {
		storeKey = defaultStoreKey
	}

	filePath := os.Getenv(storeFileEnvName)
	if len(filePath) == 0 {
		filePath = defaultStoreFile
	}

	return &storeConfig{
		medium:   medium,
		storeKey: storeKey,
		filePath: filePath,
	}, nil
}

func (cfg *storeConfig) Medium() string {
	return cfg.medium
}

func (cfg *storeConfig) StoreKey() string {
	return cfg.storeKey
}

func (cfg *storeConfig) FilePath() string {
	return cfg.filePath
}
