package env

import (
	"casino_demo/internal/config"
	"os"
)

const (
	catalogURLEnvName = "CATALOG_API_URL"
	catalogKeyEnvName = "CATALOG_API_KEY"

	defaultCatalogURL = "https://api.softswiss.com/v1"
)

type catalogConfig struct {
	baseURL string
	apiKey  string
}

// NewCatalogConfig - конфигурация агрегатора игр.
// Пустой API ключ допустим: каталог отдаст встроенный mock-список
func NewCatalogConfig() (config.CatalogConfig, error) {
	baseURL := os.Getenv(catalogURLEnvName)
	if len(baseURL) == 0 {
		baseURL = defaultCatalogURL
	}

	return &catalogConfig{
		baseURL: baseURL,
		apiKey:  os.Getenv(catalogKeyEnvName),
	}, nil
}

func (cfg *catalogConfig) BaseURL() string {
	return cfg.baseURL
}

func (cfg *catalogConfig) APIKey() string {
	return cfg.apiKey
}
