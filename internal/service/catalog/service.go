package catalog

import (
	"casino_demo/internal/config"
	"casino_demo/internal/service"
	"time"

	"github.com/go-resty/resty/v2"
)

type serv struct {
	cfg    config.CatalogConfig
	client *resty.Client
}

// NewCatalogService - список игр лобби из внешнего агрегатора.
// Ядро журнала от каталога не зависит
func NewCatalogService(cfg config.CatalogConfig) service.CatalogService {
	client := resty.New().
		SetBaseURL(cfg.BaseURL()).
		SetTimeout(10 * time.Second)

	return &serv{
		cfg:    cfg,
		client: client,
	}
}
