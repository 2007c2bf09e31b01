package app

import (
	adminAPI "casino_demo/internal/api/admin"
	authAPI "casino_demo/internal/api/auth"
	catalogAPI "casino_demo/internal/api/catalog"
	gameAPI "casino_demo/internal/api/game"
	"casino_demo/internal/config"
	"casino_demo/internal/config/env"
	"casino_demo/internal/middleware"
	"casino_demo/internal/repository"
	"casino_demo/internal/repository/blob"
	"casino_demo/internal/repository/ledger_repo"
	"casino_demo/internal/repository/stats_repo"
	"casino_demo/internal/service"
	"casino_demo/internal/service/account"
	"casino_demo/internal/service/admin"
	"casino_demo/internal/service/catalog"
	"casino_demo/internal/service/game"
	"casino_demo/pkg/txlock"
	"context"
	"math/rand"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

const configYAMLPath = "config.yaml"

type ServiceProvider struct {
	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Store bits
	storeCfg   config.StoreConfig
	backend    repository.Backend
	ledgerRepo repository.LedgerRepository
	statsRepo  repository.StatsRepository

	// Account bits
	accountServ service.AccountService
	authHand    *authAPI.Handler

	// Game bits
	payoutCfg   config.PayoutConfig
	currencyCfg config.CurrencyConfig
	gameServ    service.GameService
	gameHand    *gameAPI.Handler

	// Admin bits
	adminServ service.AdminService
	adminHand *adminAPI.Handler

	// Catalog bits
	catalogCfg  config.CatalogConfig
	catalogServ service.CatalogService
	catalogHand *catalogAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) StoreCfg() config.StoreConfig {
	if sp.storeCfg == nil {
		cfg, err := env.NewStoreConfig()
		if err != nil {
			panic("failed to get store config: " + err.Error())
		}
		sp.storeCfg = cfg
	}
	return sp.storeCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

// Backend - носитель блоба по настройке STORE_MEDIUM
func (sp *ServiceProvider) Backend(ctx context.Context) repository.Backend {
	if sp.backend == nil {
		cfg := sp.StoreCfg()
		switch cfg.Medium() {
		case env.MediumPostgres:
			sp.backend = blob.NewPGBackend(sp.DBClient(ctx), cfg.StoreKey())
		case env.MediumFile:
			sp.backend = blob.NewFileBackend(cfg.FilePath())
		default:
			sp.backend = blob.NewMemoryBackend()
		}
	}
	return sp.backend
}

// TXManager - trm поверх Postgres либо мьютексный менеджер
// для локальных носителей
func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if sp.StoreCfg().Medium() == env.MediumPostgres {
			m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
			if err != nil {
				panic("failed to create tx manager: " + err.Error())
			}
			sp.txManager = m
		} else {
			sp.txManager = txlock.NewManager()
		}
	}
	return sp.txManager
}

func (sp *ServiceProvider) LedgerRepository(ctx context.Context) repository.LedgerRepository {
	if sp.ledgerRepo == nil {
		sp.ledgerRepo = ledger_repo.NewLedgerRepository(sp.Backend(ctx))
	}
	return sp.ledgerRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) PayoutCfg() config.PayoutConfig {
	if sp.payoutCfg == nil {
		cfg, err := env.NewPayoutConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get payout config: " + err.Error())
		}
		sp.payoutCfg = cfg
	}
	return sp.payoutCfg
}

func (sp *ServiceProvider) CurrencyCfg() config.CurrencyConfig {
	if sp.currencyCfg == nil {
		cfg, err := env.NewCurrencyConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get currency config: " + err.Error())
		}
		sp.currencyCfg = cfg
	}
	return sp.currencyCfg
}

func (sp *ServiceProvider) CatalogCfg() config.CatalogConfig {
	if sp.catalogCfg == nil {
		cfg, err := env.NewCatalogConfig()
		if err != nil {
			panic("failed to get catalog config: " + err.Error())
		}
		sp.catalogCfg = cfg
	}
	return sp.catalogCfg
}

func (sp *ServiceProvider) AccountService(ctx context.Context) service.AccountService {
	if sp.accountServ == nil {
		sp.accountServ = account.NewAccountService(sp.LedgerRepository(ctx), sp.TXManager(ctx))
	}
	return sp.accountServ
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		sp.gameServ = game.NewGameService(
			sp.LedgerRepository(ctx),
			sp.StatsRepository(),
			sp.TXManager(ctx),
			sp.PayoutCfg(),
			sp.CurrencyCfg(),
			rng,
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) AdminService(ctx context.Context) service.AdminService {
	if sp.adminServ == nil {
		sp.adminServ = admin.NewAdminService(
			sp.LedgerRepository(ctx),
			sp.StatsRepository(),
			sp.TXManager(ctx),
			sp.CurrencyCfg(),
		)
	}
	return sp.adminServ
}

func (sp *ServiceProvider) CatalogService() service.CatalogService {
	if sp.catalogServ == nil {
		sp.catalogServ = catalog.NewCatalogService(sp.CatalogCfg())
	}
	return sp.catalogServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AccountService(ctx),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv: sp.GameService(ctx),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{
			Serv: sp.AdminService(ctx),
		})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) CatalogHandler() *catalogAPI.Handler {
	if sp.catalogHand == nil {
		sp.catalogHand = catalogAPI.NewHandler(catalogAPI.HandlerDeps{
			Serv: sp.CatalogService(),
		})
	}
	return sp.catalogHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		ledger := sp.LedgerRepository(ctx)

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/logout", authHandler.Logout)
			rr.Get("/me", authHandler.Me)
		})

		// Game endpoints
		gameHandler := sp.GameHandler(ctx)
		catalogHandler := sp.CatalogHandler()
		r.Route("/games", func(rr chi.Router) {
			rr.Get("/", catalogHandler.Games)
			rr.Group(func(rrr chi.Router) {
				rrr.Use(middleware.RequireUser(ledger))
				rrr.Post("/bet", gameHandler.Bet)
				rrr.Get("/data", gameHandler.Data)
			})
		})

		// Admin endpoints
		adminHandler := sp.AdminHandler(ctx)
		r.Route("/admin", func(rr chi.Router) {
			rr.Use(middleware.RequireAdmin(ledger))
			rr.Get("/users", adminHandler.ListUsers)
			rr.Post("/users", adminHandler.CreateUser)
			rr.Delete("/users/{id}", adminHandler.DeleteUser)
			rr.Patch("/users/{id}", adminHandler.ResetPassword)
			rr.Post("/users/{id}/balance/add", adminHandler.AddBalance)
			rr.Post("/users/{id}/balance/subtract", adminHandler.SubtractBalance)
			rr.Get("/transactions", adminHandler.ListTransactions)
			rr.Get("/stats", adminHandler.Stats)
		})

		sp.router = r
	}

	return sp.router
}
