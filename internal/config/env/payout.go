package env

import (
	"casino_demo/internal/config"
	"casino_demo/internal/model"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Таблица выплат по умолчанию. Неявный хвост (1.0, 0) - проигрыш,
// суммарная масса проигрыша 0.35
var defaultPayoutTable = model.PayoutTable{
	{Threshold: 0.30, Multiplier: 2},
	{Threshold: 0.50, Multiplier: 3},
	{Threshold: 0.60, Multiplier: 5},
	{Threshold: 0.65, Multiplier: 10},
}

const (
	defaultMinTransaction = 1
	defaultMaxTransaction = 1000000
)

type yamlFile struct {
	Payout struct {
		Tiers []struct {
			Threshold  float64 `yaml:"threshold"`
			Multiplier int     `yaml:"multiplier"`
		} `yaml:"tiers"`
	} `yaml:"payout"`
	Currency struct {
		MinTransaction int `yaml:"min_transaction"`
		MaxTransaction int `yaml:"max_transaction"`
	} `yaml:"currency"`
}

type payoutConfig struct {
	table model.PayoutTable
}

type currencyConfig struct {
	minTransaction int
	maxTransaction int
}

// NewPayoutConfigFromYAML - таблица выплат из config.yaml.
// Отсутствующий файл не ошибка: берутся значения по умолчанию
func NewPayoutConfigFromYAML(path string) (config.PayoutConfig, error) {
	parsed, err := parseYAML(path)
	if err != nil {
		return nil, err
	}

	if parsed == nil || len(parsed.Payout.Tiers) == 0 {
		return &payoutConfig{table: defaultPayoutTable}, nil
	}

	table := make(model.PayoutTable, 0, len(parsed.Payout.Tiers))
	prev := 0.0
	for _, t := range parsed.Payout.Tiers {
		// Пороги накопленные, должны строго расти в (0, 1]
		if t.Threshold <= prev || t.Threshold > 1 {
			return nil, fmt.Errorf("payout tier threshold %v out of order", t.Threshold)
		}
		prev = t.Threshold
		table = append(table, model.PayoutTier{
			Threshold:  t.Threshold,
			Multiplier: t.Multiplier,
		})
	}

	return &payoutConfig{table: table}, nil
}

// NewCurrencyConfigFromYAML - лимиты сумм операций из config.yaml
func NewCurrencyConfigFromYAML(path string) (config.CurrencyConfig, error) {
	parsed, err := parseYAML(path)
	if err != nil {
		return nil, err
	}

	cfg := &currencyConfig{
		minTransaction: defaultMinTransaction,
		maxTransaction: defaultMaxTransaction,
	}
	if parsed != nil && parsed.Currency.MinTransaction > 0 {
		cfg.minTransaction = parsed.Currency.MinTransaction
	}
	if parsed != nil && parsed.Currency.MaxTransaction > 0 {
		cfg.maxTransaction = parsed.Currency.MaxTransaction
	}

	return cfg, nil
}

func parseYAML(path string) (*yamlFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var parsed yamlFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &parsed, nil
}

func (cfg *payoutConfig) Table() model.PayoutTable {
	return cfg.table
}

func (cfg *currencyConfig) MinTransaction() int {
	return cfg.minTransaction
}

func (cfg *currencyConfig) MaxTransaction() int {
	return cfg.maxTransaction
}
