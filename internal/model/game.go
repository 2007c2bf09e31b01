package model

// Game - карточка игры в лобби. Источник - внешний агрегатор,
// ядро хранилища от него не зависит
type Game struct {
	ID        string
	Title     string
	Provider  string
	Thumbnail string
}

// PayoutTier - ступень таблицы выплат: порог накопленной вероятности
// и множитель ставки
type PayoutTier struct {
	Threshold  float64
	Multiplier int
}

// PayoutTable - упорядоченные ступени выплат.
// Неявный хвост (1.0, 0) - проигрыш
type PayoutTable []PayoutTier

// BetResult - итог одной ставки
type BetResult struct {
	Bet        int
	Win        int
	Balance    int
	BetTx      Transaction
	WinTx      *Transaction // nil при проигрыше
}

// RTPStats - накопленная статистика выплат казино
type RTPStats struct {
	TotalBet    int
	TotalPayout int
	BetCount    int
	RTP         float64 // TotalPayout / TotalBet, 0 пока ставок не было
}

// PlayerData - баланс и собственные операции игрока
type PlayerData struct {
	Balance      int
	Transactions []Transaction
}

// AdminStats - сводка для панели администратора
type AdminStats struct {
	UserCount        int
	TotalBalance     int
	DepositTotal     int
	WithdrawalTotal  int
	TransactionCount int
	Payout           RTPStats
}
