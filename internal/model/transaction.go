package model

import "time"

const (
	TransactionDeposit    = "deposit"
	TransactionWithdrawal = "withdrawal"
)

// Transaction - запись в журнале операций.
// Инвариант: NewBalance = OldBalance + Amount.
// После создания запись не изменяется и не удаляется (append-only)
type Transaction struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Amount     int       `json:"amount"` // Положительный - зачисление, отрицательный - списание
	Type       string    `json:"type"`
	OldBalance int       `json:"oldBalance"`
	NewBalance int       `json:"newBalance"`
	Timestamp  time.Time `json:"timestamp"`
}
