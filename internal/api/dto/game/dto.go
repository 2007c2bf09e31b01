package game

import "time"

type BetRequest struct {
	GameID string `json:"game_id"` // Информативно, на розыгрыш не влияет
	Bet    int    `json:"bet"`     // Размер ставки (положительное целое)
}

type BetResponse struct {
	Bet     int                  `json:"bet"`
	Win     int                  `json:"win"`     // 0 при проигрыше
	Balance int                  `json:"balance"` // Баланс после
	BetTx   TransactionResponse  `json:"bet_transaction"`
	WinTx   *TransactionResponse `json:"win_transaction,omitempty"`
}

type TransactionResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Amount     int       `json:"amount"`
	Type       string    `json:"type"`
	OldBalance int       `json:"old_balance"`
	NewBalance int       `json:"new_balance"`
	Timestamp  time.Time `json:"timestamp"`
}

type DataResponse struct {
	Balance      int                   `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
}

type GameResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Provider  string `json:"provider"`
	Thumbnail string `json:"thumbnail"`
}
