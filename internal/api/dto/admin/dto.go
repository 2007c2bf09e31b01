package admin

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}

type BalanceRequest struct {
	Amount int `json:"amount"` // Положительная сумма, знак задаёт операция
}

type StatsResponse struct {
	UserCount        int     `json:"user_count"`
	TotalBalance     int     `json:"total_balance"`
	DepositTotal     int     `json:"deposit_total"`
	WithdrawalTotal  int     `json:"withdrawal_total"`
	TransactionCount int     `json:"transaction_count"`
	TotalBet         int     `json:"total_bet"`
	TotalPayout      int     `json:"total_payout"`
	BetCount         int     `json:"bet_count"`
	RTP              float64 `json:"rtp"`
}
