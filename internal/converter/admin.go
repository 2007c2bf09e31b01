package converter

import (
	dto "casino_demo/internal/api/dto/admin"
	"casino_demo/internal/model"
)

func ToStatsResponse(stats model.AdminStats) dto.StatsResponse {
	return dto.StatsResponse{
		UserCount:        stats.UserCount,
		TotalBalance:     stats.TotalBalance,
		DepositTotal:     stats.DepositTotal,
		WithdrawalTotal:  stats.WithdrawalTotal,
		TransactionCount: stats.TransactionCount,
		TotalBet:         stats.Payout.TotalBet,
		TotalPayout:      stats.Payout.TotalPayout,
		BetCount:         stats.Payout.BetCount,
		RTP:              stats.Payout.RTP,
	}
}
