package converter

import (
	dto "casino_demo/internal/api/dto/game"
	"casino_demo/internal/model"
)

func ToTransactionResponse(tx model.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:         tx.ID,
		UserID:     tx.UserID,
		Amount:     tx.Amount,
		Type:       tx.Type,
		OldBalance: tx.OldBalance,
		NewBalance: tx.NewBalance,
		Timestamp:  tx.Timestamp,
	}
}

func ToTransactionResponses(txs []model.Transaction) []dto.TransactionResponse {
	result := make([]dto.TransactionResponse, len(txs))
	for i, tx := range txs {
		result[i] = ToTransactionResponse(tx)
	}
	return result
}

func ToBetResponse(res model.BetResult) dto.BetResponse {
	out := dto.BetResponse{
		Bet:     res.Bet,
		Win:     res.Win,
		Balance: res.Balance,
		BetTx:   ToTransactionResponse(res.BetTx),
	}
	if res.WinTx != nil {
		winTx := ToTransactionResponse(*res.WinTx)
		out.WinTx = &winTx
	}
	return out
}

func ToDataResponse(data model.PlayerData) dto.DataResponse {
	return dto.DataResponse{
		Balance:      data.Balance,
		Transactions: ToTransactionResponses(data.Transactions),
	}
}

func ToGameResponses(games []model.Game) []dto.GameResponse {
	result := make([]dto.GameResponse, len(games))
	for i, g := range games {
		result[i] = dto.GameResponse{
			ID:        g.ID,
			Title:     g.Title,
			Provider:  g.Provider,
			Thumbnail: g.Thumbnail,
		}
	}
	return result
}
