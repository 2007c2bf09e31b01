package stats_repo

import (
	"casino_demo/internal/model"
	"casino_demo/internal/repository"
	"sync"
)

// repo - накопительная статистика выплат (RTP) в памяти процесса.
// Не персистится: счётчики обнуляются при рестарте
type repo struct {
	mu          sync.Mutex
	totalBet    int
	totalPayout int
	betCount    int
}

func NewStatsRepository() repository.StatsRepository {
	return &repo{}
}

func (r *repo) Record(bet, payout int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.totalBet += bet
	r.totalPayout += payout
	r.betCount++
}

func (r *repo) Stats() model.RTPStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := model.RTPStats{
		TotalBet:    r.totalBet,
		TotalPayout: r.totalPayout,
		BetCount:    r.betCount,
	}
	if r.totalBet > 0 {
		stats.RTP = float64(r.totalPayout) / float64(r.totalBet)
	}
	return stats
}
